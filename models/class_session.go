package models

import (
	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CLASS_SESSIONS_COLLECTION = "class_sessions"
const CLASS_SESSIONS_INDEX = "class_sessions"

var classSessionModel *ClassSessionModel

// ExamSegment splits a semester into the exam-bounded windows used for
// session numbering and common lesson plans.
type ExamSegment string

const (
	SEGMENT_BEFORE_FIRST         ExamSegment = "before_first"
	SEGMENT_BETWEEN_FIRST_SECOND ExamSegment = "between_first_second"
	SEGMENT_AFTER_SECOND         ExamSegment = "after_second"
)

// Whole-day marker rows carry Period 0 so they sort before period 1..7 rows
// of the same date.
const PERIOD_WHOLE_DAY = 0

// ClassSession is one occurrence of a class-section on a calendar date and
// period. SessionNumber is nil on non-class days and on whole-day marker rows
// (exam start, closing ceremony). Segment is empty on rows generated before
// the segment field existed; readers go through InSegment instead of touching
// the field directly.
type ClassSession struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	SchoolID    string             `json:"school_id,omitempty" bson:"school_id,omitempty"`
	Year        int                `json:"year,omitempty" bson:"year,omitempty"`
	Semester    int                `json:"semester,omitempty" bson:"semester,omitempty"`
	TeacherID   string             `json:"teacher_id,omitempty" bson:"teacher_id,omitempty"`
	TeacherName string             `json:"teacher_name,omitempty" bson:"teacher_name,omitempty"`
	Grade       int                `json:"grade,omitempty" bson:"grade,omitempty"`
	ClassNumber int                `json:"class_number,omitempty" bson:"class_number,omitempty"`
	Subject     string             `json:"subject,omitempty" bson:"subject,omitempty"`

	SessionNumber     *int        `json:"session_number" bson:"session_number"`
	Date              string      `json:"date" bson:"date"`
	DayOfWeek         string      `json:"day_of_week" bson:"day_of_week"`
	Period            int         `json:"period" bson:"period"`
	ClassInfo         string      `json:"class_info" bson:"class_info"`
	AcademicEvent     string      `json:"academic_event" bson:"academic_event"`
	Content           string      `json:"content" bson:"content"`
	IsBeforeFirstTest bool        `json:"is_before_first_test" bson:"is_before_first_test"`
	Segment           ExamSegment `json:"segment,omitempty" bson:"segment,omitempty"`
}

// InSegment reports whether the session belongs to segment. The Segment field
// wins when set. Rows written before the field existed only recorded
// IsBeforeFirstTest, so for those: before_first and between_first_second are
// inferred from the flag, and after_second can never be recovered; it
// resolves false.
func (session ClassSession) InSegment(segment ExamSegment) bool {
	if session.Segment != "" {
		return session.Segment == segment
	}
	switch segment {
	case SEGMENT_BEFORE_FIRST:
		return session.IsBeforeFirstTest
	case SEGMENT_BETWEEN_FIRST_SECOND:
		return !session.IsBeforeFirstTest
	}
	return false
}

type ClassSessionModel struct {
	CollectionName string
}

func (session *ClassSessionModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(session.CollectionName)
}

func (session *ClassSessionModel) GetOne(filter bson.D) *mongo.SingleResult {
	return session.Use().FindOne(db.Ctx, filter)
}

func (session *ClassSessionModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return session.Use().Find(db.Ctx, filter, options)
}

func (session *ClassSessionModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return session.Use().InsertOne(db.Ctx, data)
}

func (session *ClassSessionModel) NewDocuments(data []interface{}) (*mongo.InsertManyResult, error) {
	return session.Use().InsertMany(db.Ctx, data)
}

func (session *ClassSessionModel) DeleteMany(filter bson.D) (*mongo.DeleteResult, error) {
	return session.Use().DeleteMany(db.Ctx, filter)
}

func NewBulkClassSession() (esutil.BulkIndexer, error) {
	es, err := db.NewConnectionEs()
	if err != nil {
		return nil, err
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         CLASS_SESSIONS_INDEX,
		Client:        es,
		NumWorkers:    db.NUM_WORKERS,
		FlushBytes:    int(db.FLUSH_BYTES),
		FlushInterval: db.FLUSH_INTERVAL,
	})
	if err != nil {
		return nil, err
	}
	return bi, nil
}

func NewClassSessionModel() Collection {
	if classSessionModel == nil {
		classSessionModel = &ClassSessionModel{
			CollectionName: CLASS_SESSIONS_COLLECTION,
		}
	}
	return classSessionModel
}
