package models

import (
	"fmt"

	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CALENDARS_COLLECTION = "calendars"

// Max events on a single calendar date
const MAX_EVENTS_PER_DATE = 5

var calendarModel *CalendarModel

// Calendar event types
const (
	EVENT_HOLIDAY    = "holiday"
	EVENT_MIDTERM    = "midterm"
	EVENT_FINAL      = "final"
	EVENT_RECESS     = "recess"
	EVENT_CUSTOM     = "custom"
	EVENT_DIRECT     = "direct"
	EVENT_SUBSTITUTE = "substitute"
	EVENT_OPENING    = "opening"
	EVENT_CLOSING    = "closing"
	EVENT_MOCKTEST   = "mocktest"
)

// CalendarEvent is one dated entry of an academic calendar. Dates are local
// calendar dates in ISO form (YYYY-MM-DD). An empty Grades slice means the
// event applies to every grade.
//
// EVENT_DIRECT entries are free-text one-off entries, but the session
// generator treats them as "no regular class" days all the same; splitting
// them into a separate non-class type would change segment numbering.
type CalendarEvent struct {
	ID     string `json:"id" bson:"id"`
	Date   string `json:"date" bson:"date"`
	Type   string `json:"type" bson:"type"`
	Name   string `json:"name" bson:"name"`
	Grades []int  `json:"grades" bson:"grades"`
}

// AppliesToGrade reports whether the event is scoped to grade. Events with no
// grade set are common to all grades.
func (event CalendarEvent) AppliesToGrade(grade int) bool {
	if len(event.Grades) == 0 {
		return true
	}
	for _, g := range event.Grades {
		if g == grade {
			return true
		}
	}
	return false
}

// IsNonClass reports whether this event type suspends regular classes.
func (event CalendarEvent) IsNonClass() bool {
	switch event.Type {
	case EVENT_HOLIDAY, EVENT_MIDTERM, EVENT_FINAL, EVENT_RECESS,
		EVENT_SUBSTITUTE, EVENT_MOCKTEST, EVENT_DIRECT:
		return true
	}
	return false
}

// AcademicCalendar is the single calendar of a school/year/semester triple.
type AcademicCalendar struct {
	ID         string          `json:"_id" bson:"_id"`
	SchoolID   string          `json:"school_id" bson:"school_id"`
	SchoolName string          `json:"school_name,omitempty" bson:"school_name,omitempty"`
	Year       int             `json:"year" bson:"year"`
	Semester   int             `json:"semester" bson:"semester"`
	Events     []CalendarEvent `json:"events" bson:"events"`
	CreatedAt  string          `json:"created_at" bson:"created_at"`
	UpdatedAt  string          `json:"updated_at" bson:"updated_at"`
}

// CalendarID builds the canonical _id of a school/year/semester calendar.
func CalendarID(schoolID string, year, semester int) string {
	return fmt.Sprintf("%s-%d-%d", schoolID, year, semester)
}

type CalendarModel struct {
	CollectionName string
}

func (calendar *CalendarModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(calendar.CollectionName)
}

func (calendar *CalendarModel) GetOne(filter bson.D) *mongo.SingleResult {
	return calendar.Use().FindOne(db.Ctx, filter)
}

func (calendar *CalendarModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return calendar.Use().Find(db.Ctx, filter, options)
}

func (calendar *CalendarModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return calendar.Use().InsertOne(db.Ctx, data)
}

func (calendar *CalendarModel) NewDocuments(data []interface{}) (*mongo.InsertManyResult, error) {
	return calendar.Use().InsertMany(db.Ctx, data)
}

func (calendar *CalendarModel) DeleteMany(filter bson.D) (*mongo.DeleteResult, error) {
	return calendar.Use().DeleteMany(db.Ctx, filter)
}

func NewCalendarModel() Collection {
	if calendarModel == nil {
		calendarModel = &CalendarModel{
			CollectionName: CALENDARS_COLLECTION,
		}
	}
	return calendarModel
}
