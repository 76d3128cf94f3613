package models

import (
	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const LESSON_PLAN_TEMPLATES_COLLECTION = "lesson_plan_templates"

var lessonPlanTemplateModel *LessonPlanTemplateModel

// LessonPlanTemplate is one row of a common lesson plan: the content of the
// SessionIndex-th class within a segment, shared by every section a teacher
// takes for the same grade and subject. Unique per
// (school, year, semester, teacher, grade, subject, segment, sessionIndex).
type LessonPlanTemplate struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	SchoolID     string             `json:"school_id" bson:"school_id"`
	Year         int                `json:"year" bson:"year"`
	Semester     int                `json:"semester" bson:"semester"`
	TeacherID    string             `json:"teacher_id" bson:"teacher_id"`
	Grade        int                `json:"grade" bson:"grade"`
	Subject      string             `json:"subject" bson:"subject"`
	Segment      ExamSegment        `json:"segment" bson:"segment"`
	SessionIndex int                `json:"session_index" bson:"session_index"`
	Content      string             `json:"content" bson:"content"`
}

type LessonPlanTemplateModel struct {
	CollectionName string
}

func (template *LessonPlanTemplateModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(template.CollectionName)
}

func (template *LessonPlanTemplateModel) GetOne(filter bson.D) *mongo.SingleResult {
	return template.Use().FindOne(db.Ctx, filter)
}

func (template *LessonPlanTemplateModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return template.Use().Find(db.Ctx, filter, options)
}

func (template *LessonPlanTemplateModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return template.Use().InsertOne(db.Ctx, data)
}

func (template *LessonPlanTemplateModel) NewDocuments(data []interface{}) (*mongo.InsertManyResult, error) {
	return template.Use().InsertMany(db.Ctx, data)
}

func (template *LessonPlanTemplateModel) DeleteMany(filter bson.D) (*mongo.DeleteResult, error) {
	return template.Use().DeleteMany(db.Ctx, filter)
}

func NewLessonPlanTemplateModel() Collection {
	if lessonPlanTemplateModel == nil {
		lessonPlanTemplateModel = &LessonPlanTemplateModel{
			CollectionName: LESSON_PLAN_TEMPLATES_COLLECTION,
		}
	}
	return lessonPlanTemplateModel
}
