package models

import (
	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const TEACHER_SCHEDULES_COLLECTION = "teacher_schedules"

var teacherScheduleModel *TeacherScheduleModel

// ClassScheduleSlot is one weekly recurring slot of a teacher's timetable:
// this teacher meets this grade/class at (dayOfWeek, period) every week.
// DayOfWeek is 0=Sunday .. 6=Saturday; Period is 1..7.
type ClassScheduleSlot struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	SchoolID    string             `json:"school_id" bson:"school_id"`
	Year        int                `json:"year" bson:"year"`
	Semester    int                `json:"semester" bson:"semester"`
	TeacherID   string             `json:"teacher_id" bson:"teacher_id"`
	TeacherName string             `json:"teacher_name" bson:"teacher_name"`
	Subject     string             `json:"subject" bson:"subject"`
	Grade       int                `json:"grade" bson:"grade"`
	ClassNumber int                `json:"class_number" bson:"class_number"`
	DayOfWeek   int                `json:"day_of_week" bson:"day_of_week"`
	Period      int                `json:"period" bson:"period"`
}

type TeacherScheduleModel struct {
	CollectionName string
}

func (schedule *TeacherScheduleModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(schedule.CollectionName)
}

func (schedule *TeacherScheduleModel) GetOne(filter bson.D) *mongo.SingleResult {
	return schedule.Use().FindOne(db.Ctx, filter)
}

func (schedule *TeacherScheduleModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return schedule.Use().Find(db.Ctx, filter, options)
}

func (schedule *TeacherScheduleModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return schedule.Use().InsertOne(db.Ctx, data)
}

func (schedule *TeacherScheduleModel) NewDocuments(data []interface{}) (*mongo.InsertManyResult, error) {
	return schedule.Use().InsertMany(db.Ctx, data)
}

func (schedule *TeacherScheduleModel) DeleteMany(filter bson.D) (*mongo.DeleteResult, error) {
	return schedule.Use().DeleteMany(db.Ctx, filter)
}

func NewTeacherScheduleModel() Collection {
	if teacherScheduleModel == nil {
		teacherScheduleModel = &TeacherScheduleModel{
			CollectionName: TEACHER_SCHEDULES_COLLECTION,
		}
	}
	return teacherScheduleModel
}
