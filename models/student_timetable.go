package models

import (
	"fmt"

	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const STUDENT_TIMETABLES_COLLECTION = "student_timetables"

var studentTimetableModel *StudentTimetableModel

// StudentTimetableRow is one (day, period) cell of one student's base
// timetable. DayOfWeek is 1=Monday .. 5=Friday as the source spreadsheets use.
type StudentTimetableRow struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	SchoolID    string             `json:"school_id" bson:"school_id"`
	Year        int                `json:"year" bson:"year"`
	Semester    int                `json:"semester" bson:"semester"`
	Grade       int                `json:"grade" bson:"grade"`
	ClassNumber int                `json:"class_no" bson:"class_no"`
	StudentNo   int                `json:"student_no" bson:"student_no"`
	StudentName string             `json:"student_name" bson:"student_name"`
	StudentCode string             `json:"student_code" bson:"student_code"`
	DayOfWeek   int                `json:"day_of_week" bson:"day_of_week"`
	Period      int                `json:"period" bson:"period"`
	Subject     string             `json:"subject" bson:"subject"`
	TeacherID   string             `json:"teacher_id,omitempty" bson:"teacher_id,omitempty"`
	TeacherName string             `json:"teacher_name,omitempty" bson:"teacher_name,omitempty"`
	Room        string             `json:"room,omitempty" bson:"room,omitempty"`
}

// StudentCode builds the 5-digit student code grade(1) + class(2) + number(2),
// e.g. grade 3 class 6 number 1 -> "30601".
func StudentCode(grade, classNumber, studentNo int) string {
	return fmt.Sprintf("%d%02d%02d", grade, classNumber, studentNo)
}

type StudentTimetableModel struct {
	CollectionName string
}

func (timetable *StudentTimetableModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(timetable.CollectionName)
}

func (timetable *StudentTimetableModel) GetOne(filter bson.D) *mongo.SingleResult {
	return timetable.Use().FindOne(db.Ctx, filter)
}

func (timetable *StudentTimetableModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return timetable.Use().Find(db.Ctx, filter, options)
}

func (timetable *StudentTimetableModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return timetable.Use().InsertOne(db.Ctx, data)
}

func (timetable *StudentTimetableModel) NewDocuments(data []interface{}) (*mongo.InsertManyResult, error) {
	return timetable.Use().InsertMany(db.Ctx, data)
}

func (timetable *StudentTimetableModel) DeleteMany(filter bson.D) (*mongo.DeleteResult, error) {
	return timetable.Use().DeleteMany(db.Ctx, filter)
}

func NewStudentTimetableModel() Collection {
	if studentTimetableModel == nil {
		studentTimetableModel = &StudentTimetableModel{
			CollectionName: STUDENT_TIMETABLES_COLLECTION,
		}
	}
	return studentTimetableModel
}
