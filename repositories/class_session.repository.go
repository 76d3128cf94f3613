package repositories

import (
	"net/http"

	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SessionStorer loads and persists generated class sessions.
type SessionStorer interface {
	GetSessionsByGroup(
		schoolID string,
		year,
		semester int,
		teacherID string,
		grade,
		classNumber int,
	) ([]models.ClassSession, *res.ErrorRes)
	GetSessionsByTeacherSubject(
		schoolID string,
		year,
		semester int,
		teacherID string,
		grade int,
		subject string,
	) ([]models.ClassSession, *res.ErrorRes)
	ReplaceSessionGroup(
		schoolID string,
		year,
		semester int,
		teacherID string,
		grade,
		classNumber int,
		sessions []models.ClassSession,
	) *res.ErrorRes
}

type ClassSessionRepository struct{}

var sessionSort = options.Find().SetSort(bson.D{
	{Key: "date", Value: 1},
	{Key: "period", Value: 1},
})

func (c *ClassSessionRepository) getSessions(filter bson.D) ([]models.ClassSession, *res.ErrorRes) {
	var sessions []models.ClassSession

	cursor, err := classSessionModel.GetAll(filter, sessionSort)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &sessions); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return sessions, nil
}

func (c *ClassSessionRepository) GetSessionsByGroup(
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade,
	classNumber int,
) ([]models.ClassSession, *res.ErrorRes) {
	return c.getSessions(bson.D{
		{Key: "school_id", Value: schoolID},
		{Key: "year", Value: year},
		{Key: "semester", Value: semester},
		{Key: "teacher_id", Value: teacherID},
		{Key: "grade", Value: grade},
		{Key: "class_number", Value: classNumber},
	})
}

func (c *ClassSessionRepository) GetSessionsByTeacherSubject(
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade int,
	subject string,
) ([]models.ClassSession, *res.ErrorRes) {
	return c.getSessions(bson.D{
		{Key: "school_id", Value: schoolID},
		{Key: "year", Value: year},
		{Key: "semester", Value: semester},
		{Key: "teacher_id", Value: teacherID},
		{Key: "grade", Value: grade},
		{Key: "subject", Value: subject},
	})
}

// ReplaceSessionGroup drops the previous plan of the class before inserting,
// so regeneration never leaves stale sessions behind
func (c *ClassSessionRepository) ReplaceSessionGroup(
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade,
	classNumber int,
	sessions []models.ClassSession,
) *res.ErrorRes {
	filter := bson.D{
		{Key: "school_id", Value: schoolID},
		{Key: "year", Value: year},
		{Key: "semester", Value: semester},
		{Key: "teacher_id", Value: teacherID},
		{Key: "grade", Value: grade},
		{Key: "class_number", Value: classNumber},
	}
	if _, err := classSessionModel.DeleteMany(filter); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if len(sessions) == 0 {
		return nil
	}
	documents := make([]interface{}, len(sessions))
	for i, session := range sessions {
		session.SchoolID = schoolID
		session.Year = year
		session.Semester = semester
		session.TeacherID = teacherID
		session.Grade = grade
		session.ClassNumber = classNumber
		documents[i] = session
	}
	if _, err := classSessionModel.NewDocuments(documents); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}

func NewClassSessionRepository() *ClassSessionRepository {
	return &ClassSessionRepository{}
}
