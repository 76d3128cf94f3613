package repositories

import (
	"net/http"

	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ScheduleStorer loads and persists teacher timetable slots.
type ScheduleStorer interface {
	GetSchedules(schoolID string, year, semester int) ([]models.ClassScheduleSlot, *res.ErrorRes)
	GetTeacherSchedules(
		schoolID string,
		year,
		semester int,
		teacherID string,
	) ([]models.ClassScheduleSlot, *res.ErrorRes)
	ReplaceSchedules(
		schoolID string,
		year,
		semester int,
		slots []models.ClassScheduleSlot,
	) *res.ErrorRes
}

type ScheduleRepository struct{}

func (s *ScheduleRepository) getSchedules(filter bson.D) ([]models.ClassScheduleSlot, *res.ErrorRes) {
	var slots []models.ClassScheduleSlot

	cursor, err := scheduleModel.GetAll(filter, options.Find().SetSort(bson.D{
		{Key: "grade", Value: 1},
		{Key: "class_number", Value: 1},
		{Key: "day_of_week", Value: 1},
		{Key: "period", Value: 1},
	}))
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &slots); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return slots, nil
}

func (s *ScheduleRepository) GetSchedules(
	schoolID string,
	year,
	semester int,
) ([]models.ClassScheduleSlot, *res.ErrorRes) {
	return s.getSchedules(bson.D{
		{Key: "school_id", Value: schoolID},
		{Key: "year", Value: year},
		{Key: "semester", Value: semester},
	})
}

func (s *ScheduleRepository) GetTeacherSchedules(
	schoolID string,
	year,
	semester int,
	teacherID string,
) ([]models.ClassScheduleSlot, *res.ErrorRes) {
	return s.getSchedules(bson.D{
		{Key: "school_id", Value: schoolID},
		{Key: "year", Value: year},
		{Key: "semester", Value: semester},
		{Key: "teacher_id", Value: teacherID},
	})
}

// ReplaceSchedules swaps the whole timetable of a school term
func (s *ScheduleRepository) ReplaceSchedules(
	schoolID string,
	year,
	semester int,
	slots []models.ClassScheduleSlot,
) *res.ErrorRes {
	filter := bson.D{
		{Key: "school_id", Value: schoolID},
		{Key: "year", Value: year},
		{Key: "semester", Value: semester},
	}
	if _, err := scheduleModel.DeleteMany(filter); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if len(slots) == 0 {
		return nil
	}
	documents := make([]interface{}, len(slots))
	for i, slot := range slots {
		slot.SchoolID = schoolID
		slot.Year = year
		slot.Semester = semester
		documents[i] = slot
	}
	if _, err := scheduleModel.NewDocuments(documents); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}
