package repositories

import (
	"net/http"

	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CalendarStorer loads and persists academic calendars.
type CalendarStorer interface {
	GetCalendar(schoolID string, year, semester int) (*models.AcademicCalendar, *res.ErrorRes)
	SaveCalendar(calendar *models.AcademicCalendar) *res.ErrorRes
}

type CalendarRepository struct{}

// GetCalendar returns nil without error when no calendar is registered yet
func (c *CalendarRepository) GetCalendar(
	schoolID string,
	year,
	semester int,
) (*models.AcademicCalendar, *res.ErrorRes) {
	var calendar *models.AcademicCalendar

	cursor := calendarModel.GetOne(bson.D{{
		Key:   "_id",
		Value: models.CalendarID(schoolID, year, semester),
	}})
	if err := cursor.Decode(&calendar); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return nil, nil
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return calendar, nil
}

func (c *CalendarRepository) SaveCalendar(calendar *models.AcademicCalendar) *res.ErrorRes {
	_, err := calendarModel.Use().UpdateOne(
		db.Ctx,
		bson.D{{
			Key:   "_id",
			Value: calendar.ID,
		}},
		bson.D{{
			Key:   "$set",
			Value: calendar,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}

func NewCalendarRepository() *CalendarRepository {
	return &CalendarRepository{}
}
