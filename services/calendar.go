package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/KR-EduLab/Intranet_BLessonPlan/holidays"
	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"github.com/google/uuid"
	natsPackage "github.com/nats-io/nats.go"
)

type CalendarService struct {
	holidays *holidays.Calculator
}

func (c *CalendarService) GetCalendar(
	schoolID string,
	year,
	semester int,
) (*models.AcademicCalendar, *res.ErrorRes) {
	return calendarRepository.GetCalendar(schoolID, year, semester)
}

func validEventType(eventType string) bool {
	switch eventType {
	case models.EVENT_HOLIDAY, models.EVENT_MIDTERM, models.EVENT_FINAL,
		models.EVENT_RECESS, models.EVENT_CUSTOM, models.EVENT_DIRECT,
		models.EVENT_SUBSTITUTE, models.EVENT_OPENING, models.EVENT_CLOSING,
		models.EVENT_MOCKTEST:
		return true
	}
	return false
}

// SaveCalendar validates and stores the full event list of a school term,
// replacing whatever was stored before. Events get ids when they have none.
func (c *CalendarService) SaveCalendar(
	schoolID string,
	year,
	semester int,
	events []models.CalendarEvent,
) (*models.AcademicCalendar, *res.ErrorRes) {
	perDate := make(map[string]int)
	for i, event := range events {
		if _, err := time.ParseInLocation(DATE_LAYOUT, event.Date, time.Local); err != nil {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("잘못된 날짜 형식입니다: %s", event.Date),
				StatusCode: http.StatusBadRequest,
			}
		}
		if !validEventType(event.Type) {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("알 수 없는 이벤트 유형입니다: %s", event.Type),
				StatusCode: http.StatusBadRequest,
			}
		}
		perDate[event.Date]++
		if perDate[event.Date] > models.MAX_EVENTS_PER_DATE {
			return nil, &res.ErrorRes{
				Err: fmt.Errorf(
					"하루에 최대 %d개의 학사일정만 등록할 수 있습니다: %s",
					models.MAX_EVENTS_PER_DATE,
					event.Date,
				),
				StatusCode: http.StatusBadRequest,
			}
		}
		if event.ID == "" {
			events[i].ID = uuid.NewString()
		}
	}

	existing, errRes := calendarRepository.GetCalendar(schoolID, year, semester)
	if errRes != nil {
		return nil, errRes
	}
	schoolName := settingsData.SCHOOL_NAME
	if school, errRes := schoolRepository.GetSchool(schoolID); errRes == nil && school != nil {
		schoolName = school.Name
	}
	now := time.Now().Format(time.RFC3339)
	createdAt := now
	if existing != nil {
		createdAt = existing.CreatedAt
	}
	calendar := &models.AcademicCalendar{
		ID:         models.CalendarID(schoolID, year, semester),
		SchoolID:   schoolID,
		SchoolName: schoolName,
		Year:       year,
		Semester:   semester,
		Events:     events,
		CreatedAt:  createdAt,
		UpdatedAt:  now,
	}
	if errRes := calendarRepository.SaveCalendar(calendar); errRes != nil {
		return nil, errRes
	}
	return calendar, nil
}

// HolidayEvents returns the statutory holidays of the year as ready-made
// calendar events: substitute days as EVENT_SUBSTITUTE, the rest as
// EVENT_HOLIDAY.
func (c *CalendarService) HolidayEvents(year int) []models.CalendarEvent {
	dates := c.holidays.ForYear(year)
	events := make([]models.CalendarEvent, 0, len(dates))
	for _, date := range dates {
		name := c.holidays.Name(date)
		eventType := models.EVENT_HOLIDAY
		if strings.Contains(name, "대체휴일") {
			eventType = models.EVENT_SUBSTITUTE
		}
		events = append(events, models.CalendarEvent{
			ID:   uuid.NewString(),
			Date: formatDate(date),
			Type: eventType,
			Name: name,
		})
	}
	return events
}

// GetAcademicCalendar answers calendar lookups from the other services over
// nats.
func (c *CalendarService) GetAcademicCalendar() {
	nats.Subscribe("get_academic_calendar", func(m *natsPackage.Msg) {
		payload, err := nats.DecodeDataNest(m.Data)
		if err != nil {
			return
		}
		schoolID, ok := payload["school_id"].(string)
		if !ok {
			return
		}
		year, ok := payload["year"].(float64)
		if !ok {
			return
		}
		semester, ok := payload["semester"].(float64)
		if !ok {
			return
		}
		calendar, errRes := calendarRepository.GetCalendar(schoolID, int(year), int(semester))
		if errRes != nil || calendar == nil {
			return
		}

		calendarJson, err := json.Marshal(calendar)
		if err != nil {
			return
		}
		m.RespondMsg(&natsPackage.Msg{
			Data:    calendarJson,
			Reply:   m.Reply,
			Subject: m.Subject,
		})
	})
}

func NewCalendarService() *CalendarService {
	return &CalendarService{
		holidays: holidays.NewCalculator(nil),
	}
}
