package services

import (
	"testing"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
)

func TestHolidayEvents(t *testing.T) {
	service := NewCalendarService()
	events := service.HolidayEvents(2025)
	if len(events) == 0 {
		t.Fatal("expected holiday events")
	}

	byDate := make(map[string]models.CalendarEvent)
	for _, event := range events {
		if event.ID == "" {
			t.Fatal("every event needs an id")
		}
		byDate[event.Date] = event
	}

	newYear, ok := byDate["2025-01-01"]
	if !ok {
		t.Fatal("missing 신정")
	}
	if newYear.Type != models.EVENT_HOLIDAY || newYear.Name != "신정" {
		t.Errorf("event = %+v", newYear)
	}

	// 2025-03-01 falls on a Saturday, the Monday after is a substitute
	substitute, ok := byDate["2025-03-03"]
	if !ok {
		t.Fatal("missing substitute holiday")
	}
	if substitute.Type != models.EVENT_SUBSTITUTE {
		t.Errorf("substitute type = %s", substitute.Type)
	}
	if substitute.Name != "삼일절 대체휴일" {
		t.Errorf("substitute name = %s", substitute.Name)
	}
}

func TestValidEventType(t *testing.T) {
	valid := []string{
		models.EVENT_HOLIDAY, models.EVENT_MIDTERM, models.EVENT_FINAL,
		models.EVENT_RECESS, models.EVENT_CUSTOM, models.EVENT_DIRECT,
		models.EVENT_SUBSTITUTE, models.EVENT_OPENING, models.EVENT_CLOSING,
		models.EVENT_MOCKTEST,
	}
	for _, eventType := range valid {
		if !validEventType(eventType) {
			t.Errorf("%s should be valid", eventType)
		}
	}
	if validEventType("party") {
		t.Error("unknown types must be rejected")
	}
}
