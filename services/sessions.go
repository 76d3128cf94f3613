package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/KR-EduLab/Intranet_BLessonPlan/funct"
	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"github.com/KR-EduLab/Intranet_BLessonPlan/stack"
)

const DATE_LAYOUT = "2006-01-02"

// Whole-day marker labels
const (
	FIRST_TEST_EVENT  = "1차 지필 시작"
	SECOND_TEST_EVENT = "2차 지필 시작"
	CLOSING_EVENT     = "방학식"
)

var dayOfWeekNames = [7]string{
	"일요일",
	"월요일",
	"화요일",
	"수요일",
	"목요일",
	"금요일",
	"토요일",
}

func dayOfWeekName(dayOfWeek int) string {
	return dayOfWeekNames[dayOfWeek]
}

func formatDate(date time.Time) string {
	return date.Format(DATE_LAYOUT)
}

type SessionsService struct{}

// semesterDates returns the nominal window of a semester. The first semester
// runs Feb 1 to Aug 31, the second Aug 1 to Jan 31 of the next year.
func semesterDates(year, semester int) (time.Time, time.Time) {
	if semester == 1 {
		return time.Date(year, time.February, 1, 0, 0, 0, 0, time.Local),
			time.Date(year, time.August, 31, 0, 0, 0, 0, time.Local)
	}
	return time.Date(year, time.August, 1, 0, 0, 0, 0, time.Local),
		time.Date(year+1, time.January, 31, 0, 0, 0, 0, time.Local)
}

// earliestEventDate finds the first date of the event type scoped to grade.
func earliestEventDate(events []models.CalendarEvent, eventType string, grade int) string {
	found := ""
	for _, event := range events {
		if event.Type != eventType || !event.AppliesToGrade(grade) {
			continue
		}
		if found == "" || event.Date < found {
			found = event.Date
		}
	}
	return found
}

// Opening and closing ceremonies are school wide, so no grade scoping here.
func findOpeningDate(events []models.CalendarEvent) string {
	found := ""
	for _, event := range events {
		if event.Type != models.EVENT_OPENING {
			continue
		}
		if found == "" || event.Date < found {
			found = event.Date
		}
	}
	return found
}

func findClosingDate(events []models.CalendarEvent) string {
	found := ""
	for _, event := range events {
		if event.Type != models.EVENT_CLOSING {
			continue
		}
		if found == "" || event.Date > found {
			found = event.Date
		}
	}
	return found
}

// nonClassEvent returns the first event suspending classes on the date for
// the grade, if any.
func nonClassEvent(events []models.CalendarEvent, dateStr string, grade int) (bool, string) {
	for _, event := range events {
		if event.Date != dateStr || !event.AppliesToGrade(grade) {
			continue
		}
		if event.IsNonClass() {
			return true, event.Name
		}
	}
	return false, ""
}

func classInfoLabel(grade, classNumber int, subject string) string {
	return fmt.Sprintf("%d%02d %s", grade, classNumber, subject)
}

// GenerateSessions walks every calendar day of the semester and derives the
// numbered class sessions of one teacher/grade/class group from its weekly
// slots and the academic calendar. Sessions are numbered per exam segment,
// once per class day no matter how many periods the day has. Non-class days
// keep their slots as unnumbered rows labeled with the event, and the exam
// start dates and the closing ceremony produce whole-day marker rows.
//
// A nil calendar means no events at all: every weekday slot becomes an
// unnumbered session row. Slots of other teachers or classes are ignored.
func (s *SessionsService) GenerateSessions(
	teacherID string,
	grade,
	classNumber int,
	year,
	semester int,
	schedules []models.ClassScheduleSlot,
	calendar *models.AcademicCalendar,
) []models.ClassSession {
	sessions := make([]models.ClassSession, 0)

	classSchedules := funct.Filter(schedules, func(slot models.ClassScheduleSlot) bool {
		return slot.TeacherID == teacherID &&
			slot.Grade == grade &&
			slot.ClassNumber == classNumber
	})
	if len(classSchedules) == 0 {
		return sessions
	}
	// Same class means same subject
	subject := classSchedules[0].Subject
	teacherName := classSchedules[0].TeacherName
	classInfo := classInfoLabel(grade, classNumber, subject)

	start, end := semesterDates(year, semester)
	var events []models.CalendarEvent
	if calendar != nil {
		events = calendar.Events
	}

	firstTestStart := earliestEventDate(events, models.EVENT_MIDTERM, grade)
	secondTestStart := earliestEventDate(events, models.EVENT_FINAL, grade)
	openingDate := findOpeningDate(events)
	closingDate := findClosingDate(events)

	actualStart := start
	if openingDate != "" {
		if parsed, err := time.ParseInLocation(DATE_LAYOUT, openingDate, time.Local); err == nil {
			actualStart = parsed
		}
	}
	actualEnd := end
	if closingDate != "" {
		if parsed, err := time.ParseInLocation(DATE_LAYOUT, closingDate, time.Local); err == nil {
			// Classes run through the day before the closing ceremony
			actualEnd = parsed.AddDate(0, 0, -1)
		}
	}

	hasFirstTest := firstTestStart != ""
	hasSecondTest := secondTestStart != ""

	sessionNumberBeforeFirst := 0
	sessionNumberAfterFirst := 0
	sessionNumberAfterSecond := 0

	for current := actualStart; !current.After(actualEnd); current = current.AddDate(0, 0, 1) {
		dayOfWeek := int(current.Weekday())
		dateStr := formatDate(current)

		isNonClass, eventName := nonClassEvent(events, dateStr, grade)

		isBeforeFirst := hasFirstTest && dateStr < firstTestStart
		isAfterFirstBeforeSecond := hasFirstTest && hasSecondTest &&
			dateStr >= firstTestStart && dateStr < secondTestStart
		isAfterSecond := hasSecondTest && dateStr >= secondTestStart

		if hasFirstTest && dateStr == firstTestStart {
			markerSegment := models.ExamSegment("")
			if hasSecondTest {
				markerSegment = models.SEGMENT_BETWEEN_FIRST_SECOND
			}
			sessions = append(sessions, models.ClassSession{
				SessionNumber:     nil,
				Date:              dateStr,
				DayOfWeek:         dayOfWeekName(dayOfWeek),
				Period:            models.PERIOD_WHOLE_DAY,
				ClassInfo:         classInfo,
				AcademicEvent:     FIRST_TEST_EVENT,
				IsBeforeFirstTest: false,
				Segment:           markerSegment,
				TeacherName:       teacherName,
				Subject:           subject,
			})
		}

		if hasSecondTest && dateStr == secondTestStart {
			sessions = append(sessions, models.ClassSession{
				SessionNumber:     nil,
				Date:              dateStr,
				DayOfWeek:         dayOfWeekName(dayOfWeek),
				Period:            models.PERIOD_WHOLE_DAY,
				ClassInfo:         classInfo,
				AcademicEvent:     SECOND_TEST_EVENT,
				IsBeforeFirstTest: false,
				Segment:           models.SEGMENT_AFTER_SECOND,
				TeacherName:       teacherName,
				Subject:           subject,
			})
		}

		daySchedules := funct.Filter(classSchedules, func(slot models.ClassScheduleSlot) bool {
			return slot.DayOfWeek == dayOfWeek
		})
		if len(daySchedules) == 0 {
			continue
		}

		// One number per class day, shared by every period of the day
		if !isNonClass {
			if isBeforeFirst {
				sessionNumberBeforeFirst++
			} else if isAfterFirstBeforeSecond {
				sessionNumberAfterFirst++
			} else if isAfterSecond && (closingDate == "" || dateStr < closingDate) {
				sessionNumberAfterSecond++
			}
		}

		for _, classSchedule := range daySchedules {
			if !isNonClass {
				var currentSessionNumber *int
				var currentSegment models.ExamSegment

				if isBeforeFirst {
					currentSessionNumber = intPtr(sessionNumberBeforeFirst)
					currentSegment = models.SEGMENT_BEFORE_FIRST
				} else if isAfterFirstBeforeSecond {
					currentSessionNumber = intPtr(sessionNumberAfterFirst)
					currentSegment = models.SEGMENT_BETWEEN_FIRST_SECOND
				} else if isAfterSecond && (closingDate == "" || dateStr < closingDate) {
					currentSessionNumber = intPtr(sessionNumberAfterSecond)
					currentSegment = models.SEGMENT_AFTER_SECOND
				}

				sessions = append(sessions, models.ClassSession{
					SessionNumber:     currentSessionNumber,
					Date:              dateStr,
					DayOfWeek:         dayOfWeekName(dayOfWeek),
					Period:            classSchedule.Period,
					ClassInfo:         classInfo,
					AcademicEvent:     "",
					IsBeforeFirstTest: isBeforeFirst,
					Segment:           currentSegment,
					TeacherName:       teacherName,
					Subject:           subject,
				})
			} else {
				sessions = append(sessions, models.ClassSession{
					SessionNumber:     nil,
					Date:              dateStr,
					DayOfWeek:         dayOfWeekName(dayOfWeek),
					Period:            classSchedule.Period,
					ClassInfo:         classInfo,
					AcademicEvent:     eventName,
					IsBeforeFirstTest: isBeforeFirst,
					TeacherName:       teacherName,
					Subject:           subject,
				})
			}
		}
	}

	if closingDate != "" {
		if closing, err := time.ParseInLocation(DATE_LAYOUT, closingDate, time.Local); err == nil {
			sessions = append(sessions, models.ClassSession{
				SessionNumber:     nil,
				Date:              closingDate,
				DayOfWeek:         dayOfWeekName(int(closing.Weekday())),
				Period:            models.PERIOD_WHOLE_DAY,
				ClassInfo:         classInfo,
				AcademicEvent:     CLOSING_EVENT,
				IsBeforeFirstTest: false,
				Segment:           models.SEGMENT_AFTER_SECOND,
				TeacherName:       teacherName,
				Subject:           subject,
			})
		}
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].Date != sessions[j].Date {
			return sessions[i].Date < sessions[j].Date
		}
		return sessions[i].Period < sessions[j].Period
	})
	return sessions
}

// GetSessions returns the stored sessions of one teacher/grade/class group,
// sorted by date and period.
func (s *SessionsService) GetSessions(
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade,
	classNumber int,
) ([]models.ClassSession, *res.ErrorRes) {
	return classSessionRepository.GetSessionsByGroup(
		schoolID,
		year,
		semester,
		teacherID,
		grade,
		classNumber,
	)
}

// SaveSessions replaces the stored sessions of one group wholesale. Session
// rows are never patched one by one, the client always sends the full plan.
type teacherProfile struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// getTeacherName asks the users service for the display name of the teacher.
func (s *SessionsService) getTeacherName(teacherID string) (string, error) {
	data, err := formatRequestToNestjsNats([]string{teacherID})
	if err != nil {
		return "", err
	}
	message, err := nats.Request("get_teachers_from_ids", data)
	if err != nil {
		return "", err
	}
	var response stack.NatsNestJSRes
	if err := json.Unmarshal(message.Data, &response); err != nil {
		return "", err
	}
	var teachers *stack.DefaultNatsResponse[[]teacherProfile]
	if err := nats.ExtractPayload(response.Response, &teachers); err != nil {
		return "", err
	}
	if teachers == nil || len(teachers.Data) == 0 {
		return "", fmt.Errorf("교사 정보를 찾을 수 없습니다: %s", teacherID)
	}
	return teachers.Data[0].Name, nil
}

func (s *SessionsService) SaveSessions(
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade,
	classNumber int,
	sessions []models.ClassSession,
) *res.ErrorRes {
	// An unreachable users service must not block saving
	if name, err := s.getTeacherName(teacherID); err == nil && name != "" {
		for i := range sessions {
			if sessions[i].TeacherName == "" {
				sessions[i].TeacherName = name
			}
		}
	}
	return classSessionRepository.ReplaceSessionGroup(
		schoolID,
		year,
		semester,
		teacherID,
		grade,
		classNumber,
		sessions,
	)
}

func NewSessionsService() *SessionsService {
	return &SessionsService{}
}
