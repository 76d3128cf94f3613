package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"go.uber.org/zap"
)

type fakeScheduleStorer struct {
	slots []models.ClassScheduleSlot
}

func (f *fakeScheduleStorer) GetSchedules(
	schoolID string, year, semester int,
) ([]models.ClassScheduleSlot, *res.ErrorRes) {
	return f.slots, nil
}

func (f *fakeScheduleStorer) GetTeacherSchedules(
	schoolID string, year, semester int, teacherID string,
) ([]models.ClassScheduleSlot, *res.ErrorRes) {
	var out []models.ClassScheduleSlot
	for _, slot := range f.slots {
		if slot.TeacherID == teacherID {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (f *fakeScheduleStorer) ReplaceSchedules(
	schoolID string, year, semester int, slots []models.ClassScheduleSlot,
) *res.ErrorRes {
	f.slots = slots
	return nil
}

type fakeCalendarStorer struct {
	calendar *models.AcademicCalendar
}

func (f *fakeCalendarStorer) GetCalendar(
	schoolID string, year, semester int,
) (*models.AcademicCalendar, *res.ErrorRes) {
	return f.calendar, nil
}

func (f *fakeCalendarStorer) SaveCalendar(calendar *models.AcademicCalendar) *res.ErrorRes {
	f.calendar = calendar
	return nil
}

type sessionGroup struct {
	TeacherID   string
	Grade       int
	ClassNumber int
}

type fakeSessionStorer struct {
	saved      map[sessionGroup][]models.ClassSession
	bySubject  []models.ClassSession
	failGroups map[sessionGroup]bool
}

func newFakeSessionStorer() *fakeSessionStorer {
	return &fakeSessionStorer{
		saved:      make(map[sessionGroup][]models.ClassSession),
		failGroups: make(map[sessionGroup]bool),
	}
}

func (f *fakeSessionStorer) GetSessionsByGroup(
	schoolID string, year, semester int, teacherID string, grade, classNumber int,
) ([]models.ClassSession, *res.ErrorRes) {
	return f.saved[sessionGroup{teacherID, grade, classNumber}], nil
}

func (f *fakeSessionStorer) GetSessionsByTeacherSubject(
	schoolID string, year, semester int, teacherID string, grade int, subject string,
) ([]models.ClassSession, *res.ErrorRes) {
	return f.bySubject, nil
}

func (f *fakeSessionStorer) ReplaceSessionGroup(
	schoolID string, year, semester int, teacherID string, grade, classNumber int,
	sessions []models.ClassSession,
) *res.ErrorRes {
	key := sessionGroup{teacherID, grade, classNumber}
	if f.failGroups[key] {
		return &res.ErrorRes{
			Err:        errors.New("write failed"),
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	f.saved[key] = sessions
	return nil
}

type fakeTemplateStorer struct {
	templates []models.LessonPlanTemplate
}

func (f *fakeTemplateStorer) GetTemplates(
	schoolID string, year, semester int, teacherID string, grade int, subject string,
	segment models.ExamSegment,
) ([]models.LessonPlanTemplate, *res.ErrorRes) {
	return f.templates, nil
}

func (f *fakeTemplateStorer) SaveTemplates(
	schoolID string, year, semester int, teacherID string, grade int, subject string,
	segment models.ExamSegment, templates []models.LessonPlanTemplate,
) *res.ErrorRes {
	f.templates = templates
	return nil
}

type fakeNotifier struct {
	subjects        []string
	payloads        [][]byte
	encodedSubjects []string
	encoded         []interface{}
}

func (f *fakeNotifier) Publish(subject string, data []byte) {
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
}

func (f *fakeNotifier) PublishEncode(subject string, data interface{}) error {
	f.encodedSubjects = append(f.encodedSubjects, subject)
	f.encoded = append(f.encoded, data)
	return nil
}

func newTestProcessor(
	schedules *fakeScheduleStorer,
	calendars *fakeCalendarStorer,
	sessions *fakeSessionStorer,
	templates *fakeTemplateStorer,
	notifier *fakeNotifier,
) *ProcessorService {
	return &ProcessorService{
		schedules:  schedules,
		calendars:  calendars,
		sessions:   sessions,
		templates:  templates,
		generator:  NewSessionsService(),
		commonPlan: NewCommonPlanService(),
		notifier:   notifier,
		logger:     zap.NewNop(),
	}
}

func TestProcessAllClassSessions(t *testing.T) {
	schedules := &fakeScheduleStorer{slots: testSlots()}
	calendars := &fakeCalendarStorer{calendar: testCalendar(fullTermEvents())}
	sessions := newFakeSessionStorer()
	notifier := &fakeNotifier{}
	processor := newTestProcessor(schedules, calendars, sessions, &fakeTemplateStorer{}, notifier)

	count, errRes := processor.ProcessAllClassSessions("school1", 2025, 1)
	if errRes != nil {
		t.Fatalf("unexpected error: %v", errRes.Err)
	}
	if count == 0 {
		t.Fatal("expected generated sessions")
	}
	// Two class groups of the same teacher
	if len(sessions.saved) != 2 {
		t.Fatalf("saved %d groups, want 2", len(sessions.saved))
	}
	class6 := sessions.saved[sessionGroup{"t1", 2, 6}]
	class7 := sessions.saved[sessionGroup{"t1", 2, 7}]
	if len(class6) == 0 || len(class7) == 0 {
		t.Fatal("both class groups must be saved")
	}
	if count != len(class6)+len(class7) {
		t.Errorf("count = %d, want %d", count, len(class6)+len(class7))
	}
}

func TestProcessAllClassSessionsWithoutSchedules(t *testing.T) {
	processor := newTestProcessor(
		&fakeScheduleStorer{},
		&fakeCalendarStorer{calendar: testCalendar(fullTermEvents())},
		newFakeSessionStorer(),
		&fakeTemplateStorer{},
		&fakeNotifier{},
	)
	count, errRes := processor.ProcessAllClassSessions("school1", 2025, 1)
	if errRes != nil {
		t.Fatalf("unexpected error: %v", errRes.Err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestProcessAllClassSessionsWithoutCalendar(t *testing.T) {
	processor := newTestProcessor(
		&fakeScheduleStorer{slots: testSlots()},
		&fakeCalendarStorer{},
		newFakeSessionStorer(),
		&fakeTemplateStorer{},
		&fakeNotifier{},
	)
	count, errRes := processor.ProcessAllClassSessions("school1", 2025, 1)
	if errRes != nil {
		t.Fatalf("unexpected error: %v", errRes.Err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestProcessAllClassSessionsSkipsFailedGroup(t *testing.T) {
	sessions := newFakeSessionStorer()
	sessions.failGroups[sessionGroup{"t1", 2, 6}] = true
	processor := newTestProcessor(
		&fakeScheduleStorer{slots: testSlots()},
		&fakeCalendarStorer{calendar: testCalendar(fullTermEvents())},
		sessions,
		&fakeTemplateStorer{},
		&fakeNotifier{},
	)

	count, errRes := processor.ProcessAllClassSessions("school1", 2025, 1)
	if errRes != nil {
		t.Fatalf("a failed group must not fail the run: %v", errRes.Err)
	}
	if count == 0 {
		t.Error("generated sessions still count when a save fails")
	}
	if _, ok := sessions.saved[sessionGroup{"t1", 2, 6}]; ok {
		t.Error("the failed group must not be saved")
	}
	if _, ok := sessions.saved[sessionGroup{"t1", 2, 7}]; !ok {
		t.Error("the healthy group must be saved")
	}
}

func TestProcessAllClassSessionsNotifies(t *testing.T) {
	notifier := &fakeNotifier{}
	processor := newTestProcessor(
		&fakeScheduleStorer{slots: testSlots()},
		&fakeCalendarStorer{calendar: testCalendar(fullTermEvents())},
		newFakeSessionStorer(),
		&fakeTemplateStorer{},
		notifier,
	)

	count, _ := processor.ProcessAllClassSessions("school1", 2025, 1)
	if len(notifier.subjects) != 1 {
		t.Fatalf("published %d messages, want 1", len(notifier.subjects))
	}
	if notifier.subjects[0] != "notify/sessions" {
		t.Errorf("subject = %s", notifier.subjects[0])
	}

	var envelope struct {
		ID   string             `json:"id"`
		Data res.NotifySessions `json:"data"`
	}
	if err := json.Unmarshal(notifier.payloads[0], &envelope); err != nil {
		t.Fatalf("payload is no valid envelope: %v", err)
	}
	if envelope.ID == "" {
		t.Error("envelope id missing")
	}
	if envelope.Data.SchoolID != "school1" || envelope.Data.Count != count {
		t.Errorf("payload = %+v", envelope.Data)
	}
	if envelope.Data.Type != res.SESSIONS {
		t.Errorf("payload type = %s", envelope.Data.Type)
	}
}

func TestApplyLessonTemplateToClassSessions(t *testing.T) {
	sessions := newFakeSessionStorer()
	sessions.bySubject = []models.ClassSession{
		numberedSession(6, 1, models.SEGMENT_BEFORE_FIRST),
		numberedSession(6, 2, models.SEGMENT_BEFORE_FIRST),
		numberedSession(7, 1, models.SEGMENT_BEFORE_FIRST),
	}
	templates := &fakeTemplateStorer{templates: []models.LessonPlanTemplate{
		{Segment: models.SEGMENT_BEFORE_FIRST, SessionIndex: 1, Content: "판 구조론"},
	}}
	processor := newTestProcessor(
		&fakeScheduleStorer{},
		&fakeCalendarStorer{},
		sessions,
		templates,
		&fakeNotifier{},
	)

	errRes := processor.ApplyLessonTemplateToClassSessions(
		"school1", 2025, 1, "t1", 2, "지구과학Ⅰ",
		models.SEGMENT_BEFORE_FIRST, "자습",
	)
	if errRes != nil {
		t.Fatalf("unexpected error: %v", errRes.Err)
	}

	class6 := sessions.saved[sessionGroup{"t1", 2, 6}]
	class7 := sessions.saved[sessionGroup{"t1", 2, 7}]
	if len(class6) != 2 || len(class7) != 1 {
		t.Fatalf("saved %d and %d sessions, want 2 and 1", len(class6), len(class7))
	}
	if class6[0].Content != "판 구조론" {
		t.Errorf("class 6 session 1 content = %q", class6[0].Content)
	}
	// minCount is 1, so session 2 overflows into the extra content
	if class6[1].Content != "자습" {
		t.Errorf("class 6 session 2 content = %q", class6[1].Content)
	}
	if class7[0].Content != "판 구조론" {
		t.Errorf("class 7 session 1 content = %q", class7[0].Content)
	}
}

func TestApplyLessonTemplateNotifies(t *testing.T) {
	sessions := newFakeSessionStorer()
	sessions.bySubject = []models.ClassSession{
		numberedSession(6, 1, models.SEGMENT_BEFORE_FIRST),
		numberedSession(7, 1, models.SEGMENT_BEFORE_FIRST),
	}
	templates := &fakeTemplateStorer{templates: []models.LessonPlanTemplate{
		{Segment: models.SEGMENT_BEFORE_FIRST, SessionIndex: 1, Content: "판 구조론"},
	}}
	notifier := &fakeNotifier{}
	processor := newTestProcessor(
		&fakeScheduleStorer{},
		&fakeCalendarStorer{},
		sessions,
		templates,
		notifier,
	)

	errRes := processor.ApplyLessonTemplateToClassSessions(
		"school1", 2025, 1, "t1", 2, "지구과학Ⅰ",
		models.SEGMENT_BEFORE_FIRST, "",
	)
	if errRes != nil {
		t.Fatalf("unexpected error: %v", errRes.Err)
	}
	if len(notifier.encodedSubjects) != 1 {
		t.Fatalf("published %d messages, want 1", len(notifier.encodedSubjects))
	}
	if notifier.encodedSubjects[0] != "notify/plan" {
		t.Errorf("subject = %s", notifier.encodedSubjects[0])
	}

	raw, err := json.Marshal(notifier.encoded[0])
	if err != nil {
		t.Fatal(err)
	}
	var envelope struct {
		ID   string             `json:"id"`
		Data res.NotifySessions `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("payload is no valid envelope: %v", err)
	}
	if envelope.ID == "" {
		t.Error("envelope id missing")
	}
	// Both class sections were updated
	if envelope.Data.SchoolID != "school1" || envelope.Data.Count != 2 {
		t.Errorf("payload = %+v", envelope.Data)
	}
	if envelope.Data.Type != res.PLAN {
		t.Errorf("payload type = %s", envelope.Data.Type)
	}
}

func TestApplyLessonTemplateWithoutSessions(t *testing.T) {
	sessions := newFakeSessionStorer()
	processor := newTestProcessor(
		&fakeScheduleStorer{},
		&fakeCalendarStorer{},
		sessions,
		&fakeTemplateStorer{},
		&fakeNotifier{},
	)
	errRes := processor.ApplyLessonTemplateToClassSessions(
		"school1", 2025, 1, "t1", 2, "지구과학Ⅰ",
		models.SEGMENT_BEFORE_FIRST, "",
	)
	if errRes != nil {
		t.Fatalf("unexpected error: %v", errRes.Err)
	}
	if len(sessions.saved) != 0 {
		t.Error("nothing should be written without stored sessions")
	}
}

func TestApplyLessonTemplateWithoutTemplates(t *testing.T) {
	sessions := newFakeSessionStorer()
	sessions.bySubject = []models.ClassSession{
		numberedSession(6, 1, models.SEGMENT_BEFORE_FIRST),
	}
	processor := newTestProcessor(
		&fakeScheduleStorer{},
		&fakeCalendarStorer{},
		sessions,
		&fakeTemplateStorer{},
		&fakeNotifier{},
	)
	errRes := processor.ApplyLessonTemplateToClassSessions(
		"school1", 2025, 1, "t1", 2, "지구과학Ⅰ",
		models.SEGMENT_BEFORE_FIRST, "",
	)
	if errRes != nil {
		t.Fatalf("unexpected error: %v", errRes.Err)
	}
	if len(sessions.saved) != 0 {
		t.Error("no templates means nothing to apply")
	}
}
