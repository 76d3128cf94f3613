package services

import (
	"sort"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/repositories"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"go.uber.org/zap"
)

type sessionsNotifier interface {
	Publish(subject string, data []byte)
	PublishEncode(subject string, data interface{}) error
}

type scheduleGroupKey struct {
	TeacherID   string
	Grade       int
	ClassNumber int
}

// ProcessorService regenerates the class sessions of a whole school term
// from the teacher timetables and the academic calendar.
type ProcessorService struct {
	schedules  repositories.ScheduleStorer
	calendars  repositories.CalendarStorer
	sessions   repositories.SessionStorer
	templates  repositories.TemplateStorer
	generator  *SessionsService
	commonPlan *CommonPlanService
	notifier   sessionsNotifier
	logger     *zap.Logger
}

// ProcessAllClassSessions regenerates every teacher/grade/class group of the
// term sequentially. A group that fails to persist is logged and skipped so
// one broken group cannot block the rest. Returns the number of sessions
// generated. Without timetables or without a calendar there is nothing to
// process and the count is zero.
func (p *ProcessorService) ProcessAllClassSessions(
	schoolID string,
	year,
	semester int,
) (int, *res.ErrorRes) {
	schedules, errRes := p.schedules.GetSchedules(schoolID, year, semester)
	if errRes != nil {
		return 0, errRes
	}
	if len(schedules) == 0 {
		return 0, nil
	}
	calendar, errRes := p.calendars.GetCalendar(schoolID, year, semester)
	if errRes != nil {
		return 0, errRes
	}
	if calendar == nil {
		return 0, nil
	}

	groups := make(map[scheduleGroupKey][]models.ClassScheduleSlot)
	for _, schedule := range schedules {
		key := scheduleGroupKey{
			TeacherID:   schedule.TeacherID,
			Grade:       schedule.Grade,
			ClassNumber: schedule.ClassNumber,
		}
		groups[key] = append(groups[key], schedule)
	}
	keys := make([]scheduleGroupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].TeacherID != keys[j].TeacherID {
			return keys[i].TeacherID < keys[j].TeacherID
		}
		if keys[i].Grade != keys[j].Grade {
			return keys[i].Grade < keys[j].Grade
		}
		return keys[i].ClassNumber < keys[j].ClassNumber
	})

	totalSessions := 0
	for _, key := range keys {
		groupSchedules := groups[key]

		classSessions := p.generator.GenerateSessions(
			key.TeacherID,
			key.Grade,
			key.ClassNumber,
			year,
			semester,
			groupSchedules,
			calendar,
		)
		if len(classSessions) == 0 {
			continue
		}
		totalSessions += len(classSessions)

		if errRes := p.sessions.ReplaceSessionGroup(
			schoolID,
			year,
			semester,
			key.TeacherID,
			key.Grade,
			key.ClassNumber,
			classSessions,
		); errRes != nil {
			// Keep going, the other groups are independent
			p.logger.Error(
				"failed to save class sessions group",
				zap.String("teacherId", key.TeacherID),
				zap.Int("grade", key.Grade),
				zap.Int("classNumber", key.ClassNumber),
				zap.Error(errRes.Err),
			)
			continue
		}
	}

	p.notifySessions(schoolID, year, semester, totalSessions)
	return totalSessions, nil
}

func (p *ProcessorService) notifySessions(schoolID string, year, semester, count int) {
	if p.notifier == nil {
		return
	}
	data, err := formatRequestToNestjsNats(res.NotifySessions{
		Title:    "수업 회차가 생성되었습니다",
		SchoolID: schoolID,
		Year:     year,
		Semester: semester,
		Count:    count,
		Type:     res.SESSIONS,
	})
	if err != nil {
		p.logger.Error("failed to encode notify payload", zap.Error(err))
		return
	}
	p.notifier.Publish("notify/sessions", data)
}

func (p *ProcessorService) notifyPlanApplied(schoolID string, year, semester, count int) {
	if p.notifier == nil {
		return
	}
	request, err := nestjsNatsRequest(res.NotifySessions{
		Title:    "공통 수업 계획이 적용되었습니다",
		SchoolID: schoolID,
		Year:     year,
		Semester: semester,
		Count:    count,
		Type:     res.PLAN,
	})
	if err != nil {
		p.logger.Error("failed to encode notify payload", zap.Error(err))
		return
	}
	if err := p.notifier.PublishEncode("notify/plan", request); err != nil {
		p.logger.Error("failed to publish notify payload", zap.Error(err))
	}
}

// ApplyLessonTemplateToClassSessions pushes the common lesson plan of a
// teacher/grade/subject into the stored sessions of every class section.
// Nothing happens when the sections cannot share a plan or no template rows
// exist for the segment.
func (p *ProcessorService) ApplyLessonTemplateToClassSessions(
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade int,
	subject string,
	segment models.ExamSegment,
	extraContent string,
) *res.ErrorRes {
	sessions, errRes := p.sessions.GetSessionsByTeacherSubject(
		schoolID,
		year,
		semester,
		teacherID,
		grade,
		subject,
	)
	if errRes != nil {
		return errRes
	}
	if len(sessions) == 0 {
		return nil
	}

	analysis := p.commonPlan.AnalyzeCommonPlanForSegment(sessions, segment)
	if !analysis.CanUseCommonPlan || analysis.MinCount == nil {
		return nil
	}

	templates, errRes := p.templates.GetTemplates(
		schoolID,
		year,
		semester,
		teacherID,
		grade,
		subject,
		segment,
	)
	if errRes != nil {
		return errRes
	}
	if len(templates) == 0 {
		return nil
	}

	updated := p.commonPlan.ApplyTemplateToSessions(
		sessions,
		segment,
		templates,
		*analysis.MinCount,
		extraContent,
	)

	sessionsByClass := make(map[int][]models.ClassSession)
	for _, session := range updated {
		if session.ClassNumber == 0 {
			continue
		}
		sessionsByClass[session.ClassNumber] = append(
			sessionsByClass[session.ClassNumber],
			session,
		)
	}
	classNumbers := make([]int, 0, len(sessionsByClass))
	for classNumber := range sessionsByClass {
		classNumbers = append(classNumbers, classNumber)
	}
	sort.Ints(classNumbers)

	for _, classNumber := range classNumbers {
		if errRes := p.sessions.ReplaceSessionGroup(
			schoolID,
			year,
			semester,
			teacherID,
			grade,
			classNumber,
			sessionsByClass[classNumber],
		); errRes != nil {
			return errRes
		}
	}

	p.notifyPlanApplied(schoolID, year, semester, len(classNumbers))
	return nil
}

func NewProcessorService() *ProcessorService {
	logger, _ := zap.NewProduction()
	return &ProcessorService{
		schedules:  scheduleRepository,
		calendars:  calendarRepository,
		sessions:   classSessionRepository,
		templates:  lessonPlanRepository,
		generator:  NewSessionsService(),
		commonPlan: NewCommonPlanService(),
		notifier:   nats,
		logger:     logger,
	}
}
