package services

import (
	"reflect"
	"testing"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
)

func numberedSession(classNumber, number int, segment models.ExamSegment) models.ClassSession {
	return models.ClassSession{
		ClassNumber:   classNumber,
		SessionNumber: intPtr(number),
		Segment:       segment,
	}
}

func TestAnalyzeCommonPlanMinAcrossClasses(t *testing.T) {
	service := NewCommonPlanService()
	sessions := []models.ClassSession{
		numberedSession(6, 1, models.SEGMENT_BEFORE_FIRST),
		numberedSession(6, 2, models.SEGMENT_BEFORE_FIRST),
		numberedSession(6, 3, models.SEGMENT_BEFORE_FIRST),
		numberedSession(7, 1, models.SEGMENT_BEFORE_FIRST),
		numberedSession(7, 2, models.SEGMENT_BEFORE_FIRST),
		// Other segment, must not count
		numberedSession(7, 9, models.SEGMENT_BETWEEN_FIRST_SECOND),
	}

	analysis := service.AnalyzeCommonPlanForSegment(sessions, models.SEGMENT_BEFORE_FIRST)
	if !analysis.CanUseCommonPlan {
		t.Fatal("expected a usable common plan")
	}
	if analysis.MinCount == nil || *analysis.MinCount != 2 {
		t.Errorf("MinCount = %v, want 2", analysis.MinCount)
	}
	if !reflect.DeepEqual(analysis.ClassNumbers, []int{6, 7}) {
		t.Errorf("ClassNumbers = %v, want [6 7]", analysis.ClassNumbers)
	}
}

func TestAnalyzeCommonPlanSingleClass(t *testing.T) {
	service := NewCommonPlanService()
	sessions := []models.ClassSession{
		numberedSession(6, 1, models.SEGMENT_BEFORE_FIRST),
		numberedSession(6, 2, models.SEGMENT_BEFORE_FIRST),
	}
	analysis := service.AnalyzeCommonPlanForSegment(sessions, models.SEGMENT_BEFORE_FIRST)
	if !analysis.CanUseCommonPlan {
		t.Fatal("a single class section still takes a plan")
	}
	if analysis.MinCount == nil || *analysis.MinCount != 2 {
		t.Errorf("MinCount = %v, want 2", analysis.MinCount)
	}
}

func TestAnalyzeCommonPlanNoSessions(t *testing.T) {
	service := NewCommonPlanService()
	analysis := service.AnalyzeCommonPlanForSegment(nil, models.SEGMENT_BEFORE_FIRST)
	if analysis.CanUseCommonPlan {
		t.Error("no sessions cannot share a plan")
	}
	if analysis.MinCount != nil {
		t.Errorf("MinCount = %v, want nil", analysis.MinCount)
	}
	if len(analysis.ClassNumbers) != 0 {
		t.Errorf("ClassNumbers = %v, want empty", analysis.ClassNumbers)
	}
}

func TestAnalyzeCommonPlanNoNumberedSessionsInSegment(t *testing.T) {
	service := NewCommonPlanService()
	sessions := []models.ClassSession{
		numberedSession(6, 1, models.SEGMENT_BEFORE_FIRST),
		{ClassNumber: 7, Segment: models.SEGMENT_AFTER_SECOND},
	}
	analysis := service.AnalyzeCommonPlanForSegment(sessions, models.SEGMENT_AFTER_SECOND)
	if analysis.CanUseCommonPlan {
		t.Error("a segment without numbered sessions cannot take a plan")
	}
	if analysis.MinCount != nil {
		t.Errorf("MinCount = %v, want nil", analysis.MinCount)
	}
	if !reflect.DeepEqual(analysis.ClassNumbers, []int{6, 7}) {
		t.Errorf("ClassNumbers = %v, want [6 7]", analysis.ClassNumbers)
	}
}

func TestAnalyzeCommonPlanLegacyRows(t *testing.T) {
	service := NewCommonPlanService()
	// Rows without the segment field fall back to the before-first flag
	sessions := []models.ClassSession{
		{ClassNumber: 6, SessionNumber: intPtr(1), IsBeforeFirstTest: true},
		{ClassNumber: 6, SessionNumber: intPtr(2), IsBeforeFirstTest: true},
		{ClassNumber: 7, SessionNumber: intPtr(1), IsBeforeFirstTest: true},
	}
	analysis := service.AnalyzeCommonPlanForSegment(sessions, models.SEGMENT_BEFORE_FIRST)
	if !analysis.CanUseCommonPlan {
		t.Fatal("legacy rows should resolve through the before-first flag")
	}
	if analysis.MinCount == nil || *analysis.MinCount != 1 {
		t.Errorf("MinCount = %v, want 1", analysis.MinCount)
	}
}

func TestApplyTemplateToSessions(t *testing.T) {
	service := NewCommonPlanService()
	sessions := []models.ClassSession{
		numberedSession(6, 1, models.SEGMENT_BEFORE_FIRST),
		numberedSession(6, 2, models.SEGMENT_BEFORE_FIRST),
		numberedSession(6, 3, models.SEGMENT_BEFORE_FIRST),
		// Marker row, untouched
		{ClassNumber: 6, Segment: models.SEGMENT_BEFORE_FIRST, AcademicEvent: "1차 지필 시작"},
	}
	templates := []models.LessonPlanTemplate{
		{Segment: models.SEGMENT_BEFORE_FIRST, SessionIndex: 1, Content: "판 구조론"},
		{Segment: models.SEGMENT_BEFORE_FIRST, SessionIndex: 2, Content: "지질 시대"},
		// Other segment, must not apply
		{Segment: models.SEGMENT_AFTER_SECOND, SessionIndex: 3, Content: "기말 복습"},
	}

	updated := service.ApplyTemplateToSessions(
		sessions, models.SEGMENT_BEFORE_FIRST, templates, 2, "자습",
	)

	if updated[0].Content != "판 구조론" {
		t.Errorf("session 1 content = %q", updated[0].Content)
	}
	if updated[1].Content != "지질 시대" {
		t.Errorf("session 2 content = %q", updated[1].Content)
	}
	// Past minCount the extra content applies
	if updated[2].Content != "자습" {
		t.Errorf("session 3 content = %q, want 자습", updated[2].Content)
	}
	if updated[3].Content != "" {
		t.Errorf("marker row content = %q, want empty", updated[3].Content)
	}
	// Input stays untouched
	if sessions[0].Content != "" {
		t.Error("input slice was modified")
	}
}

func TestApplyTemplateNoExtraContent(t *testing.T) {
	service := NewCommonPlanService()
	sessions := []models.ClassSession{
		numberedSession(6, 3, models.SEGMENT_BEFORE_FIRST),
	}
	sessions[0].Content = "기존 내용"
	updated := service.ApplyTemplateToSessions(
		sessions, models.SEGMENT_BEFORE_FIRST, nil, 2, "",
	)
	if updated[0].Content != "기존 내용" {
		t.Errorf("content = %q, existing content must survive", updated[0].Content)
	}
}

func TestApplyTemplateMissingTemplateRow(t *testing.T) {
	service := NewCommonPlanService()
	sessions := []models.ClassSession{
		numberedSession(6, 1, models.SEGMENT_BEFORE_FIRST),
		numberedSession(6, 2, models.SEGMENT_BEFORE_FIRST),
	}
	sessions[1].Content = "기존 내용"
	templates := []models.LessonPlanTemplate{
		{Segment: models.SEGMENT_BEFORE_FIRST, SessionIndex: 1, Content: "판 구조론"},
	}
	updated := service.ApplyTemplateToSessions(
		sessions, models.SEGMENT_BEFORE_FIRST, templates, 2, "자습",
	)
	if updated[0].Content != "판 구조론" {
		t.Errorf("session 1 content = %q", updated[0].Content)
	}
	// No template row for the number inside minCount: nothing written
	if updated[1].Content != "기존 내용" {
		t.Errorf("session 2 content = %q", updated[1].Content)
	}
}

func TestApplyTemplateZeroMinCount(t *testing.T) {
	service := NewCommonPlanService()
	sessions := []models.ClassSession{
		numberedSession(6, 1, models.SEGMENT_BEFORE_FIRST),
	}
	templates := []models.LessonPlanTemplate{
		{Segment: models.SEGMENT_BEFORE_FIRST, SessionIndex: 1, Content: "판 구조론"},
	}
	updated := service.ApplyTemplateToSessions(
		sessions, models.SEGMENT_BEFORE_FIRST, templates, 0, "자습",
	)
	if !reflect.DeepEqual(updated, sessions) {
		t.Error("zero minCount must return the sessions unchanged")
	}
}

func TestApplyTemplateToSessionsIdempotent(t *testing.T) {
	service := NewCommonPlanService()
	sessions := []models.ClassSession{
		numberedSession(6, 1, models.SEGMENT_BEFORE_FIRST),
		numberedSession(6, 2, models.SEGMENT_BEFORE_FIRST),
		numberedSession(6, 3, models.SEGMENT_BEFORE_FIRST),
		numberedSession(7, 1, models.SEGMENT_BEFORE_FIRST),
		numberedSession(7, 2, models.SEGMENT_BEFORE_FIRST),
	}
	templates := []models.LessonPlanTemplate{
		{Segment: models.SEGMENT_BEFORE_FIRST, SessionIndex: 1, Content: "판 구조론"},
		{Segment: models.SEGMENT_BEFORE_FIRST, SessionIndex: 2, Content: "지진파"},
	}

	once := service.ApplyTemplateToSessions(
		sessions, models.SEGMENT_BEFORE_FIRST, templates, 2, "자습",
	)
	twice := service.ApplyTemplateToSessions(
		once, models.SEGMENT_BEFORE_FIRST, templates, 2, "자습",
	)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second apply changed the sessions:\nonce  = %+v\ntwice = %+v", once, twice)
	}
	// The overflow row already carries the extra content after the first pass
	if once[2].Content != "자습" {
		t.Errorf("session 3 content = %q", once[2].Content)
	}
}
