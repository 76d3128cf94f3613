package services

import (
	"fmt"
	"net/http"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
)

type LessonPlanService struct {
	commonPlan *CommonPlanService
}

func validSegment(segment models.ExamSegment) bool {
	switch segment {
	case models.SEGMENT_BEFORE_FIRST,
		models.SEGMENT_BETWEEN_FIRST_SECOND,
		models.SEGMENT_AFTER_SECOND:
		return true
	}
	return false
}

// GetTemplates returns the template rows of a teacher/grade/subject. An empty
// segment returns every segment.
func (l *LessonPlanService) GetTemplates(
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade int,
	subject string,
	segment models.ExamSegment,
) ([]models.LessonPlanTemplate, *res.ErrorRes) {
	if segment != "" && !validSegment(segment) {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("잘못된 구간입니다: %s", segment),
			StatusCode: http.StatusBadRequest,
		}
	}
	return lessonPlanRepository.GetTemplates(
		schoolID,
		year,
		semester,
		teacherID,
		grade,
		subject,
		segment,
	)
}

// SaveTemplates rewrites the template rows of one segment. An empty list
// clears the segment.
func (l *LessonPlanService) SaveTemplates(
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade int,
	subject string,
	segment models.ExamSegment,
	templates []models.LessonPlanTemplate,
) *res.ErrorRes {
	if !validSegment(segment) {
		return &res.ErrorRes{
			Err:        fmt.Errorf("잘못된 구간입니다: %s", segment),
			StatusCode: http.StatusBadRequest,
		}
	}
	for _, template := range templates {
		if template.SessionIndex < 1 {
			return &res.ErrorRes{
				Err:        fmt.Errorf("회차는 1 이상이어야 합니다: %d", template.SessionIndex),
				StatusCode: http.StatusBadRequest,
			}
		}
	}
	return lessonPlanRepository.SaveTemplates(
		schoolID,
		year,
		semester,
		teacherID,
		grade,
		subject,
		segment,
		templates,
	)
}

// AnalyzeCommonPlan loads the stored sessions of a teacher/grade/subject and
// reports whether one plan can cover all its class sections in the segment.
func (l *LessonPlanService) AnalyzeCommonPlan(
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade int,
	subject string,
	segment models.ExamSegment,
) (*CommonPlanAnalysis, *res.ErrorRes) {
	if !validSegment(segment) {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("잘못된 구간입니다: %s", segment),
			StatusCode: http.StatusBadRequest,
		}
	}
	sessions, errRes := classSessionRepository.GetSessionsByTeacherSubject(
		schoolID,
		year,
		semester,
		teacherID,
		grade,
		subject,
	)
	if errRes != nil {
		return nil, errRes
	}
	analysis := l.commonPlan.AnalyzeCommonPlanForSegment(sessions, segment)
	return &analysis, nil
}

func NewLessonPlanService() *LessonPlanService {
	return &LessonPlanService{
		commonPlan: NewCommonPlanService(),
	}
}
