package services

import (
	"sort"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
)

// CommonPlanAnalysis reports whether one lesson plan can cover every class
// section of a teacher/grade/subject in an exam segment, and with how many
// sessions.
type CommonPlanAnalysis struct {
	CanUseCommonPlan bool  `json:"can_use_common_plan"`
	MinCount         *int  `json:"min_count"`
	ClassNumbers     []int `json:"class_numbers"`
}

type CommonPlanService struct{}

// AnalyzeCommonPlanForSegment expects sessions of a single
// school/year/semester/teacher/grade/subject, across any number of class
// sections. The common plan length is the smallest of the per-class maximum
// session numbers inside the segment. Marker rows and non-class rows carry no
// session number and never count.
func (c *CommonPlanService) AnalyzeCommonPlanForSegment(
	sessions []models.ClassSession,
	segment models.ExamSegment,
) CommonPlanAnalysis {
	classSet := make(map[int]struct{})
	for _, session := range sessions {
		if session.ClassNumber == 0 {
			continue
		}
		classSet[session.ClassNumber] = struct{}{}
	}
	classNumbers := make([]int, 0, len(classSet))
	for classNumber := range classSet {
		classNumbers = append(classNumbers, classNumber)
	}
	sort.Ints(classNumbers)

	if len(classNumbers) == 0 {
		return CommonPlanAnalysis{
			CanUseCommonPlan: false,
			MinCount:         nil,
			ClassNumbers:     classNumbers,
		}
	}

	maxByClass := make(map[int]int)
	for _, session := range sessions {
		if !session.InSegment(segment) ||
			session.ClassNumber == 0 ||
			session.SessionNumber == nil {
			continue
		}
		if *session.SessionNumber > maxByClass[session.ClassNumber] {
			maxByClass[session.ClassNumber] = *session.SessionNumber
		}
	}

	// No numbered session of any class fell inside the segment
	if len(maxByClass) == 0 {
		return CommonPlanAnalysis{
			CanUseCommonPlan: false,
			MinCount:         nil,
			ClassNumbers:     classNumbers,
		}
	}

	minCount := 0
	for _, maxCount := range maxByClass {
		if minCount == 0 || maxCount < minCount {
			minCount = maxCount
		}
	}
	return CommonPlanAnalysis{
		CanUseCommonPlan: true,
		MinCount:         intPtr(minCount),
		ClassNumbers:     classNumbers,
	}
}

// ApplyTemplateToSessions writes the template contents into the numbered
// sessions of the segment, matching template rows to sessions by session
// number. Sessions past minCount get extraContent when it is non-empty and
// are left alone otherwise. The input slice is not modified.
func (c *CommonPlanService) ApplyTemplateToSessions(
	sessions []models.ClassSession,
	segment models.ExamSegment,
	templates []models.LessonPlanTemplate,
	minCount int,
	extraContent string,
) []models.ClassSession {
	updated := make([]models.ClassSession, len(sessions))
	copy(updated, sessions)
	if minCount <= 0 {
		return updated
	}

	templateByIndex := make(map[int]models.LessonPlanTemplate)
	for _, template := range templates {
		if template.Segment != segment || template.SessionIndex < 1 {
			continue
		}
		templateByIndex[template.SessionIndex] = template
	}

	for idx, session := range sessions {
		if session.ClassNumber == 0 ||
			!session.InSegment(segment) ||
			session.SessionNumber == nil ||
			*session.SessionNumber <= 0 {
			continue
		}
		n := *session.SessionNumber
		if n <= minCount {
			if template, ok := templateByIndex[n]; ok {
				updated[idx].Content = template.Content
			}
			continue
		}
		if extraContent != "" {
			updated[idx].Content = extraContent
		}
	}
	return updated
}

func NewCommonPlanService() *CommonPlanService {
	return &CommonPlanService{}
}
