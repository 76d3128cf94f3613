package repositories

import (
	"net/http"

	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TemplateStorer loads and persists lesson plan templates.
type TemplateStorer interface {
	GetTemplates(
		schoolID string,
		year,
		semester int,
		teacherID string,
		grade int,
		subject string,
		segment models.ExamSegment,
	) ([]models.LessonPlanTemplate, *res.ErrorRes)
	SaveTemplates(
		schoolID string,
		year,
		semester int,
		teacherID string,
		grade int,
		subject string,
		segment models.ExamSegment,
		templates []models.LessonPlanTemplate,
	) *res.ErrorRes
}

type LessonPlanRepository struct{}

// GetTemplates returns the rows ordered by session index. An empty segment
// matches every segment of the subject.
func (l *LessonPlanRepository) GetTemplates(
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade int,
	subject string,
	segment models.ExamSegment,
) ([]models.LessonPlanTemplate, *res.ErrorRes) {
	var templates []models.LessonPlanTemplate

	filter := bson.D{
		{Key: "school_id", Value: schoolID},
		{Key: "year", Value: year},
		{Key: "semester", Value: semester},
		{Key: "teacher_id", Value: teacherID},
		{Key: "grade", Value: grade},
		{Key: "subject", Value: subject},
	}
	if segment != "" {
		filter = append(filter, bson.E{Key: "segment", Value: segment})
	}
	cursor, err := lessonPlanModel.GetAll(filter, options.Find().SetSort(bson.D{
		{Key: "segment", Value: 1},
		{Key: "session_index", Value: 1},
	}))
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &templates); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return templates, nil
}

// SaveTemplates rewrites the segment of the plan. An empty slice clears it.
func (l *LessonPlanRepository) SaveTemplates(
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade int,
	subject string,
	segment models.ExamSegment,
	templates []models.LessonPlanTemplate,
) *res.ErrorRes {
	filter := bson.D{
		{Key: "school_id", Value: schoolID},
		{Key: "year", Value: year},
		{Key: "semester", Value: semester},
		{Key: "teacher_id", Value: teacherID},
		{Key: "grade", Value: grade},
		{Key: "subject", Value: subject},
		{Key: "segment", Value: segment},
	}
	if _, err := lessonPlanModel.DeleteMany(filter); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if len(templates) == 0 {
		return nil
	}
	documents := make([]interface{}, len(templates))
	for i, template := range templates {
		template.SchoolID = schoolID
		template.Year = year
		template.Semester = semester
		template.TeacherID = teacherID
		template.Grade = grade
		template.Subject = subject
		template.Segment = segment
		documents[i] = template
	}
	if _, err := lessonPlanModel.NewDocuments(documents); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}

func NewLessonPlanRepository() *LessonPlanRepository {
	return &LessonPlanRepository{}
}
