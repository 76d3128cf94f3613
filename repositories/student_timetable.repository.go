package repositories

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrAmbiguousStudent = errors.New("student code matches more than one student")

// StudentTimetableStorer loads and persists per-student timetable rows.
type StudentTimetableStorer interface {
	ReplaceStudentTimetables(
		schoolID string,
		year,
		semester int,
		rows []models.StudentTimetableRow,
	) (int, *res.ErrorRes)
	GetByStudentCode(
		schoolID string,
		year,
		semester int,
		studentCode string,
	) ([]models.StudentTimetableRow, *res.ErrorRes)
}

type StudentTimetableRepository struct{}

// ReplaceStudentTimetables swaps every row of the school term. Rows sharing
// (studentCode, day, period) collapse to the last one seen. Returns how many
// rows were stored.
func (s *StudentTimetableRepository) ReplaceStudentTimetables(
	schoolID string,
	year,
	semester int,
	rows []models.StudentTimetableRow,
) (int, *res.ErrorRes) {
	filter := bson.D{
		{Key: "school_id", Value: schoolID},
		{Key: "year", Value: year},
		{Key: "semester", Value: semester},
	}
	if _, err := studentTimetableModel.DeleteMany(filter); err != nil {
		return 0, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	seen := make(map[string]int)
	var documents []interface{}
	for _, row := range rows {
		row.SchoolID = schoolID
		row.Year = year
		row.Semester = semester
		key := fmt.Sprintf("%s/%d/%d", row.StudentCode, row.DayOfWeek, row.Period)
		if at, ok := seen[key]; ok {
			documents[at] = row
			continue
		}
		seen[key] = len(documents)
		documents = append(documents, row)
	}
	if len(documents) == 0 {
		return 0, nil
	}
	if _, err := studentTimetableModel.NewDocuments(documents); err != nil {
		return 0, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return len(documents), nil
}

// GetByStudentCode accepts either the full five digit code or a trailing
// fragment of it. A fragment that resolves to more than one student is
// rejected rather than silently picking one.
func (s *StudentTimetableRepository) GetByStudentCode(
	schoolID string,
	year,
	semester int,
	studentCode string,
) ([]models.StudentTimetableRow, *res.ErrorRes) {
	var rows []models.StudentTimetableRow

	filter := bson.D{
		{Key: "school_id", Value: schoolID},
		{Key: "year", Value: year},
		{Key: "semester", Value: semester},
	}
	if len(studentCode) >= 5 {
		filter = append(filter, bson.E{Key: "student_code", Value: studentCode})
	} else {
		filter = append(filter, bson.E{
			Key: "student_code",
			Value: bson.M{
				"$regex": primitive.Regex{Pattern: fmt.Sprintf("%s$", studentCode)},
			},
		})
	}
	cursor, err := studentTimetableModel.GetAll(filter, options.Find().SetSort(bson.D{
		{Key: "day_of_week", Value: 1},
		{Key: "period", Value: 1},
	}))
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &rows); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	distinct := make(map[string]struct{})
	for _, row := range rows {
		distinct[row.StudentCode] = struct{}{}
	}
	if len(distinct) > 1 {
		return nil, &res.ErrorRes{
			Err:        ErrAmbiguousStudent,
			StatusCode: http.StatusConflict,
		}
	}
	return rows, nil
}

func NewStudentTimetableRepository() *StudentTimetableRepository {
	return &StudentTimetableRepository{}
}
