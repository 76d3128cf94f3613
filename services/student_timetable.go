package services

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"regexp"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/parser"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"go.uber.org/zap"
)

var studentCodeRegex = regexp.MustCompile(`^\d{1,5}$`)

type StudentTimetableService struct {
	logger *zap.Logger
}

// UploadStudentTimetables parses a NEIS per-student timetable spreadsheet and
// replaces the stored rows of the school term. Returns how many rows were
// stored after deduplication.
func (s *StudentTimetableService) UploadStudentTimetables(
	schoolID string,
	year,
	semester int,
	file *multipart.FileHeader,
) (int, *res.ErrorRes) {
	opened, err := file.Open()
	if err != nil {
		return 0, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	defer opened.Close()

	rows, err := parser.ParseStudentTimetable(opened)
	if err != nil {
		return 0, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	count, errRes := studentTimetableRepository.ReplaceStudentTimetables(
		schoolID,
		year,
		semester,
		rows,
	)
	if errRes != nil {
		return 0, errRes
	}

	go func() {
		if _, err := aws.UploadFile(file); err != nil {
			s.logger.Error("failed to archive student timetable file", zap.Error(err))
		}
	}()
	return count, nil
}

// GetStudentTimetable looks a student up by the full five digit code
// (grade + class + number, e.g. "30601") or a trailing fragment of it.
func (s *StudentTimetableService) GetStudentTimetable(
	schoolID string,
	year,
	semester int,
	studentCode string,
) ([]models.StudentTimetableRow, *res.ErrorRes) {
	if !studentCodeRegex.MatchString(studentCode) {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("잘못된 학생 코드입니다: %s", studentCode),
			StatusCode: http.StatusBadRequest,
		}
	}
	return studentTimetableRepository.GetByStudentCode(schoolID, year, semester, studentCode)
}

func NewStudentTimetableService() *StudentTimetableService {
	logger, _ := zap.NewProduction()
	return &StudentTimetableService{
		logger: logger,
	}
}
