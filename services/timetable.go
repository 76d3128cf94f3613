package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/parser"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"go.uber.org/zap"
)

// scheduleArchiveKey is the fixed S3 key of the last uploaded timetable of a
// school term, overwritten on every upload.
func scheduleArchiveKey(schoolID string, year, semester int) string {
	return fmt.Sprintf(
		"lessonplan/uploads/%s/%d-%d/teacher_timetable.xlsx",
		schoolID,
		year,
		semester,
	)
}

type TimetableService struct {
	logger *zap.Logger
}

func (t *TimetableService) GetSchedules(
	schoolID string,
	year,
	semester int,
) ([]models.ClassScheduleSlot, *res.ErrorRes) {
	return scheduleRepository.GetSchedules(schoolID, year, semester)
}

func (t *TimetableService) GetTeacherSchedules(
	schoolID string,
	year,
	semester int,
	teacherID string,
) ([]models.ClassScheduleSlot, *res.ErrorRes) {
	return scheduleRepository.GetTeacherSchedules(schoolID, year, semester, teacherID)
}

func validateSlot(slot models.ClassScheduleSlot) error {
	if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
		return fmt.Errorf("잘못된 요일입니다: %d", slot.DayOfWeek)
	}
	if slot.Period < 1 || slot.Period > 7 {
		return fmt.Errorf("잘못된 교시입니다: %d", slot.Period)
	}
	if slot.TeacherID == "" {
		return fmt.Errorf("교사 정보가 없습니다")
	}
	return nil
}

// SaveSchedules replaces the whole timetable of the school term.
func (t *TimetableService) SaveSchedules(
	schoolID string,
	year,
	semester int,
	slots []models.ClassScheduleSlot,
) *res.ErrorRes {
	for _, slot := range slots {
		if err := validateSlot(slot); err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusBadRequest,
			}
		}
	}
	return scheduleRepository.ReplaceSchedules(schoolID, year, semester, slots)
}

// UploadSchedules parses a NEIS teacher timetable spreadsheet and replaces
// the stored timetable of the term with it. The original file goes to S3 for
// audit, a failed upload does not fail the request. Returns the slot count.
func (t *TimetableService) UploadSchedules(
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

	slots, err := parser.ParseTeacherTimetable(opened)
	if err != nil {
		return 0, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	if errRes := scheduleRepository.ReplaceSchedules(schoolID, year, semester, slots); errRes != nil {
		return 0, errRes
	}

	go func() {
		reopened, err := file.Open()
		if err != nil {
			t.logger.Error("failed to archive timetable file", zap.Error(err))
			return
		}
		defer reopened.Close()
		data, err := io.ReadAll(reopened)
		if err != nil {
			t.logger.Error("failed to archive timetable file", zap.Error(err))
			return
		}
		key := scheduleArchiveKey(schoolID, year, semester)
		if _, err := aws.UploadBytes(key, data); err != nil {
			t.logger.Error("failed to archive timetable file", zap.Error(err))
		}
	}()
	return len(slots), nil
}

// DownloadScheduleArchive returns the last uploaded timetable spreadsheet of
// the school term.
func (t *TimetableService) DownloadScheduleArchive(
	schoolID string,
	year,
	semester int,
) ([]byte, *res.ErrorRes) {
	data, err := aws.GetFile(scheduleArchiveKey(schoolID, year, semester))
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("업로드된 시간표 파일이 없습니다"),
			StatusCode: http.StatusNotFound,
		}
	}
	return data, nil
}

// DeleteSchedules clears the whole timetable of the school term together
// with its archived source file.
func (t *TimetableService) DeleteSchedules(
	schoolID string,
	year,
	semester int,
) *res.ErrorRes {
	if errRes := scheduleRepository.ReplaceSchedules(schoolID, year, semester, nil); errRes != nil {
		return errRes
	}
	go func() {
		if err := aws.DeleteFile(scheduleArchiveKey(schoolID, year, semester)); err != nil {
			t.logger.Error("failed to delete timetable archive", zap.Error(err))
		}
	}()
	return nil
}

func NewTimetableService() *TimetableService {
	logger, _ := zap.NewProduction()
	return &TimetableService{
		logger: logger,
	}
}
