package services

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"github.com/KR-EduLab/Intranet_BLessonPlan/utils"
	"github.com/jung-kurt/gofpdf"
	"github.com/klauspost/compress/zip"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var sessionSheetHeaders = []string{"날짜", "요일", "교시", "회차", "구간", "수업내용", "학사일정"}

type ExportService struct {
	logger *zap.Logger
}

func sessionNumberCell(session models.ClassSession) interface{} {
	if session.SessionNumber == nil {
		return ""
	}
	return *session.SessionNumber
}

func writeSessionsSheet(
	file *excelize.File,
	sheetName string,
	sessions []models.ClassSession,
) error {
	for i, header := range sessionSheetHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		file.SetCellValue(sheetName, cell, header)
	}
	for i, session := range sessions {
		row := i + 2
		values := []interface{}{
			session.Date,
			session.DayOfWeek,
			session.Period,
			sessionNumberCell(session),
			string(session.Segment),
			session.Content,
			session.AcademicEvent,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return err
			}
			file.SetCellValue(sheetName, cell, value)
		}
	}
	return nil
}

func buildSessionsFile(
	sheetName string,
	sessions []models.ClassSession,
) (*excelize.File, error) {
	file := excelize.NewFile()
	file.SetSheetName("Sheet1", sheetName)
	if err := writeSessionsSheet(file, sheetName, sessions); err != nil {
		return nil, err
	}
	return file, nil
}

// ExportSessionsXlsx writes the plan of one teacher/grade/class group as an
// xlsx spreadsheet.
func (e *ExportService) ExportSessionsXlsx(
	w io.Writer,
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade,
	classNumber int,
) *res.ErrorRes {
	sessions, errRes := classSessionRepository.GetSessionsByGroup(
		schoolID,
		year,
		semester,
		teacherID,
		grade,
		classNumber,
	)
	if errRes != nil {
		return errRes
	}
	sheetName := fmt.Sprintf("%d학년 %d반", grade, classNumber)
	file, err := buildSessionsFile(sheetName, sessions)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	if err := file.Write(w); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

// ExportSessionsPdf writes the plan of one group as a landscape A4 table.
func (e *ExportService) ExportSessionsPdf(
	w io.Writer,
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade,
	classNumber int,
) *res.ErrorRes {
	sessions, errRes := classSessionRepository.GetSessionsByGroup(
		schoolID,
		year,
		semester,
		teacherID,
		grade,
		classNumber,
	)
	if errRes != nil {
		return errRes
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddUTF8Font("nanum_utf8", "", "./fonts/NanumGothic.ttf")
	defer pdf.Close()

	pdf.SetFont("nanum_utf8", "", 10)
	pdf.AddPage()

	title := fmt.Sprintf(
		"%s %d학년도 %d학기 %d학년 %d반 수업 계획",
		settingsData.SCHOOL_NAME,
		year,
		semester,
		grade,
		classNumber,
	)
	pdf.Text(5, 10, title)
	_, height := pdf.GetPageSize()
	pdf.Text(5, height-5, fmt.Sprintf("출력일 %s", time.Now().Format(DATE_LAYOUT)))

	widths := []float64{25, 20, 12, 12, 35, 120, 50}
	pdf.SetXY(5, 20)
	for i, header := range sessionSheetHeaders {
		pdf.CellFormat(widths[i], 6, header, "1", 0, "C", false, 0, "")
	}
	y := 26.0
	for _, session := range sessions {
		if y > height-15 {
			pdf.AddPage()
			y = 10
		}
		pdf.SetXY(5, y)
		number := ""
		if session.SessionNumber != nil {
			number = fmt.Sprintf("%d", *session.SessionNumber)
		}
		cells := []string{
			session.Date,
			session.DayOfWeek,
			fmt.Sprintf("%d", session.Period),
			number,
			string(session.Segment),
			session.Content,
			session.AcademicEvent,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "", false, 0, "")
		}
		y += 6
	}
	if err := pdf.Output(w); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

// ExportAllSessionsZip bundles one xlsx per class group of the teacher into a
// zip archive. A copy of the archive is kept on S3.
func (e *ExportService) ExportAllSessionsZip(
	w io.Writer,
	schoolID string,
	year,
	semester int,
	teacherID string,
) *res.ErrorRes {
	schedules, errRes := scheduleRepository.GetTeacherSchedules(
		schoolID,
		year,
		semester,
		teacherID,
	)
	if errRes != nil {
		return errRes
	}

	type classGroup struct {
		Grade       int
		ClassNumber int
	}
	groupSet := make(map[classGroup]struct{})
	for _, slot := range schedules {
		groupSet[classGroup{Grade: slot.Grade, ClassNumber: slot.ClassNumber}] = struct{}{}
	}
	groups := make([]classGroup, 0, len(groupSet))
	for group := range groupSet {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Grade != groups[j].Grade {
			return groups[i].Grade < groups[j].Grade
		}
		return groups[i].ClassNumber < groups[j].ClassNumber
	})

	type namedFile struct {
		name string
		data []byte
	}
	files := make([]namedFile, len(groups))

	if errRes := utils.Concurrency(5, len(groups), func(index int, setError func(errRes *res.ErrorRes)) {
		group := groups[index]
		sessions, errRes := classSessionRepository.GetSessionsByGroup(
			schoolID,
			year,
			semester,
			teacherID,
			group.Grade,
			group.ClassNumber,
		)
		if errRes != nil {
			setError(errRes)
			return
		}
		sheetName := fmt.Sprintf("%d학년 %d반", group.Grade, group.ClassNumber)
		file, err := buildSessionsFile(sheetName, sessions)
		if err != nil {
			setError(&res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			})
			return
		}
		var buf bytes.Buffer
		if err := file.Write(&buf); err != nil {
			setError(&res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			})
			return
		}
		files[index] = namedFile{
			name: fmt.Sprintf("%s.xlsx", sheetName),
			data: buf.Bytes(),
		}
	}); errRes != nil {
		return errRes
	}

	var archive bytes.Buffer
	zipWritter := zip.NewWriter(&archive)
	for _, file := range files {
		if file.name == "" {
			continue
		}
		zipFile, err := zipWritter.Create(file.name)
		if err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		if _, err := zipFile.Write(file.data); err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
	}
	if err := zipWritter.Close(); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}

	archiveBytes := archive.Bytes()
	go func() {
		key := fmt.Sprintf(
			"exports/%s/%d-%d/%s_%s.zip",
			schoolID,
			year,
			semester,
			teacherID,
			time.Now().Format("20060102150405"),
		)
		if _, err := aws.UploadBytes(key, archiveBytes); err != nil {
			e.logger.Error("failed to archive export", zap.Error(err))
		}
	}()

	if _, err := w.Write(archiveBytes); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

func NewExportService() *ExportService {
	logger, _ := zap.NewProduction()
	return &ExportService{
		logger: logger,
	}
}
