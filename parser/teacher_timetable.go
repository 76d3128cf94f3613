package parser

import (
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/xuri/excelize/v2"
)

var ErrNoHeaderRow = errors.New("헤더 행을 찾을 수 없습니다")
var ErrNoDayHeaders = errors.New("요일 헤더를 찾을 수 없습니다")

// "3학년 미술 창작(3)" -> grade 3, subject "미술 창작", class 3
var cellContentRegex = regexp.MustCompile(`^(\d)학년\s+(.+?)\s*\((\d+)\)$`)

// "yeayeah03(고예진)" -> id "yeayeah03", name "고예진"
var teacherNameRegex = regexp.MustCompile(`^(.+?)\((.+?)\)$`)

var gradePrefixRegex = regexp.MustCompile(`^\d학년\s+`)
var classSuffixRegex = regexp.MustCompile(`\(\d+\)$`)

var dayHeaders = map[string]int{
	"월": 1,
	"화": 2,
	"수": 3,
	"목": 4,
	"금": 5,
	"토": 6,
	"일": 0,
}

func parseCellContent(cellValue string) (grade int, subject string, classNumber int, ok bool) {
	match := cellContentRegex.FindStringSubmatch(strings.TrimSpace(cellValue))
	if match == nil {
		return 0, "", 0, false
	}
	grade, _ = strconv.Atoi(match[1])
	classNumber, _ = strconv.Atoi(match[3])
	return grade, strings.TrimSpace(match[2]), classNumber, true
}

func parseTeacherName(teacherCell string) (id, name string) {
	match := teacherNameRegex.FindStringSubmatch(teacherCell)
	if match != nil {
		return strings.TrimSpace(match[1]), strings.TrimSpace(match[2])
	}
	// No parentheses, id and name are the same
	trimmed := strings.TrimSpace(teacherCell)
	return trimmed, trimmed
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// mergeTwoRows joins a data row split over two sheet rows into one logical
// row. Teacher names split like "leesy104(" + "이석영)" concatenate, and
// subject cells split like "3학년 동아시아" + "사(1)" concatenate when the
// first part has the grade prefix but no class suffix yet.
func mergeTwoRows(row, nextRow []string) []string {
	maxLen := len(row)
	if len(nextRow) > maxLen {
		maxLen = len(nextRow)
	}
	merged := make([]string, maxLen)

	for col := 0; col < maxLen; col++ {
		s1 := cellAt(row, col)
		s2 := cellAt(nextRow, col)

		if col == 0 {
			if s1 != "" {
				merged[col] = s1
			} else {
				merged[col] = s2
			}
			continue
		}
		if col == 1 {
			if s1 != "" && s2 != "" {
				merged[col] = s1 + s2
			} else if s1 != "" {
				merged[col] = s1
			} else {
				merged[col] = s2
			}
			continue
		}

		if s1 == "" {
			merged[col] = s2
			continue
		}
		if s2 == "" {
			merged[col] = s1
			continue
		}

		hasGradePrefix1 := gradePrefixRegex.MatchString(s1)
		hasClassSuffix1 := classSuffixRegex.MatchString(s1)
		hasClassSuffix2 := classSuffixRegex.MatchString(s2)

		if hasGradePrefix1 && !hasClassSuffix1 && hasClassSuffix2 {
			merged[col] = s1 + s2
		} else {
			merged[col] = s1
		}
	}
	return merged
}

func isNumeric(value string) bool {
	_, err := strconv.Atoi(value)
	return err == nil
}

// ParseTeacherTimetable reads the NEIS whole-school teacher timetable
// spreadsheet and returns one slot per teacher/day/period cell that holds a
// "{grade}학년 {subject}({class})" entry. Periods run 1..7 starting at each
// day's header column.
func ParseTeacherTimetable(reader io.Reader) ([]models.ClassScheduleSlot, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeaderRow
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	// Header row has "순번"/"순서" first or a "교사"/"성명" second cell
	headerRowIndex := -1
	for i, row := range rows {
		firstCell := cellAt(row, 0)
		secondCell := cellAt(row, 1)
		if firstCell == "순번" || firstCell == "순서" ||
			strings.Contains(secondCell, "교사") ||
			strings.Contains(secondCell, "성명") {
			headerRowIndex = i
			break
		}
	}
	if headerRowIndex == -1 {
		return nil, ErrNoHeaderRow
	}

	dayColumnMap := make(map[int]int)
	scanDayHeaders := func(row []string) {
		for col := range row {
			if day, ok := dayHeaders[cellAt(row, col)]; ok {
				if _, found := dayColumnMap[day]; !found {
					dayColumnMap[day] = col
				}
			}
		}
	}
	scanDayHeaders(rows[headerRowIndex])
	if len(dayColumnMap) == 0 && headerRowIndex+1 < len(rows) {
		scanDayHeaders(rows[headerRowIndex+1])
	}
	if len(dayColumnMap) == 0 {
		return nil, ErrNoDayHeaders
	}

	// Merge rows split in two before parsing
	var dataRows [][]string
	for i := headerRowIndex + 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}
		orderCell := cellAt(row, 0)

		var nextRow []string
		if i+1 < len(rows) {
			nextRow = rows[i+1]
		}
		nextOrderCell := cellAt(nextRow, 0)

		if isNumeric(orderCell) && nextRow != nil && !isNumeric(nextOrderCell) {
			dataRows = append(dataRows, mergeTwoRows(row, nextRow))
			i++
		} else {
			dataRows = append(dataRows, row)
		}
	}

	var schedules []models.ClassScheduleSlot
	for _, row := range dataRows {
		if len(row) < 2 || !isNumeric(cellAt(row, 0)) {
			continue
		}
		teacherID, teacherName := parseTeacherName(cellAt(row, 1))
		if teacherID == "" {
			continue
		}

		for day, firstPeriodCol := range dayColumnMap {
			for period := 1; period <= 7; period++ {
				cellValue := cellAt(row, firstPeriodCol+period-1)
				if cellValue == "" {
					continue
				}
				grade, subject, classNumber, ok := parseCellContent(cellValue)
				if !ok || grade == 0 || subject == "" || classNumber == 0 {
					continue
				}
				schedules = append(schedules, models.ClassScheduleSlot{
					TeacherID:   teacherID,
					TeacherName: teacherName,
					Subject:     subject,
					Grade:       grade,
					ClassNumber: classNumber,
					DayOfWeek:   day,
					Period:      period,
				})
			}
		}
	}
	return schedules, nil
}
