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

var ErrNoStudentDayHeaders = errors.New("요일 헤더 매핑에 실패했습니다")

// "2025학년도 1학기 3학년 6반 1번 김철수"
var studentBlockRegex = regexp.MustCompile(`(\d+)학년도\s+(\d)학기\s+(\d+)학년\s+(\d+)반\s+(\d+)번\s*(.+)`)

var periodLabelRegex = regexp.MustCompile(`(\d+)교시`)

// "지구과학Ⅰ(홍길동)" -> subject "지구과학Ⅰ", teacher "홍길동"
var subjectTeacherRegex = regexp.MustCompile(`(.+?)\((.+?)\)$`)

func normalize(value string) string {
	return strings.Join(strings.Fields(value), "")
}

var studentDayPrefixes = [6]string{"", "월", "화", "수", "목", "금"}

// findStudentDayColumns maps weekday 1..5 to its column in the header row.
func findStudentDayColumns(headerRow []string) map[int]int {
	dayColIndex := make(map[int]int)
	for col := range headerRow {
		t := normalize(headerRow[col])
		if t == "" {
			continue
		}
		for day := 1; day <= 5; day++ {
			if _, found := dayColIndex[day]; found {
				continue
			}
			prefix := studentDayPrefixes[day]
			if strings.HasPrefix(t, prefix) || strings.Contains(t, prefix+"요일") {
				dayColIndex[day] = col
				break
			}
		}
	}
	return dayColIndex
}

func looksLikeDayHeader(row []string) bool {
	first := cellAt(row, 0)
	if strings.Contains(normalize(first), "교시") {
		return true
	}
	joined := ""
	for col := range row {
		joined += cellAt(row, col)
	}
	for _, prefix := range []string{"월", "화", "수", "목", "금"} {
		if strings.Contains(joined, prefix) {
			return true
		}
	}
	return false
}

// ParseStudentTimetable reads the NEIS per-student timetable spreadsheet.
// The sheet stacks one block per student: a title row naming the student,
// a weekday header row, then alternating period label and subject rows.
// Monday..Friday only. An empty sheet parses to no rows, but a student block
// whose weekday header cannot be mapped at all is an error so a bad file
// cannot silently wipe the stored timetables.
func ParseStudentTimetable(reader io.Reader) ([]models.StudentTimetableRow, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return []models.StudentTimetableRow{}, nil
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	result := make([]models.StudentTimetableRow, 0)

	rowIndex := 0
	for rowIndex < len(rows) {
		row := rows[rowIndex]
		headerMatch := studentBlockRegex.FindStringSubmatch(cellAt(row, 0))
		if headerMatch == nil {
			rowIndex++
			continue
		}

		baseGrade, _ := strconv.Atoi(headerMatch[3])
		baseClassNumber, _ := strconv.Atoi(headerMatch[4])
		studentNo, _ := strconv.Atoi(headerMatch[5])
		studentName := strings.TrimSpace(headerMatch[6])

		// Find the weekday header row of this block
		headerRowIndex := rowIndex + 1
		for headerRowIndex < len(rows) && !looksLikeDayHeader(rows[headerRowIndex]) {
			headerRowIndex++
		}
		if headerRowIndex >= len(rows) {
			rowIndex++
			continue
		}

		dayColIndex := findStudentDayColumns(rows[headerRowIndex])
		if len(dayColIndex) == 0 {
			return nil, ErrNoStudentDayHeaders
		}

		// Period label row plus subject row, in pairs
		r := headerRowIndex + 1
		for r < len(rows) {
			periodMatch := periodLabelRegex.FindStringSubmatch(normalize(cellAt(rows[r], 0)))
			if periodMatch == nil {
				break
			}
			period, _ := strconv.Atoi(periodMatch[1])
			if r+1 >= len(rows) {
				break
			}
			subjectRow := rows[r+1]

			for day := 1; day <= 5; day++ {
				col, found := dayColIndex[day]
				if !found {
					continue
				}
				subjectRaw := cellAt(subjectRow, col)
				if subjectRaw == "" {
					continue
				}
				subject := subjectRaw
				teacherName := ""
				if match := subjectTeacherRegex.FindStringSubmatch(subjectRaw); match != nil {
					subject = strings.TrimSpace(match[1])
					teacherName = strings.TrimSpace(match[2])
				}
				result = append(result, models.StudentTimetableRow{
					Grade:       baseGrade,
					ClassNumber: baseClassNumber,
					StudentNo:   studentNo,
					StudentName: studentName,
					StudentCode: models.StudentCode(baseGrade, baseClassNumber, studentNo),
					DayOfWeek:   day,
					Period:      period,
					Subject:     subject,
					TeacherName: teacherName,
				})
			}
			r += 2
		}
		rowIndex = r
	}
	return result, nil
}
