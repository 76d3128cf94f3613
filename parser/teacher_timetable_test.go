package parser

import (
	"bytes"
	"errors"
	"testing"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, cells map[string]string) *bytes.Reader {
	t.Helper()
	file := excelize.NewFile()
	sheet := file.GetSheetList()[0]
	for cell, value := range cells {
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			t.Fatal(err)
		}
	}
	buffer, err := file.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buffer.Bytes())
}

func findSlot(
	slots []models.ClassScheduleSlot,
	teacherID string,
	dayOfWeek,
	period int,
) (models.ClassScheduleSlot, bool) {
	for _, slot := range slots {
		if slot.TeacherID == teacherID && slot.DayOfWeek == dayOfWeek && slot.Period == period {
			return slot, true
		}
	}
	return models.ClassScheduleSlot{}, false
}

func TestParseTeacherTimetable(t *testing.T) {
	// Monday periods at C..I, Tuesday at J..P
	reader := buildWorkbook(t, map[string]string{
		"A1": "2025학년도 교사별 시간표",
		"A2": "순번", "B2": "교사명", "C2": "월", "J2": "화",
		"A3": "1", "B3": "yeayeah03(고예진)",
		"C3": "2학년 지구과학Ⅰ(6)",
		"E3": "3학년 미술 창작(3)",
		"K3": "2학년 지구과학Ⅰ(7)",
	})

	slots, err := ParseTeacherTimetable(reader)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}

	monday, ok := findSlot(slots, "yeayeah03", 1, 1)
	if !ok {
		t.Fatal("missing Monday period 1 slot")
	}
	if monday.TeacherName != "고예진" {
		t.Errorf("teacher name = %s", monday.TeacherName)
	}
	if monday.Grade != 2 || monday.ClassNumber != 6 || monday.Subject != "지구과학Ⅰ" {
		t.Errorf("slot = %+v", monday)
	}

	art, ok := findSlot(slots, "yeayeah03", 1, 3)
	if !ok {
		t.Fatal("missing Monday period 3 slot")
	}
	if art.Subject != "미술 창작" || art.Grade != 3 || art.ClassNumber != 3 {
		t.Errorf("slot = %+v", art)
	}

	tuesday, ok := findSlot(slots, "yeayeah03", 2, 2)
	if !ok {
		t.Fatal("missing Tuesday period 2 slot")
	}
	if tuesday.ClassNumber != 7 {
		t.Errorf("slot = %+v", tuesday)
	}
}

func TestParseTeacherTimetableMergesSplitRows(t *testing.T) {
	reader := buildWorkbook(t, map[string]string{
		"A1": "순번", "B1": "교사명", "C1": "월",
		// One logical row split over two sheet rows
		"A2": "2", "B2": "leesy104(", "C2": "3학년 동아시아",
		"B3": "이석영)", "C3": "사(1)",
	})

	slots, err := ParseTeacherTimetable(reader)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	slot := slots[0]
	if slot.TeacherID != "leesy104" || slot.TeacherName != "이석영" {
		t.Errorf("teacher = %s(%s)", slot.TeacherID, slot.TeacherName)
	}
	if slot.Subject != "동아시아사" || slot.Grade != 3 || slot.ClassNumber != 1 {
		t.Errorf("slot = %+v", slot)
	}
}

func TestParseTeacherTimetableNameWithoutParens(t *testing.T) {
	reader := buildWorkbook(t, map[string]string{
		"A1": "순번", "B1": "성명", "C1": "월",
		"A2": "1", "B2": "김훈", "C2": "1학년 국어(2)",
	})

	slots, err := ParseTeacherTimetable(reader)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	if slots[0].TeacherID != "김훈" || slots[0].TeacherName != "김훈" {
		t.Errorf("teacher = %s(%s)", slots[0].TeacherID, slots[0].TeacherName)
	}
}

func TestParseTeacherTimetableDayHeadersOnNextRow(t *testing.T) {
	reader := buildWorkbook(t, map[string]string{
		"A1": "순번", "B1": "교사명",
		"C2": "월",
		"A3": "1", "B3": "yeayeah03(고예진)", "C3": "2학년 지구과학Ⅰ(6)",
	})

	slots, err := ParseTeacherTimetable(reader)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := findSlot(slots, "yeayeah03", 1, 1); !ok {
		t.Fatal("missing Monday period 1 slot")
	}
}

func TestParseTeacherTimetableSkipsMalformedCells(t *testing.T) {
	reader := buildWorkbook(t, map[string]string{
		"A1": "순번", "B1": "교사명", "C1": "월",
		"A2": "1", "B2": "yeayeah03(고예진)",
		"C2": "자습",
		"D2": "2학년 지구과학Ⅰ(6)",
	})

	slots, err := ParseTeacherTimetable(reader)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	if slots[0].Period != 2 {
		t.Errorf("period = %d, want 2", slots[0].Period)
	}
}

func TestParseTeacherTimetableNoHeaderRow(t *testing.T) {
	reader := buildWorkbook(t, map[string]string{
		"A1": "아무 내용",
	})
	if _, err := ParseTeacherTimetable(reader); !errors.Is(err, ErrNoHeaderRow) {
		t.Errorf("err = %v, want ErrNoHeaderRow", err)
	}
}

func TestParseTeacherTimetableNoDayHeaders(t *testing.T) {
	reader := buildWorkbook(t, map[string]string{
		"A1": "순번", "B1": "교사명",
		"A2": "1", "B2": "yeayeah03(고예진)",
	})
	if _, err := ParseTeacherTimetable(reader); !errors.Is(err, ErrNoDayHeaders) {
		t.Errorf("err = %v, want ErrNoDayHeaders", err)
	}
}
