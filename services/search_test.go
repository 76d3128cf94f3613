package services

import (
	"encoding/json"
	"testing"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
)

func TestSessionContentDocumentsStampsGroupKey(t *testing.T) {
	// Rows straight off the wire, no teacher or section fields
	sessions := []models.ClassSession{
		{
			SessionNumber: intPtr(1),
			Date:          "2025-03-03",
			Period:        3,
			Subject:       "지구과학Ⅰ",
			Content:       "판 구조론",
		},
	}
	docs, err := sessionContentDocuments("school1", 2025, 1, "t1", 2, 6, sessions)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("docs = %d, want 1", len(docs))
	}
	if docs[0].ID != "school1-2025-1-t1-2-6-2025-03-03-3" {
		t.Errorf("id = %s", docs[0].ID)
	}
	var doc sessionContentEs
	if err := json.Unmarshal(docs[0].Body, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.TeacherID != "t1" || doc.Grade != 2 || doc.ClassNumber != 6 {
		t.Errorf("group key = %s/%d/%d", doc.TeacherID, doc.Grade, doc.ClassNumber)
	}
	if doc.SchoolID != "school1" || doc.Subject != "지구과학Ⅰ" || doc.Content != "판 구조론" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestSessionContentDocumentsDistinctGroups(t *testing.T) {
	// Same date and period saved by two groups must never share an id
	sessions := []models.ClassSession{
		{Date: "2025-03-03", Period: 3, Content: "내용"},
	}
	first, err := sessionContentDocuments("school1", 2025, 1, "t1", 2, 6, sessions)
	if err != nil {
		t.Fatal(err)
	}
	second, err := sessionContentDocuments("school1", 2025, 1, "t2", 2, 7, sessions)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].ID == second[0].ID {
		t.Errorf("ids collide: %s", first[0].ID)
	}
}

func TestSessionContentDocumentsSkipsEmptyContent(t *testing.T) {
	sessions := []models.ClassSession{
		{Date: "2025-03-03", Period: 3},
		{Date: "2025-03-05", Period: 1, Content: "지각 변동"},
		{Date: "2025-03-10", Period: 0, AcademicEvent: "1차 지필 시작"},
	}
	docs, err := sessionContentDocuments("school1", 2025, 1, "t1", 2, 6, sessions)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("docs = %d, want 1", len(docs))
	}
	if docs[0].ID != "school1-2025-1-t1-2-6-2025-03-05-1" {
		t.Errorf("id = %s", docs[0].ID)
	}
}
