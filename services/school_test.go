package services

import (
	"net/http"
	"testing"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
)

type fakeSchoolStorer struct {
	schools    []models.School
	saved      []models.School
	searchedBy string
}

func (f *fakeSchoolStorer) GetSchool(schoolID string) (*models.School, *res.ErrorRes) {
	for _, school := range f.schools {
		if school.ID == schoolID {
			found := school
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeSchoolStorer) SearchSchoolsByName(name string) ([]models.School, *res.ErrorRes) {
	f.searchedBy = name
	return f.schools, nil
}

func (f *fakeSchoolStorer) SaveSchool(school *models.School) *res.ErrorRes {
	f.saved = append(f.saved, *school)
	return nil
}

func TestSearchSchools(t *testing.T) {
	storer := &fakeSchoolStorer{
		schools: []models.School{
			{ID: "school1", Name: "청주대성고등학교"},
		},
	}
	service := &SchoolService{schools: storer}

	schools, errRes := service.SearchSchools("  대성  ")
	if errRes != nil {
		t.Fatal(errRes.Err)
	}
	if storer.searchedBy != "대성" {
		t.Errorf("searched by %q", storer.searchedBy)
	}
	if len(schools) != 1 || schools[0].ID != "school1" {
		t.Errorf("schools = %+v", schools)
	}
}

func TestSearchSchoolsEmptyName(t *testing.T) {
	service := &SchoolService{schools: &fakeSchoolStorer{}}
	if _, errRes := service.SearchSchools("   "); errRes == nil {
		t.Fatal("expected error")
	} else if errRes.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d", errRes.StatusCode)
	}
}

func TestSaveSchool(t *testing.T) {
	storer := &fakeSchoolStorer{}
	service := &SchoolService{schools: storer}

	school, errRes := service.SaveSchool("school1", "청주대성고등학교")
	if errRes != nil {
		t.Fatal(errRes.Err)
	}
	if school.ID != "school1" || school.Name != "청주대성고등학교" {
		t.Errorf("school = %+v", school)
	}
	if len(storer.saved) != 1 || storer.saved[0].ID != "school1" {
		t.Errorf("saved = %+v", storer.saved)
	}
}

func TestSaveSchoolMissingFields(t *testing.T) {
	service := &SchoolService{schools: &fakeSchoolStorer{}}
	if _, errRes := service.SaveSchool("", "청주대성고등학교"); errRes == nil {
		t.Fatal("expected error for empty id")
	}
	if _, errRes := service.SaveSchool("school1", " "); errRes == nil {
		t.Fatal("expected error for empty name")
	}
}
