package services

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/repositories"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
)

type SchoolService struct {
	schools repositories.SchoolStorer
}

// SearchSchools finds the schools whose name contains the fragment, ignoring
// case. School pickers feed the fragment as the user types.
func (s *SchoolService) SearchSchools(name string) ([]models.School, *res.ErrorRes) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("학교 이름이 없습니다"),
			StatusCode: http.StatusBadRequest,
		}
	}
	return s.schools.SearchSchoolsByName(name)
}

func (s *SchoolService) GetSchool(schoolID string) (*models.School, *res.ErrorRes) {
	return s.schools.GetSchool(schoolID)
}

// SaveSchool upserts the school record keyed on its id.
func (s *SchoolService) SaveSchool(schoolID, name string) (*models.School, *res.ErrorRes) {
	schoolID = strings.TrimSpace(schoolID)
	name = strings.TrimSpace(name)
	if schoolID == "" || name == "" {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("학교 정보가 없습니다"),
			StatusCode: http.StatusBadRequest,
		}
	}
	school := &models.School{
		ID:   schoolID,
		Name: name,
	}
	if errRes := s.schools.SaveSchool(school); errRes != nil {
		return nil, errRes
	}
	return school, nil
}

func NewSchoolService() *SchoolService {
	return &SchoolService{
		schools: schoolRepository,
	}
}
