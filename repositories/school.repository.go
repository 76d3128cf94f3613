package repositories

import (
	"net/http"

	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SchoolStorer looks schools up and upserts them.
type SchoolStorer interface {
	GetSchool(schoolID string) (*models.School, *res.ErrorRes)
	SearchSchoolsByName(name string) ([]models.School, *res.ErrorRes)
	SaveSchool(school *models.School) *res.ErrorRes
}

type SchoolRepository struct{}

func (s *SchoolRepository) GetSchool(schoolID string) (*models.School, *res.ErrorRes) {
	var school *models.School

	cursor := schoolModel.GetOne(bson.D{{
		Key:   "_id",
		Value: schoolID,
	}})
	if err := cursor.Decode(&school); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return nil, nil
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return school, nil
}

func (s *SchoolRepository) SearchSchoolsByName(name string) ([]models.School, *res.ErrorRes) {
	var schools []models.School

	cursor, err := schoolModel.GetAll(bson.D{{
		Key: "name",
		Value: bson.M{
			"$regex": primitive.Regex{Pattern: name, Options: "i"},
		},
	}}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &schools); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return schools, nil
}

func (s *SchoolRepository) SaveSchool(school *models.School) *res.ErrorRes {
	_, err := schoolModel.Use().UpdateOne(
		db.Ctx,
		bson.D{{
			Key:   "_id",
			Value: school.ID,
		}},
		bson.D{{
			Key:   "$set",
			Value: school,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}

func NewSchoolRepository() *SchoolRepository {
	return &SchoolRepository{}
}
