package models

import (
	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const SCHOOLS_COLLECTION = "schools"

var schoolModel *SchoolModel

type School struct {
	ID   string `json:"_id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

type SchoolModel struct {
	CollectionName string
}

func (school *SchoolModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(school.CollectionName)
}

func (school *SchoolModel) GetOne(filter bson.D) *mongo.SingleResult {
	return school.Use().FindOne(db.Ctx, filter)
}

func (school *SchoolModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return school.Use().Find(db.Ctx, filter, options)
}

func (school *SchoolModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return school.Use().InsertOne(db.Ctx, data)
}

func (school *SchoolModel) NewDocuments(data []interface{}) (*mongo.InsertManyResult, error) {
	return school.Use().InsertMany(db.Ctx, data)
}

func (school *SchoolModel) DeleteMany(filter bson.D) (*mongo.DeleteResult, error) {
	return school.Use().DeleteMany(db.Ctx, filter)
}

func NewSchoolModel() Collection {
	if schoolModel == nil {
		schoolModel = &SchoolModel{
			CollectionName: SCHOOLS_COLLECTION,
		}
	}
	return schoolModel
}
