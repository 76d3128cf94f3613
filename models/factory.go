package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collection interface {
	Use() *mongo.Collection
	GetOne(filter bson.D) *mongo.SingleResult
	GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error)
	NewDocument(data interface{}) (*mongo.InsertOneResult, error)
	NewDocuments(data []interface{}) (*mongo.InsertManyResult, error)
	DeleteMany(filter bson.D) (*mongo.DeleteResult, error)
}
