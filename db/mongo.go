package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var Ctx = context.TODO()

// MongoConnection dials lazily, on the first collection access.
type MongoConnection struct {
	host   string
	dbName string
	once   sync.Once
	client *mongo.Client
}

func (connection *MongoConnection) connect() {
	uri := fmt.Sprintf(
		"%s://%s:%s@%s",
		settingsData.MONGO_CONNECTION,
		settingsData.MONGO_ROOT_USERNAME,
		settingsData.MONGO_ROOT_PASSWORD,
		connection.host,
	)
	client, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		panic(err)
	}
	if err := client.Connect(Ctx); err != nil {
		panic(err)
	}
	// Ping
	ctx, cancel := context.WithTimeout(Ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		panic(err)
	}
	connection.client = client
}

func (connection *MongoConnection) database() *mongo.Database {
	connection.once.Do(connection.connect)
	return connection.client.Database(connection.dbName)
}

func (connection *MongoConnection) GetCollection(collection string) *mongo.Collection {
	return connection.database().Collection(collection)
}

func (connection *MongoConnection) GetCollections() ([]string, error) {
	collections, err := connection.database().
		ListCollectionNames(Ctx, map[string]interface{}{})
	if err != nil {
		return nil, err
	}
	return collections, nil
}

func (connection *MongoConnection) CreateCollection(
	name string,
	opts *options.CreateCollectionOptions,
) error {
	return connection.database().CreateCollection(Ctx, name, opts)
}

func NewConnection(host, dbName string) *MongoConnection {
	return &MongoConnection{
		host:   host,
		dbName: dbName,
	}
}
