package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexRegionalSummaryCollection())
	panicIfError(m.IndexCaseSummaryCollection())
	panicIfError(m.IndexResourceCollection())
	panicIfError(m.IndexAlertCollection())
}

func (m *MongoDBIndexer) IndexRegionalSummaryCollection() error {
	return m.createIndex(RegionalSummaryCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "region_type", Value: 1},
			{Key: "region_id", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexCaseSummaryCollection() error {
	return m.createIndex(CaseSummaryCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "hospital_id", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexResourceCollection() error {
	return m.createIndex(ResourceCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "hospital_id", Value: 1},
			{Key: "date", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexAlertCollection() error {
	if err := m.createIndex(AlertCollection, mongo.IndexModel{
		Keys: bson.M{
			"triggered_at": -1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(AlertCollection, mongo.IndexModel{
		Keys: bson.M{
			"region_id": 1,
		},
	})
}
