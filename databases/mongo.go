package databases

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const kvCollectionName = "kv"

// kvDocument holds the structure of a record in the kv collection in mongo
type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoBackend stores values as documents of the kv collection
type MongoBackend struct {
	db DatabaseHelper
}

var _ Backend = (*MongoBackend)(nil)

// NewMongoBackend initializes a new mongo backend with the provided db connection
func NewMongoBackend(db DatabaseHelper) *MongoBackend {
	return &MongoBackend{db: db}
}

// Read implements Backend
func (m *MongoBackend) Read(ctx context.Context, key string) ([]byte, error) {
	doc := kvDocument{}
	err := m.db.Collection(kvCollectionName).FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Value), nil
}

// Write implements Backend
func (m *MongoBackend) Write(ctx context.Context, key string, value []byte) error {
	update := bson.M{"$set": bson.M{
		"value":     string(value),
		"updatedAt": time.Now().UTC(),
	}}
	_, err := m.db.Collection(kvCollectionName).UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	return err
}

// Close implements Backend
func (m *MongoBackend) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.db.Client().Disconnect(ctx)
}
