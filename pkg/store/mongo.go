package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoOpTimeout = 2 * time.Second

// MongoStore persists solutions in a MongoDB collection.
type MongoStore struct {
	collection *mongo.Collection
}

// Dial connects to MongoDB at uri and verifies the connection with a
// ping. The caller owns the returned client and should Disconnect it on
// shutdown.
func Dial(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// NewMongoStore creates a store on the given database and collection.
func NewMongoStore(client *mongo.Client, dbName, collectionName string) *MongoStore {
	return &MongoStore{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Save inserts or replaces a solution by ID.
func (m *MongoStore) Save(ctx context.Context, sol *Solution) error {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	filter := bson.M{"_id": sol.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := m.collection.ReplaceOne(ctx, filter, sol, opts); err != nil {
		return fmt.Errorf("save solution %s: %w", sol.ID, err)
	}
	return nil
}

// ByID retrieves a solution, or ErrNotFound.
func (m *MongoStore) ByID(ctx context.Context, id uuid.UUID) (*Solution, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	var sol Solution
	if err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sol); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find solution %s: %w", id, err)
	}
	return &sol, nil
}

// List returns up to limit solutions, newest first.
func (m *MongoStore) List(ctx context.Context, limit int) ([]*Solution, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list solutions: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*Solution
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode solutions: %w", err)
	}
	return out, nil
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
