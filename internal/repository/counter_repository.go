package repository

import (
	"context"

	"eventteams/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CounterRepository defines the interface for sequence counter operations.
type CounterRepository interface {
	// Next atomically increments the named counter and returns the new value.
	// Must be called with a session context when the increment has to commit
	// together with other writes.
	Next(ctx context.Context, name string) (int64, error)
}

// counterRepository implements CounterRepository using MongoDB.
type counterRepository struct {
	collection *mongo.Collection
}

// NewCounterRepository creates a new CounterRepository.
func NewCounterRepository(db *mongo.Database) CounterRepository {
	return &counterRepository{
		collection: db.Collection("counters"),
	}
}

// Next performs a findOneAndUpdate with $inc so read-increment-write is a
// single server-side operation. Upsert covers the very first allocation.
func (r *counterRepository) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"current": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Current, nil
}
