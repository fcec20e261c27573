package repository

import (
	"context"
	"errors"

	apperrors "eventteams/internal/errors"
	"eventteams/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepository reads event configuration. Event administration is owned by
// another subsystem; this service never writes events.
type EventRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
}

// eventRepository implements EventRepository using MongoDB.
type eventRepository struct {
	collection *mongo.Collection
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) EventRepository {
	return &eventRepository{
		collection: db.Collection("events"),
	}
}

// FindByID retrieves an event by ID.
func (r *eventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}
