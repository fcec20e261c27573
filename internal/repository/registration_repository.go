package repository

import (
	"context"
	"time"

	"eventteams/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegistrationRepository answers "is this user registered for this event".
// Registrations are written by the event-registration subsystem; Create
// exists for seeding and tests.
type RegistrationRepository interface {
	Exists(ctx context.Context, eventID, userID primitive.ObjectID) (bool, error)
	Create(ctx context.Context, registration *models.Registration) error
}

// registrationRepository implements RegistrationRepository using MongoDB.
type registrationRepository struct {
	collection *mongo.Collection
}

// NewRegistrationRepository creates a new RegistrationRepository.
func NewRegistrationRepository(db *mongo.Database) RegistrationRepository {
	return &registrationRepository{
		collection: db.Collection("registrations"),
	}
}

// Exists reports whether a registration fact is recorded.
func (r *registrationRepository) Exists(ctx context.Context, eventID, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"eventId": eventID,
		"userId":  userID,
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create records a registration fact.
func (r *registrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	registration.ID = primitive.NewObjectID()
	registration.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, registration)
	return err
}
