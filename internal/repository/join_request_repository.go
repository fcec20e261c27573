package repository

import (
	"context"
	"errors"
	"time"

	apperrors "eventteams/internal/errors"
	"eventteams/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// JoinRequestRepository defines the interface for the normalized pending
// request registry.
type JoinRequestRepository interface {
	Create(ctx context.Context, request *models.JoinRequest) error
	FindByEventAndUser(ctx context.Context, eventID, userID primitive.ObjectID) (*models.JoinRequest, error)
	Delete(ctx context.Context, eventID, userID primitive.ObjectID) error
}

// joinRequestRepository implements JoinRequestRepository using MongoDB.
type joinRequestRepository struct {
	collection *mongo.Collection
}

// NewJoinRequestRepository creates a new JoinRequestRepository.
func NewJoinRequestRepository(db *mongo.Database) JoinRequestRepository {
	return &joinRequestRepository{
		collection: db.Collection("join_requests"),
	}
}

// Create inserts a registry row. The unique (eventId, userId) index limits a
// user to one outstanding request per event across all teams.
func (r *joinRequestRepository) Create(ctx context.Context, request *models.JoinRequest) error {
	request.ID = primitive.NewObjectID()
	if request.RequestedAt.IsZero() {
		request.RequestedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, request)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrJoinRequestPending
	}
	return err
}

// FindByEventAndUser returns the user's outstanding request for an event.
func (r *joinRequestRepository) FindByEventAndUser(ctx context.Context, eventID, userID primitive.ObjectID) (*models.JoinRequest, error) {
	filter := bson.M{
		"eventId": eventID,
		"userId":  userID,
	}

	var request models.JoinRequest
	err := r.collection.FindOne(ctx, filter).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrJoinRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// Delete removes the user's outstanding request for an event.
func (r *joinRequestRepository) Delete(ctx context.Context, eventID, userID primitive.ObjectID) error {
	filter := bson.M{
		"eventId": eventID,
		"userId":  userID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrJoinRequestNotFound
	}

	return nil
}
