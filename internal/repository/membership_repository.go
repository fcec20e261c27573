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

// MembershipRepository defines the interface for the normalized
// (event, user) -> team registry.
type MembershipRepository interface {
	Create(ctx context.Context, membership *models.Membership) error
	FindByEventAndUser(ctx context.Context, eventID, userID primitive.ObjectID) (*models.Membership, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error)
}

// membershipRepository implements MembershipRepository using MongoDB.
type membershipRepository struct {
	collection *mongo.Collection
}

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(db *mongo.Database) MembershipRepository {
	return &membershipRepository{
		collection: db.Collection("memberships"),
	}
}

// Create inserts a registry row. The unique (eventId, userId) index rejects a
// second team for the same user in the same event, regardless of interleaving.
func (r *membershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	membership.ID = primitive.NewObjectID()
	if membership.JoinedAt.IsZero() {
		membership.JoinedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, membership)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrAlreadyInTeam
	}
	return err
}

// FindByEventAndUser returns the user's membership for an event, if any.
func (r *membershipRepository) FindByEventAndUser(ctx context.Context, eventID, userID primitive.ObjectID) (*models.Membership, error) {
	filter := bson.M{
		"eventId": eventID,
		"userId":  userID,
	}

	var membership models.Membership
	err := r.collection.FindOne(ctx, filter).Decode(&membership)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotInTeam
		}
		return nil, err
	}

	return &membership, nil
}

// FindByTeamID returns all registry rows for a team.
func (r *membershipRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var memberships []models.Membership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}

	if memberships == nil {
		memberships = []models.Membership{}
	}

	return memberships, nil
}
