// Package repository provides data access operations for the application.
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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TeamRepository defines the interface for team data operations.
//
// Every mutating method takes the precondition it protects into the update
// filter, so the check and the write are one atomic document operation.
// Callers receive ErrTeamStateChanged when the filter no longer matched and
// must re-read the team to find out why.
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindOpenByEventID(ctx context.Context, eventID primitive.ObjectID, page, limit int) ([]models.Team, int, error)
	UpdateName(ctx context.Context, teamID primitive.ObjectID, name string) error
	UpdateStatus(ctx context.Context, teamID primitive.ObjectID, status string) error
	PushPendingRequest(ctx context.Context, teamID primitive.ObjectID, req *models.PendingRequest) error
	PullPendingRequest(ctx context.Context, teamID, uid primitive.ObjectID) error
	ApprovePendingRequest(ctx context.Context, teamID, uid primitive.ObjectID, member *models.TeamMember) error
	PushMember(ctx context.Context, teamID primitive.ObjectID, member *models.TeamMember) error
}

// teamRepository implements TeamRepository using MongoDB.
type teamRepository struct {
	collection *mongo.Collection
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(db *mongo.Database) TeamRepository {
	return &teamRepository{
		collection: db.Collection("teams"),
	}
}

// membersBelowCapacity matches only while the member array is shorter than
// maxSize. Embedding it in update filters is what closes the read-then-write
// capacity race.
var membersBelowCapacity = bson.M{
	"$expr": bson.M{"$lt": bson.A{bson.M{"$size": "$members"}, "$maxSize"}},
}

// Create inserts a new team. The caller assigns the team code beforehand;
// a duplicate code surfaces as a raw duplicate key error so the allocation
// transaction can retry.
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	team.ID = primitive.NewObjectID()
	team.CreatedAt = time.Now()
	if team.Status == "" {
		team.Status = models.TeamStatusOpen
	}
	if team.PendingRequests == nil {
		team.PendingRequests = []models.PendingRequest{}
	}

	_, err := r.collection.InsertOne(ctx, team)
	return err
}

// FindByID retrieves a team by ID.
func (r *teamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// FindOpenByEventID returns paginated open, non-full teams for an event,
// oldest first.
func (r *teamRepository) FindOpenByEventID(ctx context.Context, eventID primitive.ObjectID, page, limit int) ([]models.Team, int, error) {
	filter := bson.M{
		"eventId": eventID,
		"status":  models.TeamStatusOpen,
		"$expr":   membersBelowCapacity["$expr"],
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, 0, err
	}

	if teams == nil {
		teams = []models.Team{}
	}

	return teams, int(count), nil
}

// UpdateName sets a new display name.
func (r *teamRepository) UpdateName(ctx context.Context, teamID primitive.ObjectID, name string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": teamID},
		bson.M{"$set": bson.M{"teamName": name}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}

	return nil
}

// UpdateStatus sets the informational open/closed flag.
func (r *teamRepository) UpdateStatus(ctx context.Context, teamID primitive.ObjectID, status string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": teamID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}

	return nil
}

// PushPendingRequest appends a join request, but only while the team is open,
// below capacity, and the user appears in neither list.
func (r *teamRepository) PushPendingRequest(ctx context.Context, teamID primitive.ObjectID, req *models.PendingRequest) error {
	filter := bson.M{
		"_id":                 teamID,
		"status":              models.TeamStatusOpen,
		"members.uid":         bson.M{"$ne": req.UID},
		"pendingRequests.uid": bson.M{"$ne": req.UID},
		"$expr":               membersBelowCapacity["$expr"],
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{
		"$push": bson.M{"pendingRequests": req},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTeamStateChanged
	}

	return nil
}

// PullPendingRequest removes a join request entry.
func (r *teamRepository) PullPendingRequest(ctx context.Context, teamID, uid primitive.ObjectID) error {
	filter := bson.M{
		"_id":                 teamID,
		"pendingRequests.uid": uid,
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{
		"$pull": bson.M{"pendingRequests": bson.M{"uid": uid}},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrJoinRequestNotFound
	}

	return nil
}

// ApprovePendingRequest moves a pending request into the member list. The
// pull and push happen in one UpdateOne whose filter re-checks capacity, so
// two racing approvals can never overshoot maxSize: the second one's filter
// no longer matches.
func (r *teamRepository) ApprovePendingRequest(ctx context.Context, teamID, uid primitive.ObjectID, member *models.TeamMember) error {
	filter := bson.M{
		"_id":                 teamID,
		"pendingRequests.uid": uid,
		"$expr":               membersBelowCapacity["$expr"],
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{
		"$pull": bson.M{"pendingRequests": bson.M{"uid": uid}},
		"$push": bson.M{"members": member},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTeamStateChanged
	}

	return nil
}

// PushMember appends a member directly (leader direct-add), guarded by
// capacity and the not-already-a-member check. Any pending request by the
// same user on this team is cleared in the same operation.
func (r *teamRepository) PushMember(ctx context.Context, teamID primitive.ObjectID, member *models.TeamMember) error {
	filter := bson.M{
		"_id":         teamID,
		"members.uid": bson.M{"$ne": member.UID},
		"$expr":       membersBelowCapacity["$expr"],
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{
		"$push": bson.M{"members": member},
		"$pull": bson.M{"pendingRequests": bson.M{"uid": member.UID}},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTeamStateChanged
	}

	return nil
}
