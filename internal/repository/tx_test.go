package repository

import (
	"context"
	"errors"
	"testing"

	apperrors "eventteams/internal/errors"
	"eventteams/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTxnRunner_WithTransaction(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	runner := NewTxnRunner(tdb.Client)
	teamRepo := NewTeamRepository(tdb.Database)
	membershipRepo := NewMembershipRepository(tdb.Database)
	ctx := context.Background()

	t.Run("commits all writes on success", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")
		tdb.ClearCollection(t, "memberships")

		team := newTestTeam("TEAM-00080", 4)

		result, err := runner.WithTransaction(ctx, func(tc context.Context) (interface{}, error) {
			if err := teamRepo.Create(tc, team); err != nil {
				return nil, err
			}
			membership := &models.Membership{
				EventID: team.EventID,
				UserID:  team.LeaderID,
				TeamID:  team.ID,
			}
			if err := membershipRepo.Create(tc, membership); err != nil {
				return nil, err
			}
			return team, nil
		})

		require.NoError(t, err)
		assert.Equal(t, team, result)

		found, err := teamRepo.FindByID(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, team.Code, found.Code)

		_, err = membershipRepo.FindByEventAndUser(ctx, team.EventID, team.LeaderID)
		assert.NoError(t, err)
	})

	t.Run("rolls back all writes on failure", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")
		tdb.ClearCollection(t, "memberships")

		team := newTestTeam("TEAM-00081", 4)
		boom := errors.New("boom")

		_, err := runner.WithTransaction(ctx, func(tc context.Context) (interface{}, error) {
			if err := teamRepo.Create(tc, team); err != nil {
				return nil, err
			}
			return nil, boom
		})

		require.ErrorIs(t, err, boom)

		found, err := teamRepo.FindByID(ctx, team.ID)
		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrTeamNotFound, err)
	})

	t.Run("aborted transaction keeps registry clean", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")
		tdb.ClearCollection(t, "memberships")

		eventID := primitive.NewObjectID()
		userID := primitive.NewObjectID()

		// Existing membership makes the registry insert fail inside the
		// transaction; the team insert must vanish with it.
		existing := &models.Membership{EventID: eventID, UserID: userID, TeamID: primitive.NewObjectID()}
		require.NoError(t, membershipRepo.Create(ctx, existing))

		team := newTestTeam("TEAM-00082", 4)
		team.EventID = eventID
		team.LeaderID = userID

		_, err := runner.WithTransaction(ctx, func(tc context.Context) (interface{}, error) {
			if err := teamRepo.Create(tc, team); err != nil {
				return nil, err
			}
			membership := &models.Membership{EventID: eventID, UserID: userID, TeamID: team.ID}
			if err := membershipRepo.Create(tc, membership); err != nil {
				return nil, err
			}
			return nil, nil
		})

		require.ErrorIs(t, err, apperrors.ErrAlreadyInTeam)

		found, findErr := teamRepo.FindByID(ctx, team.ID)
		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrTeamNotFound, findErr)
	})
}
