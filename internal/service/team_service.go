package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"eventteams/internal/cache"
	apperrors "eventteams/internal/errors"
	"eventteams/internal/models"
	"eventteams/internal/pubsub"
	"eventteams/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	// maxCreateAttempts bounds retries of the code-allocation transaction.
	maxCreateAttempts = 5

	// eventCacheTTL is how long event configuration may be served from cache.
	eventCacheTTL = 5 * time.Minute
)

// TeamService is the membership coordinator: it owns every team lifecycle
// and membership transition and is the only writer of team, membership and
// join-request records. All permission checks live here; callers are never
// trusted.
type TeamService struct {
	teamRepo         repository.TeamRepository
	membershipRepo   repository.MembershipRepository
	requestRepo      repository.JoinRequestRepository
	eventRepo        repository.EventRepository
	registrationRepo repository.RegistrationRepository
	userRepo         repository.UserRepository
	allocator        *CodeAllocator
	txn              repository.TxnRunner
	publisher        pubsub.Publisher
	eventCache       cache.Cache
}

// NewTeamService creates a new TeamService.
func NewTeamService(
	teamRepo repository.TeamRepository,
	membershipRepo repository.MembershipRepository,
	requestRepo repository.JoinRequestRepository,
	eventRepo repository.EventRepository,
	registrationRepo repository.RegistrationRepository,
	userRepo repository.UserRepository,
	allocator *CodeAllocator,
	txn repository.TxnRunner,
	publisher pubsub.Publisher,
	eventCache cache.Cache,
) *TeamService {
	return &TeamService{
		teamRepo:         teamRepo,
		membershipRepo:   membershipRepo,
		requestRepo:      requestRepo,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		allocator:        allocator,
		txn:              txn,
		publisher:        publisher,
		eventCache:       eventCache,
	}
}

// CreateTeam creates a team with the caller as leader and sole member. Code
// allocation, team insert and the membership registry row commit as one
// transaction; a duplicate team code aborts and retries the whole unit.
func (s *TeamService) CreateTeam(ctx context.Context, userID, eventID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ErrTeamNameEmpty
	}

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	registered, err := s.registrationRepo.Exists(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, apperrors.ErrNotRegistered
	}

	// Fast fail; the unique membership index is the authoritative guard.
	if _, err := s.membershipRepo.FindByEventAndUser(ctx, eventID, userID); err == nil {
		return nil, apperrors.ErrAlreadyInTeam
	} else if !errors.Is(err, apperrors.ErrNotInTeam) {
		return nil, err
	}

	maxSize := req.MaxSize
	if maxSize == 0 {
		maxSize = event.TeamSizeDefault
	}
	if event.TeamSizeMax > 0 && maxSize > event.TeamSizeMax {
		maxSize = event.TeamSizeMax
	}

	now := time.Now()
	var team *models.Team

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		result, err := s.txn.WithTransaction(ctx, func(tc context.Context) (interface{}, error) {
			code, err := s.allocator.Allocate(tc)
			if err != nil {
				return nil, err
			}

			t := &models.Team{
				EventID:         eventID,
				Name:            name,
				Code:            code,
				LeaderID:        user.ID,
				LeaderUniqueID:  user.UniqueID,
				Members:         []models.TeamMember{memberFromUser(user, now)},
				PendingRequests: []models.PendingRequest{},
				MaxSize:         maxSize,
				Status:          models.TeamStatusOpen,
			}

			if err := s.teamRepo.Create(tc, t); err != nil {
				return nil, err
			}

			membership := &models.Membership{
				EventID:  eventID,
				UserID:   user.ID,
				TeamID:   t.ID,
				JoinedAt: now,
			}
			if err := s.membershipRepo.Create(tc, membership); err != nil {
				return nil, err
			}

			return t, nil
		})
		if err == nil {
			team = result.(*models.Team)
			break
		}
		// A raw duplicate key here means the teamCode unique index fired;
		// the next attempt allocates a fresh sequence number.
		if mongo.IsDuplicateKeyError(err) {
			continue
		}
		return nil, err
	}

	if team == nil {
		return nil, apperrors.ErrTeamCodeExhausted
	}

	s.publish(ctx, pubsub.TypeTeamCreated, team, user.ID)
	return team, nil
}

// RequestJoin records the caller's intent to join a team. At most one
// outstanding request per user per event; the request registry's unique
// index enforces that under race.
func (s *TeamService) RequestJoin(ctx context.Context, userID, teamID primitive.ObjectID) error {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := s.membershipRepo.FindByEventAndUser(ctx, team.EventID, userID); err == nil {
		return apperrors.ErrAlreadyInTeam
	} else if !errors.Is(err, apperrors.ErrNotInTeam) {
		return err
	}

	// Early reads for friendly errors; the guarded update is authoritative.
	if team.Status != models.TeamStatusOpen {
		return apperrors.ErrTeamClosed
	}
	if team.IsFull() {
		return apperrors.ErrTeamFull
	}

	entry := &models.PendingRequest{
		UID:         user.ID,
		DisplayName: user.Name,
		UniqueID:    user.UniqueID,
		RequestedAt: time.Now(),
	}

	_, err = s.txn.WithTransaction(ctx, func(tc context.Context) (interface{}, error) {
		request := &models.JoinRequest{
			EventID:     team.EventID,
			UserID:      user.ID,
			TeamID:      team.ID,
			RequestedAt: entry.RequestedAt,
		}
		if err := s.requestRepo.Create(tc, request); err != nil {
			return nil, err
		}
		if err := s.teamRepo.PushPendingRequest(tc, team.ID, entry); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamStateChanged) {
			return s.classifyRequestConflict(ctx, team.ID, user.ID)
		}
		return err
	}

	s.publish(ctx, pubsub.TypeRequestCreated, team, user.ID)
	return nil
}

// ApproveRequest turns a pending request into a membership. Leader only.
// The capacity check and the member append are one atomic document update,
// so concurrent approvals on the same team cannot overshoot maxSize.
func (s *TeamService) ApproveRequest(ctx context.Context, callerID, teamID, requestUID primitive.ObjectID) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.LeaderID != callerID {
		return nil, apperrors.ErrNotTeamLeader
	}

	if !hasPendingRequest(team, requestUID) {
		return nil, apperrors.ErrJoinRequestNotFound
	}

	target, err := s.userRepo.FindByID(ctx, requestUID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	member := memberFromUser(target, now)

	_, err = s.txn.WithTransaction(ctx, func(tc context.Context) (interface{}, error) {
		membership := &models.Membership{
			EventID:  team.EventID,
			UserID:   target.ID,
			TeamID:   team.ID,
			JoinedAt: now,
		}
		if err := s.membershipRepo.Create(tc, membership); err != nil {
			return nil, err
		}
		if err := s.teamRepo.ApprovePendingRequest(tc, team.ID, target.ID, &member); err != nil {
			return nil, err
		}
		// The registry row may already be gone if the request was withdrawn
		// between our read and the transaction; the embedded pull above is
		// the authoritative removal.
		if err := s.requestRepo.Delete(tc, team.EventID, target.ID); err != nil && !errors.Is(err, apperrors.ErrJoinRequestNotFound) {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamStateChanged) {
			return nil, s.classifyApproveConflict(ctx, team.ID, target.ID)
		}
		return nil, err
	}

	updated, err := s.teamRepo.FindByID(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, pubsub.TypeRequestApproved, updated, callerID)
	return updated, nil
}

// RejectRequest removes a pending request without any other state change.
// Leader only. Rejecting a request that is not there is a not-found error,
// never a silent success.
func (s *TeamService) RejectRequest(ctx context.Context, callerID, teamID, requestUID primitive.ObjectID) error {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team.LeaderID != callerID {
		return apperrors.ErrNotTeamLeader
	}

	_, err = s.txn.WithTransaction(ctx, func(tc context.Context) (interface{}, error) {
		if err := s.teamRepo.PullPendingRequest(tc, team.ID, requestUID); err != nil {
			return nil, err
		}
		if err := s.requestRepo.Delete(tc, team.EventID, requestUID); err != nil && !errors.Is(err, apperrors.ErrJoinRequestNotFound) {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, pubsub.TypeRequestRejected, team, callerID)
	return nil
}

// AddMemberDirect lets the leader add a registered participant by their
// unique ID, bypassing the request handshake.
func (s *TeamService) AddMemberDirect(ctx context.Context, callerID, teamID primitive.ObjectID, uniqueID string) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.LeaderID != callerID {
		return nil, apperrors.ErrNotTeamLeader
	}

	target, err := s.userRepo.FindByUniqueID(ctx, uniqueID)
	if err != nil {
		return nil, err
	}

	registered, err := s.registrationRepo.Exists(ctx, team.EventID, target.ID)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, apperrors.ErrNotRegistered
	}

	now := time.Now()
	member := memberFromUser(target, now)

	_, err = s.txn.WithTransaction(ctx, func(tc context.Context) (interface{}, error) {
		membership := &models.Membership{
			EventID:  team.EventID,
			UserID:   target.ID,
			TeamID:   team.ID,
			JoinedAt: now,
		}
		if err := s.membershipRepo.Create(tc, membership); err != nil {
			return nil, err
		}
		// PushMember also pulls any pending request by the target on this
		// team, keeping members and pendingRequests disjoint.
		if err := s.teamRepo.PushMember(tc, team.ID, &member); err != nil {
			return nil, err
		}
		if err := s.requestRepo.Delete(tc, team.EventID, target.ID); err != nil && !errors.Is(err, apperrors.ErrJoinRequestNotFound) {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamStateChanged) {
			return nil, s.classifyApproveConflict(ctx, team.ID, target.ID)
		}
		return nil, err
	}

	updated, err := s.teamRepo.FindByID(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, pubsub.TypeMemberAdded, updated, callerID)
	return updated, nil
}

// RenameTeam updates the display name. Leader only.
func (s *TeamService) RenameTeam(ctx context.Context, callerID, teamID primitive.ObjectID, newName string) (*models.Team, error) {
	name := strings.TrimSpace(newName)
	if name == "" {
		return nil, apperrors.ErrTeamNameEmpty
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.LeaderID != callerID {
		return nil, apperrors.ErrNotTeamLeader
	}

	if err := s.teamRepo.UpdateName(ctx, team.ID, name); err != nil {
		return nil, err
	}

	team.Name = name
	s.publish(ctx, pubsub.TypeTeamRenamed, team, callerID)
	return team, nil
}

// SetTeamStatus toggles the informational open/closed flag. Leader only.
// Capacity, not status, remains the authoritative gate for approvals.
func (s *TeamService) SetTeamStatus(ctx context.Context, callerID, teamID primitive.ObjectID, status string) (*models.Team, error) {
	if status != models.TeamStatusOpen && status != models.TeamStatusClosed {
		return nil, apperrors.ErrInvalidTeamStatus
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.LeaderID != callerID {
		return nil, apperrors.ErrNotTeamLeader
	}

	if err := s.teamRepo.UpdateStatus(ctx, team.ID, status); err != nil {
		return nil, err
	}

	team.Status = status
	s.publish(ctx, pubsub.TypeTeamStatus, team, callerID)
	return team, nil
}

// GetTeam retrieves a team by ID.
func (s *TeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	return s.teamRepo.FindByID(ctx, teamID)
}

// ListOpenTeams returns paginated summaries of joinable teams for an event.
func (s *TeamService) ListOpenTeams(ctx context.Context, eventID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error) {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	teams, total, err := s.teamRepo.FindOpenByEventID(ctx, eventID, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]models.TeamSummary, 0, len(teams))
	for _, t := range teams {
		summary := models.TeamSummary{
			ID:          t.ID,
			Name:        t.Name,
			Code:        t.Code,
			MemberCount: len(t.Members),
			MaxSize:     t.MaxSize,
			Status:      t.Status,
			CreatedAt:   t.CreatedAt,
		}
		if len(t.Members) > 0 {
			summary.LeaderName = t.Members[0].DisplayName
		}
		items = append(items, summary)
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return &models.TeamListResponse{
		Items: items,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// GetUserTeam returns the caller's team for an event, or ErrNotInTeam.
func (s *TeamService) GetUserTeam(ctx context.Context, eventID, userID primitive.ObjectID) (*models.Team, error) {
	membership, err := s.membershipRepo.FindByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	return s.teamRepo.FindByID(ctx, membership.TeamID)
}

// GetUserJoinRequest returns the caller's outstanding join request for an
// event, or ErrJoinRequestNotFound.
func (s *TeamService) GetUserJoinRequest(ctx context.Context, eventID, userID primitive.ObjectID) (*models.JoinRequest, error) {
	return s.requestRepo.FindByEventAndUser(ctx, eventID, userID)
}

// getEvent reads event configuration through the cache. Events change
// rarely and are read on every create/join, so a short TTL is safe.
func (s *TeamService) getEvent(ctx context.Context, eventID primitive.ObjectID) (*models.Event, error) {
	key := cache.EventCacheKey(eventID.Hex())

	var cached models.Event
	if found, err := s.eventCache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.eventCache.Set(ctx, key, event, eventCacheTTL); err != nil {
		log.Printf("Warning: failed to cache event %s: %v", eventID.Hex(), err)
	}

	return event, nil
}

// classifyRequestConflict re-reads the team after a guarded request push
// found no matching document and maps the state to a precise error.
func (s *TeamService) classifyRequestConflict(ctx context.Context, teamID, uid primitive.ObjectID) error {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return err
	}

	for _, m := range team.Members {
		if m.UID == uid {
			return apperrors.ErrAlreadyInTeam
		}
	}
	for _, r := range team.PendingRequests {
		if r.UID == uid {
			return apperrors.ErrJoinRequestPending
		}
	}
	if team.Status != models.TeamStatusOpen {
		return apperrors.ErrTeamClosed
	}
	if team.IsFull() {
		return apperrors.ErrTeamFull
	}

	return apperrors.ErrTeamStateChanged
}

// classifyApproveConflict re-reads the team after a guarded approve or
// direct-add found no matching document.
func (s *TeamService) classifyApproveConflict(ctx context.Context, teamID, uid primitive.ObjectID) error {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return err
	}

	for _, m := range team.Members {
		if m.UID == uid {
			return apperrors.ErrAlreadyInTeam
		}
	}
	if team.IsFull() {
		return apperrors.ErrTeamFull
	}
	if !hasPendingRequest(team, uid) {
		return apperrors.ErrJoinRequestNotFound
	}

	return apperrors.ErrTeamStateChanged
}

// publish broadcasts a team mutation. Failures are logged, never surfaced:
// the mutation already committed.
func (s *TeamService) publish(ctx context.Context, eventType string, team *models.Team, actorID primitive.ObjectID) {
	err := s.publisher.Publish(ctx, pubsub.TeamEvent{
		Type:     eventType,
		EventID:  team.EventID.Hex(),
		TeamID:   team.ID.Hex(),
		TeamName: team.Name,
		ActorID:  actorID.Hex(),
		At:       time.Now(),
	})
	if err != nil {
		log.Printf("Warning: failed to publish %s for team %s: %v", eventType, team.ID.Hex(), err)
	}
}

// memberFromUser builds a member entry snapshot from a user profile.
func memberFromUser(user *models.User, joinedAt time.Time) models.TeamMember {
	return models.TeamMember{
		UID:          user.ID,
		DisplayName:  user.Name,
		Email:        user.Email,
		UniqueID:     user.UniqueID,
		Organization: user.Organization,
		Phone:        user.Phone,
		JoinedAt:     joinedAt,
	}
}

func hasPendingRequest(team *models.Team, uid primitive.ObjectID) bool {
	for _, r := range team.PendingRequests {
		if r.UID == uid {
			return true
		}
	}
	return false
}
