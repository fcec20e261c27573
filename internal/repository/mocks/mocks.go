// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"

	"eventteams/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTeamRepository is a mock implementation of TeamRepository.
type MockTeamRepository struct {
	CreateFunc                func(ctx context.Context, team *models.Team) error
	FindByIDFunc              func(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindOpenByEventIDFunc     func(ctx context.Context, eventID primitive.ObjectID, page, limit int) ([]models.Team, int, error)
	UpdateNameFunc            func(ctx context.Context, teamID primitive.ObjectID, name string) error
	UpdateStatusFunc          func(ctx context.Context, teamID primitive.ObjectID, status string) error
	PushPendingRequestFunc    func(ctx context.Context, teamID primitive.ObjectID, req *models.PendingRequest) error
	PullPendingRequestFunc    func(ctx context.Context, teamID, uid primitive.ObjectID) error
	ApprovePendingRequestFunc func(ctx context.Context, teamID, uid primitive.ObjectID, member *models.TeamMember) error
	PushMemberFunc            func(ctx context.Context, teamID primitive.ObjectID, member *models.TeamMember) error
}

func (m *MockTeamRepository) Create(ctx context.Context, team *models.Team) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, team)
	}
	return nil
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTeamRepository) FindOpenByEventID(ctx context.Context, eventID primitive.ObjectID, page, limit int) ([]models.Team, int, error) {
	if m.FindOpenByEventIDFunc != nil {
		return m.FindOpenByEventIDFunc(ctx, eventID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockTeamRepository) UpdateName(ctx context.Context, teamID primitive.ObjectID, name string) error {
	if m.UpdateNameFunc != nil {
		return m.UpdateNameFunc(ctx, teamID, name)
	}
	return nil
}

func (m *MockTeamRepository) UpdateStatus(ctx context.Context, teamID primitive.ObjectID, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, teamID, status)
	}
	return nil
}

func (m *MockTeamRepository) PushPendingRequest(ctx context.Context, teamID primitive.ObjectID, req *models.PendingRequest) error {
	if m.PushPendingRequestFunc != nil {
		return m.PushPendingRequestFunc(ctx, teamID, req)
	}
	return nil
}

func (m *MockTeamRepository) PullPendingRequest(ctx context.Context, teamID, uid primitive.ObjectID) error {
	if m.PullPendingRequestFunc != nil {
		return m.PullPendingRequestFunc(ctx, teamID, uid)
	}
	return nil
}

func (m *MockTeamRepository) ApprovePendingRequest(ctx context.Context, teamID, uid primitive.ObjectID, member *models.TeamMember) error {
	if m.ApprovePendingRequestFunc != nil {
		return m.ApprovePendingRequestFunc(ctx, teamID, uid, member)
	}
	return nil
}

func (m *MockTeamRepository) PushMember(ctx context.Context, teamID primitive.ObjectID, member *models.TeamMember) error {
	if m.PushMemberFunc != nil {
		return m.PushMemberFunc(ctx, teamID, member)
	}
	return nil
}

// MockMembershipRepository is a mock implementation of MembershipRepository.
type MockMembershipRepository struct {
	CreateFunc             func(ctx context.Context, membership *models.Membership) error
	FindByEventAndUserFunc func(ctx context.Context, eventID, userID primitive.ObjectID) (*models.Membership, error)
	FindByTeamIDFunc       func(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error)
}

func (m *MockMembershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, membership)
	}
	return nil
}

func (m *MockMembershipRepository) FindByEventAndUser(ctx context.Context, eventID, userID primitive.ObjectID) (*models.Membership, error) {
	if m.FindByEventAndUserFunc != nil {
		return m.FindByEventAndUserFunc(ctx, eventID, userID)
	}
	return nil, nil
}

func (m *MockMembershipRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error) {
	if m.FindByTeamIDFunc != nil {
		return m.FindByTeamIDFunc(ctx, teamID)
	}
	return nil, nil
}

// MockJoinRequestRepository is a mock implementation of JoinRequestRepository.
type MockJoinRequestRepository struct {
	CreateFunc             func(ctx context.Context, request *models.JoinRequest) error
	FindByEventAndUserFunc func(ctx context.Context, eventID, userID primitive.ObjectID) (*models.JoinRequest, error)
	DeleteFunc             func(ctx context.Context, eventID, userID primitive.ObjectID) error
}

func (m *MockJoinRequestRepository) Create(ctx context.Context, request *models.JoinRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, request)
	}
	return nil
}

func (m *MockJoinRequestRepository) FindByEventAndUser(ctx context.Context, eventID, userID primitive.ObjectID) (*models.JoinRequest, error) {
	if m.FindByEventAndUserFunc != nil {
		return m.FindByEventAndUserFunc(ctx, eventID, userID)
	}
	return nil, nil
}

func (m *MockJoinRequestRepository) Delete(ctx context.Context, eventID, userID primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, eventID, userID)
	}
	return nil
}

// MockEventRepository is a mock implementation of EventRepository.
type MockEventRepository struct {
	FindByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

// MockRegistrationRepository is a mock implementation of RegistrationRepository.
type MockRegistrationRepository struct {
	ExistsFunc func(ctx context.Context, eventID, userID primitive.ObjectID) (bool, error)
	CreateFunc func(ctx context.Context, registration *models.Registration) error
}

func (m *MockRegistrationRepository) Exists(ctx context.Context, eventID, userID primitive.ObjectID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, eventID, userID)
	}
	return false, nil
}

func (m *MockRegistrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, registration)
	}
	return nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *models.User) error
	FindByIDFunc       func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	FindByUniqueIDFunc func(ctx context.Context, uniqueID string) (*models.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByUniqueID(ctx context.Context, uniqueID string) (*models.User, error) {
	if m.FindByUniqueIDFunc != nil {
		return m.FindByUniqueIDFunc(ctx, uniqueID)
	}
	return nil, nil
}

// MockCounterRepository is a mock implementation of CounterRepository.
type MockCounterRepository struct {
	NextFunc func(ctx context.Context, name string) (int64, error)
}

func (m *MockCounterRepository) Next(ctx context.Context, name string) (int64, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, name)
	}
	return 0, nil
}

// MockTxnRunner runs the transaction function directly, without a session.
type MockTxnRunner struct {
	WithTransactionFunc func(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error)
}

func (m *MockTxnRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	if m.WithTransactionFunc != nil {
		return m.WithTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}
