// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"eventteams/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.CreateUserRequest) (*models.LoginResponse, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.LoginResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

// MockTeamService is a mock implementation of TeamServicer.
type MockTeamService struct {
	CreateTeamFunc         func(ctx context.Context, userID, eventID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error)
	RequestJoinFunc        func(ctx context.Context, userID, teamID primitive.ObjectID) error
	ApproveRequestFunc     func(ctx context.Context, callerID, teamID, requestUID primitive.ObjectID) (*models.Team, error)
	RejectRequestFunc      func(ctx context.Context, callerID, teamID, requestUID primitive.ObjectID) error
	AddMemberDirectFunc    func(ctx context.Context, callerID, teamID primitive.ObjectID, uniqueID string) (*models.Team, error)
	RenameTeamFunc         func(ctx context.Context, callerID, teamID primitive.ObjectID, newName string) (*models.Team, error)
	SetTeamStatusFunc      func(ctx context.Context, callerID, teamID primitive.ObjectID, status string) (*models.Team, error)
	GetTeamFunc            func(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	ListOpenTeamsFunc      func(ctx context.Context, eventID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error)
	GetUserTeamFunc        func(ctx context.Context, eventID, userID primitive.ObjectID) (*models.Team, error)
	GetUserJoinRequestFunc func(ctx context.Context, eventID, userID primitive.ObjectID) (*models.JoinRequest, error)
}

func (m *MockTeamService) CreateTeam(ctx context.Context, userID, eventID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, userID, eventID, req)
	}
	return nil, nil
}

func (m *MockTeamService) RequestJoin(ctx context.Context, userID, teamID primitive.ObjectID) error {
	if m.RequestJoinFunc != nil {
		return m.RequestJoinFunc(ctx, userID, teamID)
	}
	return nil
}

func (m *MockTeamService) ApproveRequest(ctx context.Context, callerID, teamID, requestUID primitive.ObjectID) (*models.Team, error) {
	if m.ApproveRequestFunc != nil {
		return m.ApproveRequestFunc(ctx, callerID, teamID, requestUID)
	}
	return nil, nil
}

func (m *MockTeamService) RejectRequest(ctx context.Context, callerID, teamID, requestUID primitive.ObjectID) error {
	if m.RejectRequestFunc != nil {
		return m.RejectRequestFunc(ctx, callerID, teamID, requestUID)
	}
	return nil
}

func (m *MockTeamService) AddMemberDirect(ctx context.Context, callerID, teamID primitive.ObjectID, uniqueID string) (*models.Team, error) {
	if m.AddMemberDirectFunc != nil {
		return m.AddMemberDirectFunc(ctx, callerID, teamID, uniqueID)
	}
	return nil, nil
}

func (m *MockTeamService) RenameTeam(ctx context.Context, callerID, teamID primitive.ObjectID, newName string) (*models.Team, error) {
	if m.RenameTeamFunc != nil {
		return m.RenameTeamFunc(ctx, callerID, teamID, newName)
	}
	return nil, nil
}

func (m *MockTeamService) SetTeamStatus(ctx context.Context, callerID, teamID primitive.ObjectID, status string) (*models.Team, error) {
	if m.SetTeamStatusFunc != nil {
		return m.SetTeamStatusFunc(ctx, callerID, teamID, status)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockTeamService) ListOpenTeams(ctx context.Context, eventID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error) {
	if m.ListOpenTeamsFunc != nil {
		return m.ListOpenTeamsFunc(ctx, eventID, page, limit)
	}
	return nil, nil
}

func (m *MockTeamService) GetUserTeam(ctx context.Context, eventID, userID primitive.ObjectID) (*models.Team, error) {
	if m.GetUserTeamFunc != nil {
		return m.GetUserTeamFunc(ctx, eventID, userID)
	}
	return nil, nil
}

func (m *MockTeamService) GetUserJoinRequest(ctx context.Context, eventID, userID primitive.ObjectID) (*models.JoinRequest, error) {
	if m.GetUserJoinRequestFunc != nil {
		return m.GetUserJoinRequestFunc(ctx, eventID, userID)
	}
	return nil, nil
}
