// Package service contains business logic for the application.
package service

import (
	"context"

	"eventteams/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.LoginResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// TeamServicer defines the interface for the membership coordinator.
type TeamServicer interface {
	CreateTeam(ctx context.Context, userID, eventID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error)
	RequestJoin(ctx context.Context, userID, teamID primitive.ObjectID) error
	ApproveRequest(ctx context.Context, callerID, teamID, requestUID primitive.ObjectID) (*models.Team, error)
	RejectRequest(ctx context.Context, callerID, teamID, requestUID primitive.ObjectID) error
	AddMemberDirect(ctx context.Context, callerID, teamID primitive.ObjectID, uniqueID string) (*models.Team, error)
	RenameTeam(ctx context.Context, callerID, teamID primitive.ObjectID, newName string) (*models.Team, error)
	SetTeamStatus(ctx context.Context, callerID, teamID primitive.ObjectID, status string) (*models.Team, error)
	GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	ListOpenTeams(ctx context.Context, eventID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error)
	GetUserTeam(ctx context.Context, eventID, userID primitive.ObjectID) (*models.Team, error)
	GetUserJoinRequest(ctx context.Context, eventID, userID primitive.ObjectID) (*models.JoinRequest, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer = (*AuthService)(nil)
	_ TeamServicer = (*TeamService)(nil)
)
