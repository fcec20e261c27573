package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team status values. Status is informational; capacity is the authoritative
// gate for approvals.
const (
	TeamStatusOpen   = "open"
	TeamStatusClosed = "closed"
)

// TeamMember is an entry in a team's member list. The leader is always
// members[0].
type TeamMember struct {
	UID          primitive.ObjectID `json:"uid" bson:"uid" example:"507f1f77bcf86cd799439013"`
	DisplayName  string             `json:"displayName" bson:"displayName" example:"John Doe"`
	Email        string             `json:"email" bson:"email" example:"user@example.com"`
	UniqueID     string             `json:"uniqueId" bson:"uniqueId" example:"EVT42X7"`
	Organization string             `json:"organization" bson:"organization" example:"Acme University"`
	Phone        string             `json:"phone" bson:"phone" example:"+15550100"`
	JoinedAt     time.Time          `json:"joinedAt" bson:"joinedAt" example:"2024-01-15T09:30:00Z"`
}

// PendingRequest is an entry in a team's pending request list, disjoint from
// the member list at all times.
type PendingRequest struct {
	UID         primitive.ObjectID `json:"uid" bson:"uid" example:"507f1f77bcf86cd799439014"`
	DisplayName string             `json:"displayName" bson:"displayName" example:"Jane Doe"`
	UniqueID    string             `json:"uniqueId" bson:"uniqueId" example:"EVT99Z1"`
	RequestedAt time.Time          `json:"requestedAt" bson:"requestedAt" example:"2024-01-15T09:30:00Z"`
}

// Team represents a team within a single event.
type Team struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	EventID         primitive.ObjectID `json:"eventId" bson:"eventId" example:"507f1f77bcf86cd799439012"`
	Name            string             `json:"teamName" bson:"teamName" example:"Falcons"`
	Code            string             `json:"teamCode" bson:"teamCode" example:"TEAM-00001"`
	LeaderID        primitive.ObjectID `json:"leaderId" bson:"leaderId" example:"507f1f77bcf86cd799439013"`
	LeaderUniqueID  string             `json:"leaderUniqueId" bson:"leaderUniqueId" example:"EVT42X7"`
	Members         []TeamMember       `json:"members" bson:"members"`
	PendingRequests []PendingRequest   `json:"pendingRequests" bson:"pendingRequests"`
	MaxSize         int                `json:"maxSize" bson:"maxSize" example:"4"`
	Status          string             `json:"status" bson:"status" example:"open"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// IsFull reports whether the team has reached its capacity ceiling.
func (t *Team) IsFull() bool {
	return len(t.Members) >= t.MaxSize
}

// CreateTeamRequest is the payload for creating a team. Names only need to
// be non-empty; the service trims and re-checks before writing.
type CreateTeamRequest struct {
	Name    string `json:"teamName" binding:"required,max=80" example:"Falcons"`
	MaxSize int    `json:"maxSize" binding:"omitempty,min=2" example:"4"`
}

// RenameTeamRequest is the payload for renaming a team.
type RenameTeamRequest struct {
	Name string `json:"teamName" binding:"required,max=80" example:"Falcons Prime"`
}

// UpdateTeamStatusRequest is the payload for opening/closing recruiting.
type UpdateTeamStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open closed" example:"closed"`
}

// AddMemberRequest is the payload for a leader adding a member directly.
type AddMemberRequest struct {
	UniqueID string `json:"uniqueId" binding:"required,uniqueid" example:"EVT99Z1"`
}

// TeamSummary is a compact team representation for browse listings.
type TeamSummary struct {
	ID          primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439011"`
	Name        string             `json:"teamName" example:"Falcons"`
	Code        string             `json:"teamCode" example:"TEAM-00001"`
	LeaderName  string             `json:"leaderName" example:"John Doe"`
	MemberCount int                `json:"memberCount" example:"2"`
	MaxSize     int                `json:"maxSize" example:"4"`
	Status      string             `json:"status" example:"open"`
	CreatedAt   time.Time          `json:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// TeamListResponse is the response for listing open teams of an event.
type TeamListResponse struct {
	Items      []TeamSummary `json:"items"`
	Pagination Pagination    `json:"pagination"`
}
