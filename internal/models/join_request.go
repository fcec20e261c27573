package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JoinRequest is the normalized pending-request registry row. A unique index
// on (eventId, userId) limits a user to one outstanding request per event
// across all teams.
type JoinRequest struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	EventID     primitive.ObjectID `json:"eventId" bson:"eventId" example:"507f1f77bcf86cd799439012"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	TeamID      primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439014"`
	RequestedAt time.Time          `json:"requestedAt" bson:"requestedAt" example:"2024-01-15T09:30:00Z"`
}
