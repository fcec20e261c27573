package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is the slice of event configuration the team coordinator consumes.
// Event administration lives elsewhere; this service only reads it.
type Event struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439012"`
	Name            string             `json:"name" bson:"name" example:"Hack the Term 2026"`
	Slug            string             `json:"slug" bson:"slug" example:"hack-the-term-2026"`
	TeamSizeDefault int                `json:"teamSizeDefault" bson:"teamSizeDefault" example:"4"`
	TeamSizeMax     int                `json:"teamSizeMax" bson:"teamSizeMax" example:"6"`
	StartsAt        time.Time          `json:"startsAt" bson:"startsAt" example:"2026-10-01T09:00:00Z"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// Registration records that a user is registered for an event. Written by the
// registration subsystem; this service only checks existence.
type Registration struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EventID   primitive.ObjectID `json:"eventId" bson:"eventId"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
