// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a participant account.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email        string             `json:"email" bson:"email" example:"user@example.com"`
	Password     string             `json:"-" bson:"password"` // "-" = never include in JSON response
	Name         string             `json:"name" bson:"name" example:"John Doe"`
	UniqueID     string             `json:"uniqueId" bson:"uniqueId" example:"EVT42X7"`
	Organization string             `json:"organization" bson:"organization" example:"Acme University"`
	Phone        string             `json:"phone" bson:"phone" example:"+15550100"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Email        string `json:"email" binding:"required,email" example:"user@example.com"`
	Password     string `json:"password" binding:"required,min=6" example:"secret123"`
	Name         string `json:"name" binding:"required,min=2" example:"John Doe"`
	UniqueID     string `json:"uniqueId" binding:"required,uniqueid" example:"EVT42X7"`
	Organization string `json:"organization" binding:"omitempty,max=120" example:"Acme University"`
	Phone        string `json:"phone" binding:"omitempty,max=20" example:"+15550100"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse is the response after successful login.
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  User   `json:"user"`
}
