// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrUniqueIDTaken      = errors.New("unique id is already taken")
	ErrUniqueIDNotFound   = errors.New("no user found for this unique id")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Event errors
var (
	ErrEventNotFound = errors.New("event not found")
	ErrNotRegistered = errors.New("user is not registered for this event")
)

// Team errors
var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamNameEmpty     = errors.New("team name must not be empty")
	ErrTeamFull          = errors.New("team is full")
	ErrTeamClosed        = errors.New("team is closed for new requests")
	ErrAlreadyInTeam     = errors.New("user already belongs to a team for this event")
	ErrNotInTeam         = errors.New("user has no team for this event")
	ErrNotTeamLeader     = errors.New("only the team leader can perform this action")
	ErrInvalidTeamStatus = errors.New("team status must be open or closed")
	ErrTeamCodeExhausted = errors.New("could not allocate a team code, please retry")
	ErrTeamStateChanged  = errors.New("team changed concurrently, please retry")
)

// Join request errors
var (
	ErrJoinRequestPending  = errors.New("a join request is already pending for this event")
	ErrJoinRequestNotFound = errors.New("join request not found")
)
