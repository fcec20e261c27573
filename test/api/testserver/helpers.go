//go:build api

package testserver

import (
	"context"
	"net/http"
	"testing"
	"time"

	"eventteams/internal/models"
	"eventteams/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the user data.
func (ah *AuthHelper) RegisterUser(t *testing.T, name, email, uniqueID string) map[string]interface{} {
	t.Helper()

	req := models.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: "password123",
		UniqueID: uniqueID,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "register response should be successful")
	require.NotNil(t, resp.Data)

	return resp.Data
}

// Login logs in a user and returns the auth response containing the token.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "login response should be successful")
	require.NotNil(t, resp.Data)

	return resp.Data
}

// GetAccessToken logs in and returns just the token.
func (ah *AuthHelper) GetAccessToken(t *testing.T, email, password string) string {
	t.Helper()

	data := ah.Login(t, email, password)
	token, ok := data["token"].(string)
	require.True(t, ok, "token should be a string")

	return token
}

// EventHelper seeds event configuration and registrations. The coordinator
// only reads events, so seeding goes straight to the collections.
type EventHelper struct {
	server *TestServer
}

// NewEventHelper creates a new event helper.
func NewEventHelper(server *TestServer) *EventHelper {
	return &EventHelper{server: server}
}

// SeedEvent inserts an event directly into MongoDB and returns its ID.
func (eh *EventHelper) SeedEvent(t *testing.T, name string, sizeDefault, sizeMax int) primitive.ObjectID {
	t.Helper()
	ctx := context.Background()

	event := models.Event{
		ID:              primitive.NewObjectID(),
		Name:            name,
		Slug:            "test-event",
		TeamSizeDefault: sizeDefault,
		TeamSizeMax:     sizeMax,
		StartsAt:        time.Now().Add(30 * 24 * time.Hour),
		CreatedAt:       time.Now(),
	}

	_, err := eh.server.MongoDB.Database.Collection("events").InsertOne(ctx, event)
	require.NoError(t, err, "failed to seed event")

	return event.ID
}

// SeedRegistration records that a user is registered for an event.
func (eh *EventHelper) SeedRegistration(t *testing.T, eventID, userID primitive.ObjectID) {
	t.Helper()
	ctx := context.Background()

	err := eh.server.RegistrationRepo.Create(ctx, &models.Registration{
		EventID: eventID,
		UserID:  userID,
	})
	require.NoError(t, err, "failed to seed registration")
}

// Participant bundles the identity a test needs to act as a registered user.
type Participant struct {
	ID       primitive.ObjectID
	UniqueID string
	Token    string
}

// CreateParticipant registers a user, logs them in and registers them for the
// event, which is the normal precondition for any team operation.
func (eh *EventHelper) CreateParticipant(t *testing.T, eventID primitive.ObjectID, name, email, uniqueID string) Participant {
	t.Helper()

	authHelper := NewAuthHelper(eh.server)
	userData := authHelper.RegisterUser(t, name, email, uniqueID)
	userID := GetObjectIDFromResponse(t, userData)

	eh.SeedRegistration(t, eventID, userID)

	return Participant{
		ID:       userID,
		UniqueID: uniqueID,
		Token:    authHelper.GetAccessToken(t, email, "password123"),
	}
}

// TeamHelper provides team-related helpers for API tests.
type TeamHelper struct {
	server *TestServer
}

// NewTeamHelper creates a new team helper.
func NewTeamHelper(server *TestServer) *TeamHelper {
	return &TeamHelper{server: server}
}

// CreateTeam creates a new team via the API and returns the team data.
func (th *TeamHelper) CreateTeam(t *testing.T, token string, eventID primitive.ObjectID, name string) map[string]interface{} {
	t.Helper()

	req := models.CreateTeamRequest{
		Name: name,
	}

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/events/"+eventID.Hex()+"/teams", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create team should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "create team response should be successful")
	require.NotNil(t, resp.Data)

	return resp.Data
}

// RequestJoin files a join request via the API.
func (th *TeamHelper) RequestJoin(t *testing.T, token, teamID string) {
	t.Helper()

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/requests", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, "request join should return 201, got: %s", w.Body.String())
}

// GetIDFromResponse extracts the ID from response data.
// Handles both direct id fields and the nested user object of auth responses.
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	idStr := GetIDFromResponse(t, data)
	oid, err := primitive.ObjectIDFromHex(idStr)
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}
