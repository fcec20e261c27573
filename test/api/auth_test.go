//go:build api

package api

import (
	"net/http"
	"testing"

	"eventteams/internal/models"
	"eventteams/test/api/testserver"
	"eventteams/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegister tests the POST /api/v1/auth/register endpoint.
func TestRegister(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	t.Run("success - registers a participant", func(t *testing.T) {
		req := models.CreateUserRequest{
			Name:     "Alice Johnson",
			Email:    "alice@example.com",
			Password: "password123",
			UniqueID: "EVT1001",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/register", req)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data["token"])

		user, ok := resp.Data["user"].(map[string]interface{})
		require.True(t, ok, "response should carry the user")
		assert.Equal(t, "alice@example.com", user["email"])
		assert.Equal(t, "EVT1001", user["uniqueId"])
	})

	t.Run("error - duplicate email", func(t *testing.T) {
		req := models.CreateUserRequest{
			Name:     "Alice Clone",
			Email:    "alice@example.com",
			Password: "password123",
			UniqueID: "EVT1002",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/register", req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("error - duplicate unique ID", func(t *testing.T) {
		req := models.CreateUserRequest{
			Name:     "Bob Smith",
			Email:    "bob@example.com",
			Password: "password123",
			UniqueID: "EVT1001",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/register", req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("error - malformed unique ID", func(t *testing.T) {
		req := models.CreateUserRequest{
			Name:     "Bad ID",
			Email:    "badid@example.com",
			Password: "password123",
			UniqueID: "evt-1001",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/register", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - password too short", func(t *testing.T) {
		req := models.CreateUserRequest{
			Name:     "Short Pass",
			Email:    "short@example.com",
			Password: "abc",
			UniqueID: "EVT1003",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/register", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestLogin tests the POST /api/v1/auth/login endpoint.
func TestLogin(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	authHelper.RegisterUser(t, "Carol Lee", "carol@example.com", "EVT2001")

	t.Run("success - valid credentials", func(t *testing.T) {
		data := authHelper.Login(t, "carol@example.com", "password123")
		assert.NotEmpty(t, data["token"])
	})

	t.Run("success - email is case insensitive", func(t *testing.T) {
		req := models.LoginRequest{
			Email:    "Carol@Example.com",
			Password: "password123",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error - wrong password", func(t *testing.T) {
		req := models.LoginRequest{
			Email:    "carol@example.com",
			Password: "wrongpass",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("error - unknown email", func(t *testing.T) {
		req := models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("error - protected route without token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/507f1f77bcf86cd799439011", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
