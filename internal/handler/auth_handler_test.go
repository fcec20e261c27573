package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "eventteams/internal/errors"
	"eventteams/internal/models"
	"eventteams/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newAuthRouter(service *mocks.MockAuthService) *gin.Engine {
	h := NewAuthHandler(service)

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful registration",
			body: models.CreateUserRequest{
				Email:    "alice@example.com",
				Password: "secret123",
				Name:     "Alice Johnson",
				UniqueID: "EVT1001",
			},
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.CreateUserRequest) (*models.LoginResponse, error) {
					return &models.LoginResponse{
						Token: "token",
						User:  models.User{ID: primitive.NewObjectID(), Email: req.Email},
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate unique ID",
			body: models.CreateUserRequest{
				Email:    "alice@example.com",
				Password: "secret123",
				Name:     "Alice Johnson",
				UniqueID: "EVT1001",
			},
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.CreateUserRequest) (*models.LoginResponse, error) {
					return nil, apperrors.ErrUniqueIDTaken
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "invalid email",
			body: models.CreateUserRequest{
				Email:    "not-an-email",
				Password: "secret123",
				Name:     "Alice Johnson",
				UniqueID: "EVT1001",
			},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "lowercase unique ID rejected at binding",
			body: models.CreateUserRequest{
				Email:    "alice@example.com",
				Password: "secret123",
				Name:     "Alice Johnson",
				UniqueID: "evt1001",
			},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)
			router := newAuthRouter(mockService)

			payload, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		mockService := &mocks.MockAuthService{
			LoginFunc: func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
				return &models.LoginResponse{Token: "token"}, nil
			},
		}
		router := newAuthRouter(mockService)

		payload, _ := json.Marshal(models.LoginRequest{Email: "alice@example.com", Password: "secret123"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		mockService := &mocks.MockAuthService{
			LoginFunc: func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}
		router := newAuthRouter(mockService)

		payload, _ := json.Marshal(models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
