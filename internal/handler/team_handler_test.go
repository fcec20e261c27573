package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "eventteams/internal/errors"
	"eventteams/internal/middleware"
	"eventteams/internal/models"
	"eventteams/internal/pubsub"
	"eventteams/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setUserID is a helper middleware to set user ID in context
func setUserID(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func newTeamRouter(userID string, service *mocks.MockTeamService) *gin.Engine {
	broker := pubsub.NewMemoryBroker()
	h := NewTeamHandler(service, broker)

	r := gin.New()
	r.Use(setUserID(userID))
	r.POST("/events/:eventId/teams", h.CreateTeam)
	r.GET("/events/:eventId/teams", h.ListOpenTeams)
	r.GET("/events/:eventId/teams/mine", h.GetMyTeam)
	r.GET("/teams/:teamId", h.GetTeam)
	r.PUT("/teams/:teamId/name", h.RenameTeam)
	r.PUT("/teams/:teamId/status", h.UpdateStatus)
	return r
}

func TestNewTeamHandler(t *testing.T) {
	mockService := &mocks.MockTeamService{}
	handler := NewTeamHandler(mockService, pubsub.NewMemoryBroker())

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestTeamHandler_CreateTeam(t *testing.T) {
	userID := primitive.NewObjectID()
	eventID := primitive.NewObjectID()

	tests := []struct {
		name           string
		userID         string
		body           interface{}
		mockSetup      func(*mocks.MockTeamService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "successful create",
			userID: userID.Hex(),
			body:   models.CreateTeamRequest{Name: "Falcons"},
			mockSetup: func(m *mocks.MockTeamService) {
				m.CreateTeamFunc = func(ctx context.Context, uID, eID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
					assert.Equal(t, userID, uID)
					assert.Equal(t, eventID, eID)
					return &models.Team{ID: primitive.NewObjectID(), Name: req.Name, Code: "TEAM-00001"}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing team name",
			userID:         userID.Hex(),
			body:           map[string]interface{}{"maxSize": 4},
			mockSetup:      func(m *mocks.MockTeamService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "validation_error",
		},
		{
			name:   "caller already in a team",
			userID: userID.Hex(),
			body:   models.CreateTeamRequest{Name: "Falcons"},
			mockSetup: func(m *mocks.MockTeamService) {
				m.CreateTeamFunc = func(ctx context.Context, uID, eID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
					return nil, apperrors.ErrAlreadyInTeam
				}
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "conflict",
		},
		{
			name:   "caller not registered",
			userID: userID.Hex(),
			body:   models.CreateTeamRequest{Name: "Falcons"},
			mockSetup: func(m *mocks.MockTeamService) {
				m.CreateTeamFunc = func(ctx context.Context, uID, eID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
					return nil, apperrors.ErrNotRegistered
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "validation_error",
		},
		{
			name:           "missing authentication",
			userID:         "",
			body:           models.CreateTeamRequest{Name: "Falcons"},
			mockSetup:      func(m *mocks.MockTeamService) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockTeamService{}
			tt.mockSetup(mockService)
			router := newTeamRouter(tt.userID, mockService)

			payload, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/events/"+eventID.Hex()+"/teams", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				var resp map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedCode, resp["code"])
			}
		})
	}
}

func TestTeamHandler_ListOpenTeams(t *testing.T) {
	userID := primitive.NewObjectID()
	eventID := primitive.NewObjectID()

	t.Run("returns paginated listing", func(t *testing.T) {
		mockService := &mocks.MockTeamService{
			ListOpenTeamsFunc: func(ctx context.Context, eID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error) {
				assert.Equal(t, eventID, eID)
				assert.Equal(t, 2, page)
				assert.Equal(t, 5, limit)
				return &models.TeamListResponse{
					Items:      []models.TeamSummary{{Name: "Falcons", Code: "TEAM-00001"}},
					Pagination: models.Pagination{Page: 2, Limit: 5, TotalItems: 6, TotalPages: 2},
				}, nil
			},
		}
		router := newTeamRouter(userID.Hex(), mockService)

		req := httptest.NewRequest(http.MethodGet, "/events/"+eventID.Hex()+"/teams?page=2&limit=5", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
	})

	t.Run("returns 404 for unknown event", func(t *testing.T) {
		mockService := &mocks.MockTeamService{
			ListOpenTeamsFunc: func(ctx context.Context, eID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error) {
				return nil, apperrors.ErrEventNotFound
			},
		}
		router := newTeamRouter(userID.Hex(), mockService)

		req := httptest.NewRequest(http.MethodGet, "/events/"+eventID.Hex()+"/teams", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects malformed event ID", func(t *testing.T) {
		router := newTeamRouter(userID.Hex(), &mocks.MockTeamService{})

		req := httptest.NewRequest(http.MethodGet, "/events/not-an-id/teams", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTeamHandler_GetMyTeam(t *testing.T) {
	userID := primitive.NewObjectID()
	eventID := primitive.NewObjectID()

	t.Run("returns caller's team", func(t *testing.T) {
		teamID := primitive.NewObjectID()
		mockService := &mocks.MockTeamService{
			GetUserTeamFunc: func(ctx context.Context, eID, uID primitive.ObjectID) (*models.Team, error) {
				assert.Equal(t, userID, uID)
				return &models.Team{ID: teamID, Name: "Falcons"}, nil
			},
		}
		router := newTeamRouter(userID.Hex(), mockService)

		req := httptest.NewRequest(http.MethodGet, "/events/"+eventID.Hex()+"/teams/mine", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns 404 when teamless", func(t *testing.T) {
		mockService := &mocks.MockTeamService{
			GetUserTeamFunc: func(ctx context.Context, eID, uID primitive.ObjectID) (*models.Team, error) {
				return nil, apperrors.ErrNotInTeam
			},
		}
		router := newTeamRouter(userID.Hex(), mockService)

		req := httptest.NewRequest(http.MethodGet, "/events/"+eventID.Hex()+"/teams/mine", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTeamHandler_RenameTeam(t *testing.T) {
	userID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockTeamService)
		expectedStatus int
	}{
		{
			name: "successful rename",
			body: models.RenameTeamRequest{Name: "Falcons Prime"},
			mockSetup: func(m *mocks.MockTeamService) {
				m.RenameTeamFunc = func(ctx context.Context, callerID, tID primitive.ObjectID, newName string) (*models.Team, error) {
					assert.Equal(t, "Falcons Prime", newName)
					return &models.Team{ID: tID, Name: newName, Code: "TEAM-00001"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "non-leader caller",
			body: models.RenameTeamRequest{Name: "Falcons Prime"},
			mockSetup: func(m *mocks.MockTeamService) {
				m.RenameTeamFunc = func(ctx context.Context, callerID, tID primitive.ObjectID, newName string) (*models.Team, error) {
					return nil, apperrors.ErrNotTeamLeader
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "single character name is accepted",
			body: models.RenameTeamRequest{Name: "X"},
			mockSetup: func(m *mocks.MockTeamService) {
				m.RenameTeamFunc = func(ctx context.Context, callerID, tID primitive.ObjectID, newName string) (*models.Team, error) {
					return &models.Team{ID: tID, Name: newName}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "whitespace-only name is rejected by the service",
			body: models.RenameTeamRequest{Name: "   "},
			mockSetup: func(m *mocks.MockTeamService) {
				m.RenameTeamFunc = func(ctx context.Context, callerID, tID primitive.ObjectID, newName string) (*models.Team, error) {
					return nil, apperrors.ErrTeamNameEmpty
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockTeamService{}
			tt.mockSetup(mockService)
			router := newTeamRouter(userID.Hex(), mockService)

			payload, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPut, "/teams/"+teamID.Hex()+"/name", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTeamHandler_UpdateStatus(t *testing.T) {
	userID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()

	t.Run("closes team", func(t *testing.T) {
		mockService := &mocks.MockTeamService{
			SetTeamStatusFunc: func(ctx context.Context, callerID, tID primitive.ObjectID, status string) (*models.Team, error) {
				assert.Equal(t, models.TeamStatusClosed, status)
				return &models.Team{ID: tID, Status: status}, nil
			},
		}
		router := newTeamRouter(userID.Hex(), mockService)

		payload, _ := json.Marshal(models.UpdateTeamStatusRequest{Status: "closed"})
		req := httptest.NewRequest(http.MethodPut, "/teams/"+teamID.Hex()+"/status", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects unknown status at binding", func(t *testing.T) {
		router := newTeamRouter(userID.Hex(), &mocks.MockTeamService{})

		payload, _ := json.Marshal(map[string]string{"status": "archived"})
		req := httptest.NewRequest(http.MethodPut, "/teams/"+teamID.Hex()+"/status", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTeamHandler_GetTeam(t *testing.T) {
	userID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()

	t.Run("returns team", func(t *testing.T) {
		mockService := &mocks.MockTeamService{
			GetTeamFunc: func(ctx context.Context, tID primitive.ObjectID) (*models.Team, error) {
				assert.Equal(t, teamID, tID)
				return &models.Team{ID: tID, Name: "Falcons"}, nil
			},
		}
		router := newTeamRouter(userID.Hex(), mockService)

		req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.Hex(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns 404 for unknown team", func(t *testing.T) {
		mockService := &mocks.MockTeamService{
			GetTeamFunc: func(ctx context.Context, tID primitive.ObjectID) (*models.Team, error) {
				return nil, apperrors.ErrTeamNotFound
			},
		}
		router := newTeamRouter(userID.Hex(), mockService)

		req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.Hex(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
