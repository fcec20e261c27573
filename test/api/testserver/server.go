//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"eventteams/internal/cache"
	"eventteams/internal/handler"
	"eventteams/internal/pubsub"
	"eventteams/internal/repository"
	"eventteams/internal/router"
	"eventteams/internal/service"
	"eventteams/pkg/auth"
	"eventteams/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the token expiry time used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestTeamCodePrefix is the team code prefix used in tests.
	TestTeamCodePrefix = "TEAM"
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer

	// Repositories (for direct database access in tests)
	UserRepo         repository.UserRepository
	TeamRepo         repository.TeamRepository
	MembershipRepo   repository.MembershipRepository
	JoinRequestRepo  repository.JoinRequestRepository
	EventRepo        repository.EventRepository
	RegistrationRepo repository.RegistrationRepository
	CounterRepo      repository.CounterRepository

	// Services (for direct service access in tests)
	AuthService service.AuthServicer
	TeamService service.TeamServicer

	// Auth
	JWTManager *auth.JWTManager

	// Broker delivers team mutation events; tests can subscribe directly.
	Broker *pubsub.RedisBroker
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	redisCache := cache.NewRedis(redisContainer.URI)
	broker := pubsub.NewRedisBroker(redisCache.Client())

	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	membershipRepo := repository.NewMembershipRepository(mongoDB.Database)
	joinRequestRepo := repository.NewJoinRequestRepository(mongoDB.Database)
	eventRepo := repository.NewEventRepository(mongoDB.Database)
	registrationRepo := repository.NewRegistrationRepository(mongoDB.Database)
	counterRepo := repository.NewCounterRepository(mongoDB.Database)
	txnRunner := repository.NewTxnRunner(mongoDB.Client)

	// Service layer
	allocator := service.NewCodeAllocator(counterRepo, TestTeamCodePrefix)
	authService := service.NewAuthService(userRepo, jwtManager)
	teamService := service.NewTeamService(
		teamRepo,
		membershipRepo,
		joinRequestRepo,
		eventRepo,
		registrationRepo,
		userRepo,
		allocator,
		txnRunner,
		broker,
		redisCache,
	)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	teamHandler := handler.NewTeamHandler(teamService, broker)
	joinRequestHandler := handler.NewJoinRequestHandler(teamService)

	r := router.Setup(&router.Config{
		AuthHandler:        authHandler,
		TeamHandler:        teamHandler,
		JoinRequestHandler: joinRequestHandler,
		JWTManager:         jwtManager,
	})

	return &TestServer{
		Router:           r,
		MongoDB:          mongoDB,
		Redis:            redisContainer,
		UserRepo:         userRepo,
		TeamRepo:         teamRepo,
		MembershipRepo:   membershipRepo,
		JoinRequestRepo:  joinRequestRepo,
		EventRepo:        eventRepo,
		RegistrationRepo: registrationRepo,
		CounterRepo:      counterRepo,
		AuthService:      authService,
		TeamService:      teamService,
		JWTManager:       jwtManager,
		Broker:           broker,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
