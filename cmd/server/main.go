package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventteams/internal/cache"
	"eventteams/internal/config"
	"eventteams/internal/database"
	"eventteams/internal/handler"
	"eventteams/internal/pubsub"
	"eventteams/internal/repository"
	"eventteams/internal/router"
	"eventteams/internal/service"
	"eventteams/internal/validator"
	"eventteams/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Event Teams API
// @version         1.0
// @description     A REST API for event team formation built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, mongoDB.Database); err != nil {
		indexCancel()
		log.Fatalf("Failed to create indexes: %v", err)
	}
	indexCancel()

	// Redis cache and pub/sub (shared connection pool)
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()
	broker := pubsub.NewRedisBroker(redisCache.Client())

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	eventRepo := repository.NewEventRepository(mongoDB.Database)
	registrationRepo := repository.NewRegistrationRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	membershipRepo := repository.NewMembershipRepository(mongoDB.Database)
	requestRepo := repository.NewJoinRequestRepository(mongoDB.Database)
	counterRepo := repository.NewCounterRepository(mongoDB.Database)
	txnRunner := repository.NewTxnRunner(mongoDB.Client)

	// Service layer
	allocator := service.NewCodeAllocator(counterRepo, cfg.TeamCodePrefix)
	authService := service.NewAuthService(userRepo, jwtManager)
	teamService := service.NewTeamService(
		teamRepo,
		membershipRepo,
		requestRepo,
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

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:        authHandler,
		TeamHandler:        teamHandler,
		JoinRequestHandler: joinRequestHandler,
		JWTManager:         jwtManager,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
