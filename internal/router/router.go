// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "eventteams/swagger" // Import generated swagger docs

	"eventteams/internal/handler"
	"eventteams/internal/middleware"
	"eventteams/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler        *handler.AuthHandler
	TeamHandler        *handler.TeamHandler
	JoinRequestHandler *handler.JoinRequestHandler
	JWTManager         *auth.JWTManager
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
		}

		// Event-scoped team routes (protected)
		events := v1.Group("/events/:eventId")
		events.Use(middleware.Auth(cfg.JWTManager))
		{
			events.POST("/teams", cfg.TeamHandler.CreateTeam)
			events.GET("/teams", cfg.TeamHandler.ListOpenTeams)
			events.GET("/teams/mine", cfg.TeamHandler.GetMyTeam)
			events.GET("/teams/stream", cfg.TeamHandler.StreamTeamEvents)
			events.GET("/requests/mine", cfg.JoinRequestHandler.GetMyRequest)
		}

		// Team routes (protected)
		teams := v1.Group("/teams/:teamId")
		teams.Use(middleware.Auth(cfg.JWTManager))
		{
			teams.GET("", cfg.TeamHandler.GetTeam)
			teams.PUT("/name", cfg.TeamHandler.RenameTeam)
			teams.PUT("/status", cfg.TeamHandler.UpdateStatus)
			teams.POST("/members", cfg.JoinRequestHandler.AddMember)

			// Join request workflow
			requests := teams.Group("/requests")
			{
				requests.POST("", cfg.JoinRequestHandler.RequestJoin)
				requests.POST("/:uid/approve", cfg.JoinRequestHandler.ApproveRequest)
				requests.DELETE("/:uid", cfg.JoinRequestHandler.RejectRequest)
			}
		}
	}

	return r
}
