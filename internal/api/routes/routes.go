package routes

import (
	"team-management-backend/internal/api/handlers"
	"team-management-backend/internal/api/middleware"
	"team-management-backend/internal/auth"
	"team-management-backend/internal/config"
	"team-management-backend/internal/push"
	"team-management-backend/internal/repository"
	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes and wires up dependencies
func SetupRoutes(db *gorm.DB, redisClient redis.UniversalClient, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	validate := validator.New()

	// Repositories
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	convRepo := repository.NewTeamConversationRepository(db)
	convMemberRepo := repository.NewConversationMemberRepository(db)
	connectionRepo := repository.NewConnectionRepository(db)

	// Services
	connectivity := service.NewConnectionService(connectionRepo)
	pusher := push.NewRedisPusher(redisClient)
	teamService := service.NewTeamService(teamRepo, memberRepo, convRepo, convMemberRepo, connectivity, pusher, validate)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	teamHandler := handlers.NewTeamHandler(teamService)
	memberHandler := handlers.NewTeamMemberHandler(teamService)
	conversationHandler := handlers.NewTeamConversationHandler(teamService)

	// Auth middleware
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Health endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PATCH("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)

			teams.POST("/:id/members", memberHandler.AddTeamMember)
			teams.GET("/:id/members", memberHandler.GetTeamMembers)
			teams.GET("/:id/members/:uid", memberHandler.GetTeamMember)
			teams.PATCH("/:id/members/:uid", memberHandler.UpdateTeamMember)
			teams.DELETE("/:id/members/:uid", memberHandler.RemoveTeamMember)

			teams.GET("/:id/conversations", conversationHandler.GetTeamConversations)
			teams.GET("/:id/conversations/:cid", conversationHandler.GetTeamConversation)
			teams.DELETE("/:id/conversations/:cid", conversationHandler.DeleteTeamConversation)
		}
	}

	return router
}
