package routes

import (
	"feature-flag-backend/internal/api/handlers"
	"feature-flag-backend/internal/api/middleware"
	"feature-flag-backend/internal/config"
	"feature-flag-backend/internal/database"
	"feature-flag-backend/internal/repository"
	"feature-flag-backend/internal/rollout"
	"feature-flag-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories and transaction manager
	txManager := database.NewTransactionManager(db)
	flagRepo := repository.NewFeatureFlagRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	associationRepo := repository.NewAssociationRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Initialize rollout engine and services
	engine := rollout.NewEngine(associationRepo, workspaceRepo)
	flagService := service.NewFeatureFlagService(flagRepo, workspaceRepo, associationRepo, auditRepo, engine, txManager, validator)
	workspaceService := service.NewWorkspaceService(workspaceRepo, flagRepo, associationRepo, txManager, validator)
	auditService := service.NewAuditLogService(auditRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	flagHandler := handlers.NewFeatureFlagHandler(flagService)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService)
	auditHandler := handlers.NewAuditLogHandler(auditService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Flag routes
		flags := v1.Group("/flags")
		{
			flags.GET("", flagHandler.ListFlags)
			flags.POST("", flagHandler.CreateFlag)
			flags.GET("/search", flagHandler.SearchFlags)
			flags.GET("/:id", flagHandler.GetFlag)
			flags.PUT("/:id", flagHandler.UpdateFlag)
			flags.DELETE("/:id", flagHandler.DeleteFlag)
			flags.GET("/:id/workspaces", flagHandler.ListEnabledWorkspaces)
			flags.PUT("/:id/workspaces", flagHandler.SetWorkspaces)
			flags.GET("/:id/regions/counts", flagHandler.CountEnabledByRegion)
		}

		// Workspace routes
		workspaces := v1.Group("/workspaces")
		{
			workspaces.GET("", workspaceHandler.ListWorkspaces)
			workspaces.POST("", workspaceHandler.CreateWorkspace)
			workspaces.GET("/:id", workspaceHandler.GetWorkspace)
			workspaces.PUT("/:id", workspaceHandler.UpdateWorkspace)
			workspaces.DELETE("/:id", workspaceHandler.DeleteWorkspace)
			workspaces.GET("/:id/flags", workspaceHandler.ListEnabledFlags)
		}

		// Audit log routes (read-only)
		v1.GET("/audit-logs", auditHandler.ListAuditLogs)
	}

	return router
}
