package http

import (
	"github.com/gin-gonic/gin"
	"github.com/poetis/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	{
		scans := v1.Group("/scans")
		{
			scans.POST("", handler.Scan)
			scans.GET("", handler.ListScans)
		}

		v1.GET("/recipe/counters", handler.RecipeCounters)

		filters := v1.Group("/filters")
		{
			filters.GET("", handler.GetFilters)
			filters.POST("/reload", handler.ReloadFilters)
		}
	}

	return router
}
