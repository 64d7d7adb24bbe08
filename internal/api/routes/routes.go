package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"careercompass-jobs/internal/aggregator"
	"careercompass-jobs/internal/api/handlers"
	"careercompass-jobs/internal/api/middleware"
	"careercompass-jobs/internal/cache"
	"careercompass-jobs/internal/config"
	"careercompass-jobs/internal/recommend"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, svc *recommend.Service, agg *aggregator.Aggregator, redis *cache.RedisClient) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Recommendations fan out to several providers; give them headroom
	// beyond the default read timeout.
	e.Use(middleware.TimeoutConfig(cfg.Aggregator.RequestDeadline + 5*time.Second))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(agg, redis))
		health.GET("/live", handlers.LivenessHandler)
	}

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			jobs.POST("/recommend", handlers.RecommendHandler(svc))
		}

		cacheGroup := v1.Group("/cache")
		{
			cacheGroup.GET("/stats", handlers.CacheStatsHandler(svc))
			cacheGroup.POST("/clear", handlers.ClearCachesHandler(svc))
			cacheGroup.POST("/users/:id/invalidate", handlers.InvalidateUserHandler(svc))
			cacheGroup.POST("/users/:id/refresh", handlers.RefreshUserHandler(svc))
		}
	}

	// Root route
	e.GET("/", handlers.RootHandler)
}
