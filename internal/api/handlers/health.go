package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"careercompass-jobs/internal/aggregator"
	"careercompass-jobs/internal/cache"
	"careercompass-jobs/internal/logging"
	"careercompass-jobs/pkg/models"
	"careercompass-jobs/pkg/utils"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler reports whether the service can serve recommendations.
// The service is ready when at least one job source is usable; Redis is
// reported but never gates readiness since the memory tiers cover for it.
func ReadinessHandler(agg *aggregator.Aggregator, redis *cache.RedisClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Readiness check requested", map[string]interface{}{"request_id": requestID})

		checks := map[string]string{"api": "ok"}
		status := "ready"
		code := http.StatusOK

		sourceNames := make([]string, 0, len(agg.Sources()))
		for _, src := range agg.Sources() {
			sourceNames = append(sourceNames, src.Name())
			checks["source:"+src.Name()] = "ok"
		}
		if len(sourceNames) == 0 {
			checks["sources"] = "none available"
			status = "not ready"
			code = http.StatusServiceUnavailable
		}

		if redis != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			if err := redis.IsHealthy(ctx); err != nil {
				checks["redis"] = "unavailable"
			} else {
				checks["redis"] = "ok"
			}
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(code, response)
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Liveness check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// RootHandler handles requests to the root endpoint
func RootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"service": "CareerCompass Jobs API",
		"version": "1.0.0",
		"status":  "running",
	})
}
