package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"careercompass-jobs/internal/logging"
	"careercompass-jobs/internal/recommend"
	"careercompass-jobs/pkg/models"
	"careercompass-jobs/pkg/utils"
)

// CacheStatsHandler exposes counters for both cache tiers
func CacheStatsHandler(svc *recommend.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, svc.CacheStats())
	}
}

// InvalidateUserHandler drops one user's cached recommendations
func InvalidateUserHandler(svc *recommend.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		userID := c.Param("id")
		if userID == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "User ID is required",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		existed := svc.InvalidateUser(c.Request().Context(), userID)
		logging.LogWithRequestID(requestID).WithFields(map[string]interface{}{
			"user_id": userID,
			"existed": existed,
		}).Info("User cache invalidated")

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"user_id":    userID,
			"existed":    existed,
			"request_id": requestID,
		})
	}
}

// RefreshUserHandler forces a user's next request to bypass the cache
func RefreshUserHandler(svc *recommend.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		userID := c.Param("id")
		if userID == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "User ID is required",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		count := svc.RefreshUser(c.Request().Context(), userID)
		logging.LogWithRequestID(requestID).WithFields(map[string]interface{}{
			"user_id":       userID,
			"refresh_count": count,
		}).Info("User cache refresh requested")

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":       true,
			"user_id":       userID,
			"refresh_count": count,
			"request_id":    requestID,
		})
	}
}

// ClearCachesHandler empties both cache tiers
func ClearCachesHandler(svc *recommend.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		profileEntries, userEntries := svc.ClearCaches()

		logging.LogWithRequestID(requestID).WithFields(map[string]interface{}{
			"profile_entries": profileEntries,
			"user_entries":    userEntries,
		}).Info("Caches cleared")

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":         true,
			"profile_entries": profileEntries,
			"user_entries":    userEntries,
			"request_id":      requestID,
		})
	}
}
