package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"careercompass-jobs/internal/logging"
	"careercompass-jobs/internal/recommend"
	"careercompass-jobs/pkg/models"
	"careercompass-jobs/pkg/utils"
)

var validate = validator.New()

// RecommendHandler handles job recommendation requests
func RecommendHandler(svc *recommend.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Recommendation request received")

		var req models.RecommendRequest
		if err := c.Bind(&req); err != nil {
			logger.WithField("error", err.Error()).Error("Failed to bind request")
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.WithField("error", err.Error()).Error("Request validation failed")
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.WithFields(map[string]interface{}{
			"skills":        len(req.Skills),
			"location":      req.Location,
			"force_refresh": req.ForceRefresh,
		}).Info("Processing recommendation request")

		result, err := svc.Recommend(c.Request().Context(), &req)
		if err != nil {
			logger.WithField("error", err.Error()).Error("Recommendation run failed")

			var custom *utils.CustomError
			if errors.As(err, &custom) {
				return c.JSON(custom.Code, models.ErrorResponse{
					Error:     "invalid_profile",
					Message:   custom.Error(),
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "recommendation_failed",
				Message:   "Failed to compute recommendations",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		response := models.RecommendResponse{
			Success:        true,
			Jobs:           result.Jobs,
			Count:          len(result.Jobs),
			Message:        result.Message,
			FromCache:      result.FromCache,
			Country:        result.Country,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		}

		logger.WithFields(map[string]interface{}{
			"processing_time": time.Since(startTime),
			"results":         len(result.Jobs),
			"from_cache":      result.FromCache,
			"country":         result.Country,
		}).Info("Recommendation request completed successfully")

		return c.JSON(http.StatusOK, response)
	}
}
