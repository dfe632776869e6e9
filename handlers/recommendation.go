// File: clinicore/handlers/recommendation.go
package handlers

import (
	"errors"
	"net/http"

	"clinicore/models"
	"clinicore/services/recommendation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecommendationHandler exposes the slot recommendation endpoint.
type RecommendationHandler struct {
	Service recommendation.RecommendationService
	Logger  *zap.Logger
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(svc recommendation.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		Service: svc,
		Logger:  logger,
	}
}

// RecommendSlots handles POST /api/appointments/recommend.
//
// Soft "no results" outcomes are successful responses; only a bad reference
// (unknown clinic/physician/patient) or an unexpected fault map to error
// statuses.
func (rh *RecommendationHandler) RecommendSlots(c *gin.Context) {
	var req models.RecommendSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rh.Logger.Warn("invalid recommendation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.RecommendationResponse{
			Status:           models.RecommendationError,
			Message:          err.Error(),
			RecommendedSlots: []string{},
		})
		return
	}

	resp, err := rh.Service.RecommendSlots(c.Request.Context(), req)
	if err != nil {
		var notFound *recommendation.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusBadRequest, models.RecommendationResponse{
				Status:           models.RecommendationError,
				Message:          notFound.Message,
				RecommendedSlots: []string{},
			})
			return
		}
		rh.Logger.Error("recommendation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.RecommendationResponse{
			Status:           models.RecommendationError,
			Message:          err.Error(),
			RecommendedSlots: []string{},
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
