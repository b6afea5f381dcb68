package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/banit/househunt-backend/internal/api/middleware"
	"github.com/banit/househunt-backend/internal/services"
	"github.com/banit/househunt-backend/internal/utils"
)

type ReviewHandler struct {
	houseService *services.HouseService
}

func NewReviewHandler(houseService *services.HouseService) *ReviewHandler {
	return &ReviewHandler{houseService: houseService}
}

// SaveReview creates the user's review of a house or replaces their
// earlier one.
func (h *ReviewHandler) SaveReview(c *gin.Context) {
	var req services.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	review, err := h.houseService.RecordReview(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, "Failed to save review", err)
		return
	}

	utils.SendSuccess(c, "Review saved successfully", review)
}

func (h *ReviewHandler) GetHouseReviews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.houseService.HouseReviews(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to fetch reviews", err)
		return
	}

	utils.SendSuccess(c, "Reviews retrieved successfully", reviews)
}

func (h *ReviewHandler) GetHouseRating(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	average, err := h.houseService.AggregateHouseRating(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to fetch rating", err)
		return
	}

	utils.SendSuccess(c, "Rating retrieved successfully", gin.H{
		"house_id":       id,
		"average_review": average,
	})
}
