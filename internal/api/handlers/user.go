package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/banit/househunt-backend/internal/api/middleware"
	"github.com/banit/househunt-backend/internal/services"
	"github.com/banit/househunt-backend/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), c.GetUint(middleware.ContextUserIDKey), req)
	if err != nil {
		respondError(c, "Failed to update profile", err)
		return
	}

	utils.SendSuccess(c, "Profile updated successfully", user)
}

func (h *UserHandler) UpdateLocation(c *gin.Context) {
	var req services.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	user, err := h.userService.UpdateLocation(c.Request.Context(), c.GetUint(middleware.ContextUserIDKey), req)
	if err != nil {
		respondError(c, "Failed to update location", err)
		return
	}

	utils.SendSuccess(c, "Location updated successfully", user)
}

func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	var req services.PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	pref, err := h.userService.UpdatePreferences(c.Request.Context(), c.GetUint(middleware.ContextUserIDKey), req)
	if err != nil {
		respondError(c, "Failed to update preferences", err)
		return
	}

	utils.SendSuccess(c, "Preferences updated successfully", pref)
}

func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		utils.SendValidationError(c, "Image file is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.SendValidationError(c, "Unable to read image")
		return
	}
	defer file.Close()

	user, err := h.userService.UploadProfileImage(c.Request.Context(), c.GetUint(middleware.ContextUserIDKey), file, header)
	if err != nil {
		respondError(c, "Failed to upload profile image", err)
		return
	}

	utils.SendSuccess(c, "Profile image updated successfully", user)
}

func (h *UserHandler) SendFeedback(c *gin.Context) {
	var req services.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	feedback, err := h.userService.SendFeedback(c.Request.Context(), c.GetUint(middleware.ContextUserIDKey), req)
	if err != nil {
		respondError(c, "Failed to send feedback", err)
		return
	}

	utils.SendCreated(c, "Thank you, we have received your feedback", feedback)
}

func (h *UserHandler) GetNotifications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(utils.DefaultPageSize)))

	result, err := h.userService.Notifications(c.Request.Context(), c.GetUint(middleware.ContextUserIDKey), page, perPage)
	if err != nil {
		respondError(c, "Failed to fetch notifications", err)
		return
	}

	utils.SendSuccess(c, "Notifications retrieved successfully", result)
}

// DeleteAccount soft-deletes the caller's account and logs them out.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	if err := h.userService.DeleteAccount(c.Request.Context(), c.GetUint(middleware.ContextUserIDKey)); err != nil {
		respondError(c, "Failed to delete account", err)
		return
	}

	utils.SendSuccess(c, "Your account has been deleted", nil)
}
