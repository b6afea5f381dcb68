package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/banit/househunt-backend/internal/api/middleware"
	"github.com/banit/househunt-backend/internal/services"
	"github.com/banit/househunt-backend/internal/utils"
)

// ChangePassword replaces the password and ends the current session; the
// client must log in again.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), c.GetUint(middleware.ContextUserIDKey), req); err != nil {
		respondError(c, "Failed to change password", err)
		return
	}

	utils.SendSuccess(c, "Password changed successfully, please log in again", nil)
}
