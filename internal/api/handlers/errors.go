package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/banit/househunt-backend/internal/services"
	"github.com/banit/househunt-backend/internal/utils"
	"github.com/banit/househunt-backend/pkg/logger"
)

// respondError maps service errors to HTTP statuses. Unexpected errors are
// logged and reported without detail.
func respondError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.SendError(c, http.StatusBadRequest, message, err)
	case errors.Is(err, services.ErrUnauthorized):
		utils.SendError(c, http.StatusUnauthorized, message, err)
	case errors.Is(err, services.ErrNotFound):
		utils.SendNotFound(c, message)
	case errors.Is(err, services.ErrConflict):
		utils.SendError(c, http.StatusConflict, message, err)
	default:
		logger.WithFields(logger.Fields{
			"path":  c.FullPath(),
			"error": err,
		}).Error(message)
		utils.SendInternalError(c, message, nil)
	}
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		utils.SendValidationError(c, "Invalid "+param)
		return 0, false
	}
	return uint(id), true
}

// queryFloat reads a required float query parameter.
func queryFloat(c *gin.Context, name string) (float64, bool) {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		utils.SendValidationError(c, "Invalid or missing "+name)
		return 0, false
	}
	return v, true
}

// optionalFloat reads a float query parameter, using def when absent.
func optionalFloat(c *gin.Context, name string, def float64) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		utils.SendValidationError(c, "Invalid "+name)
		return 0, false
	}
	return v, true
}
