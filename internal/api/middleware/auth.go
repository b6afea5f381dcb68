package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/banit/househunt-backend/internal/models"
	"github.com/banit/househunt-backend/internal/services"
	"github.com/banit/househunt-backend/internal/utils"
	"github.com/banit/househunt-backend/pkg/logger"
)

const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
)

// Authorizer checks a bearer token.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*services.AuthResult, error)
}

// AuthMiddleware gates a route on a valid bearer token and stores the
// token's user, when there is one, in the context.
func AuthMiddleware(auth Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.SendUnauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.SendUnauthorized(c, "Bearer token required")
			c.Abort()
			return
		}

		result, err := auth.Authorize(c.Request.Context(), strings.TrimSpace(tokenString))
		if err != nil {
			logger.WithFields(logger.Fields{"error": err}).Error("token lookup failed")
			utils.SendInternalError(c, "Failed to authorize request", nil)
			c.Abort()
			return
		}
		if !result.Authorized {
			utils.SendUnauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		if result.User != nil {
			c.Set(ContextUserKey, result.User)
			c.Set(ContextUserIDKey, result.User.ID)
		}
		c.Next()
	}
}

// RequireUser rejects requests authorized without a known user.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			utils.SendUnauthorized(c, "User session required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
