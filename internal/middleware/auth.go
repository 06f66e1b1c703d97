package middleware

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"budget_bloom/internal/domain"  // Error taxonomy
	"budget_bloom/internal/service" // Token resolution

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UserKey is the gin context key holding the authenticated *domain.User
const UserKey = "user"

// TokenAuthMiddleware resolves the raw Authorization header to a user
func TokenAuthMiddleware(auth *service.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization") // Raw token, no scheme prefix
		user, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case errors.Is(err, domain.ErrMissingToken):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		case errors.Is(err, domain.ErrInvalidToken):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			return
		case err != nil:
			logrus.WithField("error", err.Error()).Error("Token lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		c.Set(UserKey, user) // Store user in context
		c.Next()             // Proceed to the next handler
	}
}

// CurrentUser returns the user stored by TokenAuthMiddleware
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
