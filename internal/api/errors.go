package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"budget_bloom/internal/domain" // Error taxonomy

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// statusFor maps a domain error to its HTTP status and public message
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrMissingToken):
		return http.StatusUnauthorized, "No token provided"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, "Invalid token"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes err as {"message": ...}; unexpected errors are logged with fields
func respondError(c *gin.Context, err error, fields logrus.Fields) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		if fields == nil {
			fields = logrus.Fields{}
		}
		fields["error"] = err.Error()
		fields["path"] = c.FullPath()
		logrus.WithFields(fields).Error("Request failed")
	}
	c.JSON(status, gin.H{"message": message})
}
