package api

import (
	"net/http" // HTTP status codes

	"budget_bloom/internal/middleware" // Current user lookup
	"budget_bloom/internal/service"    // Credential operations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CredentialsRequest is the body of register and login
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"` // Email must be provided
	Password string `json:"password" binding:"required"`    // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // Opaque bearer token
}

// RegisterHandler creates a user and returns its first token
func RegisterHandler(auth *service.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
			return
		}
		token, err := auth.Register(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err, logrus.Fields{"email": req.Email})
			return
		}
		logrus.WithField("email", service.NormalizeEmail(req.Email)).Info("User registered")
		c.JSON(http.StatusCreated, AuthResponse{Token: token})
	}
}

// LoginHandler verifies credentials and returns a fresh token
func LoginHandler(auth *service.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Malformed credentials are reported like wrong ones
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		token, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err, logrus.Fields{"email": req.Email})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token}) // Return the token in the response
	}
}

// ProfileHandler returns the email of the authenticated user
func ProfileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	}
}
