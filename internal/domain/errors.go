package domain

import "errors" // Sentinel errors

// Error taxonomy shared by the stores, services and handlers. Match with errors.Is.
var (
	ErrDuplicateEmail     = errors.New("email already registered") // Register with a taken email
	ErrInvalidCredentials = errors.New("invalid credentials")      // Unknown email or wrong password
	ErrMissingToken       = errors.New("no token provided")        // Empty Authorization header
	ErrInvalidToken       = errors.New("invalid token")            // Token held by no user
	ErrValidation         = errors.New("validation failed")        // Bad amount, category, date or period
)
