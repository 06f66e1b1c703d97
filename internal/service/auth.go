// Package service implements the credential, goal and nudge operations on top of the stores.
package service

import (
	"context" // Request context
	"errors"  // Error matching
	"fmt"     // Error wrapping
	"strings" // Email normalization

	"budget_bloom/internal/domain" // User model and errors
	"budget_bloom/internal/store"  // User repository
	"budget_bloom/internal/utils"  // Password hashing and tokens
)

// Auth registers users, logs them in and resolves bearer tokens.
type Auth struct {
	users *store.Users
}

// NewAuth returns the credential service over users
func NewAuth(users *store.Users) *Auth {
	return &Auth{users: users}
}

// NormalizeEmail lower-cases and trims an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and returns its first token.
func (a *Auth) Register(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)
	taken, err := a.users.EmailTaken(ctx, email)
	if err != nil {
		return "", fmt.Errorf("check email: %w", err)
	}
	if taken {
		return "", domain.ErrDuplicateEmail
	}
	salt, hash, err := utils.HashPassword(password, "") // Fresh random salt
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	token, err := utils.GenerateToken()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	user := domain.User{Email: email, Salt: salt, Hash: hash, Token: &token}
	if err := a.users.Create(ctx, &user); err != nil {
		return "", err
	}
	return token, nil
}

// Login verifies credentials and replaces the user's token with a fresh one.
// Unknown emails and wrong passwords both yield domain.ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	user, err := a.users.ByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if !utils.VerifyPassword(password, user.Salt, user.Hash) {
		return "", domain.ErrInvalidCredentials // Same error as an unknown email
	}
	token, err := utils.GenerateToken()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	if err := a.users.SetToken(ctx, user.ID, token); err != nil { // Previous token stops working
		return "", fmt.Errorf("store token: %w", err)
	}
	return token, nil
}

// Authenticate resolves token to its user.
func (a *Auth) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	user, err := a.users.ByToken(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domain.ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("find token: %w", err)
	}
	return user, nil
}
