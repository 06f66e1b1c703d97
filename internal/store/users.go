package store

import (
	"context" // Request context
	"errors"  // Error matching
	"fmt"     // Error wrapping

	"budget_bloom/internal/domain" // User model

	"gorm.io/gorm" // ORM
)

// Users persists credentials and the current bearer token.
type Users struct {
	db *gorm.DB
}

// NewUsers returns the user repository backed by db
func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// Create inserts user. A taken email yields domain.ErrDuplicateEmail.
func (s *Users) Create(ctx context.Context, user *domain.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) { // Unique email index, translated by TranslateError
		return fmt.Errorf("create user %s: %w", user.Email, domain.ErrDuplicateEmail)
	}
	return err
}

// EmailTaken reports whether a user with email exists.
func (s *Users) EmailTaken(ctx context.Context, email string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

// ByEmail returns the user registered with email or ErrNotFound
func (s *Users) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// ByToken returns the user currently holding token or ErrNotFound
func (s *Users) ByToken(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// SetToken replaces the stored token of the user, invalidating the previous one.
func (s *Users) SetToken(ctx context.Context, userID uint, token string) error {
	res := s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", userID).Update("token", token)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound // No such user
	}
	return nil
}
