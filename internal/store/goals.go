package store

import (
	"context"
	"fmt"

	"budget_bloom/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Goals stores one target amount per user per calendar month.
type Goals struct {
	db *gorm.DB
}

// NewGoals returns the goal repository backed by db
func NewGoals(db *gorm.DB) *Goals {
	return &Goals{db: db}
}

// Upsert writes amount for (userID, year, month), replacing any existing goal.
func (s *Goals) Upsert(ctx context.Context, userID uint, year, month int, amount float64) (*domain.Goal, error) {
	goal := domain.Goal{UserID: userID, Year: year, Month: month, Amount: amount}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "year"}, {Name: "month"}}, // idx_goal_period
		DoUpdates: clause.AssignmentColumns([]string{"amount"}),                        // Only the target changes
	}).Create(&goal).Error
	if err != nil {
		return nil, fmt.Errorf("upsert goal: %w", err)
	}
	return s.Get(ctx, userID, year, month)
}

// Get returns the goal for (userID, year, month) or ErrNotFound.
func (s *Goals) Get(ctx context.Context, userID uint, year, month int) (*domain.Goal, error) {
	var goal domain.Goal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month). // Zero values must still match literally
		First(&goal).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &goal, nil
}
