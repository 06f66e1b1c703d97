package store

import (
	"context" // Request context
	"fmt"     // Error wrapping
	"time"    // Filter bounds

	"budget_bloom/internal/domain" // Expense model

	"gorm.io/gorm" // ORM
)

// Sort orders for List.
const (
	SortNone    = ""        // Insertion order
	SortNewest  = "newest"  // Latest date first
	SortHighest = "highest" // Largest amount first
)

// Filter narrows List. Start and End are inclusive; zero values are ignored.
type Filter struct {
	Category domain.Category // Exact category match
	Start    time.Time       // Earliest date
	End      time.Time       // Latest date
	Sort     string          // One of the Sort constants
}

// Expenses is the owner-scoped expense repository.
type Expenses struct {
	db *gorm.DB
}

// NewExpenses returns the expense repository backed by db
func NewExpenses(db *gorm.DB) *Expenses {
	return &Expenses{db: db}
}

// owned starts a query over the expenses of userID
func (s *Expenses) owned(ctx context.Context, userID uint) *gorm.DB {
	return s.db.WithContext(ctx).Model(&domain.Expense{}).Where("user_id = ?", userID)
}

// Create validates fields and stores a new expense owned by userID.
func (s *Expenses) Create(ctx context.Context, userID uint, fields domain.ExpenseFields) (*domain.Expense, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	expense := domain.Expense{
		UserID:   userID,
		Amount:   fields.Amount,
		Category: fields.Category,
		Note:     fields.Note,
		Date:     storedTime(fields.Date), // UTC, whole seconds
	}
	if err := s.db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return &expense, nil
}

// List returns the expenses of userID matching filter.
func (s *Expenses) List(ctx context.Context, userID uint, filter Filter) ([]domain.Expense, error) {
	query := s.owned(ctx, userID)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if !filter.Start.IsZero() {
		query = query.Where("date >= ?", storedTime(filter.Start))
	}
	if !filter.End.IsZero() {
		query = query.Where("date <= ?", storedTime(filter.End))
	}
	switch filter.Sort {
	case SortNewest:
		query = query.Order("date desc").Order("id desc")
	case SortHighest:
		query = query.Order("amount desc").Order("id asc")
	default:
		query = query.Order("id asc")
	}
	expenses := make([]domain.Expense, 0) // Encode as [] rather than null
	if err := query.Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Update replaces every mutable field of expense id. It reports the number of
// rows matched; zero means the id is missing or owned by someone else.
func (s *Expenses) Update(ctx context.Context, id, userID uint, fields domain.ExpenseFields) (int64, error) {
	if err := fields.Validate(); err != nil {
		return 0, err
	}
	res := s.owned(ctx, userID).Where("id = ?", id).Updates(map[string]any{
		"amount":   fields.Amount,
		"category": fields.Category,
		"note":     fields.Note,
		"date":     storedTime(fields.Date),
	})
	if res.Error != nil {
		return 0, fmt.Errorf("update expense %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes expense id if owned by userID and reports the rows removed.
func (s *Expenses) Delete(ctx context.Context, id, userID uint) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Expense{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete expense %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// Sum totals the amounts of userID inside w.
func (s *Expenses) Sum(ctx context.Context, userID uint, w Window) (float64, error) {
	var total float64
	err := s.owned(ctx, userID).Scopes(inWindow(w)).
		Select("COALESCE(SUM(amount), 0)"). // 0 for an empty window
		Row().Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum expenses: %w", err)
	}
	return total, nil
}

// SumByCategory totals the amounts of userID inside w grouped by category.
func (s *Expenses) SumByCategory(ctx context.Context, userID uint, w Window) (map[domain.Category]float64, error) {
	var rows []domain.CategoryTotal
	err := s.owned(ctx, userID).Scopes(inWindow(w)).
		Select("category, SUM(amount) AS total").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("sum expenses by category: %w", err)
	}
	totals := make(map[domain.Category]float64, len(rows))
	for _, r := range rows {
		totals[r.Category] = r.Total
	}
	return totals, nil
}

// Exists reports whether userID has any expense inside w.
func (s *Expenses) Exists(ctx context.Context, userID uint, w Window) (bool, error) {
	var n int64
	if err := s.owned(ctx, userID).Scopes(inWindow(w)).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count expenses: %w", err)
	}
	return n > 0, nil
}
