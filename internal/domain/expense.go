package domain

import (
	"fmt"  // Error wrapping
	"time" // Expense dates
)

// Category is one of the fixed expense categories.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryHealth        Category = "Health"
	CategoryOther         Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealth,
	CategoryOther,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense Model
type Expense struct {
	ID       uint      `gorm:"primaryKey" json:"id"`                    // Primary key
	UserID   uint      `gorm:"index;not null" json:"userId"`            // Owning user
	Amount   float64   `gorm:"not null" json:"amount"`                  // Positive amount
	Category Category  `gorm:"size:32;index;not null" json:"category"` // One of Categories
	Note     string    `gorm:"size:1024" json:"note,omitempty"`         // Optional free text
	Date     time.Time `gorm:"index;not null" json:"date"`              // Day the money was spent
}

// ExpenseFields holds the mutable fields of an expense.
type ExpenseFields struct {
	Amount   float64   // Must be positive
	Category Category  // Must be one of Categories
	Note     string    // Optional
	Date     time.Time // Required
}

// Validate checks the required fields.
func (f ExpenseFields) Validate() error {
	if f.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !f.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, f.Category)
	}
	if f.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	return nil
}

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category Category `json:"category"` // Category
	Total    float64  `json:"total"`    // Summed amount
}
