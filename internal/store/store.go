// Package store holds the GORM backed repositories. Every expense and goal
// query is scoped by the owning user id.
package store

import (
	"errors" // Error matching
	"time"   // Window bounds

	"gorm.io/gorm" // ORM
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Window is a half-open time range [From, To). A zero bound is unbounded.
type Window struct {
	From time.Time // Inclusive
	To   time.Time // Exclusive
}

// storedTime normalizes a timestamp to the representation written to the database.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// inWindow is a scope restricting the date column to w
func inWindow(w Window) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !w.From.IsZero() {
			db = db.Where("date >= ?", storedTime(w.From))
		}
		if !w.To.IsZero() {
			db = db.Where("date < ?", storedTime(w.To))
		}
		return db
	}
}

// notFound maps GORM's missing-row error to ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
