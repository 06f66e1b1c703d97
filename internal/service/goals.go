package service

import (
	"context" // Request context
	"errors"  // Error matching
	"fmt"     // Error wrapping
	"strconv" // Key formatting
	"time"    // Clock and TTL

	"budget_bloom/internal/domain"   // Goal model and summary
	"budget_bloom/internal/insights" // Month windows
	"budget_bloom/internal/store"    // Repositories
	"budget_bloom/internal/utils"    // Cache helpers

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// Clock returns the current time. Swapped out in tests.
type Clock func() time.Time

// Goals tracks monthly savings goals and caches their summaries in Redis.
type Goals struct {
	goals    *store.Goals    // Goal repository
	expenses *store.Expenses // Spend source
	rdb      *redis.Client   // nil disables caching
	ttl      time.Duration   // Lifetime of cached summaries
	now      Clock           // Reference clock
}

// NewGoals returns the goal tracker. rdb may be nil.
func NewGoals(goals *store.Goals, expenses *store.Expenses, rdb *redis.Client, ttl time.Duration, now Clock) *Goals {
	return &Goals{goals: goals, expenses: expenses, rdb: rdb, ttl: ttl, now: now}
}

// summaryKey holds one field per cached month of a user
func summaryKey(userID uint) string {
	return "goalsummary:user:" + strconv.FormatUint(uint64(userID), 10)
}

// summaryVersionKey counts the invalidations of summaryKey
func summaryVersionKey(userID uint) string {
	return summaryKey(userID) + ":version"
}

func periodField(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// CurrentPeriod returns the year and month of now.
func (g *Goals) CurrentPeriod() (int, int) {
	now := g.now()
	return now.Year(), int(now.Month())
}

// SetGoal upserts the goal of userID for a month.
func (g *Goals) SetGoal(ctx context.Context, userID uint, year, month int, amount float64) (*domain.Goal, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if year < 1 {
		return nil, fmt.Errorf("%w: year must be positive", domain.ErrValidation)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation)
	}
	goal, err := g.goals.Upsert(ctx, userID, year, month, amount)
	if err != nil {
		return nil, err
	}
	g.Invalidate(ctx, userID) // Cached summaries carry the old target
	return goal, nil
}

// Summary reports progress of userID against the goal of a month.
func (g *Goals) Summary(ctx context.Context, userID uint, year, month int) (domain.GoalSummary, error) {
	key, field := summaryKey(userID), periodField(year, month)
	var summary domain.GoalSummary
	found, err := utils.GetCacheField(ctx, g.rdb, key, field, &summary)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Goal summary cache read failed")
	}
	if found && err == nil {
		return summary, nil // Cache hit
	}

	// Read the version before the database so a concurrent invalidation wins
	version, verr := utils.CacheVersion(ctx, g.rdb, summaryVersionKey(userID))
	if verr != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": verr.Error()}).Warn("Goal summary cache version read failed")
	}

	from, to := insights.PeriodBounds(year, time.Month(month), g.now().Location())
	spent, err := g.expenses.Sum(ctx, userID, store.Window{From: from, To: to})
	if err != nil {
		return domain.GoalSummary{}, err
	}
	var target float64
	goal, err := g.goals.Get(ctx, userID, year, month)
	switch {
	case err == nil:
		target = goal.Amount
	case !errors.Is(err, store.ErrNotFound):
		return domain.GoalSummary{}, err
	}
	summary = domain.NewGoalSummary(target, spent)

	if verr == nil {
		if _, err := utils.SetCacheFieldAtVersion(ctx, g.rdb, summaryVersionKey(userID), version, key, field, summary, g.ttl); err != nil {
			logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Goal summary cache write failed")
		}
	}
	return summary, nil
}

// Invalidate drops every cached summary of userID. Called after any expense or goal write.
func (g *Goals) Invalidate(ctx context.Context, userID uint) {
	if err := utils.InvalidateCache(ctx, g.rdb, summaryVersionKey(userID), summaryKey(userID)); err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Goal summary cache invalidation failed")
	}
}
