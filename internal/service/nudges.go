package service

import (
	"context" // Request context
	"errors"  // Error matching
	"time"    // Window arithmetic

	"budget_bloom/internal/domain"   // Aggregate types
	"budget_bloom/internal/insights" // Windows and nudge rules
	"budget_bloom/internal/store"    // Repositories
)

// dashboardDays is the span of the daily spend series.
const dashboardDays = 30

// Insights derives nudges and dashboard aggregates from a user's expenses.
type Insights struct {
	expenses *store.Expenses // Spend source
	goals    *store.Goals    // Current month goal
	now      Clock           // Reference clock
}

// NewInsights returns the nudge and dashboard service
func NewInsights(expenses *store.Expenses, goals *store.Goals, now Clock) *Insights {
	return &Insights{expenses: expenses, goals: goals, now: now}
}

// Nudges returns the advisory messages for userID relative to the current time.
func (s *Insights) Nudges(ctx context.Context, userID uint) ([]string, error) {
	now := s.now()
	in := insights.NudgeInput{}

	var err error
	in.ThisWeek, err = s.expenses.SumByCategory(ctx, userID, store.Window{From: insights.StartOfWeek(now)}) // Open ended
	if err != nil {
		return nil, err
	}
	lastFrom, lastTo := insights.LastWeek(now)
	in.LastWeek, err = s.expenses.SumByCategory(ctx, userID, store.Window{From: lastFrom, To: lastTo})
	if err != nil {
		return nil, err
	}

	goal, err := s.goals.Get(ctx, userID, now.Year(), int(now.Month()))
	switch {
	case err == nil:
		in.HasGoal, in.Goal = true, goal.Amount
	case !errors.Is(err, store.ErrNotFound):
		return nil, err
	}
	monthFrom, _ := insights.MonthBounds(now)
	in.MonthTotal, err = s.expenses.Sum(ctx, userID, store.Window{From: monthFrom}) // Open ended
	if err != nil {
		return nil, err
	}

	dayFrom, dayTo := insights.DayBounds(now)
	in.SpentToday, err = s.expenses.Exists(ctx, userID, store.Window{From: dayFrom, To: dayTo})
	if err != nil {
		return nil, err
	}
	return insights.Nudges(in), nil
}

// Dashboard is the data behind the spend-by-category and daily-spend charts.
type Dashboard struct {
	ByCategory []domain.CategoryTotal `json:"byCategory"` // All-time totals
	Daily      []insights.DailyTotal  `json:"daily"`      // Last dashboardDays days
}

// Dashboard aggregates all-time category totals and the daily spend of the last 30 days.
func (s *Insights) Dashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	now := s.now()
	sums, err := s.expenses.SumByCategory(ctx, userID, store.Window{})
	if err != nil {
		return nil, err
	}
	from, to := insights.LastDays(now, dashboardDays)
	recent, err := s.expenses.List(ctx, userID, store.Filter{Start: from, End: to.Add(-time.Second)}) // End is inclusive
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		ByCategory: insights.CategoryTotals(sums),
		Daily:      insights.DailyTotals(recent, from, to, now.Location()),
	}, nil
}
