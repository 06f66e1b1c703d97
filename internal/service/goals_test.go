package service

import (
	"time"

	"budget_bloom/internal/domain"
	"budget_bloom/internal/store"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *ServiceTestSuite) TestSummaryWithoutGoal() {
	user := s.newUser("ann@example.com")
	s.spend(user, 40, domain.CategoryFood, time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC))

	summary, err := s.goals.Summary(s.ctx, user.ID, 2025, 3)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.GoalSummary{Spent: 40}, summary)
}

func (s *ServiceTestSuite) TestSummaryUnderGoal() {
	user := s.newUser("ann@example.com")
	_, err := s.goals.SetGoal(s.ctx, user.ID, 2025, 3, 1000)
	require.NoError(s.T(), err)
	s.spend(user, 400, domain.CategoryShopping, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	s.spend(user, 200, domain.CategoryFood, time.Date(2025, 3, 31, 22, 0, 0, 0, time.UTC))
	s.spend(user, 900, domain.CategoryFood, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	s.spend(user, 900, domain.CategoryFood, time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC))

	summary, err := s.goals.Summary(s.ctx, user.ID, 2025, 3)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.GoalSummary{Goal: 1000, Spent: 600, Percent: 60, Remaining: 400}, summary)
}

func (s *ServiceTestSuite) TestSummaryOverspending() {
	user := s.newUser("ann@example.com")
	_, err := s.goals.SetGoal(s.ctx, user.ID, 2025, 3, 1000)
	require.NoError(s.T(), err)
	s.spend(user, 1200, domain.CategoryShopping, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))

	summary, err := s.goals.Summary(s.ctx, user.ID, 2025, 3)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.GoalSummary{Goal: 1000, Spent: 1200, Percent: 100, Remaining: 0, Overspending: true}, summary)
}

func (s *ServiceTestSuite) TestSetGoalUpsertsAndValidates() {
	user := s.newUser("ann@example.com")
	_, err := s.goals.SetGoal(s.ctx, user.ID, 2025, 3, 0)
	assert.ErrorIs(s.T(), err, domain.ErrValidation)
	_, err = s.goals.SetGoal(s.ctx, user.ID, 2025, 13, 10)
	assert.ErrorIs(s.T(), err, domain.ErrValidation)
	_, err = s.goals.SetGoal(s.ctx, user.ID, 0, 3, 10)
	assert.ErrorIs(s.T(), err, domain.ErrValidation)

	_, err = s.goals.SetGoal(s.ctx, user.ID, 2025, 3, 500)
	require.NoError(s.T(), err)
	goal, err := s.goals.SetGoal(s.ctx, user.ID, 2025, 3, 750)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 750.0, goal.Amount)

	var n int64
	require.NoError(s.T(), s.gdb.Model(&domain.Goal{}).Count(&n).Error)
	assert.Equal(s.T(), int64(1), n)
}

func (s *ServiceTestSuite) TestSummaryCacheInvalidation() {
	user := s.newUser("ann@example.com")
	_, err := s.goals.SetGoal(s.ctx, user.ID, 2025, 3, 100)
	require.NoError(s.T(), err)

	first, err := s.goals.Summary(s.ctx, user.ID, 2025, 3)
	require.NoError(s.T(), err)
	assert.Zero(s.T(), first.Spent)
	assert.True(s.T(), s.mr.Exists(summaryKey(user.ID)), "summary should be cached")

	// Writes that bypass the service are not seen until invalidation
	s.spend(user, 30, domain.CategoryFood, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	cached, err := s.goals.Summary(s.ctx, user.ID, 2025, 3)
	require.NoError(s.T(), err)
	assert.Zero(s.T(), cached.Spent)

	s.goals.Invalidate(s.ctx, user.ID)
	assert.False(s.T(), s.mr.Exists(summaryKey(user.ID)))
	fresh, err := s.goals.Summary(s.ctx, user.ID, 2025, 3)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 30.0, fresh.Spent)
}

func (s *ServiceTestSuite) TestSummaryNotCachedAcrossInvalidation() {
	user := s.newUser("ann@example.com")
	_, err := s.goals.SetGoal(s.ctx, user.ID, 2025, 3, 100)
	require.NoError(s.T(), err)

	// The clock is read while the summary is computed; an invalidation lands right then
	rdb := redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	racing := NewGoals(store.NewGoals(s.gdb), s.expenses, rdb, time.Minute, func() time.Time {
		s.mr.Set(summaryVersionKey(user.ID), "99")
		return s.now
	})
	summary, err := racing.Summary(s.ctx, user.ID, 2025, 3)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 100.0, summary.Goal)
	assert.False(s.T(), s.mr.Exists(summaryKey(user.ID)), "summary computed before the invalidation must not be cached")

	_, err = s.goals.Summary(s.ctx, user.ID, 2025, 3)
	require.NoError(s.T(), err)
	assert.True(s.T(), s.mr.Exists(summaryKey(user.ID)))
}

func (s *ServiceTestSuite) TestCurrentPeriod() {
	year, month := s.goals.CurrentPeriod()
	assert.Equal(s.T(), 2025, year)
	assert.Equal(s.T(), 3, month)
}
