package service

import (
	"time"

	"budget_bloom/internal/domain"
	"budget_bloom/internal/insights"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The suite clock is Wednesday 2025-03-12 15:00 UTC: this week starts Sunday 03-09,
// last week covers 03-02 up to 03-09.

func (s *ServiceTestSuite) TestNudgesFoodDoubled() {
	user := s.newUser("ann@example.com")
	s.spend(user, 50, domain.CategoryFood, time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC))
	s.spend(user, 120, domain.CategoryFood, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	nudges, err := s.insights.Nudges(s.ctx, user.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{insights.GreetingNudge, "Food spending doubled this week!"}, nudges)
}

func (s *ServiceTestSuite) TestNudgesFoodNotDoubled() {
	user := s.newUser("ann@example.com")
	s.spend(user, 50, domain.CategoryFood, time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC))
	s.spend(user, 90, domain.CategoryFood, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	nudges, err := s.insights.Nudges(s.ctx, user.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{insights.GreetingNudge}, nudges)
}

func (s *ServiceTestSuite) TestNudgesHalfwayAndToday() {
	user := s.newUser("ann@example.com")
	_, err := s.goals.SetGoal(s.ctx, user.ID, 2025, 3, 200)
	require.NoError(s.T(), err)
	s.spend(user, 80, domain.CategoryHealth, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	s.spend(user, 30, domain.CategoryOther, time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC))

	nudges, err := s.insights.Nudges(s.ctx, user.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{insights.GreetingNudge, insights.HalfwayNudge, insights.NoSpendNudge}, nudges)
}

func (s *ServiceTestSuite) TestNoSpendNudgeOnlyForToday() {
	user := s.newUser("ann@example.com")
	s.spend(user, 30, domain.CategoryOther, time.Date(2025, 3, 11, 23, 59, 0, 0, time.UTC))
	s.spend(user, 30, domain.CategoryOther, time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC))

	nudges, err := s.insights.Nudges(s.ctx, user.ID)
	require.NoError(s.T(), err)
	assert.NotContains(s.T(), nudges, insights.NoSpendNudge)
}

func (s *ServiceTestSuite) TestNudgesIgnoreOtherUsers() {
	user := s.newUser("ann@example.com")
	other := s.newUser("ben@example.com")
	s.spend(other, 30, domain.CategoryOther, time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC))

	nudges, err := s.insights.Nudges(s.ctx, user.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{insights.GreetingNudge}, nudges)
}

func (s *ServiceTestSuite) TestDashboard() {
	user := s.newUser("ann@example.com")
	s.spend(user, 10, domain.CategoryFood, time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC))
	s.spend(user, 5, domain.CategoryFood, time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC))
	s.spend(user, 7, domain.CategoryHealth, time.Date(2024, 12, 1, 8, 0, 0, 0, time.UTC))

	dash, err := s.insights.Dashboard(s.ctx, user.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []domain.CategoryTotal{
		{Category: domain.CategoryFood, Total: 15},
		{Category: domain.CategoryHealth, Total: 7},
	}, dash.ByCategory)

	require.Len(s.T(), dash.Daily, 30)
	assert.Equal(s.T(), insights.DailyTotal{Date: "2025-03-12", Amount: 10}, dash.Daily[29])
	assert.Equal(s.T(), insights.DailyTotal{Date: "2025-03-11", Amount: 5}, dash.Daily[28])
	assert.Equal(s.T(), "2025-02-11", dash.Daily[0].Date)
}
