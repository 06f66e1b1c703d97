package service

import (
	"context"
	"testing"
	"time"

	"budget_bloom/internal/db"
	"budget_bloom/internal/domain"
	"budget_bloom/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ServiceTestSuite wires the services against in-memory SQLite and miniredis
type ServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	gdb      *gorm.DB
	mr       *miniredis.Miniredis
	now      time.Time
	users    *store.Users
	expenses *store.Expenses
	auth     *Auth
	goals    *Goals
	insights *Insights
}

func (s *ServiceTestSuite) SetupTest() {
	gdb, err := db.OpenMemory()
	require.NoError(s.T(), err)
	s.gdb = gdb
	s.mr = miniredis.RunT(s.T())
	rdb := redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	// Wednesday 12 March 2025, 15:00 UTC
	s.now = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	clock := func() time.Time { return s.now }

	s.ctx = context.Background()
	s.users = store.NewUsers(gdb)
	s.expenses = store.NewExpenses(gdb)
	goals := store.NewGoals(gdb)
	s.auth = NewAuth(s.users)
	s.goals = NewGoals(goals, s.expenses, rdb, time.Minute, clock)
	s.insights = NewInsights(s.expenses, goals, clock)
}

func (s *ServiceTestSuite) TearDownTest() {
	db.Close(s.gdb)
}

func (s *ServiceTestSuite) newUser(email string) *domain.User {
	token, err := s.auth.Register(s.ctx, email, "password123")
	require.NoError(s.T(), err)
	user, err := s.auth.Authenticate(s.ctx, token)
	require.NoError(s.T(), err)
	return user
}

func (s *ServiceTestSuite) spend(user *domain.User, amount float64, cat domain.Category, date time.Time) {
	_, err := s.expenses.Create(s.ctx, user.ID, domain.ExpenseFields{Amount: amount, Category: cat, Date: date})
	require.NoError(s.T(), err)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
