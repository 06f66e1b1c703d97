package service

import (
	"budget_bloom/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *ServiceTestSuite) TestRegisterDuplicateEmail() {
	token, err := s.auth.Register(s.ctx, "ann@example.com", "password123")
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), token)

	_, err = s.auth.Register(s.ctx, "ann@example.com", "another")
	assert.ErrorIs(s.T(), err, domain.ErrDuplicateEmail)

	_, err = s.auth.Register(s.ctx, "  ANN@Example.com ", "another")
	assert.ErrorIs(s.T(), err, domain.ErrDuplicateEmail, "emails compare case-insensitively")
}

func (s *ServiceTestSuite) TestRegisterTokenAuthenticates() {
	token, err := s.auth.Register(s.ctx, "ann@example.com", "password123")
	require.NoError(s.T(), err)

	user, err := s.auth.Authenticate(s.ctx, token)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "ann@example.com", user.Email)
	assert.NotEqual(s.T(), "password123", user.Hash)
}

func (s *ServiceTestSuite) TestLoginInvalidCredentials() {
	_, err := s.auth.Register(s.ctx, "ann@example.com", "password123")
	require.NoError(s.T(), err)

	_, err = s.auth.Login(s.ctx, "ann@example.com", "wrong")
	assert.ErrorIs(s.T(), err, domain.ErrInvalidCredentials)

	_, err = s.auth.Login(s.ctx, "nobody@example.com", "password123")
	assert.ErrorIs(s.T(), err, domain.ErrInvalidCredentials)
}

func (s *ServiceTestSuite) TestLoginInvalidatesPreviousToken() {
	first, err := s.auth.Register(s.ctx, "ann@example.com", "password123")
	require.NoError(s.T(), err)

	second, err := s.auth.Login(s.ctx, "ANN@example.com", "password123")
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), first, second)

	_, err = s.auth.Authenticate(s.ctx, first)
	assert.ErrorIs(s.T(), err, domain.ErrInvalidToken)

	user, err := s.auth.Authenticate(s.ctx, second)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "ann@example.com", user.Email)
}

func (s *ServiceTestSuite) TestAuthenticateMissingToken() {
	_, err := s.auth.Authenticate(s.ctx, "")
	assert.ErrorIs(s.T(), err, domain.ErrMissingToken)

	_, err = s.auth.Authenticate(s.ctx, "deadbeef")
	assert.ErrorIs(s.T(), err, domain.ErrInvalidToken)
}
