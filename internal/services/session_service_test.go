package services

import (
	"testing"
	"time"

	"connect_backend/internal/auth"
	"connect_backend/internal/models"
	"connect_backend/internal/services/dto"
	"connect_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) (*fakeUserRepo, *fakeRefreshTokenRepo, SessionService, *models.User) {
	t.Helper()
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeRefreshTokenRepo()
	service := NewSessionService(userRepo, tokenRepo)

	hash, err := auth.HashPassword("correct password")
	require.NoError(t, err)
	user := userRepo.add(&models.User{
		Email:        "member@example.com",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PasswordHash: hash,
		IsActive:     true,
	})
	return userRepo, tokenRepo, service, user
}

func TestLogin(t *testing.T) {
	_, tokenRepo, service, user := newSessionFixture(t)

	session, err := service.Login(&dto.LoginRequest{
		Email:    "member@example.com",
		Password: "correct password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, user.ID, session.User.ID)
	assert.Equal(t, 1, tokenRepo.countForUser(user.ID))

	claims, err := auth.ParseToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, _, service, _ := newSessionFixture(t)

	_, err := service.Login(&dto.LoginRequest{
		Email:    "member@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, _, service, _ := newSessionFixture(t)

	_, err := service.Login(&dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_ClosedAccount(t *testing.T) {
	userRepo, _, service, user := newSessionFixture(t)
	userRepo.users[user.ID].IsClosed = true

	_, err := service.Login(&dto.LoginRequest{
		Email:    "member@example.com",
		Password: "correct password",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountClosed)
}

func TestLogin_InactiveAccount(t *testing.T) {
	userRepo, _, service, user := newSessionFixture(t)
	userRepo.users[user.ID].IsActive = false

	_, err := service.Login(&dto.LoginRequest{
		Email:    "member@example.com",
		Password: "correct password",
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestRefresh(t *testing.T) {
	_, tokenRepo, service, user := newSessionFixture(t)

	session, err := service.Login(&dto.LoginRequest{
		Email:    "member@example.com",
		Password: "correct password",
	})
	require.NoError(t, err)

	refreshed, err := service.Refresh(session.RefreshToken)
	require.NoError(t, err)

	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, session.RefreshToken, refreshed.RefreshToken)

	claims, err := auth.ParseToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// The refresh token row survives; no extra session was created
	assert.Equal(t, 1, tokenRepo.countForUser(user.ID))
}

func TestRefresh_UnknownToken(t *testing.T) {
	_, _, service, _ := newSessionFixture(t)

	_, err := service.Refresh("no-such-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	_, tokenRepo, service, user := newSessionFixture(t)

	require.NoError(t, tokenRepo.Create(&models.RefreshToken{
		UserID:    user.ID,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := service.Refresh("expired-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefresh_ClosedAccount(t *testing.T) {
	userRepo, _, service, user := newSessionFixture(t)

	session, err := service.Login(&dto.LoginRequest{
		Email:    "member@example.com",
		Password: "correct password",
	})
	require.NoError(t, err)

	userRepo.users[user.ID].IsClosed = true

	_, err = service.Refresh(session.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrAccountClosed)
}

func TestLogout(t *testing.T) {
	_, tokenRepo, service, user := newSessionFixture(t)

	session, err := service.Login(&dto.LoginRequest{
		Email:    "member@example.com",
		Password: "correct password",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(session.RefreshToken))
	assert.Zero(t, tokenRepo.countForUser(user.ID))

	// A second logout with the same token fails
	assert.ErrorIs(t, service.Logout(session.RefreshToken), apperrors.ErrInvalidToken)
}
