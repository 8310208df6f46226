package services

import (
	"testing"

	"connect_backend/internal/auth"
	"connect_backend/internal/config"
	"connect_backend/internal/email"
	"connect_backend/internal/models"
	"connect_backend/internal/services/dto"
	"connect_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Site.Name = "Connect"
	cfg.Site.BaseURL = "http://localhost:4000"
	return cfg
}

func newAccountFixture() (*fakeUserRepo, *fakeRefreshTokenRepo, *recordingEmailProvider, AccountService) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeRefreshTokenRepo()
	provider := &recordingEmailProvider{}
	sessionService := NewSessionService(userRepo, tokenRepo)
	accountService := NewAccountService(userRepo, sessionService, provider, testConfig())
	return userRepo, tokenRepo, provider, accountService
}

func seedModerator(userRepo *fakeUserRepo, emailAddr string) *models.User {
	return userRepo.add(&models.User{
		Email:       emailAddr,
		FirstName:   "Mod",
		LastName:    "Erator",
		IsActive:    true,
		IsModerator: true,
	})
}

func seedInvitedUser(t *testing.T, userRepo *fakeUserRepo) *models.User {
	t.Helper()
	token, err := auth.GenerateActivationToken()
	require.NoError(t, err)
	return userRepo.add(&models.User{
		Email:              "invited@example.com",
		FirstName:          "Invited",
		LastName:           "Member",
		AuthToken:          token,
		RegistrationMethod: models.RegistrationInvited,
	})
}

func TestRequestInvitation(t *testing.T) {
	userRepo, _, provider, service := newAccountFixture()
	seedModerator(userRepo, "mod1@example.com")
	seedModerator(userRepo, "mod2@example.com")

	err := service.RequestInvitation(&dto.RequestInvitationRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Comments:  "I help run the local meetup",
	})
	require.NoError(t, err)

	user, err := userRepo.FindByEmail("ada@example.com")
	require.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.False(t, user.AuthTokenIsUsed)
	assert.NotEmpty(t, user.AuthToken)
	assert.Equal(t, models.RegistrationRequested, user.RegistrationMethod)
	assert.Equal(t, "I help run the local meetup", user.ApplicationComments)
	require.NotNil(t, user.AppliedAt)

	// Every active moderator was alerted
	require.Len(t, provider.sent, 2)
	for _, mail := range provider.sent {
		assert.Equal(t, email.TemplateModeratorNewApplication, mail.Template)
	}
}

func TestRequestInvitation_DuplicateEmail(t *testing.T) {
	userRepo, _, _, service := newAccountFixture()
	userRepo.add(&models.User{Email: "taken@example.com", IsActive: true})

	err := service.RequestInvitation(&dto.RequestInvitationRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "taken@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRequestInvitation_EmailFailureDoesNotFail(t *testing.T) {
	userRepo, _, provider, service := newAccountFixture()
	seedModerator(userRepo, "mod@example.com")
	provider.sendErr = assert.AnError

	err := service.RequestInvitation(&dto.RequestInvitationRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)

	// The account was still created
	_, err = userRepo.FindByEmail("ada@example.com")
	assert.NoError(t, err)
}

func TestActivationState(t *testing.T) {
	userRepo, _, _, service := newAccountFixture()
	user := seedInvitedUser(t, userRepo)

	state, err := service.ActivationState(user.AuthToken)
	require.NoError(t, err)
	assert.False(t, state.TokenIsUsed)
	assert.Equal(t, "invited@example.com", state.Email)
	assert.Equal(t, "Invited", state.FirstName)
	assert.Equal(t, "Member", state.LastName)
}

func TestActivationState_UsedToken(t *testing.T) {
	userRepo, _, _, service := newAccountFixture()
	user := seedInvitedUser(t, userRepo)
	user.AuthTokenIsUsed = true

	state, err := service.ActivationState(user.AuthToken)
	require.NoError(t, err)
	assert.True(t, state.TokenIsUsed)
	assert.Empty(t, state.Email)
}

func TestActivationState_UnknownToken(t *testing.T) {
	_, _, _, service := newAccountFixture()

	_, err := service.ActivationState("no-such-token")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestActivateAccount(t *testing.T) {
	userRepo, tokenRepo, _, service := newAccountFixture()
	user := seedInvitedUser(t, userRepo)

	session, err := service.ActivateAccount(user.AuthToken, &dto.ActivateAccountRequest{
		FirstName:       "Grace",
		LastName:        "Hopper",
		Password:        "correct horse battery",
		ConfirmPassword: "correct horse battery",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, "Grace", session.User.FirstName)

	stored := userRepo.users[user.ID]
	assert.True(t, stored.IsActive)
	assert.True(t, stored.AuthTokenIsUsed)
	require.NotNil(t, stored.ActivatedAt)
	// Names submitted with the form override the invited ones
	assert.Equal(t, "Grace", stored.FirstName)
	assert.Equal(t, "Hopper", stored.LastName)
	assert.True(t, auth.CheckPasswordHash("correct horse battery", stored.PasswordHash))

	// A session row exists for the new account
	assert.Equal(t, 1, tokenRepo.countForUser(user.ID))
}

func TestActivateAccount_TokenIsSingleUse(t *testing.T) {
	userRepo, _, _, service := newAccountFixture()
	user := seedInvitedUser(t, userRepo)

	_, err := service.ActivateAccount(user.AuthToken, &dto.ActivateAccountRequest{
		FirstName:       "Grace",
		LastName:        "Hopper",
		Password:        "correct horse battery",
		ConfirmPassword: "correct horse battery",
	})
	require.NoError(t, err)

	snapshot := *userRepo.users[user.ID]

	// The second attempt submits different data; it must fail without
	// touching the account.
	_, err = service.ActivateAccount(user.AuthToken, &dto.ActivateAccountRequest{
		FirstName:       "Mallory",
		LastName:        "Malicious",
		Password:        "a different password",
		ConfirmPassword: "a different password",
	})
	assert.ErrorIs(t, err, apperrors.ErrTokenAlreadyUsed)

	stored := userRepo.users[user.ID]
	assert.Equal(t, snapshot.FirstName, stored.FirstName)
	assert.Equal(t, snapshot.LastName, stored.LastName)
	assert.Equal(t, snapshot.PasswordHash, stored.PasswordHash)
	assert.Equal(t, snapshot.ActivatedAt, stored.ActivatedAt)
	assert.True(t, stored.IsActive)
}

func TestActivateAccount_UnknownToken(t *testing.T) {
	_, _, _, service := newAccountFixture()

	_, err := service.ActivateAccount("no-such-token", &dto.ActivateAccountRequest{
		FirstName:       "Grace",
		LastName:        "Hopper",
		Password:        "correct horse battery",
		ConfirmPassword: "correct horse battery",
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
