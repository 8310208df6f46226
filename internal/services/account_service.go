package services

import (
	"fmt"
	"time"

	"connect_backend/internal/auth"
	"connect_backend/internal/config"
	"connect_backend/internal/email"
	"connect_backend/internal/logger"
	"connect_backend/internal/models"
	"connect_backend/internal/repositories"
	"connect_backend/internal/services/dto"
	"connect_backend/pkg/apperrors"
)

type AccountService interface {
	// RequestInvitation creates an inactive account for a member of the
	// public and alerts every active moderator.
	RequestInvitation(req *dto.RequestInvitationRequest) error

	// ActivationState reports the form state for a token: the prefilled
	// names for a fresh token, or the terminal used-token state.
	ActivationState(token string) (*dto.ActivationStateResponse, error)

	// ActivateAccount consumes the token exactly once, promotes the account
	// to active and establishes a session.
	ActivateAccount(token string, req *dto.ActivateAccountRequest) (*dto.SessionResponse, error)
}

type AccountServiceImpl struct {
	userRepo       repositories.UserRepository
	sessionService SessionService
	emailProvider  email.Provider
	cfg            *config.Config
}

func NewAccountService(
	userRepo repositories.UserRepository,
	sessionService SessionService,
	emailProvider email.Provider,
	cfg *config.Config,
) AccountService {
	return &AccountServiceImpl{
		userRepo:       userRepo,
		sessionService: sessionService,
		emailProvider:  emailProvider,
		cfg:            cfg,
	}
}

// issueInactiveUser builds an inactive account holding a fresh single-use
// activation token. The caller stamps any path-specific fields and persists
// the row, so issuance itself has no side effects.
func issueInactiveUser(emailAddr, firstName, lastName string) (*models.User, error) {
	token, err := auth.GenerateActivationToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &models.User{
		Email:     emailAddr,
		FirstName: firstName,
		LastName:  lastName,
		AuthToken: token,
		IsActive:  false,
	}, nil
}

func (s *AccountServiceImpl) RequestInvitation(req *dto.RequestInvitationRequest) error {
	user, err := issueInactiveUser(req.Email, req.FirstName, req.LastName)
	if err != nil {
		return err
	}

	now := time.Now()
	user.RegistrationMethod = models.RegistrationRequested
	user.AppliedAt = &now
	user.ApplicationComments = req.Comments

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	s.notifyModerators()

	return nil
}

// notifyModerators sends one review alert per active moderator. Dispatch is
// best-effort: a failure for one recipient is logged and must not block the
// remaining recipients or the request itself.
func (s *AccountServiceImpl) notifyModerators() {
	moderators, err := s.userRepo.FindActiveModerators()
	if err != nil {
		logger.WithError(err).Warn("failed to enumerate moderators for new application alert")
		return
	}

	subject := fmt.Sprintf("New account request at %s", s.cfg.Site.Name)
	reviewURL := s.cfg.Site.BaseURL + "/moderation/review-applications"

	for _, moderator := range moderators {
		data := email.TemplateData{
			"SiteName":  s.cfg.Site.Name,
			"URL":       reviewURL,
			"Recipient": moderator.FullName(),
		}

		if err := s.emailProvider.SendTemplate(
			[]string{moderator.Email}, subject, email.TemplateModeratorNewApplication, data,
		); err != nil {
			logger.WithError(err).Warn("failed to notify moderator of new application",
				"moderator_id", moderator.ID)
			continue
		}
	}
}

func (s *AccountServiceImpl) ActivationState(token string) (*dto.ActivationStateResponse, error) {
	user, err := s.userRepo.FindByAuthToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("Activation token")
		}
		return nil, apperrors.InternalError(err)
	}

	if user.AuthTokenIsUsed {
		return &dto.ActivationStateResponse{TokenIsUsed: true}, nil
	}

	return &dto.ActivationStateResponse{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *AccountServiceImpl) ActivateAccount(token string, req *dto.ActivateAccountRequest) (*dto.SessionResponse, error) {
	user, err := s.userRepo.FindByAuthToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("Activation token")
		}
		return nil, apperrors.InternalError(err)
	}

	// Checked before anything else: a consumed token is a terminal state
	// regardless of what was submitted.
	if user.AuthTokenIsUsed {
		return nil, apperrors.ErrTokenAlreadyUsed
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	activatedAt := time.Now()
	if err := s.userRepo.Activate(user.ID, req.FirstName, req.LastName, passwordHash, activatedAt); err != nil {
		if apperrors.Is(err, repositories.ErrTokenConsumed) {
			// Lost the race against a concurrent activation
			return nil, apperrors.ErrTokenAlreadyUsed
		}
		return nil, apperrors.InternalError(err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.PasswordHash = passwordHash
	user.IsActive = true
	user.AuthTokenIsUsed = true
	user.ActivatedAt = &activatedAt

	logger.Info("account activated", "user_id", user.ID)

	return s.sessionService.EstablishSession(user)
}
