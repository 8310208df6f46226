package services

import (
	"time"

	"connect_backend/internal/auth"
	"connect_backend/internal/models"
	"connect_backend/internal/repositories"
	"connect_backend/internal/services/dto"
	"connect_backend/pkg/apperrors"
)

const refreshTokenTTL = 30 * 24 * time.Hour

// SessionService is the session collaborator: it establishes a session for an
// account and tears it down again. The activation and settings workflows only
// ever talk to this boundary.
type SessionService interface {
	Login(req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(refreshToken string) error

	// Refresh issues a new access token against a live refresh token.
	Refresh(refreshToken string) (*dto.SessionResponse, error)

	// EstablishSession issues a session for an already-authenticated account
	// (used right after activation).
	EstablishSession(user *models.User) (*dto.SessionResponse, error)

	// TerminateAll revokes every session the user holds.
	TerminateAll(userID string) error
}

type SessionServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewSessionService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) SessionService {
	return &SessionServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

func (s *SessionServiceImpl) Login(req *dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.IsClosed {
		return nil, apperrors.ErrAccountClosed
	}
	if !user.IsActive {
		return nil, apperrors.ErrForbidden
	}

	return s.EstablishSession(user)
}

func (s *SessionServiceImpl) Logout(refreshToken string) error {
	if err := s.refreshTokenRepo.Delete(refreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SessionServiceImpl) Refresh(refreshToken string) (*dto.SessionResponse, error) {
	record, err := s.refreshTokenRepo.Find(refreshToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(record.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if user.IsClosed {
		return nil, apperrors.ErrAccountClosed
	}
	if !user.IsActive {
		return nil, apperrors.ErrForbidden
	}

	accessToken, expiresAt, err := auth.GenerateToken(user.ID, user.IsModerator)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SessionResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt.Unix(),
		User:         toUserResponse(user),
	}, nil
}

func (s *SessionServiceImpl) EstablishSession(user *models.User) (*dto.SessionResponse, error) {
	accessToken, expiresAt, err := auth.GenerateToken(user.ID, user.IsModerator)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.refreshTokenRepo.Create(&models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SessionResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt.Unix(),
		User:         toUserResponse(user),
	}, nil
}

func (s *SessionServiceImpl) TerminateAll(userID string) error {
	if err := s.refreshTokenRepo.DeleteAllForUser(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Bio:         user.Bio,
		Roles:       user.GetRoles(),
		IsModerator: user.IsModerator,
	}
}
