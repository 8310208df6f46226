package services

import (
	"connect_backend/internal/auth"
	"connect_backend/internal/logger"
	"connect_backend/internal/repositories"
	"connect_backend/internal/services/dto"
	"connect_backend/pkg/apperrors"
)

type SettingsService interface {
	// UpdateSettings changes the account email and, when a new password was
	// submitted, replaces the stored credential. An absent password keeps
	// the current one.
	UpdateSettings(userID string, req *dto.UpdateSettingsRequest) error

	// CloseAccount soft-deletes the account after the password is
	// re-confirmed, then terminates every session the user holds.
	CloseAccount(userID string, req *dto.CloseAccountRequest) error
}

type SettingsServiceImpl struct {
	userRepo       repositories.UserRepository
	sessionService SessionService
}

func NewSettingsService(
	userRepo repositories.UserRepository,
	sessionService SessionService,
) SettingsService {
	return &SettingsServiceImpl{
		userRepo:       userRepo,
		sessionService: sessionService,
	}
}

func (s *SettingsServiceImpl) UpdateSettings(userID string, req *dto.UpdateSettingsRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if user.Email != req.Email {
		if existing, err := s.userRepo.FindByEmail(req.Email); err == nil && existing.ID != user.ID {
			return apperrors.ErrEmailAlreadyExists
		}
		user.Email = req.Email
	}

	if req.ResetPassword != "" {
		hash, err := auth.HashPassword(req.ResetPassword)
		if err != nil {
			return apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *SettingsServiceImpl) CloseAccount(userID string, req *dto.CloseAccountRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.Close(userID); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.sessionService.TerminateAll(userID); err != nil {
		return err
	}

	logger.Info("account closed", "user_id", userID)
	return nil
}
