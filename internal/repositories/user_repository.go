package repositories

import (
	"errors"
	"time"

	"connect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrTokenConsumed is returned by Activate when the conditional update
	// matched no rows, i.e. the token was consumed by an earlier (possibly
	// concurrent) activation.
	ErrTokenConsumed = errors.New("activation token already consumed")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByAuthToken(token string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error

	// Activate promotes an inactive account in a single conditional update
	// guarded by auth_token_is_used = false, so two concurrent attempts on
	// the same token cannot both succeed.
	Activate(userID, firstName, lastName, passwordHash string, activatedAt time.Time) error

	// Close soft-deletes the account: the row is retained, flagged closed.
	Close(userID string) error

	FindActiveModerators() ([]models.User, error)
	CountAll() (int64, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByAuthToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.Where("auth_token = ? AND auth_token != ''", token).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	// Invitations for an existing email must not overwrite the account
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(user).Updates(map[string]interface{}{
		"email":         user.Email,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"password_hash": user.PasswordHash,
		"bio":           user.Bio,
		"roles":         user.Roles,
		"updated_at":    time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Activate(userID, firstName, lastName, passwordHash string, activatedAt time.Time) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND auth_token_is_used = ?", userID, false).
		Updates(map[string]interface{}{
			"first_name":         firstName,
			"last_name":          lastName,
			"password_hash":      passwordHash,
			"is_active":          true,
			"activated_at":       activatedAt,
			"auth_token_is_used": true,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenConsumed
	}
	return nil
}

func (r *UserRepositoryImpl) Close(userID string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"is_active":  false,
		"is_closed":  true,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindActiveModerators() ([]models.User, error) {
	var moderators []models.User
	err := r.db.Where("is_moderator = ? AND is_active = ?", true, true).Find(&moderators).Error
	return moderators, err
}

func (r *UserRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
