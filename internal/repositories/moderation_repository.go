package repositories

import (
	"connect_backend/internal/models"

	"gorm.io/gorm"
)

type ModerationRepository interface {
	// FindPendingApplications lists requested accounts awaiting review:
	// created via the invitation-request path and not yet activated.
	FindPendingApplications() ([]models.User, error)
	FindOpenAbuseReports() ([]models.AbuseReport, error)
	FindLogs(limit int) ([]models.ModerationLogRecord, error)
	LogEvent(record *models.ModerationLogRecord) error
}

type ModerationRepositoryImpl struct {
	db *gorm.DB
}

func NewModerationRepository(db *gorm.DB) ModerationRepository {
	return &ModerationRepositoryImpl{db: db}
}

func (r *ModerationRepositoryImpl) FindPendingApplications() ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("registration_method = ? AND is_active = ? AND auth_token_is_used = ?",
			models.RegistrationRequested, false, false).
		Order("applied_at").
		Find(&users).Error
	return users, err
}

func (r *ModerationRepositoryImpl) FindOpenAbuseReports() ([]models.AbuseReport, error) {
	var reports []models.AbuseReport
	err := r.db.Preload("LoggedBy").Preload("LoggedAgainst").
		Where("decision = ?", "").
		Order("created_at").
		Find(&reports).Error
	return reports, err
}

func (r *ModerationRepositoryImpl) FindLogs(limit int) ([]models.ModerationLogRecord, error) {
	var records []models.ModerationLogRecord
	err := r.db.Preload("Moderator").Preload("TargetUser").
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *ModerationRepositoryImpl) LogEvent(record *models.ModerationLogRecord) error {
	return r.db.Create(record).Error
}
