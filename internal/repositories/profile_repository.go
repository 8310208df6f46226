package repositories

import (
	"connect_backend/internal/models"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	FindSkillsByUser(userID string) ([]models.UserSkill, error)
	FindLinksByUser(userID string) ([]models.UserLink, error)

	// ReplaceSkills and ReplaceLinks implement the full-replace lifecycle:
	// every existing record owned by the user is deleted and the new set is
	// bulk-inserted, both inside one transaction.
	ReplaceSkills(userID string, skills []models.UserSkill) error
	ReplaceLinks(userID string, links []models.UserLink) error

	// SetLinkBrand persists the best-effort brand annotation on one link.
	SetLinkBrand(linkID, brandID string) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindSkillsByUser(userID string) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	err := r.db.Where("user_id = ?", userID).Order("skill").Find(&skills).Error
	return skills, err
}

func (r *ProfileRepositoryImpl) FindLinksByUser(userID string) ([]models.UserLink, error) {
	var links []models.UserLink
	err := r.db.Preload("Brand").Where("user_id = ?", userID).Order("anchor").Find(&links).Error
	return links, err
}

func (r *ProfileRepositoryImpl) ReplaceSkills(userID string, skills []models.UserSkill) error {
	return replaceOwned(r.db, userID, skills)
}

func (r *ProfileRepositoryImpl) ReplaceLinks(userID string, links []models.UserLink) error {
	return replaceOwned(r.db, userID, links)
}

func (r *ProfileRepositoryImpl) SetLinkBrand(linkID, brandID string) error {
	return r.db.Model(&models.UserLink{}).Where("id = ?", linkID).
		Update("brand_id", brandID).Error
}

// replaceOwned swaps the user's full record set of one type. Delete and
// bulk-insert commit together, so a crash cannot leave the user with an
// empty set and the submitted rows lost.
func replaceOwned[T any](db *gorm.DB, userID string, records []T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(new(T)).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}
