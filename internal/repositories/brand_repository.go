package repositories

import (
	"errors"

	"connect_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBrandNotFound = errors.New("link brand not found")

type BrandRepository interface {
	// FindByDomain matches the exact domain string: case-sensitive, no
	// subdomain or "www." normalisation.
	FindByDomain(domain string) (*models.LinkBrand, error)
	Create(brand *models.LinkBrand) error
}

type BrandRepositoryImpl struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &BrandRepositoryImpl{db: db}
}

func (r *BrandRepositoryImpl) FindByDomain(domain string) (*models.LinkBrand, error) {
	var brand models.LinkBrand
	err := r.db.Where("domain = ?", domain).First(&brand).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepositoryImpl) Create(brand *models.LinkBrand) error {
	return r.db.Create(brand).Error
}
