package database

import (
	"fmt"

	"connect_backend/internal/config"
	"connect_backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens the GORM connection described by the config. The dialect
// selects the driver; everything above the repositories is driver-agnostic.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	var dialector gorm.Dialector
	switch cfg.Database.Dialect {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres", "":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", cfg.Database.Dialect)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model the application persists.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.UserSkill{},
		&models.LinkBrand{},
		&models.UserLink{},
		&models.ModerationLogRecord{},
		&models.AbuseReport{},
	)
}
