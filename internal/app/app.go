package app

import (
	"errors"
	"fmt"
	"time"

	"connect_backend/database"
	"connect_backend/internal/auth"
	"connect_backend/internal/config"
	"connect_backend/internal/email"
	"connect_backend/internal/handlers"
	"connect_backend/internal/logger"
	"connect_backend/internal/middleware"
	"connect_backend/internal/models"
	"connect_backend/internal/repositories"
	"connect_backend/internal/routes"
	"connect_backend/internal/services"
	"connect_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run boots the whole application: config, logging, database, migrations,
// the first moderator seed, and finally the HTTP server.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected", "dialect", cfg.Database.Dialect)

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstModerator(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first moderator", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	emailProvider := initializeEmailProvider(cfg)

	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	startSessionSweeper(refreshTokenRepo)
	profileRepo := repositories.NewProfileRepository(gormDB)
	brandRepo := repositories.NewBrandRepository(gormDB)
	moderationRepo := repositories.NewModerationRepository(gormDB)

	sessionService := services.NewSessionService(userRepo, refreshTokenRepo)
	accountService := services.NewAccountService(userRepo, sessionService, emailProvider, cfg)
	profileService := services.NewProfileService(userRepo, profileRepo, brandRepo)
	settingsService := services.NewSettingsService(userRepo, sessionService)
	moderationService := services.NewModerationService(userRepo, moderationRepo, emailProvider, cfg)

	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	appHandlers := &handlers.AppHandlers{
		Account:    handlers.NewAccountHandler(baseHandler, accountService, sessionService),
		Profile:    handlers.NewProfileHandler(baseHandler, profileService),
		Settings:   handlers.NewSettingsHandler(baseHandler, settingsService),
		Moderation: handlers.NewModerationHandler(baseHandler, moderationService),
	}

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// initializeEmailProvider returns the SMTP provider, or the discarding one
// when no SMTP host is configured (development and tests).
func initializeEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("No SMTP host configured, outgoing email is disabled")
		return &email.NoopProvider{}
	}

	provider, err := email.NewSMTPProvider(email.SMTPConfig{
		Host:         cfg.Email.SMTPHost,
		Port:         cfg.Email.SMTPPort,
		Username:     cfg.Email.SMTPUsername,
		Password:     cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
		TemplatesDir: cfg.Email.TemplatesDir,
	})
	if err != nil {
		logger.Fatal("Failed to initialize email provider", "error", err)
	}

	logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	return provider
}

const sessionSweepInterval = time.Hour

// startSessionSweeper periodically deletes expired refresh tokens so stale
// sessions do not accumulate in the table.
func startSessionSweeper(refreshTokenRepo repositories.RefreshTokenRepository) {
	go func() {
		ticker := time.NewTicker(sessionSweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			if err := refreshTokenRepo.CleanExpired(); err != nil {
				logger.WithError(err).Warn("failed to clean expired refresh tokens")
			}
		}
	}()
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	return router
}

// seedFirstModerator guarantees at least one moderator account exists, so the
// review workflows are reachable on a fresh installation. A no-op when the
// credentials are unset or the account already exists.
func seedFirstModerator(db *gorm.DB, cfg *config.Config) error {
	moderatorEmail := cfg.Site.ModeratorEmail
	moderatorPassword := cfg.Site.ModeratorPassword

	if moderatorEmail == "" || moderatorPassword == "" {
		logger.Warn("Moderator seed credentials are not set, skipping moderator seeding")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", moderatorEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Moderator account already exists, skipping seeding", "email", moderatorEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for moderator account: %w", result.Error)
	}

	passwordHash, err := auth.HashPassword(moderatorPassword)
	if err != nil {
		return fmt.Errorf("failed to hash moderator password: %w", err)
	}

	token, err := auth.GenerateActivationToken()
	if err != nil {
		return fmt.Errorf("failed to generate auth token: %w", err)
	}

	now := time.Now()
	moderator := &models.User{
		Email:              moderatorEmail,
		FirstName:          "Site",
		LastName:           "Moderator",
		PasswordHash:       passwordHash,
		AuthToken:          token,
		AuthTokenIsUsed:    true,
		IsActive:           true,
		IsModerator:        true,
		RegistrationMethod: models.RegistrationSelf,
		ActivatedAt:        &now,
	}

	if err := db.Create(moderator).Error; err != nil {
		return fmt.Errorf("failed to create moderator account: %w", err)
	}

	logger.Info("Created first moderator account", "email", moderatorEmail)
	return nil
}
