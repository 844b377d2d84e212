package app

import (
	"errors"
	"fmt"

	"vpms_backend/database"
	"vpms_backend/internal/auth"
	"vpms_backend/internal/config"
	"vpms_backend/internal/email"
	"vpms_backend/internal/handlers"
	"vpms_backend/internal/logger"
	"vpms_backend/internal/middleware"
	"vpms_backend/internal/models"
	"vpms_backend/internal/push"
	"vpms_backend/internal/repositories"
	"vpms_backend/internal/routes"
	"vpms_backend/internal/services"
	"vpms_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstManager(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first manager user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewGomailProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		logger.Warn("SMTP is not configured; using mock email provider")
		emailService = &MockEmailProvider{}
	}

	sender := push.NewFCMSender(cfg.Push.Endpoint, cfg.Push.ServerKey)

	userRepo := repositories.NewUserRepository()
	noticeRepo := repositories.NewNoticeRepository()
	tenantRepo := repositories.NewTenantRepository()

	authService := services.NewAuthService(userRepo, emailService, cfg.Encryption.Key)
	noticeService := services.NewNoticeService(noticeRepo, userRepo)
	dispatchService := services.NewDispatchService(noticeRepo, tenantRepo, sender)
	tenantService := services.NewTenantService(tenantRepo)

	return &services.ServiceContainer{
		AuthService:     authService,
		NoticeService:   noticeService,
		DispatchService: dispatchService,
		TenantService:   tenantService,
		EmailService:    emailService,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(baseHandler, container.AuthService),
		NoticeHandler: handlers.NewNoticeHandler(baseHandler, container.NoticeService, container.DispatchService),
		TenantHandler: handlers.NewTenantHandler(baseHandler, container.TenantService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstManager creates the first managing user when none exists. The
// password is stored encrypted so login can decrypt and compare.
func seedFirstManager(db *gorm.DB, cfg *config.Config) error {
	managerEmail := cfg.FirstManagerEmail
	managerPassword := cfg.FirstManagerPassword

	if managerEmail == "" || managerPassword == "" {
		logger.Warn("FIRST_MANAGER_EMAIL or FIRST_MANAGER_PASSWORD is not set. Skipping manager seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", managerEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Manager user already exists. Skipping creation.", "email", managerEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for manager user: %w", result.Error)
	}

	logger.Warn("No manager user found with specified email. Creating first manager...", "email", managerEmail)

	encrypted, err := auth.EncryptString(managerPassword, cfg.Encryption.Key)
	if err != nil {
		return fmt.Errorf("failed to encrypt manager password: %w", err)
	}

	manager := &models.User{
		Email:    managerEmail,
		Password: encrypted,
		IsValid:  true,
	}
	userRepo := repositories.NewUserRepository()
	if err := userRepo.Create(db, manager); err != nil {
		return fmt.Errorf("failed to create manager user: %w", err)
	}

	logger.Info("Successfully created first manager user", "email", managerEmail)
	return nil
}
