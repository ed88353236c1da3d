package app

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"contacts_backend/database"
	"contacts_backend/internal/auth"
	"contacts_backend/internal/config"
	"contacts_backend/internal/email"
	"contacts_backend/internal/handlers"
	"contacts_backend/internal/imageprocessor"
	"contacts_backend/internal/logger"
	"contacts_backend/internal/middleware"
	"contacts_backend/internal/repositories"
	"contacts_backend/internal/routes"
	"contacts_backend/internal/services"
	"contacts_backend/internal/storage"
	"contacts_backend/internal/validator"
	"contacts_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies - подменяемые части, из которых собирается роутер
type Dependencies struct {
	UserRepo    repositories.UserRepository
	ContactRepo repositories.ContactRepository
	// Mailer равен nil, когда подтверждение email выключено
	Mailer  email.Provider
	Storage storage.Storage
	// AvatarDir раздается по /avatars, если задан
	AvatarDir string
	// PasswordHasher по умолчанию bcrypt с cost по умолчанию
	PasswordHasher auth.PasswordHasher
}

func Run() {
	if err := config.LoadConfig(); err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
	}

	ginRouter, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to build router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает зависимости из конфигурации и строит роутер.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	storageInstance, err := storage.NewStorage(ctx, storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	deps := Dependencies{
		UserRepo:    repositories.NewUserRepository(),
		ContactRepo: repositories.NewContactRepository(),
		Storage:     storageInstance,
	}
	if local, ok := storageInstance.(*storage.LocalStorage); ok {
		deps.AvatarDir = filepath.Join(local.BasePath(), "avatars")
	}

	if cfg.Email.Enabled {
		smtpProvider, err := email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			Timeout:   time.Duration(cfg.Email.SMTPTimeoutSeconds) * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize email provider: %w", err)
		}
		deps.Mailer = email.NewAsyncProvider(smtpProvider)
		logger.Info("Email verification enabled", "smtp_host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("Email verification disabled, new users are verified on signup")
	}

	return BuildRouter(cfg, gormDB, deps), nil
}

// BuildRouter строит роутер из готовых зависимостей. gormDB может быть nil,
// если репозиториям не нужно соединение.
func BuildRouter(cfg *config.Config, gormDB *gorm.DB, deps Dependencies) *gin.Engine {
	apperrors.SetDebug(cfg.Server.Env != "production")

	customValidator := validator.New()
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)
	if deps.PasswordHasher == nil {
		deps.PasswordHasher = auth.NewBcryptHasher(0)
	}

	serviceContainer := initializeServices(cfg, deps, tokens, customValidator)
	appHandlers := initializeHandlers(serviceContainer)
	gate := auth.NewGate(tokens, deps.UserRepo)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(gate))
	routes.RegisterSystemRoutes(ginRouter, deps.AvatarDir)

	return ginRouter
}

func initializeServices(
	cfg *config.Config,
	deps Dependencies,
	tokens *auth.TokenManager,
	v *validator.Validator,
) *services.ServiceContainer {
	authService := services.NewAuthService(
		deps.UserRepo,
		deps.PasswordHasher,
		tokens,
		deps.Mailer,
		v,
		services.AuthConfig{
			VerificationEnabled: cfg.Email.Enabled,
			BaseURL:             cfg.Server.BaseURL,
		},
	)
	userService := services.NewUserService(
		deps.UserRepo,
		imageprocessor.NewProcessor(cfg.Upload.ImageQuality),
		deps.Storage,
		v,
		services.UploadConfig{
			MaxSize:    cfg.Upload.MaxSize,
			AvatarSize: cfg.Upload.AvatarSize,
		},
	)
	contactService := services.NewContactService(deps.ContactRepo, v)

	return &services.ServiceContainer{
		AuthService:    authService,
		UserService:    userService,
		ContactService: contactService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler()

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:    handlers.NewUserHandler(baseHandler, services.UserService),
		ContactHandler: handlers.NewContactHandler(baseHandler, services.ContactService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	// части multipart больше этого размера уходят во временные файлы
	router.MaxMultipartMemory = cfg.Upload.MaxSize
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(recoverPanic))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func recoverPanic(c *gin.Context, recovered any) {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("%v", recovered)
	}
	// Сама ошибка логируется в HandleError
	logger.CtxWarn(c.Request.Context(), "Panic recovered", "path", c.Request.URL.Path)

	if c.Writer.Written() {
		logger.CtxWithError(c.Request.Context(), "Panic after response was written", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	apperrors.HandleError(c, err)
	c.Abort()
}
