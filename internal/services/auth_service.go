package services

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"

	"contacts_backend/internal/auth"
	"contacts_backend/internal/email"
	"contacts_backend/internal/logger"
	"contacts_backend/internal/models"
	"contacts_backend/internal/repositories"
	"contacts_backend/internal/services/dto"
	"contacts_backend/internal/validator"
	"contacts_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, userID, token string) error
	VerifyEmail(db *gorm.DB, verificationToken string) error
	ResendVerification(db *gorm.DB, req *dto.ResendVerificationRequest) error
}

// AuthConfig - настройки регистрации
type AuthConfig struct {
	// VerificationEnabled: новый пользователь должен подтвердить email до логина
	VerificationEnabled bool
	// BaseURL - публичный адрес для ссылок подтверждения
	BaseURL string
}

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	hasher    auth.PasswordHasher
	tokens    *auth.TokenManager
	mailer    email.Provider
	templates *email.TemplateManager
	validator *validator.Validator
	config    AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepository,
	hasher auth.PasswordHasher,
	tokens *auth.TokenManager,
	mailer email.Provider,
	v *validator.Validator,
	config AuthConfig,
) AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		mailer:    mailer,
		templates: email.NewTemplateManager(),
		validator: v,
		config:    config,
	}
}

// Signup - регистрация нового пользователя
func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, firstValidationFailure(err)
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	address := normalizeEmail(req.Email)
	user := &models.User{
		Email:        address,
		PasswordHash: hashedPassword,
		Subscription: models.SubscriptionStarter,
		AvatarURL:    GravatarURL(address),
		Verify:       !s.config.VerificationEnabled,
	}

	var verificationToken string
	if s.config.VerificationEnabled {
		verificationToken = uuid.NewString()
		user.VerificationToken = &verificationToken
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	ctx := ctxOf(db)
	logger.CtxInfo(ctx, "User registered", "user_id", user.ID, "verification", s.config.VerificationEnabled)

	if s.config.VerificationEnabled {
		s.sendVerificationEmail(db, user.Email, verificationToken)
	}

	return &dto.SignupResponse{User: dto.NewUserResponse(user)}, nil
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, firstValidationFailure(err)
	}

	user, err := s.userRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.hasher.Compare(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.Verify {
		return nil, apperrors.ErrUserNotVerified
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// перезаписывает прежний токен, старые сессии больше не проходят gate
	if err := s.userRepo.SetToken(db, user.ID, token); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctxOf(db), "User logged in", "user_id", user.ID)

	return &dto.LoginResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data: &dto.LoginData{
			Token: token,
			User:  dto.NewUserResponse(user),
		},
	}, nil
}

// Logout сбрасывает токен, только если он все еще текущий
func (s *AuthServiceImpl) Logout(db *gorm.DB, userID, token string) error {
	if err := s.userRepo.ClearToken(db, userID, token); err != nil {
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctxOf(db), "User logged out", "user_id", userID)
	return nil
}

// VerifyEmail - одноразовое подтверждение email
func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, verificationToken string) error {
	if verificationToken == "" {
		return apperrors.ErrUserNotFound
	}

	if err := s.userRepo.VerifyByToken(db, verificationToken); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctxOf(db), "Email verified")
	return nil
}

// ResendVerification - повторная отправка письма подтверждения
func (s *AuthServiceImpl) ResendVerification(db *gorm.DB, req *dto.ResendVerificationRequest) error {
	if req.Email == "" {
		return apperrors.NewValidationError("missing required field email", nil)
	}
	if err := s.validator.Validate(req); err != nil {
		return firstValidationFailure(err)
	}

	user, err := s.userRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if user.Verify {
		return apperrors.ErrAlreadyVerified
	}
	if user.VerificationToken == nil || *user.VerificationToken == "" {
		return apperrors.InternalError(fmt.Errorf("unverified user %s has no verification token", user.ID))
	}

	s.sendVerificationEmail(db, user.Email, *user.VerificationToken)
	return nil
}

// sendVerificationEmail рендерит и отдает письмо. Ошибки доставки только логируются.
func (s *AuthServiceImpl) sendVerificationEmail(db *gorm.DB, address, token string) {
	ctx := ctxOf(db)
	if s.mailer == nil {
		logger.CtxWarn(ctx, "Email provider is not configured, verification email skipped", "to", address)
		return
	}

	body, err := s.templates.RenderVerification(s.config.BaseURL, address, token)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to render verification email", err)
		return
	}

	if err := s.mailer.Send(address, email.VerificationSubject, body); err != nil {
		logger.CtxWithError(ctx, "Failed to send verification email", err, "to", address)
	}
}

// GravatarURL - identicon аватар для адреса
func GravatarURL(address string) string {
	sum := md5.Sum([]byte(normalizeEmail(address)))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=250&d=identicon", hex.EncodeToString(sum[:]))
}
