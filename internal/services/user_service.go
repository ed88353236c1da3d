package services

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"contacts_backend/internal/imageprocessor"
	"contacts_backend/internal/logger"
	"contacts_backend/internal/models"
	"contacts_backend/internal/repositories"
	"contacts_backend/internal/services/dto"
	"contacts_backend/internal/storage"
	"contacts_backend/internal/validator"
	"contacts_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	Current(db *gorm.DB, user *models.User) *dto.UserResponse
	UpdateSubscription(db *gorm.DB, user *models.User, req *dto.UpdateSubscriptionRequest) (*dto.UserResponse, error)
	UpdateAvatar(db *gorm.DB, userID string, upload *AvatarUpload) (*dto.AvatarResponse, error)
}

// AvatarUpload - сырой multipart файл от обработчика
type AvatarUpload struct {
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadConfig - ограничения загрузки аватаров
type UploadConfig struct {
	MaxSize    int64
	AvatarSize int
}

const avatarDir = "avatars"

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	resizer   imageprocessor.Resizer
	storage   storage.Storage
	validator *validator.Validator
	config    UploadConfig
}

func NewUserService(
	userRepo repositories.UserRepository,
	resizer imageprocessor.Resizer,
	storage storage.Storage,
	v *validator.Validator,
	config UploadConfig,
) UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		resizer:   resizer,
		storage:   storage,
		validator: v,
		config:    config,
	}
}

func (s *UserServiceImpl) Current(db *gorm.DB, user *models.User) *dto.UserResponse {
	return dto.NewUserResponse(user)
}

func (s *UserServiceImpl) UpdateSubscription(db *gorm.DB, user *models.User, req *dto.UpdateSubscriptionRequest) (*dto.UserResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, firstValidationFailure(err)
	}

	subscription := models.Subscription(req.Subscription)
	if err := s.userRepo.UpdateSubscription(db, user.ID, subscription); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctxOf(db), "Subscription updated", "user_id", user.ID, "subscription", subscription)

	updated := *user
	updated.Subscription = subscription
	return dto.NewUserResponse(&updated), nil
}

// UpdateAvatar уменьшает картинку, сохраняет ее и записывает ссылку пользователю
func (s *UserServiceImpl) UpdateAvatar(db *gorm.DB, userID string, upload *AvatarUpload) (*dto.AvatarResponse, error) {
	if upload == nil || upload.Reader == nil {
		return nil, apperrors.ErrMissingAvatar
	}
	if upload.Size > s.config.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if upload.ContentType != "" && !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, apperrors.ErrInvalidFileType
	}

	// Size присылает клиент, поэтому лимит проверяется и по байтам
	data, err := io.ReadAll(io.LimitReader(upload.Reader, s.config.MaxSize+1))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if int64(len(data)) > s.config.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	resized, format, err := s.resizer.Resize(data, s.config.AvatarSize, s.config.AvatarSize)
	if err != nil {
		return nil, apperrors.ErrInvalidFileType.WithDetails(err.Error())
	}

	ctx := ctxOf(db)
	key := fmt.Sprintf("%s/%s_%s.%s", avatarDir, userID, uuid.NewString(), imageprocessor.Extension(format))

	if err := s.storage.Save(ctx, key, bytes.NewReader(resized), imageprocessor.ContentType(format)); err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("store avatar %s: %w", key, err))
	}

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateAvatar(db, userID, url); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logger.CtxWithError(ctx, "Failed to remove orphaned avatar", delErr, "key", key)
		}
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Avatar updated", "user_id", userID, "key", key)
	return &dto.AvatarResponse{AvatarURL: url}, nil
}
