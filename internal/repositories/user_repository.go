package repositories

import (
	"errors"
	"time"

	"contacts_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// Все методы принимают 'db *gorm.DB' (пул или транзакцию)
type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error

	// Токены
	SetToken(db *gorm.DB, userID, token string) error
	ClearToken(db *gorm.DB, userID, token string) error

	// Подтверждение email
	VerifyByToken(db *gorm.DB, verificationToken string) error

	// Профиль
	UpdateSubscription(db *gorm.DB, userID string, subscription models.Subscription) error
	UpdateAvatar(db *gorm.DB, userID, avatarURL string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create вставляет пользователя. Предварительная проверка дает понятную ошибку,
// уникальный индекс ловит одновременные регистрации.
func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUserAlreadyExists
	}

	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// SetToken перезаписывает текущий токен одним UPDATE. Побеждает последний.
func (r *UserRepositoryImpl) SetToken(db *gorm.DB, userID, token string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"token":      token,
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

// ClearToken сбрасывает токен, только если он совпадает с переданным.
// Токен, замененный новым логином, уже мертв, поэтому 0 строк - не ошибка.
func (r *UserRepositoryImpl) ClearToken(db *gorm.DB, userID, token string) error {
	result := db.Model(&models.User{}).
		Where("id = ? AND token = ?", userID, token).
		Updates(map[string]interface{}{
			"token":      nil,
			"updated_at": time.Now(),
		})
	return result.Error
}

// VerifyByToken погашает токен подтверждения ровно один раз
func (r *UserRepositoryImpl) VerifyByToken(db *gorm.DB, verificationToken string) error {
	result := db.Model(&models.User{}).
		Where("verification_token = ? AND verify = ?", verificationToken, false).
		Updates(map[string]interface{}{
			"verify":             true,
			"verification_token": nil,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateSubscription(db *gorm.DB, userID string, subscription models.Subscription) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"subscription": subscription,
		"updated_at":   time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateAvatar(db *gorm.DB, userID, avatarURL string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"avatar_url": avatarURL,
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
