package dto

import "contacts_backend/internal/models"

// SignupRequest - запрос регистрации
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResendVerificationRequest - повторная отправка письма, POST /api/users/verify
type ResendVerificationRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

// UpdateSubscriptionRequest - смена подписки, PATCH /api/users
type UpdateSubscriptionRequest struct {
	Subscription string `json:"subscription" validate:"required,is-subscription"`
}

// UserResponse - публичное представление пользователя
type UserResponse struct {
	Email        string              `json:"email"`
	Subscription models.Subscription `json:"subscription"`
	AvatarURL    string              `json:"avatarURL,omitempty"`
}

// SignupResponse - 201 на /signup
type SignupResponse struct {
	User *UserResponse `json:"user"`
}

// LoginData - данные успешного логина
type LoginData struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// LoginResponse - 200 на /login
type LoginResponse struct {
	Status string     `json:"status"`
	Code   int        `json:"code"`
	Data   *LoginData `json:"data"`
}

// AvatarResponse - ответ на загрузку аватара, PATCH /api/users/avatars
type AvatarResponse struct {
	AvatarURL string `json:"avatarURL"`
}

// MessageResponse - ответ с одним сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		Email:        u.Email,
		Subscription: u.Subscription,
		AvatarURL:    u.AvatarURL,
	}
}
