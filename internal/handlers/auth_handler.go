package handlers

import (
	"net/http"

	"contacts_backend/internal/services"
	"contacts_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации в группе /users
func (h *AuthHandler) RegisterRoutes(users *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	users.POST("/signup", h.Signup)
	users.POST("/login", h.Login)
	users.GET("/verify/:verificationToken", h.VerifyEmail)
	users.POST("/verify", h.ResendVerification)

	users.GET("/logout", authMiddleware, h.Logout)
}

// Signup godoc
// @Summary Регистрация
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body dto.SignupRequest true "Email and password"
// @Success 201 {object} dto.SignupResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 409 {object} apperrors.AppError "Email in use"
// @Router /api/users/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Signup(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Вход
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 401 {object} apperrors.AppError "Email or password is wrong"
// @Router /api/users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Выход
// @Tags users
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} apperrors.AppError "Not authorized"
// @Router /api/users/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(h.GetDB(c), userID, h.GetToken(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// VerifyEmail godoc
// @Summary Подтверждение email
// @Tags users
// @Produce json
// @Param verificationToken path string true "Token from the verification email"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.AppError "User not found"
// @Router /api/users/verify/{verificationToken} [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	if err := h.authService.VerifyEmail(h.GetDB(c), c.Param("verificationToken")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Verification successful"})
}

// ResendVerification godoc
// @Summary Повторная отправка письма
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.ResendVerificationRequest true "Email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 404 {object} apperrors.AppError "User not found"
// @Router /api/users/verify [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.authService.ResendVerification(h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Verification email sent"})
}
