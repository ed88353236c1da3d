package handlers

import (
	"errors"
	"net/http"

	"contacts_backend/internal/logger"
	"contacts_backend/internal/services"
	"contacts_backend/internal/services/dto"
	"contacts_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const avatarFormField = "avatar"

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes регистрирует профиль пользователя; все маршруты требуют авторизации
func (h *UserHandler) RegisterRoutes(users *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	profile := users.Group("")
	profile.Use(authMiddleware)
	{
		profile.GET("/current", h.Current)
		profile.PATCH("", h.UpdateSubscription)
		profile.PATCH("/avatars", h.UpdateAvatar)
	}
}

// Current godoc
// @Summary Текущий пользователь
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} apperrors.AppError "Not authorized"
// @Router /api/users/current [get]
func (h *UserHandler) Current(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.userService.Current(h.GetDB(c), user))
}

// UpdateSubscription godoc
// @Summary Сменить тариф
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSubscriptionRequest true "starter, pro or business"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} apperrors.AppError
// @Router /api/users [patch]
func (h *UserHandler) UpdateSubscription(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateSubscriptionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.userService.UpdateSubscription(h.GetDB(c), user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateAvatar godoc
// @Summary Загрузить аватар
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Image file"
// @Success 200 {object} dto.AvatarResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 413 {object} apperrors.AppError "File too large"
// @Router /api/users/avatars [patch]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile(avatarFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			apperrors.HandleError(c, apperrors.ErrMissingAvatar)
			return
		}
		logger.CtxWarn(c.Request.Context(), "Failed to read multipart form", "error", err.Error())
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart form: "+err.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	resp, err := h.userService.UpdateAvatar(h.GetDB(c), userID, &services.AvatarUpload{
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
