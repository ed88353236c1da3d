package handlers

import (
	"errors"
	"fmt"
	"io"

	"contacts_backend/internal/logger"
	"contacts_backend/internal/models"
	"contacts_backend/pkg/apperrors"
	"contacts_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ============================================================================
// 1. Базовая структура обработчика
// ============================================================================

// BaseHandler только декодирует запросы, валидация живет в сервисах
type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// ============================================================================
// 2. DB из контекста
// ============================================================================

// GetDB извлекает *gorm.DB (пул или транзакцию) из gin.Context, привязанный к контексту запроса.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		// DBMiddleware не подключен
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}
	if db == nil {
		return nil
	}

	return db.WithContext(c.Request.Context())
}

// ============================================================================
// 3. Привязка запроса
// ============================================================================

// BindJSON декодирует тело в obj. Пустое тело считается {}.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		logger.CtxWarn(c.Request.Context(), "Failed to bind JSON body", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return true
}

func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "Failed to bind query params", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return true
}

// ============================================================================
// 4. Обработка ошибок
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if appErr.HTTPCode < 500 {
			logger.CtxWarn(ctx, "Service error",
				"error", appErr.Message,
				"details", appErr.Details,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
		return
	}

	// HandleError выбирает между 400 и 500 по тексту ошибки
	apperrors.HandleError(c, err)
}

// ============================================================================
// 5. Данные аутентификации
// ============================================================================

func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(contextkeys.UserIDContextKey))
	userID, ok := userIDVal.(string)
	if !exists || !ok || userID == "" {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: userID not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.ErrNotAuthorized)
		return "", false
	}
	return userID, true
}

// GetCurrentUser возвращает пользователя из auth middleware
func (h *BaseHandler) GetCurrentUser(c *gin.Context) (*models.User, bool) {
	val, _ := c.Get(string(contextkeys.UserContextKey))
	user, ok := val.(*models.User)
	if !ok || user == nil {
		apperrors.HandleError(c, apperrors.ErrNotAuthorized)
		return nil, false
	}
	return user, true
}

// GetToken возвращает bearer токен текущего запроса
func (h *BaseHandler) GetToken(c *gin.Context) string {
	return c.GetString(string(contextkeys.TokenContextKey))
}
