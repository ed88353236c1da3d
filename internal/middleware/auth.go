package middleware

import (
	"contacts_backend/internal/auth"
	"contacts_backend/internal/logger"
	"contacts_backend/pkg/apperrors"
	"contacts_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware - middleware проверки bearer токена через Gate
func AuthMiddleware(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		header := c.GetHeader("Authorization")

		dbValue, _ := c.Get(string(contextkeys.DBContextKey))
		db, _ := dbValue.(*gorm.DB)
		if db != nil {
			db = db.WithContext(ctx)
		}
		user, err := gate.Authenticate(db, header)
		if err != nil {
			if !auth.IsAuthError(err) {
				apperrors.HandleError(c, apperrors.InternalError(err))
				c.Abort()
				return
			}

			logger.CtxDebug(ctx, "Request rejected by auth gate", "reason", err.Error(), "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrNotAuthorized)
			c.Abort()
			return
		}

		// Сохраняем пользователя в контекст
		c.Set(string(contextkeys.UserContextKey), user)
		c.Set(string(contextkeys.UserIDContextKey), user.ID)
		c.Set(string(contextkeys.TokenContextKey), auth.ExtractToken(header))
		c.Request = c.Request.WithContext(logger.WithUserID(ctx, user.ID))

		c.Next()
	}
}
