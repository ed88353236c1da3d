package routes

import (
	"net/http"

	_ "contacts_backend/docs" // swagger document
	"contacts_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterSystemRoutes mounts health, swagger, avatar files and the 404 fallback.
// avatarDir is empty when avatars live outside the local filesystem.
func RegisterSystemRoutes(ginRouter *gin.Engine, avatarDir string) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if avatarDir != "" {
		ginRouter.Static("/avatars", avatarDir)
	}

	notFound := func(c *gin.Context) {
		apperrors.HandleError(c, apperrors.ErrRouteNotFound)
	}
	ginRouter.NoRoute(notFound)
	ginRouter.NoMethod(notFound)
}
