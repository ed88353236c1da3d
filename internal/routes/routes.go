package routes

import (
	"contacts_backend/internal/handlers"
	"contacts_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты API.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMiddleware gin.HandlerFunc,
) {
	api := ginRouter.Group("/api")
	{
		appHandlers.ContactHandler.RegisterRoutes(api, authMiddleware)

		users := api.Group("/users")
		appHandlers.AuthHandler.RegisterRoutes(users, authMiddleware)
		appHandlers.UserHandler.RegisterRoutes(users, authMiddleware)
	}

	logger.Debug("API routes registered", "routes", len(ginRouter.Routes()))
}
