package routes

import (
	"net/http"

	"vpms_backend/internal/handlers"
	"vpms_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", appHandlers.AuthHandler.Login)
			auth.POST("/resend-confirmation", appHandlers.AuthHandler.ResendConfirmation)
		}

		// The confirmation link is opened from an email client; no token.
		api.GET("/users/:userId/confirm-email", appHandlers.AuthHandler.ConfirmEmail)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			notices := protected.Group("/notices")
			{
				notices.GET("", appHandlers.NoticeHandler.List)
				notices.POST("", appHandlers.NoticeHandler.Create)
				notices.GET("/:noticeId", appHandlers.NoticeHandler.Get)
				notices.PUT("/:noticeId", appHandlers.NoticeHandler.Update)
				notices.DELETE("/:noticeId", appHandlers.NoticeHandler.Delete)
				notices.POST("/:noticeId/dispatch", appHandlers.NoticeHandler.Dispatch)
			}

			protected.GET("/tenants", appHandlers.TenantHandler.List)
		}
	}
}
