package v1

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shenikar/civic_reporting_system/internal/config"
)

// NewCORSMiddleware - без CORS_ALLOWED_ORIGINS разрешены все источники, но без credentials
func NewCORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key", headerUserID},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
		corsConfig.AllowCredentials = true
	}
	return cors.New(corsConfig)
}

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check, без аутентификации
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger), UserIDMiddleware(h.logger))

	complaints := protected.Group("/complaints")
	{
		complaints.POST("", h.createComplaint)
		complaints.GET("", h.listComplaints)
		complaints.GET("/:id", h.getComplaint)
		complaints.PATCH("/:id/status", h.updateComplaintStatus)
	}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/unread-count", h.unreadCount)
		notifications.PATCH("/read-all", h.markAllNotificationsRead)
		notifications.PATCH("/:id/read", h.markNotificationRead)
	}

	protected.PUT("/push-token", h.registerPushToken)
}
