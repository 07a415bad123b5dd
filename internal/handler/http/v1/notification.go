package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary List my notifications
// @Description Get a paginated list of notifications for the current user, newest first.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Authenticated user id"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} NotificationListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithField("method", "listNotifications").WithField("user_id", userID)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	items, total, err := h.notificationService.List(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, NotificationListResponse{
		Items:    ModelsToNotificationResponses(items),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// @Summary Count unread notifications
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Authenticated user id"
// @Success 200 {object} UnreadCountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/unread-count [get]
func (h *Handler) unreadCount(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithField("method", "unreadCount").WithField("user_id", userID)

	count, err := h.notificationService.CountUnread(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, UnreadCountResponse{Count: count})
}

// @Summary Mark notification as read
// @Tags Notifications
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Authenticated user id"
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid notification ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/{id}/read [patch]
func (h *Handler) markNotificationRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification ID"})
		return
	}
	userID := currentUserID(c)
	log := h.logger.WithField("method", "markNotificationRead").WithField("id", id)

	if err := h.notificationService.MarkRead(c.Request.Context(), userID, id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications as read
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Authenticated user id"
// @Success 200 {object} MarkAllReadResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/read-all [patch]
func (h *Handler) markAllNotificationsRead(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithField("method", "markAllNotificationsRead").WithField("user_id", userID)

	updated, err := h.notificationService.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MarkAllReadResponse{Updated: updated})
}

// @Summary Register push token
// @Description Store the Expo push token of the current user's device.
// @Tags Notifications
// @Accept json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Authenticated user id"
// @Param token body RegisterPushTokenRequest true "Push token"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /push-token [put]
func (h *Handler) registerPushToken(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithField("method", "registerPushToken").WithField("user_id", userID)

	var input RegisterPushTokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.notificationService.RegisterPushToken(c.Request.Context(), userID, input.Token); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
