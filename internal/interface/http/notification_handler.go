package http

import (
	"errors"
	"net/http"

	"github.com/prkservices/booking-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the admin notification feed
type NotificationHandler struct {
	usecase *usecase.NotificationUseCase
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// List handles GET /api/admin/notifications. Notifications are creation
// snapshots and are not updated when a booking changes afterwards.
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.usecase.ListLatest(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch notifications",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"notifications": notifications,
	})
}

// MarkRead handles PUT /api/admin/notifications/:id
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notification, err := h.usecase.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Notification not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update notification",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"notification": notification,
	})
}
