package handlers

import (
	"net/http"

	notificationRepo "pulsecrm/database/repository/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the caller's in-app notifications.
type NotificationHandler struct {
	Repo notificationRepo.NotificationRepository
}

func NewNotificationHandler(repo notificationRepo.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

// ListNotificationsHandler returns the caller's notifications, newest first.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	notifications, err := h.Repo.ListForUser(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationReadHandler marks one notification read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	if err := h.Repo.MarkRead(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification read"})
}
