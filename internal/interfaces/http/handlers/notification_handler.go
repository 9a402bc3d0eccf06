package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/interfaces/http/middleware"
	"offer-bazar.backend/internal/interfaces/http/response"
	"offer-bazar.backend/pkg/utils"
)

type NotificationService interface {
	Send(ctx context.Context, sentBy string, input *entities.SendNotificationInput) (*entities.Notification, error)
	GetForMerchant(ctx context.Context, merchantID uuid.UUID, page, limit int) ([]*entities.Notification, *utils.PaginationMeta, error)
	MarkRead(ctx context.Context, notificationID, merchantID uuid.UUID) error
	CountUnread(ctx context.Context, merchantID uuid.UUID) (int64, error)
}

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notificationUsecase NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUsecase NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

// GetMyNotifications lists the authenticated merchant's notifications
// GET /api/v1/notifications
func (h *NotificationHandler) GetMyNotifications(c *gin.Context) {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	notifications, meta, err := h.notificationUsecase.GetForMerchant(c.Request.Context(), merchantID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": notifications,
		"pagination":    meta,
	})
}

// GetUnreadCount returns the merchant's unread notification count
// GET /api/v1/notifications/unread-count
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	count, err := h.notificationUsecase.CountUnread(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unreadCount": count})
}

// MarkRead marks one of the merchant's notifications as read
// PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid notification ID"))
		return
	}

	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	if err := h.notificationUsecase.MarkRead(c.Request.Context(), id, merchantID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// SendNotification sends a notification to one merchant or broadcasts
// POST /api/v1/admin/notifications
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	var input entities.SendNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	sentBy := "admin"
	if email, ok := middleware.GetUserEmail(c); ok {
		sentBy = email
	}

	notification, err := h.notificationUsecase.Send(c.Request.Context(), sentBy, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, notification)
}
