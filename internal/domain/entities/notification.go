package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// NotificationType classifies a notification
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeError   NotificationType = "error"
	NotificationTypeOffer   NotificationType = "offer"
	NotificationTypeStore   NotificationType = "store"
)

// Notification is a user-facing message record; MerchantID nil means broadcast
type Notification struct {
	ID         uuid.UUID        `json:"id"`
	MerchantID *uuid.UUID       `json:"merchant,omitempty"`
	OfferID    *uuid.UUID       `json:"offerId,omitempty"`
	StoreID    *uuid.UUID       `json:"storeId,omitempty"`
	Message    string           `json:"message"`
	Type       NotificationType `json:"type"`
	IsRead     bool             `json:"isRead"`
	SentBy     string           `json:"sentBy"`
	ReadAt     null.Time        `json:"readAt,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// SendNotificationInput represents the admin send-notification payload
type SendNotificationInput struct {
	MerchantID string           `json:"merchantId,omitempty" binding:"omitempty,uuid"`
	Message    string           `json:"message" binding:"required,max=500"`
	Type       NotificationType `json:"type,omitempty"`
}
