package repositories

import (
	"context"

	"github.com/google/uuid"
	"offer-bazar.backend/internal/domain/entities"
)

// NotificationRepository defines notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Notification, int64, error)
	MarkRead(ctx context.Context, id, merchantID uuid.UUID) error
	CountUnread(ctx context.Context, merchantID uuid.UUID) (int64, error)
}
