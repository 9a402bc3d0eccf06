package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/infrastructure/models"
)

// NotificationRepository implements notification data operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.Type == "" {
		notification.Type = entities.NotificationTypeInfo
	}
	if notification.SentBy == "" {
		notification.SentBy = "system"
	}
	notification.CreatedAt = time.Now()

	m := notificationToModel(notification)
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByMerchantID lists a merchant's notifications including broadcasts, newest first
func (r *NotificationRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Notification, int64, error) {
	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.Notification{}).
		Where("merchant_id = ? OR merchant_id IS NULL", merchantID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Notification
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.Notification, 0, len(ms))
	for i := range ms {
		out = append(out, notificationToEntity(&ms[i]))
	}
	return out, total, nil
}

// MarkRead marks a merchant's notification as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id, merchantID uuid.UUID) error {
	now := time.Now()
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountUnread counts unread notifications for a merchant
func (r *NotificationRepository) CountUnread(ctx context.Context, merchantID uuid.UUID) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Notification{}).
		Where("(merchant_id = ? OR merchant_id IS NULL) AND is_read = ?", merchantID, false).
		Count(&count).Error
	return count, err
}

func notificationToModel(e *entities.Notification) *models.Notification {
	return &models.Notification{
		ID:         e.ID,
		MerchantID: e.MerchantID,
		OfferID:    e.OfferID,
		StoreID:    e.StoreID,
		Message:    e.Message,
		Type:       string(e.Type),
		IsRead:     e.IsRead,
		SentBy:     e.SentBy,
		ReadAt:     e.ReadAt.Ptr(),
		CreatedAt:  e.CreatedAt,
	}
}

func notificationToEntity(m *models.Notification) *entities.Notification {
	return &entities.Notification{
		ID:         m.ID,
		MerchantID: m.MerchantID,
		OfferID:    m.OfferID,
		StoreID:    m.StoreID,
		Message:    m.Message,
		Type:       entities.NotificationType(m.Type),
		IsRead:     m.IsRead,
		SentBy:     m.SentBy,
		ReadAt:     null.TimeFromPtr(m.ReadAt),
		CreatedAt:  m.CreatedAt,
	}
}
