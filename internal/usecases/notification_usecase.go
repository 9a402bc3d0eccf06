package usecases

import (
	"context"

	"github.com/google/uuid"

	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/domain/repositories"
	"offer-bazar.backend/pkg/utils"
)

// NotificationUsecase handles merchant notifications
type NotificationUsecase struct {
	notificationRepo repositories.NotificationRepository
	merchantRepo     repositories.MerchantRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(
	notificationRepo repositories.NotificationRepository,
	merchantRepo repositories.MerchantRepository,
) *NotificationUsecase {
	return &NotificationUsecase{
		notificationRepo: notificationRepo,
		merchantRepo:     merchantRepo,
	}
}

// Send creates a notification from an admin. An empty merchant id makes it a
// broadcast visible to every merchant.
func (u *NotificationUsecase) Send(ctx context.Context, sentBy string, input *entities.SendNotificationInput) (*entities.Notification, error) {
	notifType := input.Type
	if notifType == "" {
		notifType = entities.NotificationTypeInfo
	}

	notification := &entities.Notification{
		Message: input.Message,
		Type:    notifType,
		SentBy:  sentBy,
	}

	if input.MerchantID != "" {
		merchantID, err := uuid.Parse(input.MerchantID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid merchant id")
		}
		if _, err := u.merchantRepo.GetByID(ctx, merchantID); err != nil {
			return nil, err
		}
		notification.MerchantID = &merchantID
	}

	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// GetForMerchant returns the merchant's notifications including broadcasts
func (u *NotificationUsecase) GetForMerchant(ctx context.Context, merchantID uuid.UUID, page, limit int) ([]*entities.Notification, *utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	notifications, total, err := u.notificationRepo.GetByMerchantID(ctx, merchantID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return notifications, &meta, nil
}

// MarkRead marks one of the merchant's notifications as read
func (u *NotificationUsecase) MarkRead(ctx context.Context, notificationID, merchantID uuid.UUID) error {
	return u.notificationRepo.MarkRead(ctx, notificationID, merchantID)
}

// CountUnread returns the merchant's unread notification count
func (u *NotificationUsecase) CountUnread(ctx context.Context, merchantID uuid.UUID) (int64, error) {
	return u.notificationRepo.CountUnread(ctx, merchantID)
}
