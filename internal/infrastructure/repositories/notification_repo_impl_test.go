package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
)

func TestNotificationRepository_CreateDefaults(t *testing.T) {
	db := newTestDB(t)
	createNotificationTable(t, db)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	merchantID := uuid.New()
	n := &entities.Notification{MerchantID: &merchantID, Message: "your store was approved"}
	require.NoError(t, repo.Create(ctx, n))
	require.NotEqual(t, uuid.Nil, n.ID)
	require.Equal(t, entities.NotificationTypeInfo, n.Type)
	require.Equal(t, "system", n.SentBy)
}

func TestNotificationRepository_BroadcastIncludedInMerchantFeed(t *testing.T) {
	db := newTestDB(t)
	createNotificationTable(t, db)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	merchantID := uuid.New()
	otherID := uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.Notification{MerchantID: &merchantID, Message: "direct"}))
	require.NoError(t, repo.Create(ctx, &entities.Notification{Message: "maintenance window tonight"})) // broadcast
	require.NoError(t, repo.Create(ctx, &entities.Notification{MerchantID: &otherID, Message: "not yours"}))

	feed, total, err := repo.GetByMerchantID(ctx, merchantID, 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, feed, 2)

	unread, err := repo.CountUnread(ctx, merchantID)
	require.NoError(t, err)
	require.EqualValues(t, 2, unread)
}

func TestNotificationRepository_MarkReadScoping(t *testing.T) {
	db := newTestDB(t)
	createNotificationTable(t, db)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	merchantID := uuid.New()
	n := &entities.Notification{MerchantID: &merchantID, Message: "payment approved", Type: entities.NotificationTypeSuccess}
	require.NoError(t, repo.Create(ctx, n))

	// another merchant cannot mark it
	require.ErrorIs(t, repo.MarkRead(ctx, n.ID, uuid.New()), domainerrors.ErrNotFound)

	require.NoError(t, repo.MarkRead(ctx, n.ID, merchantID))

	feed, _, err := repo.GetByMerchantID(ctx, merchantID, 0, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.True(t, feed[0].IsRead)
	require.True(t, feed[0].ReadAt.Valid)

	unread, err := repo.CountUnread(ctx, merchantID)
	require.NoError(t, err)
	require.EqualValues(t, 0, unread)
}
