package usecases

import (
	"context"

	"github.com/google/uuid"

	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/domain/repositories"
	"offer-bazar.backend/pkg/utils"
)

// StoreUsecase handles merchant storefronts
type StoreUsecase struct {
	storeRepo        repositories.StoreRepository
	merchantRepo     repositories.MerchantRepository
	notificationRepo repositories.NotificationRepository
}

// NewStoreUsecase creates a new store usecase
func NewStoreUsecase(
	storeRepo repositories.StoreRepository,
	merchantRepo repositories.MerchantRepository,
	notificationRepo repositories.NotificationRepository,
) *StoreUsecase {
	return &StoreUsecase{
		storeRepo:        storeRepo,
		merchantRepo:     merchantRepo,
		notificationRepo: notificationRepo,
	}
}

// CreateStore opens a storefront for an approved merchant. One store per
// merchant.
func (u *StoreUsecase) CreateStore(ctx context.Context, merchantID uuid.UUID, input *entities.CreateStoreInput) (*entities.Store, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if !merchant.IsApproved {
		return nil, domainerrors.Forbidden("merchant account is not approved")
	}

	existing, err := u.storeRepo.GetByMerchantID(ctx, merchantID)
	if err != nil && err != domainerrors.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("merchant already has a store")
	}

	store := &entities.Store{
		MerchantID:     merchantID,
		Name:           input.Name,
		ApprovalStatus: entities.ApprovalStatusPending,
		IsActive:       true,
	}
	if input.Description != "" {
		store.Description.SetValid(input.Description)
	}
	if input.Category != "" {
		store.Category.SetValid(input.Category)
	}
	if input.LogoURL != "" {
		store.LogoURL.SetValid(input.LogoURL)
	}
	if input.Address != "" {
		store.Address.SetValid(input.Address)
	}

	if err := u.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// GetStore returns a single store by id
func (u *StoreUsecase) GetStore(ctx context.Context, id uuid.UUID) (*entities.Store, error) {
	return u.storeRepo.GetByID(ctx, id)
}

// GetMerchantStore returns the merchant's own store
func (u *StoreUsecase) GetMerchantStore(ctx context.Context, merchantID uuid.UUID) (*entities.Store, error) {
	return u.storeRepo.GetByMerchantID(ctx, merchantID)
}

// ListStores returns a paginated store listing
func (u *StoreUsecase) ListStores(ctx context.Context, page, limit int) ([]*entities.Store, *utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	stores, total, err := u.storeRepo.List(ctx, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return stores, &meta, nil
}

// UpdateStore applies a partial update to the merchant's own store
func (u *StoreUsecase) UpdateStore(ctx context.Context, merchantID uuid.UUID, input *entities.UpdateStoreInput) (*entities.Store, error) {
	store, err := u.storeRepo.GetByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		store.Name = input.Name
	}
	if input.Description != "" {
		store.Description.SetValid(input.Description)
	}
	if input.Category != "" {
		store.Category.SetValid(input.Category)
	}
	if input.LogoURL != "" {
		store.LogoURL.SetValid(input.LogoURL)
	}
	if input.Address != "" {
		store.Address.SetValid(input.Address)
	}

	if err := u.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// ReviewStore approves or rejects a store (admin only)
func (u *StoreUsecase) ReviewStore(ctx context.Context, storeID uuid.UUID, approve bool) (*entities.Store, error) {
	store, err := u.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	message := "Your store has been approved"
	notifType := entities.NotificationTypeSuccess
	if approve {
		store.ApprovalStatus = entities.ApprovalStatusApproved
	} else {
		store.ApprovalStatus = entities.ApprovalStatusRejected
		message = "Your store has been rejected"
		notifType = entities.NotificationTypeWarning
	}

	if err := u.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	if err := u.notificationRepo.Create(ctx, &entities.Notification{
		MerchantID: &store.MerchantID,
		StoreID:    &store.ID,
		Message:    message,
		Type:       notifType,
		SentBy:     "system",
	}); err != nil {
		return nil, err
	}
	return store, nil
}

// DeleteStore removes the merchant's store
func (u *StoreUsecase) DeleteStore(ctx context.Context, merchantID uuid.UUID) error {
	store, err := u.storeRepo.GetByMerchantID(ctx, merchantID)
	if err != nil {
		return err
	}
	return u.storeRepo.Delete(ctx, store.ID)
}
