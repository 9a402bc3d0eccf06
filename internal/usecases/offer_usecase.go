package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/domain/repositories"
	"offer-bazar.backend/pkg/utils"
)

// OfferUsecase handles discount offers
type OfferUsecase struct {
	offerRepo        repositories.OfferRepository
	storeRepo        repositories.StoreRepository
	merchantRepo     repositories.MerchantRepository
	notificationRepo repositories.NotificationRepository
}

// NewOfferUsecase creates a new offer usecase
func NewOfferUsecase(
	offerRepo repositories.OfferRepository,
	storeRepo repositories.StoreRepository,
	merchantRepo repositories.MerchantRepository,
	notificationRepo repositories.NotificationRepository,
) *OfferUsecase {
	return &OfferUsecase{
		offerRepo:        offerRepo,
		storeRepo:        storeRepo,
		merchantRepo:     merchantRepo,
		notificationRepo: notificationRepo,
	}
}

// CreateOffer publishes an offer under the merchant's approved store. The
// offer itself still goes through admin review before it is publicly listed.
func (u *OfferUsecase) CreateOffer(ctx context.Context, merchantID uuid.UUID, input *entities.CreateOfferInput) (*entities.Offer, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if !merchant.IsApproved {
		return nil, domainerrors.Forbidden("merchant account is not approved")
	}

	store, err := u.storeRepo.GetByMerchantID(ctx, merchantID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.BadRequest("create a store before publishing offers")
		}
		return nil, err
	}
	if store.ApprovalStatus != entities.ApprovalStatusApproved {
		return nil, domainerrors.Forbidden("store is not approved")
	}

	offer := &entities.Offer{
		MerchantID:      merchantID,
		StoreID:         store.ID,
		Title:           input.Title,
		DiscountPercent: input.DiscountPercent,
		ApprovalStatus:  entities.ApprovalStatusPending,
		IsActive:        true,
	}
	if input.Description != "" {
		offer.Description.SetValid(input.Description)
	}
	if input.Category != "" {
		offer.Category.SetValid(input.Category)
	}
	if input.ImageURL != "" {
		offer.ImageURL.SetValid(input.ImageURL)
	}
	if input.StartDate != nil {
		offer.StartDate = null.TimeFromPtr(input.StartDate)
	}
	if input.EndDate != nil {
		offer.EndDate = null.TimeFromPtr(input.EndDate)
	}

	if err := u.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// GetOffer returns a single offer by id
func (u *OfferUsecase) GetOffer(ctx context.Context, id uuid.UUID) (*entities.Offer, error) {
	return u.offerRepo.GetByID(ctx, id)
}

// GetMerchantOffers returns all offers published by a merchant
func (u *OfferUsecase) GetMerchantOffers(ctx context.Context, merchantID uuid.UUID) ([]*entities.Offer, error) {
	return u.offerRepo.GetByMerchantID(ctx, merchantID)
}

// ListPublicOffers returns approved, active offers for the public catalog
func (u *OfferUsecase) ListPublicOffers(ctx context.Context, filter entities.OfferListFilter, page, limit int) ([]*entities.Offer, *utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	offers, total, err := u.offerRepo.ListApproved(ctx, filter, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return offers, &meta, nil
}

// ListAllOffers returns every offer regardless of state (admin only)
func (u *OfferUsecase) ListAllOffers(ctx context.Context, page, limit int) ([]*entities.Offer, *utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	offers, total, err := u.offerRepo.List(ctx, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return offers, &meta, nil
}

// UpdateOffer applies a partial update to the merchant's own offer. Edits
// send the offer back through review.
func (u *OfferUsecase) UpdateOffer(ctx context.Context, merchantID, offerID uuid.UUID, input *entities.UpdateOfferInput) (*entities.Offer, error) {
	offer, err := u.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.MerchantID != merchantID {
		return nil, domainerrors.Forbidden("offer belongs to another merchant")
	}

	if input.Title != "" {
		offer.Title = input.Title
	}
	if input.Description != "" {
		offer.Description.SetValid(input.Description)
	}
	if input.DiscountPercent != nil {
		offer.DiscountPercent = *input.DiscountPercent
	}
	if input.Category != "" {
		offer.Category.SetValid(input.Category)
	}
	if input.ImageURL != "" {
		offer.ImageURL.SetValid(input.ImageURL)
	}
	if input.StartDate != nil {
		offer.StartDate = null.TimeFromPtr(input.StartDate)
	}
	if input.EndDate != nil {
		offer.EndDate = null.TimeFromPtr(input.EndDate)
	}
	if input.IsActive != nil {
		offer.IsActive = *input.IsActive
	}
	offer.ApprovalStatus = entities.ApprovalStatusPending

	if err := u.offerRepo.Update(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// ReviewOffer approves or rejects an offer (admin only)
func (u *OfferUsecase) ReviewOffer(ctx context.Context, offerID uuid.UUID, approve bool) (*entities.Offer, error) {
	offer, err := u.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}

	message := "Your offer \"" + offer.Title + "\" has been approved"
	notifType := entities.NotificationTypeSuccess
	if approve {
		offer.ApprovalStatus = entities.ApprovalStatusApproved
	} else {
		offer.ApprovalStatus = entities.ApprovalStatusRejected
		message = "Your offer \"" + offer.Title + "\" has been rejected"
		notifType = entities.NotificationTypeWarning
	}

	if err := u.offerRepo.Update(ctx, offer); err != nil {
		return nil, err
	}

	if err := u.notificationRepo.Create(ctx, &entities.Notification{
		MerchantID: &offer.MerchantID,
		OfferID:    &offer.ID,
		Message:    message,
		Type:       notifType,
		SentBy:     "system",
	}); err != nil {
		return nil, err
	}
	return offer, nil
}

// DeleteOffer removes the merchant's own offer
func (u *OfferUsecase) DeleteOffer(ctx context.Context, merchantID, offerID uuid.UUID) error {
	offer, err := u.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return err
	}
	if offer.MerchantID != merchantID {
		return domainerrors.Forbidden("offer belongs to another merchant")
	}
	return u.offerRepo.Delete(ctx, offerID)
}
