package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/infrastructure/models"
)

// OfferRepository implements offer data operations
type OfferRepository struct {
	db *gorm.DB
}

// NewOfferRepository creates a new offer repository
func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// Create creates a new offer
func (r *OfferRepository) Create(ctx context.Context, offer *entities.Offer) error {
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	if offer.ApprovalStatus == "" {
		offer.ApprovalStatus = entities.ApprovalStatusPending
	}
	offer.CreatedAt = time.Now()
	offer.UpdatedAt = offer.CreatedAt

	m := offerToModel(offer)
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByID gets an offer by ID
func (r *OfferRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Offer, error) {
	var m models.Offer
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return offerToEntity(&m), nil
}

// GetByMerchantID gets all offers of a merchant, newest first
func (r *OfferRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) ([]*entities.Offer, error) {
	var ms []models.Offer
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return offersToEntities(ms), nil
}

// ListApproved lists approved active offers for the public catalog
func (r *OfferRepository) ListApproved(ctx context.Context, filter entities.OfferListFilter, limit, offset int) ([]*entities.Offer, int64, error) {
	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.Offer{}).
		Where("approval_status = ? AND is_active = ?", string(entities.ApprovalStatusApproved), true)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Offer
	query = query.Preload("Store").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return offersToEntities(ms), total, nil
}

// List lists all offers for admin review
func (r *OfferRepository) List(ctx context.Context, limit, offset int) ([]*entities.Offer, int64, error) {
	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.Offer{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Offer
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return offersToEntities(ms), total, nil
}

// Update persists the full offer state
func (r *OfferRepository) Update(ctx context.Context, offer *entities.Offer) error {
	offer.UpdatedAt = time.Now()
	m := offerToModel(offer)
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Offer{}).
		Where("id = ?", offer.ID).
		Select("*").Omit("id", "created_at").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes an offer
func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Offer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func offerToModel(e *entities.Offer) *models.Offer {
	return &models.Offer{
		ID:              e.ID,
		MerchantID:      e.MerchantID,
		StoreID:         e.StoreID,
		Title:           e.Title,
		Description:     e.Description.Ptr(),
		DiscountPercent: e.DiscountPercent,
		Category:        e.Category.Ptr(),
		ImageURL:        e.ImageURL.Ptr(),
		StartDate:       e.StartDate.Ptr(),
		EndDate:         e.EndDate.Ptr(),
		ApprovalStatus:  string(e.ApprovalStatus),
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func offerToEntity(m *models.Offer) *entities.Offer {
	e := &entities.Offer{
		ID:              m.ID,
		MerchantID:      m.MerchantID,
		StoreID:         m.StoreID,
		Title:           m.Title,
		Description:     null.StringFromPtr(m.Description),
		DiscountPercent: m.DiscountPercent,
		Category:        null.StringFromPtr(m.Category),
		ImageURL:        null.StringFromPtr(m.ImageURL),
		StartDate:       null.TimeFromPtr(m.StartDate),
		EndDate:         null.TimeFromPtr(m.EndDate),
		ApprovalStatus:  entities.ApprovalStatus(m.ApprovalStatus),
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Store.ID != uuid.Nil {
		e.Store = storeToEntity(&m.Store)
	}
	return e
}

func offersToEntities(ms []models.Offer) []*entities.Offer {
	out := make([]*entities.Offer, 0, len(ms))
	for i := range ms {
		out = append(out, offerToEntity(&ms[i]))
	}
	return out
}
