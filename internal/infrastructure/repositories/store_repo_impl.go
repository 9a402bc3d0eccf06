package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/infrastructure/models"
)

// StoreRepository implements store data operations
type StoreRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// Create creates a new store; one store per merchant is enforced by index
func (r *StoreRepository) Create(ctx context.Context, store *entities.Store) error {
	if store.ID == uuid.Nil {
		store.ID = uuid.New()
	}
	if store.ApprovalStatus == "" {
		store.ApprovalStatus = entities.ApprovalStatusPending
	}
	store.CreatedAt = time.Now()
	store.UpdatedAt = store.CreatedAt

	m := storeToModel(store)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a store by ID
func (r *StoreRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Store, error) {
	var m models.Store
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return storeToEntity(&m), nil
}

// GetByMerchantID gets the store owned by a merchant
func (r *StoreRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*entities.Store, error) {
	var m models.Store
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("merchant_id = ?", merchantID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return storeToEntity(&m), nil
}

// List lists stores with pagination
func (r *StoreRepository) List(ctx context.Context, limit, offset int) ([]*entities.Store, int64, error) {
	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.Store{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Store
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.Store, 0, len(ms))
	for i := range ms {
		out = append(out, storeToEntity(&ms[i]))
	}
	return out, total, nil
}

// Update persists the full store state
func (r *StoreRepository) Update(ctx context.Context, store *entities.Store) error {
	store.UpdatedAt = time.Now()
	m := storeToModel(store)
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Store{}).
		Where("id = ?", store.ID).
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

// Delete removes a store
func (r *StoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Store{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func storeToModel(e *entities.Store) *models.Store {
	return &models.Store{
		ID:             e.ID,
		MerchantID:     e.MerchantID,
		Name:           e.Name,
		Description:    e.Description.Ptr(),
		Category:       e.Category.Ptr(),
		LogoURL:        e.LogoURL.Ptr(),
		Address:        e.Address.Ptr(),
		ApprovalStatus: string(e.ApprovalStatus),
		IsActive:       e.IsActive,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func storeToEntity(m *models.Store) *entities.Store {
	return &entities.Store{
		ID:             m.ID,
		MerchantID:     m.MerchantID,
		Name:           m.Name,
		Description:    null.StringFromPtr(m.Description),
		Category:       null.StringFromPtr(m.Category),
		LogoURL:        null.StringFromPtr(m.LogoURL),
		Address:        null.StringFromPtr(m.Address),
		ApprovalStatus: entities.ApprovalStatus(m.ApprovalStatus),
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
