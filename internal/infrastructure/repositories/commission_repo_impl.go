package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/infrastructure/models"
)

// CommissionRepository implements commission ledger data operations
type CommissionRepository struct {
	db *gorm.DB
}

// NewCommissionRepository creates a new commission repository
func NewCommissionRepository(db *gorm.DB) *CommissionRepository {
	return &CommissionRepository{db: db}
}

// Create creates a new commission record
func (r *CommissionRepository) Create(ctx context.Context, commission *entities.Commission) error {
	if commission.ID == uuid.Nil {
		commission.ID = uuid.New()
	}
	if commission.CommissionRate == 0 {
		commission.CommissionRate = entities.DefaultCommissionRate
	}
	commission.Recalculate()
	commission.CreatedAt = time.Now()
	commission.LastUpdated = commission.CreatedAt

	m := commissionToModel(commission)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		// One ledger per merchant, backed by a unique index.
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a commission record by ID
func (r *CommissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Commission, error) {
	var m models.Commission
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return commissionToEntity(&m), nil
}

// GetByMerchantID gets the commission record for a merchant
func (r *CommissionRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*entities.Commission, error) {
	var m models.Commission
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("merchant_id = ?", merchantID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return commissionToEntity(&m), nil
}

// Update persists the ledger; pending is always recomputed before the write
func (r *CommissionRepository) Update(ctx context.Context, commission *entities.Commission) error {
	commission.Recalculate()
	commission.LastUpdated = time.Now()
	m := commissionToModel(commission)
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Commission{}).
		Where("id = ?", commission.ID).
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

func commissionToModel(e *entities.Commission) *models.Commission {
	return &models.Commission{
		ID:                e.ID,
		MerchantID:        e.MerchantID,
		TotalCommission:   e.TotalCommission,
		PaidCommission:    e.PaidCommission,
		PendingCommission: e.PendingCommission,
		CommissionRate:    e.CommissionRate,
		LastUpdated:       e.LastUpdated,
		CreatedAt:         e.CreatedAt,
	}
}

func commissionToEntity(m *models.Commission) *entities.Commission {
	return &entities.Commission{
		ID:                m.ID,
		MerchantID:        m.MerchantID,
		TotalCommission:   m.TotalCommission,
		PaidCommission:    m.PaidCommission,
		PendingCommission: m.PendingCommission,
		CommissionRate:    m.CommissionRate,
		LastUpdated:       m.LastUpdated,
		CreatedAt:         m.CreatedAt,
	}
}
