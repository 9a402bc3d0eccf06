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

// MerchantRepository implements merchant entitlement data operations
type MerchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

// Create creates a new merchant
func (r *MerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	if merchant.ID == uuid.Nil {
		merchant.ID = uuid.New()
	}
	if merchant.ApprovalStatus == "" {
		merchant.ApprovalStatus = entities.ApprovalStatusPending
	}
	if merchant.PackageStatus == "" {
		merchant.PackageStatus = entities.PackageStatusPending
	}
	merchant.CreatedAt = time.Now()
	merchant.UpdatedAt = merchant.CreatedAt

	m := merchantToModel(merchant)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a merchant by ID
func (r *MerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	var m models.Merchant
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return merchantToEntity(&m), nil
}

// GetByEmail gets a merchant by email
func (r *MerchantRepository) GetByEmail(ctx context.Context, email string) (*entities.Merchant, error) {
	var m models.Merchant
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return merchantToEntity(&m), nil
}

// Update persists the full merchant state
func (r *MerchantRepository) Update(ctx context.Context, merchant *entities.Merchant) error {
	merchant.UpdatedAt = time.Now()
	m := merchantToModel(merchant)
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Merchant{}).
		Where("id = ?", merchant.ID).
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

// Delete removes a merchant
func (r *MerchantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Merchant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists merchants with pagination, newest first
func (r *MerchantRepository) List(ctx context.Context, limit, offset int) ([]*entities.Merchant, int64, error) {
	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.Merchant{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Merchant
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.Merchant, 0, len(ms))
	for i := range ms {
		out = append(out, merchantToEntity(&ms[i]))
	}
	return out, total, nil
}

// GetActiveExpiredBefore returns merchants whose active package ended before cutoff
func (r *MerchantRepository) GetActiveExpiredBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Merchant, error) {
	var ms []models.Merchant
	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).
		Where("package_status = ? AND package_end_date IS NOT NULL AND package_end_date < ?",
			string(entities.PackageStatusActive), cutoff)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.Merchant, 0, len(ms))
	for i := range ms {
		out = append(out, merchantToEntity(&ms[i]))
	}
	return out, nil
}

// CountByApprovalStatus counts merchants in a review status
func (r *MerchantRepository) CountByApprovalStatus(ctx context.Context, status entities.ApprovalStatus) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Merchant{}).
		Where("approval_status = ?", string(status)).
		Count(&count).Error
	return count, err
}

// Count counts all merchants
func (r *MerchantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Merchant{}).Count(&count).Error
	return count, err
}

func merchantToModel(e *entities.Merchant) *models.Merchant {
	return &models.Merchant{
		ID:                   e.ID,
		Name:                 e.Name,
		Email:                strings.ToLower(e.Email),
		Phone:                e.Phone.Ptr(),
		BusinessName:         e.BusinessName.Ptr(),
		BusinessType:         e.BusinessType.Ptr(),
		Website:              e.Website.Ptr(),
		Address:              e.Address.Ptr(),
		PhotoURL:             e.PhotoURL.Ptr(),
		PasswordHash:         e.PasswordHash,
		ApprovalStatus:       string(e.ApprovalStatus),
		IsApproved:           e.IsApproved,
		IsActive:             e.IsActive,
		AccessFee:            e.AccessFee,
		AccessFeePaid:        e.AccessFeePaid,
		AccessFeePaymentDate: e.AccessFeePaymentDate.Ptr(),
		AccessFeePaymentID:   e.AccessFeePaymentID,
		PackageID:            e.PackageID,
		PackageStartDate:     e.PackageStartDate.Ptr(),
		PackageEndDate:       e.PackageEndDate.Ptr(),
		PackageStatus:        string(e.PackageStatus),
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func merchantToEntity(m *models.Merchant) *entities.Merchant {
	return &entities.Merchant{
		ID:                   m.ID,
		Name:                 m.Name,
		Email:                m.Email,
		Phone:                null.StringFromPtr(m.Phone),
		BusinessName:         null.StringFromPtr(m.BusinessName),
		BusinessType:         null.StringFromPtr(m.BusinessType),
		Website:              null.StringFromPtr(m.Website),
		Address:              null.StringFromPtr(m.Address),
		PhotoURL:             null.StringFromPtr(m.PhotoURL),
		PasswordHash:         m.PasswordHash,
		ApprovalStatus:       entities.ApprovalStatus(m.ApprovalStatus),
		IsApproved:           m.IsApproved,
		IsActive:             m.IsActive,
		AccessFee:            m.AccessFee,
		AccessFeePaid:        m.AccessFeePaid,
		AccessFeePaymentDate: null.TimeFromPtr(m.AccessFeePaymentDate),
		AccessFeePaymentID:   m.AccessFeePaymentID,
		PackageID:            m.PackageID,
		PackageStartDate:     null.TimeFromPtr(m.PackageStartDate),
		PackageEndDate:       null.TimeFromPtr(m.PackageEndDate),
		PackageStatus:        entities.PackageStatus(m.PackageStatus),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
