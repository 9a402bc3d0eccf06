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

// PaymentRepository implements payment ledger data operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt

	m := paymentToModel(payment)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a payment by ID
func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error) {
	var m models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return paymentToEntity(&m), nil
}

// GetByTransactionID gets a payment by its transaction id
func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entities.Payment, error) {
	var m models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return paymentToEntity(&m), nil
}

// GetByMerchantID gets all payments for a merchant, newest first
func (r *PaymentRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) ([]*entities.Payment, error) {
	var ms []models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return paymentsToEntities(ms), nil
}

// GetPending gets all pending payments, newest first
func (r *PaymentRepository) GetPending(ctx context.Context) ([]*entities.Payment, error) {
	var ms []models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("status = ?", string(entities.PaymentStatusPending)).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return paymentsToEntities(ms), nil
}

// List lists payments with optional status/merchant filters and pagination
func (r *PaymentRepository) List(ctx context.Context, filter entities.PaymentListFilter, limit, offset int) ([]*entities.Payment, int64, error) {
	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.Payment{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.MerchantID != nil {
		query = query.Where("merchant_id = ?", *filter.MerchantID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Payment
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return paymentsToEntities(ms), total, nil
}

// Update persists the full payment state
func (r *PaymentRepository) Update(ctx context.Context, payment *entities.Payment) error {
	payment.UpdatedAt = time.Now()
	m := paymentToModel(payment)
	db := GetDB(ctx, r.db)
	// Select("*") so zero-valued fields (cleared notes, false flags) are persisted too
	result := db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ?", payment.ID).
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

// Delete removes a payment
func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Payment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountByStatus counts payments in a status
func (r *PaymentRepository) CountByStatus(ctx context.Context, status entities.PaymentStatus) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Payment{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
}

// Count counts all payments
func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Payment{}).Count(&count).Error
	return count, err
}

func paymentToModel(p *entities.Payment) *models.Payment {
	return &models.Payment{
		ID:                    p.ID,
		MerchantID:            p.MerchantID,
		Amount:                p.Amount,
		PaymentMethod:         string(p.PaymentMethod),
		TransactionID:         p.TransactionID,
		SenderPhone:           p.SenderPhone.Ptr(),
		SenderAccount:         p.SenderAccount.Ptr(),
		ReceiverPhone:         p.ReceiverPhone.Ptr(),
		ReceiverAccount:       p.ReceiverAccount.Ptr(),
		BankName:              p.BankName.Ptr(),
		BankAccountNumber:     p.BankAccountNumber.Ptr(),
		PaymentProof:          p.PaymentProof.Ptr(),
		Status:                string(p.Status),
		AdminNotes:            p.AdminNotes.Ptr(),
		ApprovedAt:            p.ApprovedAt.Ptr(),
		ApprovedBy:            p.ApprovedBy,
		CommissionID:          p.CommissionID,
		PackageID:             p.PackageID,
		PackageDurationMonths: p.PackageDurationMonths,
		SessionKey:            p.SessionKey.Ptr(),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func paymentToEntity(m *models.Payment) *entities.Payment {
	return &entities.Payment{
		ID:                    m.ID,
		MerchantID:            m.MerchantID,
		Amount:                m.Amount,
		PaymentMethod:         entities.PaymentMethod(m.PaymentMethod),
		TransactionID:         m.TransactionID,
		SenderPhone:           null.StringFromPtr(m.SenderPhone),
		SenderAccount:         null.StringFromPtr(m.SenderAccount),
		ReceiverPhone:         null.StringFromPtr(m.ReceiverPhone),
		ReceiverAccount:       null.StringFromPtr(m.ReceiverAccount),
		BankName:              null.StringFromPtr(m.BankName),
		BankAccountNumber:     null.StringFromPtr(m.BankAccountNumber),
		PaymentProof:          null.StringFromPtr(m.PaymentProof),
		Status:                entities.PaymentStatus(m.Status),
		AdminNotes:            null.StringFromPtr(m.AdminNotes),
		ApprovedAt:            null.TimeFromPtr(m.ApprovedAt),
		ApprovedBy:            m.ApprovedBy,
		CommissionID:          m.CommissionID,
		PackageID:             m.PackageID,
		PackageDurationMonths: m.PackageDurationMonths,
		SessionKey:            null.StringFromPtr(m.SessionKey),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func paymentsToEntities(ms []models.Payment) []*entities.Payment {
	out := make([]*entities.Payment, 0, len(ms))
	for i := range ms {
		out = append(out, paymentToEntity(&ms[i]))
	}
	return out
}
