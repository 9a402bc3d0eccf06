package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/domain/repositories"
	"offer-bazar.backend/pkg/logger"
	"offer-bazar.backend/pkg/metrics"
	"offer-bazar.backend/pkg/utils"
)

// MerchantUsecase handles merchant profiles, entitlements and the
// subscription expiry transition
type MerchantUsecase struct {
	merchantRepo     repositories.MerchantRepository
	storeRepo        repositories.StoreRepository
	packageRepo      repositories.PackageRepository
	paymentRepo      repositories.PaymentRepository
	notificationRepo repositories.NotificationRepository
	uow              repositories.UnitOfWork
}

// NewMerchantUsecase creates a new merchant usecase
func NewMerchantUsecase(
	merchantRepo repositories.MerchantRepository,
	storeRepo repositories.StoreRepository,
	packageRepo repositories.PackageRepository,
	paymentRepo repositories.PaymentRepository,
	notificationRepo repositories.NotificationRepository,
	uow repositories.UnitOfWork,
) *MerchantUsecase {
	return &MerchantUsecase{
		merchantRepo:     merchantRepo,
		storeRepo:        storeRepo,
		packageRepo:      packageRepo,
		paymentRepo:      paymentRepo,
		notificationRepo: notificationRepo,
		uow:              uow,
	}
}

// GetProfile returns the merchant together with its store and package info.
// An overdue subscription is expired on read so the caller never sees a
// stale active state.
func (u *MerchantUsecase) GetProfile(ctx context.Context, merchantID uuid.UUID) (*entities.MerchantProfileResponse, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	if merchant.PackageStatus == entities.PackageStatusActive &&
		merchant.PackageEndDate.Valid && !merchant.PackageEndDate.Time.After(time.Now()) {
		if _, err := u.ExpirePackage(ctx, merchantID); err != nil {
			return nil, err
		}
		if merchant, err = u.merchantRepo.GetByID(ctx, merchantID); err != nil {
			return nil, err
		}
	}

	profile := &entities.MerchantProfileResponse{Merchant: merchant}

	store, err := u.storeRepo.GetByMerchantID(ctx, merchantID)
	if err != nil && err != domainerrors.ErrNotFound {
		return nil, err
	}
	profile.Store = store

	if merchant.PackageID != nil {
		pkg, err := u.packageRepo.GetByID(ctx, *merchant.PackageID)
		if err != nil && err != domainerrors.ErrNotFound {
			return nil, err
		}
		profile.Package = pkg
	}

	return profile, nil
}

// UpdateProfile applies a partial profile update
func (u *MerchantUsecase) UpdateProfile(ctx context.Context, merchantID uuid.UUID, input *entities.MerchantUpdateInput) (*entities.Merchant, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		merchant.Name = input.Name
	}
	if input.Phone != "" {
		merchant.Phone.SetValid(input.Phone)
	}
	if input.BusinessName != "" {
		merchant.BusinessName.SetValid(input.BusinessName)
	}
	if input.BusinessType != "" {
		merchant.BusinessType.SetValid(input.BusinessType)
	}
	if input.Website != "" {
		merchant.Website.SetValid(input.Website)
	}
	if input.Address != "" {
		merchant.Address.SetValid(input.Address)
	}
	if input.PhotoURL != "" {
		merchant.PhotoURL.SetValid(input.PhotoURL)
	}

	if err := u.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, err
	}
	return merchant, nil
}

// ExpirePackage runs the guarded expiry transition for one merchant. It
// returns false without side effects when the subscription is not overdue,
// so concurrent sweeps and profile reads produce a single notification.
func (u *MerchantUsecase) ExpirePackage(ctx context.Context, merchantID uuid.UUID) (bool, error) {
	expired := false
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		lockCtx := u.uow.WithLock(txCtx)

		merchant, err := u.merchantRepo.GetByID(lockCtx, merchantID)
		if err != nil {
			return err
		}
		if merchant.PackageStatus != entities.PackageStatusActive {
			return nil
		}
		if !merchant.PackageEndDate.Valid || merchant.PackageEndDate.Time.After(time.Now()) {
			return nil
		}

		merchant.PackageStatus = entities.PackageStatusExpired
		merchant.ApprovalStatus = entities.ApprovalStatusRejected
		merchant.IsApproved = false
		if err := u.merchantRepo.Update(lockCtx, merchant); err != nil {
			return err
		}

		if err := u.notificationRepo.Create(lockCtx, &entities.Notification{
			MerchantID: &merchant.ID,
			Message:    "Your package has expired. Renew your subscription to keep your offers visible.",
			Type:       entities.NotificationTypeWarning,
			SentBy:     "system",
		}); err != nil {
			return err
		}

		expired = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if expired {
		metrics.PackagesExpiredTotal.Inc()
		logger.Info(ctx, "merchant package expired", zap.String("merchant_id", merchantID.String()))
	}
	return expired, nil
}

// GetExpiryCandidates returns merchants whose active window already ended
func (u *MerchantUsecase) GetExpiryCandidates(ctx context.Context, limit int) ([]*entities.Merchant, error) {
	return u.merchantRepo.GetActiveExpiredBefore(ctx, time.Now(), limit)
}

// ListMerchants returns a paginated admin listing with access-fee state
func (u *MerchantUsecase) ListMerchants(ctx context.Context, page, limit int) ([]*entities.MerchantPaymentStatus, *utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	merchants, total, err := u.merchantRepo.List(ctx, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, nil, err
	}

	rows := make([]*entities.MerchantPaymentStatus, 0, len(merchants))
	for _, m := range merchants {
		rows = append(rows, &entities.MerchantPaymentStatus{
			Merchant:      m,
			PaymentStatus: accessFeeStatus(m),
		})
	}

	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return rows, &meta, nil
}

func accessFeeStatus(m *entities.Merchant) string {
	switch {
	case m.AccessFeePaid:
		return "paid"
	case m.AccessFee <= 0:
		return "not_set"
	default:
		return "unpaid"
	}
}

// GetMerchant returns a single merchant by id
func (u *MerchantUsecase) GetMerchant(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	return u.merchantRepo.GetByID(ctx, id)
}

// ApproveMerchant approves a merchant account (admin only)
func (u *MerchantUsecase) ApproveMerchant(ctx context.Context, merchantID uuid.UUID) (*entities.Merchant, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	merchant.ApprovalStatus = entities.ApprovalStatusApproved
	merchant.IsApproved = true
	merchant.IsActive = true
	if err := u.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, err
	}

	if err := u.notificationRepo.Create(ctx, &entities.Notification{
		MerchantID: &merchant.ID,
		Message:    "Your merchant account has been approved",
		Type:       entities.NotificationTypeSuccess,
		SentBy:     "system",
	}); err != nil {
		return nil, err
	}
	return merchant, nil
}

// RejectMerchant rejects a merchant account (admin only)
func (u *MerchantUsecase) RejectMerchant(ctx context.Context, merchantID uuid.UUID, reason string) (*entities.Merchant, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	merchant.ApprovalStatus = entities.ApprovalStatusRejected
	merchant.IsApproved = false
	if err := u.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, err
	}

	message := "Your merchant account application has been rejected"
	if reason != "" {
		message += ": " + reason
	}
	if err := u.notificationRepo.Create(ctx, &entities.Notification{
		MerchantID: &merchant.ID,
		Message:    message,
		Type:       entities.NotificationTypeWarning,
		SentBy:     "system",
	}); err != nil {
		return nil, err
	}
	return merchant, nil
}

// SetAccessFee sets the one-time access fee a merchant owes
func (u *MerchantUsecase) SetAccessFee(ctx context.Context, merchantID uuid.UUID, fee float64) (*entities.Merchant, error) {
	if fee < 0 {
		return nil, domainerrors.Conflict("access fee cannot be negative")
	}

	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	merchant.AccessFee = fee
	if err := u.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, err
	}
	return merchant, nil
}

// MarkAccessFeePaid marks the access fee as settled outside the payment flow
func (u *MerchantUsecase) MarkAccessFeePaid(ctx context.Context, merchantID uuid.UUID) (*entities.Merchant, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if merchant.AccessFeePaid {
		return merchant, nil
	}

	merchant.AccessFeePaid = true
	merchant.AccessFeePaymentDate = null.TimeFrom(time.Now())
	if err := u.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, err
	}
	return merchant, nil
}

// DeleteMerchant removes a merchant account (admin only)
func (u *MerchantUsecase) DeleteMerchant(ctx context.Context, merchantID uuid.UUID) error {
	if _, err := u.merchantRepo.GetByID(ctx, merchantID); err != nil {
		return err
	}
	return u.merchantRepo.Delete(ctx, merchantID)
}

// GetStats builds the admin dashboard summary
func (u *MerchantUsecase) GetStats(ctx context.Context) (*entities.AdminStats, error) {
	stats := &entities.AdminStats{}
	var err error

	if stats.TotalMerchants, err = u.merchantRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingMerchants, err = u.merchantRepo.CountByApprovalStatus(ctx, entities.ApprovalStatusPending); err != nil {
		return nil, err
	}
	if stats.ApprovedMerchants, err = u.merchantRepo.CountByApprovalStatus(ctx, entities.ApprovalStatusApproved); err != nil {
		return nil, err
	}
	if stats.TotalPayments, err = u.paymentRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingPayments, err = u.paymentRepo.CountByStatus(ctx, entities.PaymentStatusPending); err != nil {
		return nil, err
	}
	if stats.ApprovedPayments, err = u.paymentRepo.CountByStatus(ctx, entities.PaymentStatusApproved); err != nil {
		return nil, err
	}
	if stats.RejectedPayments, err = u.paymentRepo.CountByStatus(ctx, entities.PaymentStatusRejected); err != nil {
		return nil, err
	}

	return stats, nil
}
