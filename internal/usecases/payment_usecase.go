package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/domain/repositories"
	"offer-bazar.backend/internal/infrastructure/gateway/sslcommerz"
	"offer-bazar.backend/pkg/crypto"
	"offer-bazar.backend/pkg/logger"
	"offer-bazar.backend/pkg/metrics"
	"offer-bazar.backend/pkg/utils"
)

// GatewayClient is the checkout gateway surface the payment flow needs
type GatewayClient interface {
	CreateSession(ctx context.Context, input *sslcommerz.SessionInput) (*sslcommerz.SessionResponse, error)
	ValidateTransaction(ctx context.Context, valID string) (*sslcommerz.ValidationResponse, error)
}

// PaymentUsecase handles the payment ledger and the approval workflow
type PaymentUsecase struct {
	paymentRepo      repositories.PaymentRepository
	merchantRepo     repositories.MerchantRepository
	commissionRepo   repositories.CommissionRepository
	packageRepo      repositories.PackageRepository
	notificationRepo repositories.NotificationRepository
	uow              repositories.UnitOfWork
	gateway          GatewayClient
	callbackBase     string
}

// NewPaymentUsecase creates a new payment usecase
func NewPaymentUsecase(
	paymentRepo repositories.PaymentRepository,
	merchantRepo repositories.MerchantRepository,
	commissionRepo repositories.CommissionRepository,
	packageRepo repositories.PackageRepository,
	notificationRepo repositories.NotificationRepository,
	uow repositories.UnitOfWork,
	gateway GatewayClient,
	callbackBase string,
) *PaymentUsecase {
	return &PaymentUsecase{
		paymentRepo:      paymentRepo,
		merchantRepo:     merchantRepo,
		commissionRepo:   commissionRepo,
		packageRepo:      packageRepo,
		notificationRepo: notificationRepo,
		uow:              uow,
		gateway:          gateway,
		callbackBase:     callbackBase,
	}
}

// CreatePayment records a payment submission. Manual methods go straight into
// the pending queue; sslcommerz opens a hosted checkout session first.
func (u *PaymentUsecase) CreatePayment(ctx context.Context, merchantID uuid.UUID, input *entities.CreatePaymentInput) (*entities.CreatePaymentResponse, error) {
	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.BadRequest(fmt.Sprintf("unsupported payment method: %s", input.PaymentMethod))
	}

	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	payment := &entities.Payment{
		MerchantID:    merchant.ID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Status:        entities.PaymentStatusPending,
	}
	payment.SenderPhone = null.NewString(input.SenderPhone, input.SenderPhone != "")
	payment.SenderAccount = null.NewString(input.SenderAccount, input.SenderAccount != "")
	payment.ReceiverPhone = null.NewString(input.ReceiverPhone, input.ReceiverPhone != "")
	payment.ReceiverAccount = null.NewString(input.ReceiverAccount, input.ReceiverAccount != "")
	payment.BankName = null.NewString(input.BankName, input.BankName != "")
	payment.BankAccountNumber = null.NewString(input.BankAccountNumber, input.BankAccountNumber != "")
	payment.PaymentProof = null.NewString(input.PaymentProof, input.PaymentProof != "")

	// Resolve the optional package attachment up front so a bad id fails
	// before anything is persisted.
	if input.PackageID != "" {
		pkgID, err := uuid.Parse(input.PackageID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid package id")
		}
		pkg, err := u.packageRepo.GetByID(ctx, pkgID)
		if err != nil {
			return nil, err
		}
		if !pkg.IsActive {
			return nil, domainerrors.BadRequest("package is not available")
		}
		months := input.PackageDurationMonths
		if months <= 0 {
			months = pkg.DurationInMonths
		}
		payment.PackageID = &pkg.ID
		payment.PackageDurationMonths = &months
	}

	commission, err := u.ensureCommission(ctx, merchant.ID)
	if err != nil {
		return nil, err
	}
	payment.CommissionID = &commission.ID

	if input.PaymentMethod.IsManual() {
		return u.createManualPayment(ctx, payment, input.TransactionID)
	}
	return u.createGatewayPayment(ctx, merchant, payment)
}

func (u *PaymentUsecase) createManualPayment(ctx context.Context, payment *entities.Payment, transactionID string) (*entities.CreatePaymentResponse, error) {
	if transactionID == "" {
		return nil, domainerrors.BadRequest("transactionId is required for manual payment methods")
	}

	existing, err := u.paymentRepo.GetByTransactionID(ctx, transactionID)
	if err != nil && err != domainerrors.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("a payment with this transaction id already exists")
	}

	payment.TransactionID = transactionID
	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	metrics.RecordPaymentCreated(string(payment.PaymentMethod))
	logger.Info(ctx, "manual payment submitted",
		zap.String("payment_id", payment.ID.String()),
		zap.String("merchant_id", payment.MerchantID.String()),
		zap.Float64("amount", payment.Amount))

	return &entities.CreatePaymentResponse{
		Payment: payment,
		Message: "Payment submitted and pending admin review",
	}, nil
}

func (u *PaymentUsecase) createGatewayPayment(ctx context.Context, merchant *entities.Merchant, payment *entities.Payment) (*entities.CreatePaymentResponse, error) {
	token, err := crypto.GenerateRandomToken(12)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	tranID := "SSL-" + token

	sessionInput := &sslcommerz.SessionInput{
		Amount:        payment.Amount,
		TranID:        tranID,
		SuccessURL:    u.callbackBase + "/api/v1/payments/gateway/success",
		FailURL:       u.callbackBase + "/api/v1/payments/gateway/fail",
		CancelURL:     u.callbackBase + "/api/v1/payments/gateway/cancel",
		ProductName:   "Offer Bazar merchant payment",
		CustomerName:  merchant.Name,
		CustomerEmail: merchant.Email,
		CustomerPhone: merchant.Phone.String,
		ValueA:        merchant.ID.String(),
	}
	if payment.PackageID != nil {
		sessionInput.ValueB = payment.PackageID.String()
	}
	if payment.CommissionID != nil {
		sessionInput.ValueC = payment.CommissionID.String()
	}
	if payment.PackageDurationMonths != nil {
		sessionInput.ValueD = fmt.Sprintf("%d", *payment.PackageDurationMonths)
	}

	session, err := u.gateway.CreateSession(ctx, sessionInput)
	if err != nil {
		logger.Error(ctx, "gateway session creation failed", zap.Error(err))
		return nil, domainerrors.NewAppError(502, "failed to initiate gateway payment", err)
	}

	payment.TransactionID = tranID
	payment.SessionKey = null.StringFrom(session.SessionKey)
	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	metrics.RecordPaymentCreated(string(payment.PaymentMethod))
	logger.Info(ctx, "gateway payment session opened",
		zap.String("payment_id", payment.ID.String()),
		zap.String("tran_id", tranID))

	return &entities.CreatePaymentResponse{
		Payment:     payment,
		RedirectURL: session.GatewayPageURL,
		Message:     "Redirect the customer to the gateway to complete payment",
	}, nil
}

// ApprovePayment approves a pending payment and runs the full settlement
// cascade inside one locked transaction.
func (u *PaymentUsecase) ApprovePayment(ctx context.Context, paymentID, adminID uuid.UUID, notes string) (*entities.Payment, error) {
	var approved *entities.Payment
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		lockCtx := u.uow.WithLock(txCtx)

		payment, err := u.paymentRepo.GetByID(lockCtx, paymentID)
		if err != nil {
			return err
		}
		if payment.Status == entities.PaymentStatusApproved {
			return domainerrors.ErrAlreadyApproved
		}

		if err := u.applyApproval(lockCtx, payment, &adminID, notes); err != nil {
			return err
		}
		approved = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPaymentReviewed("approved")
	return approved, nil
}

// applyApproval settles an un-approved payment: marks it approved, credits
// the commission ledger, marks the access fee when covered and activates or
// extends the package window. Callers must hold the row locks.
func (u *PaymentUsecase) applyApproval(ctx context.Context, payment *entities.Payment, approvedBy *uuid.UUID, notes string) error {
	now := time.Now()

	payment.Status = entities.PaymentStatusApproved
	payment.ApprovedAt = null.TimeFrom(now)
	payment.ApprovedBy = approvedBy
	if notes != "" {
		payment.AdminNotes = null.StringFrom(notes)
	}
	if err := u.paymentRepo.Update(ctx, payment); err != nil {
		return err
	}

	merchant, err := u.merchantRepo.GetByID(ctx, payment.MerchantID)
	if err != nil {
		return err
	}

	commission, err := u.resolveCommission(ctx, payment)
	if err != nil {
		return err
	}
	commission.PaidCommission += payment.Amount
	commission.LastUpdated = now
	if err := u.commissionRepo.Update(ctx, commission); err != nil {
		return err
	}

	if !merchant.AccessFeePaid && payment.Amount >= merchant.AccessFee {
		merchant.AccessFeePaid = true
		merchant.AccessFeePaymentDate = null.TimeFrom(now)
		merchant.AccessFeePaymentID = &payment.ID
	}

	if payment.PackageID != nil && payment.PackageDurationMonths != nil {
		pkg, err := u.packageRepo.GetByID(ctx, *payment.PackageID)
		if err != nil {
			if err != domainerrors.ErrNotFound {
				return err
			}
			// Package removed from the catalog after submission. The payment
			// still settles, only the subscription part is skipped.
			logger.Warn(ctx, "approved payment references missing package",
				zap.String("payment_id", payment.ID.String()),
				zap.String("package_id", payment.PackageID.String()))
		} else {
			months := *payment.PackageDurationMonths
			if months <= 0 {
				months = pkg.DurationInMonths
			}
			if merchant.PackageStatus == entities.PackageStatusActive &&
				merchant.PackageEndDate.Valid && merchant.PackageEndDate.Time.After(now) {
				// Still running, stack the new months on the current window.
				merchant.PackageEndDate = null.TimeFrom(merchant.PackageEndDate.Time.AddDate(0, months, 0))
			} else {
				merchant.PackageStartDate = null.TimeFrom(now)
				merchant.PackageEndDate = null.TimeFrom(now.AddDate(0, months, 0))
			}
			merchant.PackageID = &pkg.ID
			merchant.PackageStatus = entities.PackageStatusActive
		}
	}

	if err := u.merchantRepo.Update(ctx, merchant); err != nil {
		return err
	}

	return u.notificationRepo.Create(ctx, &entities.Notification{
		MerchantID: &merchant.ID,
		Message:    fmt.Sprintf("Your payment of %.2f has been approved", payment.Amount),
		Type:       entities.NotificationTypeSuccess,
		SentBy:     "system",
	})
}

// RejectPayment rejects a pending payment. Rejecting an already rejected
// payment is a no-op; an approved payment cannot be rejected.
func (u *PaymentUsecase) RejectPayment(ctx context.Context, paymentID, adminID uuid.UUID, notes string) (*entities.Payment, error) {
	var rejected *entities.Payment
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		lockCtx := u.uow.WithLock(txCtx)

		payment, err := u.paymentRepo.GetByID(lockCtx, paymentID)
		if err != nil {
			return err
		}
		switch payment.Status {
		case entities.PaymentStatusApproved:
			return domainerrors.Conflict("an approved payment cannot be rejected")
		case entities.PaymentStatusRejected:
			rejected = payment
			return nil
		}

		payment.Status = entities.PaymentStatusRejected
		payment.ApprovedBy = &adminID
		if notes != "" {
			payment.AdminNotes = null.StringFrom(notes)
		}
		if err := u.paymentRepo.Update(lockCtx, payment); err != nil {
			return err
		}

		if err := u.notificationRepo.Create(lockCtx, &entities.Notification{
			MerchantID: &payment.MerchantID,
			Message:    fmt.Sprintf("Your payment of %.2f has been rejected", payment.Amount),
			Type:       entities.NotificationTypeWarning,
			SentBy:     "system",
		}); err != nil {
			return err
		}

		metrics.RecordPaymentReviewed("rejected")
		rejected = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}

// GetPayment returns a single payment by id
func (u *PaymentUsecase) GetPayment(ctx context.Context, id uuid.UUID) (*entities.Payment, error) {
	return u.paymentRepo.GetByID(ctx, id)
}

// GetMerchantPayments returns all payments for a merchant, newest first
func (u *PaymentUsecase) GetMerchantPayments(ctx context.Context, merchantID uuid.UUID) ([]*entities.Payment, error) {
	return u.paymentRepo.GetByMerchantID(ctx, merchantID)
}

// GetPendingPayments returns the admin review queue
func (u *PaymentUsecase) GetPendingPayments(ctx context.Context) ([]*entities.Payment, error) {
	return u.paymentRepo.GetPending(ctx)
}

// ListPayments returns a filtered, paginated payment listing for admins
func (u *PaymentUsecase) ListPayments(ctx context.Context, filter entities.PaymentListFilter, page, limit int) ([]*entities.Payment, *utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	payments, total, err := u.paymentRepo.List(ctx, filter, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return payments, &meta, nil
}

// DeletePayment removes a payment record. Approved payments stay, they are
// part of the settled ledger.
func (u *PaymentUsecase) DeletePayment(ctx context.Context, id uuid.UUID) error {
	payment, err := u.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment.Status == entities.PaymentStatusApproved {
		return domainerrors.Conflict("an approved payment cannot be deleted")
	}
	return u.paymentRepo.Delete(ctx, id)
}

// GetMerchantCommission returns the merchant's commission ledger, creating an
// empty one on first access.
func (u *PaymentUsecase) GetMerchantCommission(ctx context.Context, merchantID uuid.UUID) (*entities.Commission, error) {
	if _, err := u.merchantRepo.GetByID(ctx, merchantID); err != nil {
		return nil, err
	}
	return u.ensureCommission(ctx, merchantID)
}

// AddCommission adds an owed amount to a merchant's commission ledger
func (u *PaymentUsecase) AddCommission(ctx context.Context, input *entities.AddCommissionInput) (*entities.Commission, error) {
	merchantID, err := uuid.Parse(input.MerchantID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid merchant id")
	}
	if _, err := u.merchantRepo.GetByID(ctx, merchantID); err != nil {
		return nil, err
	}

	var commission *entities.Commission
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		lockCtx := u.uow.WithLock(txCtx)

		commission, err = u.ensureCommission(lockCtx, merchantID)
		if err != nil {
			return err
		}
		commission.TotalCommission += input.Amount
		if input.CommissionRate != nil {
			commission.CommissionRate = *input.CommissionRate
		}
		commission.LastUpdated = time.Now()
		return u.commissionRepo.Update(lockCtx, commission)
	})
	if err != nil {
		return nil, err
	}
	return commission, nil
}

// ensureCommission fetches the merchant ledger, creating it when missing
func (u *PaymentUsecase) ensureCommission(ctx context.Context, merchantID uuid.UUID) (*entities.Commission, error) {
	commission, err := u.commissionRepo.GetByMerchantID(ctx, merchantID)
	if err == nil {
		return commission, nil
	}
	if err != domainerrors.ErrNotFound {
		return nil, err
	}

	commission = &entities.Commission{
		MerchantID:     merchantID,
		CommissionRate: entities.DefaultCommissionRate,
		LastUpdated:    time.Now(),
	}
	if err := u.commissionRepo.Create(ctx, commission); err != nil {
		// Lost a create race, the row is there now.
		if err == domainerrors.ErrAlreadyExists {
			return u.commissionRepo.GetByMerchantID(ctx, merchantID)
		}
		return nil, err
	}
	return commission, nil
}

// resolveCommission returns the ledger a payment settles into
func (u *PaymentUsecase) resolveCommission(ctx context.Context, payment *entities.Payment) (*entities.Commission, error) {
	if payment.CommissionID != nil {
		commission, err := u.commissionRepo.GetByID(ctx, *payment.CommissionID)
		if err == nil {
			return commission, nil
		}
		if err != domainerrors.ErrNotFound {
			return nil, err
		}
	}
	return u.ensureCommission(ctx, payment.MerchantID)
}
