package usecases

import (
	"context"

	"go.uber.org/zap"

	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/domain/repositories"
	"offer-bazar.backend/pkg/logger"
	"offer-bazar.backend/pkg/metrics"
)

// GatewayUsecase processes SSLCommerz IPN callbacks. The success path reuses
// the same settlement cascade the admin approval runs.
type GatewayUsecase struct {
	paymentUC   *PaymentUsecase
	paymentRepo repositories.PaymentRepository
	uow         repositories.UnitOfWork
	gateway     GatewayClient
}

// NewGatewayUsecase creates a new gateway usecase
func NewGatewayUsecase(
	paymentUC *PaymentUsecase,
	paymentRepo repositories.PaymentRepository,
	uow repositories.UnitOfWork,
	gateway GatewayClient,
) *GatewayUsecase {
	return &GatewayUsecase{
		paymentUC:   paymentUC,
		paymentRepo: paymentRepo,
		uow:         uow,
		gateway:     gateway,
	}
}

// HandleSuccess validates a successful checkout against the gateway's
// validation API, then settles the payment. Gateway retries are idempotent.
func (u *GatewayUsecase) HandleSuccess(ctx context.Context, tranID, valID string) error {
	if tranID == "" || valID == "" {
		return domainerrors.BadRequest("tran_id and val_id are required")
	}

	validation, err := u.gateway.ValidateTransaction(ctx, valID)
	if err != nil {
		logger.Error(ctx, "gateway validation call failed",
			zap.String("tran_id", tranID), zap.Error(err))
		return domainerrors.NewAppError(502, "gateway validation failed", err)
	}
	if !validation.Valid() {
		metrics.RecordGatewayCallback("invalid")
		logger.Warn(ctx, "gateway reported transaction as not valid",
			zap.String("tran_id", tranID),
			zap.String("status", validation.Status))
		return domainerrors.ErrGatewayValidation
	}
	if validation.TranID != "" && validation.TranID != tranID {
		metrics.RecordGatewayCallback("invalid")
		return domainerrors.ErrGatewayValidation
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		lockCtx := u.uow.WithLock(txCtx)

		payment, err := u.paymentRepo.GetByTransactionID(lockCtx, tranID)
		if err != nil {
			return err
		}
		if payment.Status == entities.PaymentStatusApproved {
			// Duplicate IPN delivery, already settled.
			return nil
		}
		return u.paymentUC.applyApproval(lockCtx, payment, nil, "settled via sslcommerz gateway")
	})
	if err != nil {
		return err
	}

	metrics.RecordGatewayCallback("success")
	logger.Info(ctx, "gateway payment settled", zap.String("tran_id", tranID))
	return nil
}

// HandleFail marks a gateway payment as rejected after a failed checkout
func (u *GatewayUsecase) HandleFail(ctx context.Context, tranID string) error {
	metrics.RecordGatewayCallback("fail")
	return u.closeOut(ctx, tranID, "gateway payment failed")
}

// HandleCancel marks a gateway payment as rejected after the customer cancelled
func (u *GatewayUsecase) HandleCancel(ctx context.Context, tranID string) error {
	metrics.RecordGatewayCallback("cancel")
	return u.closeOut(ctx, tranID, "gateway payment cancelled by customer")
}

func (u *GatewayUsecase) closeOut(ctx context.Context, tranID, reason string) error {
	if tranID == "" {
		return domainerrors.BadRequest("tran_id is required")
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		lockCtx := u.uow.WithLock(txCtx)

		payment, err := u.paymentRepo.GetByTransactionID(lockCtx, tranID)
		if err != nil {
			return err
		}
		// Only a still-pending payment is closed out. A settled one keeps its
		// state even if the gateway later reports failure for a retry.
		if payment.Status != entities.PaymentStatusPending {
			return nil
		}

		payment.Status = entities.PaymentStatusRejected
		payment.AdminNotes.SetValid(reason)
		return u.paymentRepo.Update(lockCtx, payment)
	})
}
