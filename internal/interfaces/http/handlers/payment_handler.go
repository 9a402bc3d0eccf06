package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/interfaces/http/middleware"
	"offer-bazar.backend/internal/interfaces/http/response"
	"offer-bazar.backend/pkg/utils"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, merchantID uuid.UUID, input *entities.CreatePaymentInput) (*entities.CreatePaymentResponse, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*entities.Payment, error)
	GetMerchantPayments(ctx context.Context, merchantID uuid.UUID) ([]*entities.Payment, error)
	GetPendingPayments(ctx context.Context) ([]*entities.Payment, error)
	ListPayments(ctx context.Context, filter entities.PaymentListFilter, page, limit int) ([]*entities.Payment, *utils.PaginationMeta, error)
	ApprovePayment(ctx context.Context, paymentID, adminID uuid.UUID, notes string) (*entities.Payment, error)
	RejectPayment(ctx context.Context, paymentID, adminID uuid.UUID, notes string) (*entities.Payment, error)
	DeletePayment(ctx context.Context, id uuid.UUID) error
	GetMerchantCommission(ctx context.Context, merchantID uuid.UUID) (*entities.Commission, error)
	AddCommission(ctx context.Context, input *entities.AddCommissionInput) (*entities.Commission, error)
}

// PaymentHandler handles payment and commission endpoints
type PaymentHandler struct {
	paymentUsecase PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUsecase PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// CreatePayment submits a payment for the authenticated merchant
// POST /api/v1/payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var input entities.CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	createResponse, err := h.paymentUsecase.CreatePayment(c.Request.Context(), merchantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, createResponse)
}

// GetMyPayments lists the authenticated merchant's payments
// GET /api/v1/payments/my
func (h *PaymentHandler) GetMyPayments(c *gin.Context) {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	payments, err := h.paymentUsecase.GetMerchantPayments(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}

// GetPayment gets a payment by id
// GET /api/v1/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid payment ID"))
		return
	}

	payment, err := h.paymentUsecase.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Merchants only see their own payments; admins see all.
	role, _ := middleware.GetUserRole(c)
	if role == entities.RoleMerchant {
		merchantID, _ := middleware.GetUserID(c)
		if payment.MerchantID != merchantID {
			response.Error(c, domainerrors.Forbidden("Payment belongs to another merchant"))
			return
		}
	}

	response.Success(c, http.StatusOK, payment)
}

// ListPayments lists payments with optional status and merchant filters
// GET /api/v1/admin/payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := entities.PaymentListFilter{
		Status: entities.PaymentStatus(c.Query("status")),
	}
	if merchantIDStr := c.Query("merchantId"); merchantIDStr != "" {
		merchantID, err := uuid.Parse(merchantIDStr)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
			return
		}
		filter.MerchantID = &merchantID
	}

	payments, meta, err := h.paymentUsecase.ListPayments(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"payments":   payments,
		"pagination": meta,
	})
}

// GetPendingPayments lists the review queue
// GET /api/v1/admin/payments/pending
func (h *PaymentHandler) GetPendingPayments(c *gin.Context) {
	payments, err := h.paymentUsecase.GetPendingPayments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}

// ApprovePayment approves a pending payment
// PUT /api/v1/admin/payments/:id/approve
func (h *PaymentHandler) ApprovePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid payment ID"))
		return
	}

	var input entities.ReviewPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Admin not authenticated"))
		return
	}

	payment, err := h.paymentUsecase.ApprovePayment(c.Request.Context(), id, adminID, input.AdminNotes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, payment)
}

// RejectPayment rejects a pending payment
// PUT /api/v1/admin/payments/:id/reject
func (h *PaymentHandler) RejectPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid payment ID"))
		return
	}

	var input entities.ReviewPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Admin not authenticated"))
		return
	}

	payment, err := h.paymentUsecase.RejectPayment(c.Request.Context(), id, adminID, input.AdminNotes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, payment)
}

// DeletePayment removes a non-approved payment record
// DELETE /api/v1/admin/payments/:id
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid payment ID"))
		return
	}

	if err := h.paymentUsecase.DeletePayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Payment deleted"})
}

// GetMyCommission returns the authenticated merchant's commission ledger
// GET /api/v1/commissions/my
func (h *PaymentHandler) GetMyCommission(c *gin.Context) {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	commission, err := h.paymentUsecase.GetMerchantCommission(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, commission)
}

// GetMerchantCommission returns a merchant's commission ledger
// GET /api/v1/admin/commissions/:merchantId
func (h *PaymentHandler) GetMerchantCommission(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Param("merchantId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	commission, err := h.paymentUsecase.GetMerchantCommission(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, commission)
}

// AddCommission adds an owed amount to a merchant's ledger
// POST /api/v1/admin/commissions
func (h *PaymentHandler) AddCommission(c *gin.Context) {
	var input entities.AddCommissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	commission, err := h.paymentUsecase.AddCommission(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, commission)
}
