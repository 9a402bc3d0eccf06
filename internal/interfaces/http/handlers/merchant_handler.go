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

type MerchantService interface {
	GetProfile(ctx context.Context, merchantID uuid.UUID) (*entities.MerchantProfileResponse, error)
	UpdateProfile(ctx context.Context, merchantID uuid.UUID, input *entities.MerchantUpdateInput) (*entities.Merchant, error)
	GetMerchant(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	ListMerchants(ctx context.Context, page, limit int) ([]*entities.MerchantPaymentStatus, *utils.PaginationMeta, error)
	ApproveMerchant(ctx context.Context, merchantID uuid.UUID) (*entities.Merchant, error)
	RejectMerchant(ctx context.Context, merchantID uuid.UUID, reason string) (*entities.Merchant, error)
	SetAccessFee(ctx context.Context, merchantID uuid.UUID, fee float64) (*entities.Merchant, error)
	MarkAccessFeePaid(ctx context.Context, merchantID uuid.UUID) (*entities.Merchant, error)
	DeleteMerchant(ctx context.Context, merchantID uuid.UUID) error
	GetStats(ctx context.Context) (*entities.AdminStats, error)
}

// MerchantHandler handles merchant profile and admin merchant endpoints
type MerchantHandler struct {
	merchantUsecase MerchantService
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantUsecase MerchantService) *MerchantHandler {
	return &MerchantHandler{merchantUsecase: merchantUsecase}
}

// GetProfile returns the authenticated merchant's profile
// GET /api/v1/merchants/me
func (h *MerchantHandler) GetProfile(c *gin.Context) {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	profile, err := h.merchantUsecase.GetProfile(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile applies a partial profile update
// PUT /api/v1/merchants/me
func (h *MerchantHandler) UpdateProfile(c *gin.Context) {
	var input entities.MerchantUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	merchant, err := h.merchantUsecase.UpdateProfile(c.Request.Context(), merchantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, merchant)
}

// ListMerchants lists merchants with access-fee state
// GET /api/v1/admin/merchants
func (h *MerchantHandler) ListMerchants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	merchants, meta, err := h.merchantUsecase.ListMerchants(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"merchants":  merchants,
		"pagination": meta,
	})
}

// GetMerchant returns a merchant by id
// GET /api/v1/admin/merchants/:id
func (h *MerchantHandler) GetMerchant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	merchant, err := h.merchantUsecase.GetMerchant(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, merchant)
}

// ApproveMerchant approves a merchant account
// PUT /api/v1/admin/merchants/:id/approve
func (h *MerchantHandler) ApproveMerchant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	merchant, err := h.merchantUsecase.ApproveMerchant(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, merchant)
}

// RejectMerchant rejects a merchant account
// PUT /api/v1/admin/merchants/:id/reject
func (h *MerchantHandler) RejectMerchant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	var input struct {
		Reason string `json:"reason,omitempty" binding:"omitempty,max=500"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchant, err := h.merchantUsecase.RejectMerchant(c.Request.Context(), id, input.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, merchant)
}

// SetAccessFee sets the merchant's one-time access fee
// PUT /api/v1/admin/merchants/:id/access-fee
func (h *MerchantHandler) SetAccessFee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	var input entities.SetAccessFeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchant, err := h.merchantUsecase.SetAccessFee(c.Request.Context(), id, *input.AccessFee)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, merchant)
}

// MarkAccessFeePaid settles the access fee outside the payment flow
// PUT /api/v1/admin/merchants/:id/access-fee/paid
func (h *MerchantHandler) MarkAccessFeePaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	merchant, err := h.merchantUsecase.MarkAccessFeePaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, merchant)
}

// DeleteMerchant removes a merchant account
// DELETE /api/v1/admin/merchants/:id
func (h *MerchantHandler) DeleteMerchant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	if err := h.merchantUsecase.DeleteMerchant(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Merchant deleted"})
}

// GetStats returns the admin dashboard summary
// GET /api/v1/admin/stats
func (h *MerchantHandler) GetStats(c *gin.Context) {
	stats, err := h.merchantUsecase.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
