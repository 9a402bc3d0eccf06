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

type OfferService interface {
	CreateOffer(ctx context.Context, merchantID uuid.UUID, input *entities.CreateOfferInput) (*entities.Offer, error)
	GetOffer(ctx context.Context, id uuid.UUID) (*entities.Offer, error)
	GetMerchantOffers(ctx context.Context, merchantID uuid.UUID) ([]*entities.Offer, error)
	ListPublicOffers(ctx context.Context, filter entities.OfferListFilter, page, limit int) ([]*entities.Offer, *utils.PaginationMeta, error)
	ListAllOffers(ctx context.Context, page, limit int) ([]*entities.Offer, *utils.PaginationMeta, error)
	UpdateOffer(ctx context.Context, merchantID, offerID uuid.UUID, input *entities.UpdateOfferInput) (*entities.Offer, error)
	ReviewOffer(ctx context.Context, offerID uuid.UUID, approve bool) (*entities.Offer, error)
	DeleteOffer(ctx context.Context, merchantID, offerID uuid.UUID) error
}

// OfferHandler handles offer endpoints
type OfferHandler struct {
	offerUsecase OfferService
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(offerUsecase OfferService) *OfferHandler {
	return &OfferHandler{offerUsecase: offerUsecase}
}

// ListOffers lists approved offers for the public catalog
// GET /api/v1/offers
func (h *OfferHandler) ListOffers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := entities.OfferListFilter{Category: c.Query("category")}
	if storeIDStr := c.Query("storeId"); storeIDStr != "" {
		storeID, err := uuid.Parse(storeIDStr)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid store ID"))
			return
		}
		filter.StoreID = &storeID
	}

	offers, meta, err := h.offerUsecase.ListPublicOffers(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"offers":     offers,
		"pagination": meta,
	})
}

// GetOffer returns an offer by id
// GET /api/v1/offers/:id
func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid offer ID"))
		return
	}

	offer, err := h.offerUsecase.GetOffer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, offer)
}

// CreateOffer publishes an offer under the merchant's store
// POST /api/v1/offers
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var input entities.CreateOfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	offer, err := h.offerUsecase.CreateOffer(c.Request.Context(), merchantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, offer)
}

// GetMyOffers lists the authenticated merchant's offers
// GET /api/v1/offers/my
func (h *OfferHandler) GetMyOffers(c *gin.Context) {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	offers, err := h.offerUsecase.GetMerchantOffers(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"offers": offers})
}

// UpdateOffer updates the merchant's own offer
// PUT /api/v1/offers/:id
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid offer ID"))
		return
	}

	var input entities.UpdateOfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	offer, err := h.offerUsecase.UpdateOffer(c.Request.Context(), merchantID, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, offer)
}

// DeleteOffer removes the merchant's own offer
// DELETE /api/v1/offers/:id
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid offer ID"))
		return
	}

	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	if err := h.offerUsecase.DeleteOffer(c.Request.Context(), merchantID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Offer deleted"})
}

// ListAllOffers lists every offer regardless of state
// GET /api/v1/admin/offers
func (h *OfferHandler) ListAllOffers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	offers, meta, err := h.offerUsecase.ListAllOffers(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"offers":     offers,
		"pagination": meta,
	})
}

// ApproveOffer approves an offer
// PUT /api/v1/admin/offers/:id/approve
func (h *OfferHandler) ApproveOffer(c *gin.Context) {
	h.review(c, true)
}

// RejectOffer rejects an offer
// PUT /api/v1/admin/offers/:id/reject
func (h *OfferHandler) RejectOffer(c *gin.Context) {
	h.review(c, false)
}

func (h *OfferHandler) review(c *gin.Context, approve bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid offer ID"))
		return
	}

	offer, err := h.offerUsecase.ReviewOffer(c.Request.Context(), id, approve)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, offer)
}
