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

type StoreService interface {
	CreateStore(ctx context.Context, merchantID uuid.UUID, input *entities.CreateStoreInput) (*entities.Store, error)
	GetStore(ctx context.Context, id uuid.UUID) (*entities.Store, error)
	GetMerchantStore(ctx context.Context, merchantID uuid.UUID) (*entities.Store, error)
	ListStores(ctx context.Context, page, limit int) ([]*entities.Store, *utils.PaginationMeta, error)
	UpdateStore(ctx context.Context, merchantID uuid.UUID, input *entities.UpdateStoreInput) (*entities.Store, error)
	ReviewStore(ctx context.Context, storeID uuid.UUID, approve bool) (*entities.Store, error)
	DeleteStore(ctx context.Context, merchantID uuid.UUID) error
}

// StoreHandler handles storefront endpoints
type StoreHandler struct {
	storeUsecase StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeUsecase StoreService) *StoreHandler {
	return &StoreHandler{storeUsecase: storeUsecase}
}

// CreateStore opens a storefront for the authenticated merchant
// POST /api/v1/stores
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var input entities.CreateStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	store, err := h.storeUsecase.CreateStore(c.Request.Context(), merchantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, store)
}

// GetMyStore returns the authenticated merchant's store
// GET /api/v1/stores/my
func (h *StoreHandler) GetMyStore(c *gin.Context) {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	store, err := h.storeUsecase.GetMerchantStore(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, store)
}

// GetStore returns a store by id
// GET /api/v1/stores/:id
func (h *StoreHandler) GetStore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid store ID"))
		return
	}

	store, err := h.storeUsecase.GetStore(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, store)
}

// ListStores lists stores
// GET /api/v1/stores
func (h *StoreHandler) ListStores(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	stores, meta, err := h.storeUsecase.ListStores(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"stores":     stores,
		"pagination": meta,
	})
}

// UpdateStore updates the authenticated merchant's store
// PUT /api/v1/stores/my
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	var input entities.UpdateStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	store, err := h.storeUsecase.UpdateStore(c.Request.Context(), merchantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, store)
}

// DeleteStore removes the authenticated merchant's store
// DELETE /api/v1/stores/my
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Merchant not authenticated"))
		return
	}

	if err := h.storeUsecase.DeleteStore(c.Request.Context(), merchantID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Store deleted"})
}

// ApproveStore approves a store
// PUT /api/v1/admin/stores/:id/approve
func (h *StoreHandler) ApproveStore(c *gin.Context) {
	h.review(c, true)
}

// RejectStore rejects a store
// PUT /api/v1/admin/stores/:id/reject
func (h *StoreHandler) RejectStore(c *gin.Context) {
	h.review(c, false)
}

func (h *StoreHandler) review(c *gin.Context, approve bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid store ID"))
		return
	}

	store, err := h.storeUsecase.ReviewStore(c.Request.Context(), id, approve)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, store)
}
