package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"offer-bazar.backend/internal/interfaces/http/response"
)

type GatewayService interface {
	HandleSuccess(ctx context.Context, tranID, valID string) error
	HandleFail(ctx context.Context, tranID string) error
	HandleCancel(ctx context.Context, tranID string) error
}

// GatewayHandler handles SSLCommerz IPN callbacks. The gateway posts
// form-encoded payloads, not JSON.
type GatewayHandler struct {
	gatewayUsecase GatewayService
}

// NewGatewayHandler creates a new gateway handler
func NewGatewayHandler(gatewayUsecase GatewayService) *GatewayHandler {
	return &GatewayHandler{gatewayUsecase: gatewayUsecase}
}

// Success settles a payment after a completed checkout
// POST /api/v1/payments/gateway/success
func (h *GatewayHandler) Success(c *gin.Context) {
	tranID := c.PostForm("tran_id")
	valID := c.PostForm("val_id")

	if err := h.gatewayUsecase.HandleSuccess(c.Request.Context(), tranID, valID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Payment completed"})
}

// Fail closes out a payment after a failed checkout
// POST /api/v1/payments/gateway/fail
func (h *GatewayHandler) Fail(c *gin.Context) {
	if err := h.gatewayUsecase.HandleFail(c.Request.Context(), c.PostForm("tran_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Payment marked as failed"})
}

// Cancel closes out a payment after the customer cancelled
// POST /api/v1/payments/gateway/cancel
func (h *GatewayHandler) Cancel(c *gin.Context) {
	if err := h.gatewayUsecase.HandleCancel(c.Request.Context(), c.PostForm("tran_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Payment cancelled"})
}
