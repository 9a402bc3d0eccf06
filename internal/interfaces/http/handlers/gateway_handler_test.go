package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	domainerrors "offer-bazar.backend/internal/domain/errors"
)

type gatewayServiceStub struct {
	successFn func(ctx context.Context, tranID, valID string) error
	failFn    func(ctx context.Context, tranID string) error
	cancelFn  func(ctx context.Context, tranID string) error
}

func (s gatewayServiceStub) HandleSuccess(ctx context.Context, tranID, valID string) error {
	return s.successFn(ctx, tranID, valID)
}
func (s gatewayServiceStub) HandleFail(ctx context.Context, tranID string) error {
	return s.failFn(ctx, tranID)
}
func (s gatewayServiceStub) HandleCancel(ctx context.Context, tranID string) error {
	return s.cancelFn(ctx, tranID)
}

func postForm(r *gin.Engine, path, form string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGatewayHandler_Callbacks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var gotTranID, gotValID string

	h := NewGatewayHandler(gatewayServiceStub{
		successFn: func(_ context.Context, tranID, valID string) error {
			if tranID == "" {
				return domainerrors.BadRequest("Missing transaction reference")
			}
			gotTranID = tranID
			gotValID = valID
			return nil
		},
		failFn: func(_ context.Context, tranID string) error {
			gotTranID = tranID
			return nil
		},
		cancelFn: func(_ context.Context, tranID string) error {
			return domainerrors.NotFound("Payment not found")
		},
	})

	r := gin.New()
	r.POST("/payments/gateway/success", h.Success)
	r.POST("/payments/gateway/fail", h.Fail)
	r.POST("/payments/gateway/cancel", h.Cancel)

	// Success callback carries the validation id
	w := postForm(r, "/payments/gateway/success", "tran_id=SSL-1&val_id=val-9")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if gotTranID != "SSL-1" || gotValID != "val-9" {
		t.Fatalf("form not parsed: tran=%q val=%q", gotTranID, gotValID)
	}

	// Missing tran_id maps to bad request
	w = postForm(r, "/payments/gateway/success", "val_id=val-9")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	// Fail callback
	w = postForm(r, "/payments/gateway/fail", "tran_id=SSL-2")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotTranID != "SSL-2" {
		t.Fatalf("fail tran_id not parsed: %q", gotTranID)
	}

	// Cancel for an unknown payment
	w = postForm(r, "/payments/gateway/cancel", "tran_id=SSL-3")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
