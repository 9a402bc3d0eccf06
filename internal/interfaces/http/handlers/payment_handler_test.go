package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/interfaces/http/middleware"
	"offer-bazar.backend/pkg/utils"
)

type paymentServiceStub struct {
	createFn        func(ctx context.Context, merchantID uuid.UUID, input *entities.CreatePaymentInput) (*entities.CreatePaymentResponse, error)
	getFn           func(ctx context.Context, id uuid.UUID) (*entities.Payment, error)
	merchantListFn  func(ctx context.Context, merchantID uuid.UUID) ([]*entities.Payment, error)
	pendingFn       func(ctx context.Context) ([]*entities.Payment, error)
	listFn          func(ctx context.Context, filter entities.PaymentListFilter, page, limit int) ([]*entities.Payment, *utils.PaginationMeta, error)
	approveFn       func(ctx context.Context, paymentID, adminID uuid.UUID, notes string) (*entities.Payment, error)
	rejectFn        func(ctx context.Context, paymentID, adminID uuid.UUID, notes string) (*entities.Payment, error)
	deleteFn        func(ctx context.Context, id uuid.UUID) error
	getCommissionFn func(ctx context.Context, merchantID uuid.UUID) (*entities.Commission, error)
	addCommissionFn func(ctx context.Context, input *entities.AddCommissionInput) (*entities.Commission, error)
}

func (s paymentServiceStub) CreatePayment(ctx context.Context, merchantID uuid.UUID, input *entities.CreatePaymentInput) (*entities.CreatePaymentResponse, error) {
	return s.createFn(ctx, merchantID, input)
}
func (s paymentServiceStub) GetPayment(ctx context.Context, id uuid.UUID) (*entities.Payment, error) {
	return s.getFn(ctx, id)
}
func (s paymentServiceStub) GetMerchantPayments(ctx context.Context, merchantID uuid.UUID) ([]*entities.Payment, error) {
	return s.merchantListFn(ctx, merchantID)
}
func (s paymentServiceStub) GetPendingPayments(ctx context.Context) ([]*entities.Payment, error) {
	return s.pendingFn(ctx)
}
func (s paymentServiceStub) ListPayments(ctx context.Context, filter entities.PaymentListFilter, page, limit int) ([]*entities.Payment, *utils.PaginationMeta, error) {
	return s.listFn(ctx, filter, page, limit)
}
func (s paymentServiceStub) ApprovePayment(ctx context.Context, paymentID, adminID uuid.UUID, notes string) (*entities.Payment, error) {
	return s.approveFn(ctx, paymentID, adminID, notes)
}
func (s paymentServiceStub) RejectPayment(ctx context.Context, paymentID, adminID uuid.UUID, notes string) (*entities.Payment, error) {
	return s.rejectFn(ctx, paymentID, adminID, notes)
}
func (s paymentServiceStub) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}
func (s paymentServiceStub) GetMerchantCommission(ctx context.Context, merchantID uuid.UUID) (*entities.Commission, error) {
	return s.getCommissionFn(ctx, merchantID)
}
func (s paymentServiceStub) AddCommission(ctx context.Context, input *entities.AddCommissionInput) (*entities.Commission, error) {
	return s.addCommissionFn(ctx, input)
}

func asUser(userID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserRoleKey, role)
		c.Next()
	}
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	merchantID := uuid.New()
	var gotInput *entities.CreatePaymentInput

	h := NewPaymentHandler(paymentServiceStub{
		createFn: func(_ context.Context, mid uuid.UUID, input *entities.CreatePaymentInput) (*entities.CreatePaymentResponse, error) {
			if mid != merchantID {
				t.Fatalf("unexpected merchant id %s", mid)
			}
			gotInput = input
			return &entities.CreatePaymentResponse{
				Payment: &entities.Payment{ID: uuid.New(), MerchantID: mid, Amount: input.Amount},
				Message: "Payment submitted for review",
			}, nil
		},
	})

	r := gin.New()
	r.POST("/payments", asUser(merchantID, entities.RoleMerchant), h.CreatePayment)

	body := `{"amount":2000,"paymentMethod":"bkash","transactionId":"TX-1","senderPhone":"01711000000"}`
	w := postJSON(r, "/payments", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	if gotInput.PaymentMethod != entities.PaymentMethodBkash || gotInput.TransactionID != "TX-1" {
		t.Fatalf("input not bound: %+v", gotInput)
	}

	// Validation: amount must be positive
	w = postJSON(r, "/payments", `{"amount":-5,"paymentMethod":"bkash"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPaymentHandler_GetPayment_OwnershipScoping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ownerID := uuid.New()
	otherID := uuid.New()
	paymentID := uuid.New()

	stub := paymentServiceStub{
		getFn: func(_ context.Context, id uuid.UUID) (*entities.Payment, error) {
			if id != paymentID {
				return nil, domainerrors.NotFound("Payment not found")
			}
			return &entities.Payment{ID: paymentID, MerchantID: ownerID}, nil
		},
	}

	serve := func(userID uuid.UUID, role, path string) *httptest.ResponseRecorder {
		h := NewPaymentHandler(stub)
		r := gin.New()
		r.GET("/payments/:id", asUser(userID, role), h.GetPayment)
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// Owner sees own payment
	if w := serve(ownerID, entities.RoleMerchant, "/payments/"+paymentID.String()); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", w.Code)
	}

	// Another merchant is refused
	if w := serve(otherID, entities.RoleMerchant, "/payments/"+paymentID.String()); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for other merchant, got %d", w.Code)
	}

	// Admin sees any payment
	if w := serve(uuid.New(), entities.RoleAdmin, "/payments/"+paymentID.String()); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}

	// Malformed id
	if w := serve(ownerID, entities.RoleMerchant, "/payments/not-a-uuid"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}
}

func TestPaymentHandler_ListPayments_Filters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	merchantID := uuid.New()
	var gotFilter entities.PaymentListFilter
	var gotPage, gotLimit int

	h := NewPaymentHandler(paymentServiceStub{
		listFn: func(_ context.Context, filter entities.PaymentListFilter, page, limit int) ([]*entities.Payment, *utils.PaginationMeta, error) {
			gotFilter = filter
			gotPage = page
			gotLimit = limit
			meta := utils.CalculateMeta(1, page, limit)
			return []*entities.Payment{{ID: uuid.New()}}, &meta, nil
		},
	})

	r := gin.New()
	r.GET("/admin/payments", h.ListPayments)

	req := httptest.NewRequest(http.MethodGet, "/admin/payments?status=pending&merchantId="+merchantID.String()+"&page=2&limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if gotFilter.Status != entities.PaymentStatusPending || gotFilter.MerchantID == nil || *gotFilter.MerchantID != merchantID {
		t.Fatalf("filter not passed through: %+v", gotFilter)
	}
	if gotPage != 2 || gotLimit != 10 {
		t.Fatalf("pagination not passed through: page=%d limit=%d", gotPage, gotLimit)
	}

	// Malformed merchant filter
	req = httptest.NewRequest(http.MethodGet, "/admin/payments?merchantId=oops", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPaymentHandler_ApproveAndReject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	adminID := uuid.New()
	paymentID := uuid.New()

	h := NewPaymentHandler(paymentServiceStub{
		approveFn: func(_ context.Context, pid, aid uuid.UUID, notes string) (*entities.Payment, error) {
			if aid != adminID || notes != "verified against bank statement" {
				t.Fatalf("unexpected approve args: admin=%s notes=%q", aid, notes)
			}
			return &entities.Payment{ID: pid, Status: entities.PaymentStatusApproved}, nil
		},
		rejectFn: func(_ context.Context, pid, aid uuid.UUID, notes string) (*entities.Payment, error) {
			if pid == paymentID {
				return nil, domainerrors.Conflict("payment is already approved")
			}
			return &entities.Payment{ID: pid, Status: entities.PaymentStatusRejected}, nil
		},
	})

	r := gin.New()
	r.PUT("/admin/payments/:id/approve", asUser(adminID, entities.RoleAdmin), h.ApprovePayment)
	r.PUT("/admin/payments/:id/reject", asUser(adminID, entities.RoleAdmin), h.RejectPayment)

	// Approve with notes
	req := httptest.NewRequest(http.MethodPut, "/admin/payments/"+paymentID.String()+"/approve",
		bytes.NewReader([]byte(`{"adminNotes":"verified against bank statement"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Reject of an approved payment maps to conflict
	req = httptest.NewRequest(http.MethodPut, "/admin/payments/"+paymentID.String()+"/reject", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestPaymentHandler_Commissions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	merchantID := uuid.New()

	h := NewPaymentHandler(paymentServiceStub{
		getCommissionFn: func(_ context.Context, mid uuid.UUID) (*entities.Commission, error) {
			return &entities.Commission{MerchantID: mid, TotalCommission: 500, PendingCommission: 500}, nil
		},
		addCommissionFn: func(_ context.Context, input *entities.AddCommissionInput) (*entities.Commission, error) {
			return &entities.Commission{TotalCommission: input.Amount, PendingCommission: input.Amount}, nil
		},
	})

	r := gin.New()
	r.GET("/commissions/my", asUser(merchantID, entities.RoleMerchant), h.GetMyCommission)
	r.GET("/admin/commissions/:merchantId", h.GetMerchantCommission)
	r.POST("/admin/commissions", h.AddCommission)

	req := httptest.NewRequest(http.MethodGet, "/commissions/my", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/commissions/"+merchantID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = postJSON(r, "/admin/commissions", `{"merchantId":"`+merchantID.String()+`","amount":250}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// merchantId must be a uuid
	w = postJSON(r, "/admin/commissions", `{"merchantId":"oops","amount":250}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
