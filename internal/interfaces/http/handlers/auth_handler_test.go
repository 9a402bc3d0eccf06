package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
)

type authServiceStub struct {
	registerFn   func(ctx context.Context, input *entities.MerchantRegisterInput) (*entities.AuthResponse, error)
	loginFn      func(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	adminLoginFn func(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
}

func (s authServiceStub) RegisterMerchant(ctx context.Context, input *entities.MerchantRegisterInput) (*entities.AuthResponse, error) {
	return s.registerFn(ctx, input)
}
func (s authServiceStub) LoginMerchant(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	return s.loginFn(ctx, input)
}
func (s authServiceStub) LoginAdmin(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	return s.adminLoginFn(ctx, input)
}

func jsonBody(s string) *bytes.Reader {
	return bytes.NewReader([]byte(s))
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newAuthRouter(stub authServiceStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(stub)
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/admin/login", h.AdminLogin)
	return r
}

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	r := newAuthRouter(authServiceStub{
		registerFn: func(_ context.Context, input *entities.MerchantRegisterInput) (*entities.AuthResponse, error) {
			if input.Email == "exists@x.com" {
				return nil, domainerrors.Conflict("email already registered")
			}
			return &entities.AuthResponse{AccessToken: "access", RefreshToken: "refresh", Role: entities.RoleMerchant}, nil
		},
		loginFn: func(_ context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
			if input.Email == "bad@x.com" {
				return nil, domainerrors.ErrInvalidCredentials
			}
			return &entities.AuthResponse{AccessToken: "access", RefreshToken: "refresh", Role: entities.RoleMerchant}, nil
		},
	})

	// Register success
	w := postJSON(r, "/auth/register", `{"name":"Karim Traders","email":"karim@x.com","password":"secret123"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	// Register conflict mapping
	w = postJSON(r, "/auth/register", `{"name":"Karim Traders","email":"exists@x.com","password":"secret123"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	// Register validation failure (short password)
	w = postJSON(r, "/auth/register", `{"name":"Karim Traders","email":"karim@x.com","password":"short"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	// Login success
	w = postJSON(r, "/auth/login", `{"email":"karim@x.com","password":"secret123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Login with wrong credentials
	w = postJSON(r, "/auth/login", `{"email":"bad@x.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandler_AdminLogin(t *testing.T) {
	r := newAuthRouter(authServiceStub{
		adminLoginFn: func(_ context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
			if input.Email != "admin@x.com" {
				return nil, domainerrors.ErrInvalidCredentials
			}
			return &entities.AuthResponse{AccessToken: "access", RefreshToken: "refresh", Role: entities.RoleAdmin}, nil
		},
	})

	w := postJSON(r, "/auth/admin/login", `{"email":"admin@x.com","password":"secret123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	w = postJSON(r, "/auth/admin/login", `{"email":"merchant@x.com","password":"secret123"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	// Malformed body
	w = postJSON(r, "/auth/admin/login", `{"email":"admin@x.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
