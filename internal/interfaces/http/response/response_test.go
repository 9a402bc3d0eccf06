package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	domainerrors "offer-bazar.backend/internal/domain/errors"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestSuccess(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, http.StatusCreated, gin.H{"id": "x"})
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"x"}`, w.Body.String())
}

func TestError_AppErrorUsesItsCode(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, domainerrors.Conflict("store already exists"))
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"code":409,"message":"store already exists"}`, w.Body.String())
}

func TestError_WrappedAppErrorStillMapped(t *testing.T) {
	wrapped := fmt.Errorf("create store: %w", domainerrors.Forbidden("merchant not approved"))
	w := record(func(c *gin.Context) {
		Error(c, wrapped)
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "merchant not approved")
}

func TestError_SentinelMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domainerrors.ErrNotFound, http.StatusNotFound},
		{domainerrors.ErrAlreadyExists, http.StatusConflict},
		{domainerrors.ErrAlreadyApproved, http.StatusConflict},
		{domainerrors.ErrInvalidInput, http.StatusBadRequest},
		{domainerrors.ErrGatewayValidation, http.StatusBadRequest},
		{domainerrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{domainerrors.ErrMerchantNotActive, http.StatusForbidden},
	}
	for _, tc := range cases {
		w := record(func(c *gin.Context) {
			Error(c, tc.err)
		})
		assert.Equal(t, tc.code, w.Code, "error %v", tc.err)
	}
}

func TestError_UnknownErrorHidesDetails(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, errors.New("pq: connection refused"))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "internal server error")
}
