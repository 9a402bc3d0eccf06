package sslcommerz

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateSession_SendsCheckoutForm(t *testing.T) {
	var form map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/gwprocess/v4/api.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		json.NewEncoder(w).Encode(SessionResponse{
			Status:         "SUCCESS",
			SessionKey:     "sess-1",
			GatewayPageURL: "https://pay.example.com/sess-1",
		})
	}))
	defer srv.Close()

	client := NewClient("store-1", "passwd-1", true)
	client.SetBaseURL(srv.URL)

	session, err := client.CreateSession(context.Background(), &SessionInput{
		Amount:        1999.5,
		TranID:        "SSL-abc",
		SuccessURL:    "https://api.example.com/success",
		FailURL:       "https://api.example.com/fail",
		CancelURL:     "https://api.example.com/cancel",
		ProductName:   "Premium package",
		CustomerName:  "Karim Traders",
		CustomerEmail: "karim@example.com",
		CustomerPhone: "01711000000",
		ValueA:        "merchant-id",
		ValueB:        "package-id",
		ValueC:        "commission-id",
		ValueD:        "6",
	})
	require.NoError(t, err)
	require.Equal(t, "sess-1", session.SessionKey)
	require.Equal(t, "https://pay.example.com/sess-1", session.GatewayPageURL)

	require.Equal(t, "store-1", form["store_id"])
	require.Equal(t, "passwd-1", form["store_passwd"])
	require.Equal(t, "1999.50", form["total_amount"])
	require.Equal(t, "BDT", form["currency"])
	require.Equal(t, "SSL-abc", form["tran_id"])
	require.Equal(t, "https://api.example.com/success", form["success_url"])
	require.Equal(t, "merchant-id", form["value_a"])
	require.Equal(t, "package-id", form["value_b"])
	require.Equal(t, "commission-id", form["value_c"])
	require.Equal(t, "6", form["value_d"])
}

func TestCreateSession_RefusedByGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(SessionResponse{
			Status:       "FAILED",
			FailedReason: "store credentials invalid",
		})
	}))
	defer srv.Close()

	client := NewClient("store-1", "bad", true)
	client.SetBaseURL(srv.URL)

	_, err := client.CreateSession(context.Background(), &SessionInput{Amount: 100, TranID: "SSL-x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "store credentials invalid")
}

func TestCreateSession_Non200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient("store-1", "passwd-1", true)
	client.SetBaseURL(srv.URL)

	_, err := client.CreateSession(context.Background(), &SessionInput{Amount: 100, TranID: "SSL-x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}

func TestValidateTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/validator/api/validationserverAPI.php", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "val-1", q.Get("val_id"))
		require.Equal(t, "store-1", q.Get("store_id"))
		require.Equal(t, "json", q.Get("format"))
		json.NewEncoder(w).Encode(ValidationResponse{
			Status: "VALIDATED",
			TranID: "SSL-abc",
			ValID:  "val-1",
			Amount: "1999.50",
			ValueA: "merchant-id",
		})
	}))
	defer srv.Close()

	client := NewClient("store-1", "passwd-1", true)
	client.SetBaseURL(srv.URL)

	validation, err := client.ValidateTransaction(context.Background(), "val-1")
	require.NoError(t, err)
	require.True(t, validation.Valid())
	require.Equal(t, "SSL-abc", validation.TranID)
	require.Equal(t, "merchant-id", validation.ValueA)
}

func TestValidationResponse_Valid(t *testing.T) {
	for status, want := range map[string]bool{
		"VALID":     true,
		"VALIDATED": true,
		"INVALID":   false,
		"":          false,
	} {
		v := ValidationResponse{Status: status}
		require.Equal(t, want, v.Valid(), "status %q", status)
	}
}

func TestNewClient_EndpointSelection(t *testing.T) {
	require.Equal(t, sandboxBaseURL, NewClient("s", "p", true).baseURL)
	require.Equal(t, liveBaseURL, NewClient("s", "p", false).baseURL)
}
