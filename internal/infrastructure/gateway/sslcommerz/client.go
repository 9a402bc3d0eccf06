package sslcommerz

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	sandboxBaseURL = "https://sandbox.sslcommerz.com"
	liveBaseURL    = "https://securepay.sslcommerz.com"

	sessionPath   = "/gwprocess/v4/api.php"
	validatorPath = "/validator/api/validationserverAPI.php"
)

// Client talks to the SSLCommerz hosted gateway
type Client struct {
	storeID       string
	storePassword string
	baseURL       string
	httpClient    *http.Client
}

// NewClient creates a gateway client; sandbox selects the test endpoints
func NewClient(storeID, storePassword string, sandbox bool) *Client {
	baseURL := liveBaseURL
	if sandbox {
		baseURL = sandboxBaseURL
	}
	return &Client{
		storeID:       storeID,
		storePassword: storePassword,
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL overrides the gateway endpoint (used for testing)
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// SessionInput carries everything the gateway needs to open a checkout session.
// ValueA..ValueD are opaque round-trip fields echoed back on validation.
type SessionInput struct {
	Amount        float64
	TranID        string
	SuccessURL    string
	FailURL       string
	CancelURL     string
	ProductName   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ValueA        string
	ValueB        string
	ValueC        string
	ValueD        string
}

// SessionResponse is the gateway's session-creation reply
type SessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// ValidationResponse is the gateway's transaction validation reply
type ValidationResponse struct {
	Status   string `json:"status"`
	TranID   string `json:"tran_id"`
	ValID    string `json:"val_id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	ValueA   string `json:"value_a"`
	ValueB   string `json:"value_b"`
	ValueC   string `json:"value_c"`
	ValueD   string `json:"value_d"`
}

// Valid reports whether the gateway confirmed the transaction
func (v *ValidationResponse) Valid() bool {
	return v.Status == "VALID" || v.Status == "VALIDATED"
}

// CreateSession opens a hosted checkout session and returns the redirect URL
func (c *Client) CreateSession(ctx context.Context, input *SessionInput) (*SessionResponse, error) {
	form := url.Values{}
	form.Set("store_id", c.storeID)
	form.Set("store_passwd", c.storePassword)
	form.Set("total_amount", strconv.FormatFloat(input.Amount, 'f', 2, 64))
	form.Set("currency", "BDT")
	form.Set("tran_id", input.TranID)
	form.Set("success_url", input.SuccessURL)
	form.Set("fail_url", input.FailURL)
	form.Set("cancel_url", input.CancelURL)
	form.Set("product_name", input.ProductName)
	form.Set("product_category", "service")
	form.Set("product_profile", "non-physical-goods")
	form.Set("cus_name", input.CustomerName)
	form.Set("cus_email", input.CustomerEmail)
	form.Set("cus_phone", input.CustomerPhone)
	form.Set("cus_add1", "N/A")
	form.Set("cus_city", "N/A")
	form.Set("cus_country", "Bangladesh")
	form.Set("shipping_method", "NO")
	form.Set("value_a", input.ValueA)
	form.Set("value_b", input.ValueB)
	form.Set("value_c", input.ValueC)
	form.Set("value_d", input.ValueD)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sessionPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway session request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway session request returned status %d", resp.StatusCode)
	}

	var session SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode gateway session response: %w", err)
	}

	if session.Status != "SUCCESS" {
		reason := session.FailedReason
		if reason == "" {
			reason = session.Status
		}
		return nil, fmt.Errorf("gateway refused session: %s", reason)
	}

	return &session, nil
}

// ValidateTransaction verifies a callback against the validation API
func (c *Client) ValidateTransaction(ctx context.Context, valID string) (*ValidationResponse, error) {
	query := url.Values{}
	query.Set("val_id", valID)
	query.Set("store_id", c.storeID)
	query.Set("store_passwd", c.storePassword)
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+validatorPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway validation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway validation returned status %d", resp.StatusCode)
	}

	var validation ValidationResponse
	if err := json.NewDecoder(resp.Body).Decode(&validation); err != nil {
		return nil, fmt.Errorf("failed to decode gateway validation response: %w", err)
	}

	return &validation, nil
}
