package entities

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCommissionRate is the percentage applied when none is configured
const DefaultCommissionRate = 10.0

// Commission is the per-merchant running ledger of amounts owed and paid
type Commission struct {
	ID                uuid.UUID `json:"id"`
	MerchantID        uuid.UUID `json:"merchant"`
	TotalCommission   float64   `json:"totalCommission"`
	PaidCommission    float64   `json:"paidCommission"`
	PendingCommission float64   `json:"pendingCommission"`
	CommissionRate    float64   `json:"commissionRate"`
	LastUpdated       time.Time `json:"lastUpdated"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Recalculate restores the pending = max(0, total-paid) invariant
func (c *Commission) Recalculate() {
	pending := c.TotalCommission - c.PaidCommission
	if pending < 0 {
		pending = 0
	}
	c.PendingCommission = pending
}

// AddCommissionInput represents input for the manual commission endpoint
type AddCommissionInput struct {
	MerchantID     string   `json:"merchantId" binding:"required,uuid"`
	Amount         float64  `json:"amount" binding:"required,gt=0"`
	CommissionRate *float64 `json:"commissionRate,omitempty" binding:"omitempty,min=0,max=100"`
}
