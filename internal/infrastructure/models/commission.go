package models

import (
	"time"

	"github.com/google/uuid"
)

type Commission struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	TotalCommission   float64   `gorm:"type:decimal(12,2);not null;default:0"`
	PaidCommission    float64   `gorm:"type:decimal(12,2);not null;default:0"`
	PendingCommission float64   `gorm:"type:decimal(12,2);not null;default:0;index"`
	CommissionRate    float64   `gorm:"type:decimal(5,2);not null;default:10"`
	LastUpdated       time.Time
	CreatedAt         time.Time
}
