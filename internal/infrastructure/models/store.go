package models

import (
	"time"

	"github.com/google/uuid"
)

type Store struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Description    *string   `gorm:"type:varchar(500)"`
	Category       *string   `gorm:"type:varchar(50);index"`
	LogoURL        *string   `gorm:"type:varchar(255)"`
	Address        *string   `gorm:"type:text"`
	ApprovalStatus string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Offer struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	MerchantID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	StoreID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title           string     `gorm:"type:varchar(100);not null"`
	Description     *string    `gorm:"type:varchar(500)"`
	DiscountPercent float64    `gorm:"type:decimal(5,2);not null"`
	Category        *string    `gorm:"type:varchar(50);index"`
	ImageURL        *string    `gorm:"type:varchar(255)"`
	StartDate       *time.Time `gorm:""`
	EndDate         *time.Time `gorm:""`
	ApprovalStatus  string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	IsActive        bool       `gorm:"not null;default:true"`
	CreatedAt       time.Time  `gorm:"index"`
	UpdatedAt       time.Time

	Store Store `gorm:"foreignKey:StoreID"`
}
