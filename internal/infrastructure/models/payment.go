package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        float64   `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string    `gorm:"type:varchar(20);not null;index"`
	TransactionID string    `gorm:"type:varchar(100);not null"`

	SenderPhone       *string `gorm:"type:varchar(30)"`
	SenderAccount     *string `gorm:"type:varchar(50)"`
	ReceiverPhone     *string `gorm:"type:varchar(30)"`
	ReceiverAccount   *string `gorm:"type:varchar(50)"`
	BankName          *string `gorm:"type:varchar(100)"`
	BankAccountNumber *string `gorm:"type:varchar(50)"`
	PaymentProof      *string `gorm:"type:varchar(255)"`

	Status     string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	AdminNotes *string    `gorm:"type:text"`
	ApprovedAt *time.Time `gorm:""`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`

	CommissionID          *uuid.UUID `gorm:"type:uuid"`
	PackageID             *uuid.UUID `gorm:"type:uuid"`
	PackageDurationMonths *int       `gorm:""`

	SessionKey *string `gorm:"type:varchar(100);index"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
