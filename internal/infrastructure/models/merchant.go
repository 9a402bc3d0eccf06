package models

import (
	"time"

	"github.com/google/uuid"
)

type Merchant struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone        *string   `gorm:"type:varchar(30)"`
	BusinessName *string   `gorm:"type:varchar(100)"`
	BusinessType *string   `gorm:"type:varchar(50)"`
	Website      *string   `gorm:"type:varchar(255)"`
	Address      *string   `gorm:"type:text"`
	PhotoURL     *string   `gorm:"type:varchar(255)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	ApprovalStatus string `gorm:"type:varchar(20);not null;default:'pending';index"`
	IsApproved     bool   `gorm:"not null;default:false;index"`
	IsActive       bool   `gorm:"not null;default:true;index"`

	AccessFee            float64    `gorm:"type:decimal(12,2);not null;default:0"`
	AccessFeePaid        bool       `gorm:"not null;default:false"`
	AccessFeePaymentDate *time.Time `gorm:""`
	AccessFeePaymentID   *uuid.UUID `gorm:"type:uuid"`

	PackageID        *uuid.UUID `gorm:"type:uuid"`
	PackageStartDate *time.Time `gorm:""`
	PackageEndDate   *time.Time `gorm:"index"`
	PackageStatus    string     `gorm:"type:varchar(20);not null;default:'pending';index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
