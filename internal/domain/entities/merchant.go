package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ApprovalStatus represents merchant review status
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// PackageStatus represents merchant subscription status
type PackageStatus string

const (
	PackageStatusPending PackageStatus = "pending"
	PackageStatusActive  PackageStatus = "active"
	PackageStatusExpired PackageStatus = "expired"
)

// Merchant represents a merchant entity
type Merchant struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        null.String `json:"phone,omitempty"`
	BusinessName null.String `json:"businessName,omitempty"`
	BusinessType null.String `json:"businessType,omitempty"`
	Website      null.String `json:"website,omitempty"`
	Address      null.String `json:"address,omitempty"`
	PhotoURL     null.String `json:"photoUrl,omitempty"`
	PasswordHash string      `json:"-"`

	ApprovalStatus ApprovalStatus `json:"approvalStatus"`
	IsApproved     bool           `json:"isApproved"`
	IsActive       bool           `json:"isActive"`

	AccessFee            float64    `json:"accessFee"`
	AccessFeePaid        bool       `json:"accessFeePaid"`
	AccessFeePaymentDate null.Time  `json:"accessFeePaymentDate,omitempty"`
	AccessFeePaymentID   *uuid.UUID `json:"accessFeePaymentId,omitempty"`

	PackageID        *uuid.UUID    `json:"package,omitempty"`
	PackageStartDate null.Time     `json:"packageStartDate,omitempty"`
	PackageEndDate   null.Time     `json:"packageEndDate,omitempty"`
	PackageStatus    PackageStatus `json:"packageStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MerchantRegisterInput represents input for merchant registration
type MerchantRegisterInput struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Phone        string `json:"phone,omitempty"`
	BusinessName string `json:"businessName,omitempty" binding:"omitempty,max=100"`
	BusinessType string `json:"businessType,omitempty"`
	Website      string `json:"website,omitempty" binding:"omitempty,url"`
	Address      string `json:"address,omitempty"`
}

// MerchantUpdateInput represents input for merchant profile updates
type MerchantUpdateInput struct {
	Name         string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Phone        string `json:"phone,omitempty"`
	BusinessName string `json:"businessName,omitempty" binding:"omitempty,max=100"`
	BusinessType string `json:"businessType,omitempty"`
	Website      string `json:"website,omitempty" binding:"omitempty,url"`
	Address      string `json:"address,omitempty"`
	PhotoURL     string `json:"photoUrl,omitempty" binding:"omitempty,url"`
}

// SetAccessFeeInput represents input for setting a merchant access fee
type SetAccessFeeInput struct {
	AccessFee *float64 `json:"accessFee" binding:"required"`
}

// MerchantProfileResponse bundles the merchant with store and package info
type MerchantProfileResponse struct {
	Merchant *Merchant `json:"merchant"`
	Store    *Store    `json:"store,omitempty"`
	Package  *Package  `json:"packageInfo,omitempty"`
}

// MerchantPaymentStatus is the admin listing row with access-fee state
type MerchantPaymentStatus struct {
	Merchant      *Merchant `json:"merchant"`
	PaymentStatus string    `json:"paymentStatus"`
}
