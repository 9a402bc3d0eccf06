package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Offer represents a discount offer published by a store
type Offer struct {
	ID              uuid.UUID      `json:"id"`
	MerchantID      uuid.UUID      `json:"merchant"`
	StoreID         uuid.UUID      `json:"store"`
	Title           string         `json:"title"`
	Description     null.String    `json:"description,omitempty"`
	DiscountPercent float64        `json:"discountPercent"`
	Category        null.String    `json:"category,omitempty"`
	ImageURL        null.String    `json:"imageUrl,omitempty"`
	StartDate       null.Time      `json:"startDate,omitempty"`
	EndDate         null.Time      `json:"endDate,omitempty"`
	ApprovalStatus  ApprovalStatus `json:"approvalStatus"`
	IsActive        bool           `json:"isActive"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`

	Store *Store `json:"storeInfo,omitempty"`
}

// CreateOfferInput represents input for creating an offer
type CreateOfferInput struct {
	Title           string     `json:"title" binding:"required,min=2,max=100"`
	Description     string     `json:"description,omitempty" binding:"omitempty,max=500"`
	DiscountPercent float64    `json:"discountPercent" binding:"required,gt=0,max=100"`
	Category        string     `json:"category,omitempty" binding:"omitempty,max=50"`
	ImageURL        string     `json:"imageUrl,omitempty" binding:"omitempty,url"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
}

// UpdateOfferInput represents input for updating an offer
type UpdateOfferInput struct {
	Title           string     `json:"title,omitempty" binding:"omitempty,min=2,max=100"`
	Description     string     `json:"description,omitempty" binding:"omitempty,max=500"`
	DiscountPercent *float64   `json:"discountPercent,omitempty" binding:"omitempty,gt=0,max=100"`
	Category        string     `json:"category,omitempty" binding:"omitempty,max=50"`
	ImageURL        string     `json:"imageUrl,omitempty" binding:"omitempty,url"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	IsActive        *bool      `json:"isActive,omitempty"`
}

// OfferListFilter narrows public offer listings
type OfferListFilter struct {
	Category string
	StoreID  *uuid.UUID
}
