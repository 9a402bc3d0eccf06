package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Store represents a merchant storefront
type Store struct {
	ID             uuid.UUID      `json:"id"`
	MerchantID     uuid.UUID      `json:"merchant"`
	Name           string         `json:"name"`
	Description    null.String    `json:"description,omitempty"`
	Category       null.String    `json:"category,omitempty"`
	LogoURL        null.String    `json:"logoUrl,omitempty"`
	Address        null.String    `json:"address,omitempty"`
	ApprovalStatus ApprovalStatus `json:"approvalStatus"`
	IsActive       bool           `json:"isActive"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// CreateStoreInput represents input for creating a store
type CreateStoreInput struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description,omitempty" binding:"omitempty,max=500"`
	Category    string `json:"category,omitempty" binding:"omitempty,max=50"`
	LogoURL     string `json:"logoUrl,omitempty" binding:"omitempty,url"`
	Address     string `json:"address,omitempty"`
}

// UpdateStoreInput represents input for updating a store
type UpdateStoreInput struct {
	Name        string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Description string `json:"description,omitempty" binding:"omitempty,max=500"`
	Category    string `json:"category,omitempty" binding:"omitempty,max=50"`
	LogoURL     string `json:"logoUrl,omitempty" binding:"omitempty,url"`
	Address     string `json:"address,omitempty"`
}
