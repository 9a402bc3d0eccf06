package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Package represents a subscription tier in the catalog
type Package struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	DurationInMonths int         `json:"durationInMonths"`
	Price            float64     `json:"price"`
	Description      null.String `json:"description,omitempty"`
	Features         []string    `json:"features"`
	IsActive         bool        `json:"isActive"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// CreatePackageInput represents input for creating a package
type CreatePackageInput struct {
	Name             string   `json:"name" binding:"required,max=50"`
	DurationInMonths int      `json:"durationInMonths" binding:"required,min=1"`
	Price            *float64 `json:"price" binding:"required,min=0"`
	Description      string   `json:"description,omitempty" binding:"omitempty,max=200"`
	Features         []string `json:"features,omitempty"`
}

// UpdatePackageInput represents input for updating a package
type UpdatePackageInput struct {
	Name             string   `json:"name,omitempty" binding:"omitempty,max=50"`
	DurationInMonths int      `json:"durationInMonths,omitempty" binding:"omitempty,min=1"`
	Price            *float64 `json:"price,omitempty" binding:"omitempty,min=0"`
	Description      string   `json:"description,omitempty" binding:"omitempty,max=200"`
	Features         []string `json:"features,omitempty"`
	IsActive         *bool    `json:"isActive,omitempty"`
}
