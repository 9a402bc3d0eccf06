package models

import (
	"time"

	"github.com/google/uuid"
)

type Package struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(50);not null;index"`
	DurationInMonths int       `gorm:"not null"`
	Price            float64   `gorm:"type:decimal(12,2);not null"`
	Description      *string   `gorm:"type:varchar(200)"`
	Features         string    `gorm:"type:text;default:'[]'"` // JSON array
	IsActive         bool      `gorm:"not null;default:true;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
