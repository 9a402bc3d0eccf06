package models

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	MerchantID *uuid.UUID `gorm:"type:uuid;index"`
	OfferID    *uuid.UUID `gorm:"type:uuid;index"`
	StoreID    *uuid.UUID `gorm:"type:uuid;index"`
	Message    string     `gorm:"type:varchar(500);not null"`
	Type       string     `gorm:"type:varchar(20);not null;default:'info';index"`
	IsRead     bool       `gorm:"not null;default:false;index"`
	SentBy     string     `gorm:"type:varchar(50);not null;default:'system'"`
	ReadAt     *time.Time `gorm:""`
	CreatedAt  time.Time  `gorm:"index"`
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'admin'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
