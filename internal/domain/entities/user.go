package entities

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleAdmin    = "admin"
	RoleSubAdmin = "sub_admin"
	RoleMerchant = "merchant"
)

// User represents an admin panel account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LoginInput represents login credentials
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	Role         string      `json:"role"`
	Profile      interface{} `json:"profile,omitempty"`
}

// AdminStats is the admin dashboard summary
type AdminStats struct {
	TotalMerchants    int64 `json:"totalMerchants"`
	PendingMerchants  int64 `json:"pendingMerchants"`
	ApprovedMerchants int64 `json:"approvedMerchants"`
	TotalPayments     int64 `json:"totalPayments"`
	PendingPayments   int64 `json:"pendingPayments"`
	ApprovedPayments  int64 `json:"approvedPayments"`
	RejectedPayments  int64 `json:"rejectedPayments"`
}
