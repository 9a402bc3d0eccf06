package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodBkash        PaymentMethod = "bkash"
	PaymentMethodNagad        PaymentMethod = "nagad"
	PaymentMethodUpay         PaymentMethod = "upay"
	PaymentMethodRocket       PaymentMethod = "rocket"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodSSLCommerz   PaymentMethod = "sslcommerz"
)

// IsManual reports whether the method requires an operator-entered transaction id
func (m PaymentMethod) IsManual() bool {
	switch m {
	case PaymentMethodBkash, PaymentMethodNagad, PaymentMethodUpay,
		PaymentMethodRocket, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// IsValid reports whether the method is a known payment method
func (m PaymentMethod) IsValid() bool {
	return m.IsManual() || m == PaymentMethodSSLCommerz
}

// Payment represents a payment submission
type Payment struct {
	ID            uuid.UUID     `json:"id"`
	MerchantID    uuid.UUID     `json:"merchant"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TransactionID string        `json:"transactionId"`

	SenderPhone       null.String `json:"senderPhone,omitempty"`
	SenderAccount     null.String `json:"senderAccount,omitempty"`
	ReceiverPhone     null.String `json:"receiverPhone,omitempty"`
	ReceiverAccount   null.String `json:"receiverAccount,omitempty"`
	BankName          null.String `json:"bankName,omitempty"`
	BankAccountNumber null.String `json:"bankAccountNumber,omitempty"`
	PaymentProof      null.String `json:"paymentProof,omitempty"`

	Status     PaymentStatus `json:"status"`
	AdminNotes null.String   `json:"adminNotes,omitempty"`
	ApprovedAt null.Time     `json:"approvedAt,omitempty"`
	ApprovedBy *uuid.UUID    `json:"approvedBy,omitempty"`

	CommissionID          *uuid.UUID `json:"commissionId,omitempty"`
	PackageID             *uuid.UUID `json:"package,omitempty"`
	PackageDurationMonths *int       `json:"packageDurationMonths,omitempty"`

	// Gateway round-trip key, set only for sslcommerz payments
	SessionKey null.String `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatePaymentInput represents input for submitting a payment
type CreatePaymentInput struct {
	Amount                float64       `json:"amount" binding:"required,gt=0"`
	PaymentMethod         PaymentMethod `json:"paymentMethod" binding:"required"`
	TransactionID         string        `json:"transactionId,omitempty"`
	SenderPhone           string        `json:"senderPhone,omitempty"`
	SenderAccount         string        `json:"senderAccount,omitempty"`
	ReceiverPhone         string        `json:"receiverPhone,omitempty"`
	ReceiverAccount       string        `json:"receiverAccount,omitempty"`
	BankName              string        `json:"bankName,omitempty"`
	BankAccountNumber     string        `json:"bankAccountNumber,omitempty"`
	PaymentProof          string        `json:"paymentProof,omitempty"`
	PackageID             string        `json:"package,omitempty"`
	PackageDurationMonths int           `json:"packageDurationMonths,omitempty" binding:"omitempty,min=1"`
}

// CreatePaymentResponse represents the result of a payment submission
type CreatePaymentResponse struct {
	Payment     *Payment `json:"payment"`
	RedirectURL string   `json:"redirectUrl,omitempty"`
	Message     string   `json:"message"`
}

// ReviewPaymentInput carries the optional admin notes on approve/reject
type ReviewPaymentInput struct {
	AdminNotes string `json:"adminNotes,omitempty" binding:"omitempty,max=500"`
}

// PaymentListFilter narrows admin payment listings
type PaymentListFilter struct {
	Status     PaymentStatus
	MerchantID *uuid.UUID
}
