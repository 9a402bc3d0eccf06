package repositories

import (
	"context"

	"github.com/google/uuid"
	"offer-bazar.backend/internal/domain/entities"
)

// PaymentRepository defines payment ledger data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*entities.Payment, error)
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID) ([]*entities.Payment, error)
	GetPending(ctx context.Context) ([]*entities.Payment, error)
	List(ctx context.Context, filter entities.PaymentListFilter, limit, offset int) ([]*entities.Payment, int64, error)
	Update(ctx context.Context, payment *entities.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, status entities.PaymentStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
}
