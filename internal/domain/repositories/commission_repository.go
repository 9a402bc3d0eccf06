package repositories

import (
	"context"

	"github.com/google/uuid"
	"offer-bazar.backend/internal/domain/entities"
)

// CommissionRepository defines commission ledger data operations
type CommissionRepository interface {
	Create(ctx context.Context, commission *entities.Commission) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Commission, error)
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*entities.Commission, error)
	Update(ctx context.Context, commission *entities.Commission) error
}
