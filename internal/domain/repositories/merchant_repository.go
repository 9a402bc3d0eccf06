package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"offer-bazar.backend/internal/domain/entities"
)

// MerchantRepository defines merchant entitlement data operations
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entities.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	GetByEmail(ctx context.Context, email string) (*entities.Merchant, error)
	Update(ctx context.Context, merchant *entities.Merchant) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*entities.Merchant, int64, error)
	// GetActiveExpiredBefore returns merchants whose active package window
	// has already ended, for the expiry sweep.
	GetActiveExpiredBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Merchant, error)
	CountByApprovalStatus(ctx context.Context, status entities.ApprovalStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
}
