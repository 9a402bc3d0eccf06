package repositories

import (
	"context"

	"github.com/google/uuid"
	"offer-bazar.backend/internal/domain/entities"
)

// StoreRepository defines store data operations
type StoreRepository interface {
	Create(ctx context.Context, store *entities.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Store, error)
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*entities.Store, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Store, int64, error)
	Update(ctx context.Context, store *entities.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OfferRepository defines offer data operations
type OfferRepository interface {
	Create(ctx context.Context, offer *entities.Offer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Offer, error)
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID) ([]*entities.Offer, error)
	ListApproved(ctx context.Context, filter entities.OfferListFilter, limit, offset int) ([]*entities.Offer, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Offer, int64, error)
	Update(ctx context.Context, offer *entities.Offer) error
	Delete(ctx context.Context, id uuid.UUID) error
}
