package repositories

import (
	"context"

	"github.com/google/uuid"
	"offer-bazar.backend/internal/domain/entities"
)

// PackageRepository defines package catalog data operations
type PackageRepository interface {
	Create(ctx context.Context, pkg *entities.Package) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Package, error)
	List(ctx context.Context, activeOnly bool) ([]*entities.Package, error)
	Update(ctx context.Context, pkg *entities.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
}
