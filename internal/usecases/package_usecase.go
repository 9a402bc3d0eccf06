package usecases

import (
	"context"

	"github.com/google/uuid"

	"offer-bazar.backend/internal/domain/entities"
	"offer-bazar.backend/internal/domain/repositories"
)

// PackageUsecase handles the subscription package catalog
type PackageUsecase struct {
	packageRepo repositories.PackageRepository
}

// NewPackageUsecase creates a new package usecase
func NewPackageUsecase(packageRepo repositories.PackageRepository) *PackageUsecase {
	return &PackageUsecase{packageRepo: packageRepo}
}

// CreatePackage adds a package to the catalog (admin only)
func (u *PackageUsecase) CreatePackage(ctx context.Context, input *entities.CreatePackageInput) (*entities.Package, error) {
	pkg := &entities.Package{
		Name:             input.Name,
		DurationInMonths: input.DurationInMonths,
		Price:            *input.Price,
		Features:         input.Features,
		IsActive:         true,
	}
	if input.Description != "" {
		pkg.Description.SetValid(input.Description)
	}
	if pkg.Features == nil {
		pkg.Features = []string{}
	}

	if err := u.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// GetPackage returns a single package by id
func (u *PackageUsecase) GetPackage(ctx context.Context, id uuid.UUID) (*entities.Package, error) {
	return u.packageRepo.GetByID(ctx, id)
}

// ListPackages returns catalog packages; activeOnly hides retired tiers
func (u *PackageUsecase) ListPackages(ctx context.Context, activeOnly bool) ([]*entities.Package, error) {
	return u.packageRepo.List(ctx, activeOnly)
}

// UpdatePackage applies a partial update to a package (admin only)
func (u *PackageUsecase) UpdatePackage(ctx context.Context, id uuid.UUID, input *entities.UpdatePackageInput) (*entities.Package, error) {
	pkg, err := u.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		pkg.Name = input.Name
	}
	if input.DurationInMonths > 0 {
		pkg.DurationInMonths = input.DurationInMonths
	}
	if input.Price != nil {
		pkg.Price = *input.Price
	}
	if input.Description != "" {
		pkg.Description.SetValid(input.Description)
	}
	if input.Features != nil {
		pkg.Features = input.Features
	}
	if input.IsActive != nil {
		pkg.IsActive = *input.IsActive
	}

	if err := u.packageRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// DeletePackage removes a package from the catalog (admin only). Merchants
// already subscribed keep their window until it runs out.
func (u *PackageUsecase) DeletePackage(ctx context.Context, id uuid.UUID) error {
	if _, err := u.packageRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return u.packageRepo.Delete(ctx, id)
}
