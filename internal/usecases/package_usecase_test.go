package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/usecases"
)

func newPackageUsecase() (*MockPackageRepository, *usecases.PackageUsecase) {
	repo := new(MockPackageRepository)
	return repo, usecases.NewPackageUsecase(repo)
}

func TestCreatePackage(t *testing.T) {
	repo, uc := newPackageUsecase()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	price := 4500.0
	pkg, err := uc.CreatePackage(context.Background(), &entities.CreatePackageInput{
		Name:             "Growth",
		DurationInMonths: 6,
		Price:            &price,
		Description:      "mid tier",
	})
	require.NoError(t, err)
	require.True(t, pkg.IsActive)
	require.Equal(t, 4500.0, pkg.Price)
	require.NotNil(t, pkg.Features)
	require.Empty(t, pkg.Features)
}

func TestUpdatePackage_Partial(t *testing.T) {
	repo, uc := newPackageUsecase()
	pkg := &entities.Package{
		ID:               uuid.New(),
		Name:             "Growth",
		DurationInMonths: 6,
		Price:            4500,
		Features:         []string{"storefront"},
		IsActive:         true,
	}
	repo.On("GetByID", mock.Anything, pkg.ID).Return(pkg, nil)
	repo.On("Update", mock.Anything, pkg).Return(nil)

	inactive := false
	updated, err := uc.UpdatePackage(context.Background(), pkg.ID, &entities.UpdatePackageInput{
		IsActive: &inactive,
	})
	require.NoError(t, err)
	require.False(t, updated.IsActive)
	// untouched fields survive the partial update
	require.Equal(t, "Growth", updated.Name)
	require.Equal(t, []string{"storefront"}, updated.Features)
}

func TestDeletePackage_MissingPackage(t *testing.T) {
	repo, uc := newPackageUsecase()
	missing := uuid.New()
	repo.On("GetByID", mock.Anything, missing).Return(nil, domainerrors.ErrNotFound)

	err := uc.DeletePackage(context.Background(), missing)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListPackages(t *testing.T) {
	repo, uc := newPackageUsecase()
	repo.On("List", mock.Anything, true).Return([]*entities.Package{{Name: "Basic"}}, nil)

	pkgs, err := uc.ListPackages(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
}
