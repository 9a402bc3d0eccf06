package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/interfaces/http/response"
)

type PackageService interface {
	CreatePackage(ctx context.Context, input *entities.CreatePackageInput) (*entities.Package, error)
	GetPackage(ctx context.Context, id uuid.UUID) (*entities.Package, error)
	ListPackages(ctx context.Context, activeOnly bool) ([]*entities.Package, error)
	UpdatePackage(ctx context.Context, id uuid.UUID, input *entities.UpdatePackageInput) (*entities.Package, error)
	DeletePackage(ctx context.Context, id uuid.UUID) error
}

// PackageHandler handles package catalog endpoints
type PackageHandler struct {
	packageUsecase PackageService
}

// NewPackageHandler creates a new package handler
func NewPackageHandler(packageUsecase PackageService) *PackageHandler {
	return &PackageHandler{packageUsecase: packageUsecase}
}

// ListPackages lists active catalog packages
// GET /api/v1/packages
func (h *PackageHandler) ListPackages(c *gin.Context) {
	packages, err := h.packageUsecase.ListPackages(c.Request.Context(), true)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"packages": packages})
}

// GetPackage returns a package by id
// GET /api/v1/packages/:id
func (h *PackageHandler) GetPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid package ID"))
		return
	}

	pkg, err := h.packageUsecase.GetPackage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, pkg)
}

// ListAllPackages lists the catalog including retired tiers
// GET /api/v1/admin/packages
func (h *PackageHandler) ListAllPackages(c *gin.Context) {
	packages, err := h.packageUsecase.ListPackages(c.Request.Context(), false)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"packages": packages})
}

// CreatePackage adds a package to the catalog
// POST /api/v1/admin/packages
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var input entities.CreatePackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pkg, err := h.packageUsecase.CreatePackage(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, pkg)
}

// UpdatePackage applies a partial update to a package
// PUT /api/v1/admin/packages/:id
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid package ID"))
		return
	}

	var input entities.UpdatePackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pkg, err := h.packageUsecase.UpdatePackage(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, pkg)
}

// DeletePackage removes a package from the catalog
// DELETE /api/v1/admin/packages/:id
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid package ID"))
		return
	}

	if err := h.packageUsecase.DeletePackage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Package deleted"})
}
