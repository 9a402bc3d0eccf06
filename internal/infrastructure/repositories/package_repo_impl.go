package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/infrastructure/models"
)

// PackageRepository implements package catalog data operations
type PackageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository
func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// Create creates a new package
func (r *PackageRepository) Create(ctx context.Context, pkg *entities.Package) error {
	if pkg.ID == uuid.Nil {
		pkg.ID = uuid.New()
	}
	pkg.CreatedAt = time.Now()
	pkg.UpdatedAt = pkg.CreatedAt

	m := packageToModel(pkg)
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByID gets a package by ID
func (r *PackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Package, error) {
	var m models.Package
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return packageToEntity(&m), nil
}

// List lists packages, optionally only active ones
func (r *PackageRepository) List(ctx context.Context, activeOnly bool) ([]*entities.Package, error) {
	var ms []models.Package
	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Order("price ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.Package, 0, len(ms))
	for i := range ms {
		out = append(out, packageToEntity(&ms[i]))
	}
	return out, nil
}

// Update persists the full package state
func (r *PackageRepository) Update(ctx context.Context, pkg *entities.Package) error {
	pkg.UpdatedAt = time.Now()
	m := packageToModel(pkg)
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Package{}).
		Where("id = ?", pkg.ID).
		Select("*").Omit("id", "created_at").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a package
func (r *PackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Package{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func packageToModel(e *entities.Package) *models.Package {
	features := "[]"
	if len(e.Features) > 0 {
		if b, err := json.Marshal(e.Features); err == nil {
			features = string(b)
		}
	}
	return &models.Package{
		ID:               e.ID,
		Name:             e.Name,
		DurationInMonths: e.DurationInMonths,
		Price:            e.Price,
		Description:      e.Description.Ptr(),
		Features:         features,
		IsActive:         e.IsActive,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func packageToEntity(m *models.Package) *entities.Package {
	var features []string
	if m.Features != "" {
		_ = json.Unmarshal([]byte(m.Features), &features)
	}
	return &entities.Package{
		ID:               m.ID,
		Name:             m.Name,
		DurationInMonths: m.DurationInMonths,
		Price:            m.Price,
		Description:      null.StringFromPtr(m.Description),
		Features:         features,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
