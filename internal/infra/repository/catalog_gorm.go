package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) ListBranches(ctx context.Context) ([]models.Branch, error) {
	var branches []models.Branch
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&branches).Error; err != nil {
		return nil, storeError(err)
	}
	return branches, nil
}

func (r *CatalogGormRepository) ListActiveBarbers(
	ctx context.Context,
	branchID uint,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("branch_id = ? AND active = true", branchID).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, storeError(err)
	}
	return barbers, nil
}

func (r *CatalogGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, storeError(err)
	}
	return services, nil
}

func (r *CatalogGormRepository) GetBranch(ctx context.Context, id uint) (*models.Branch, error) {
	var branch models.Branch
	if err := r.db.WithContext(ctx).First(&branch, id).Error; err != nil {
		return nil, catalogError(err)
	}
	return &branch, nil
}

func (r *CatalogGormRepository) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, catalogError(err)
	}
	return &barber, nil
}

func (r *CatalogGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, catalogError(err)
	}
	return &service, nil
}

func catalogError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCatalogNotFound
	}
	return storeError(err)
}

// Compile-time check
var _ domain.Catalog = (*CatalogGormRepository)(nil)
