package persistence

import (
	"context"
	"errors"

	"github.com/financespro/backend/internal/domain/catalog"
	"github.com/financespro/backend/internal/domain/shared"
	"github.com/financespro/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormServiceRepository implements ServiceRepository using GORM
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// FindByIDForTenant finds a service by ID within a tenant
func (r *GormServiceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Service, error) {
	var model models.ServiceModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all services for a tenant, newest first
func (r *GormServiceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]catalog.Service, error) {
	var serviceModels []models.ServiceModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&serviceModels).Error; err != nil {
		return nil, err
	}

	services := make([]catalog.Service, len(serviceModels))
	for i, model := range serviceModels {
		services[i] = *model.ToDomain()
	}
	return services, nil
}

// Save creates or updates a service
func (r *GormServiceRepository) Save(ctx context.Context, service *catalog.Service) error {
	model := models.ServiceModelFromDomain(service)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForTenant deletes a service within a tenant
func (r *GormServiceRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ServiceModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts services for a tenant
func (r *GormServiceRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ServiceModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormServiceRepository implements ServiceRepository
var _ catalog.ServiceRepository = (*GormServiceRepository)(nil)
