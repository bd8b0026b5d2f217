package persistence

import (
	"context"
	"errors"

	"github.com/financespro/backend/internal/domain/partner"
	"github.com/financespro/backend/internal/domain/shared"
	"github.com/financespro/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByIDForTenant finds a client by ID within a tenant
func (r *GormClientRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Client, error) {
	var model models.ClientModel
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

// FindAllForTenant finds all clients for a tenant, newest first
func (r *GormClientRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]partner.Client, error) {
	var clientModels []models.ClientModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]partner.Client, len(clientModels))
	for i, model := range clientModels {
		clients[i] = *model.ToDomain()
	}
	return clients, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *partner.Client) error {
	model := models.ClientModelFromDomain(client)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForTenant deletes a client within a tenant
func (r *GormClientRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts clients for a tenant
func (r *GormClientRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountAll counts clients across all tenants
func (r *GormClientRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormClientRepository implements ClientRepository
var _ partner.ClientRepository = (*GormClientRepository)(nil)
