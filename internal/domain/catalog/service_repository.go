package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ServiceRepository defines persistence operations for catalog services
type ServiceRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Service, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]Service, error)
	Save(ctx context.Context, service *Service) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
