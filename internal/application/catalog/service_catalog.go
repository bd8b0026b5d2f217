package catalog

import (
	"context"

	"github.com/financespro/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// ServiceCatalog handles catalog-related business operations
type ServiceCatalog struct {
	serviceRepo catalog.ServiceRepository
}

// NewServiceCatalog creates a new ServiceCatalog
func NewServiceCatalog(serviceRepo catalog.ServiceRepository) *ServiceCatalog {
	return &ServiceCatalog{serviceRepo: serviceRepo}
}

// Create adds a new service to the tenant's catalog
func (s *ServiceCatalog) Create(ctx context.Context, tenantID uuid.UUID, req ServiceRequest) (*ServiceResponse, error) {
	service, err := catalog.NewService(tenantID, req.fields())
	if err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// GetByID retrieves one of the tenant's services
func (s *ServiceCatalog) GetByID(ctx context.Context, tenantID, serviceID uuid.UUID) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByIDForTenant(ctx, tenantID, serviceID)
	if err != nil {
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// List retrieves all of the tenant's services
func (s *ServiceCatalog) List(ctx context.Context, tenantID uuid.UUID) ([]ServiceResponse, error) {
	services, err := s.serviceRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]ServiceResponse, len(services))
	for i := range services {
		responses[i] = ToServiceResponse(&services[i])
	}
	return responses, nil
}

// Update overwrites a service's attributes with the supplied fields
func (s *ServiceCatalog) Update(ctx context.Context, tenantID, serviceID uuid.UUID, req ServiceRequest) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByIDForTenant(ctx, tenantID, serviceID)
	if err != nil {
		return nil, err
	}

	if err := service.Update(req.fields()); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// Delete removes one of the tenant's services
func (s *ServiceCatalog) Delete(ctx context.Context, tenantID, serviceID uuid.UUID) error {
	return s.serviceRepo.DeleteForTenant(ctx, tenantID, serviceID)
}
