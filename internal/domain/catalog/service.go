package catalog

import (
	"strings"
	"time"

	"github.com/financespro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCategory is applied when the caller leaves the category empty
const DefaultCategory = "service"

// Service is a reusable billable item in a tenant's catalog
type Service struct {
	shared.TenantAggregateRoot
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
}

// ServiceFields carries the caller-supplied attributes of a service
type ServiceFields struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
}

// NewService creates a new catalog service owned by the given tenant
func NewService(tenantID uuid.UUID, fields ServiceFields) (*Service, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	service := &Service{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	service.apply(fields)

	return service, nil
}

// Update overwrites the service's attributes with the supplied fields
func (s *Service) Update(fields ServiceFields) error {
	if err := validateFields(fields); err != nil {
		return err
	}

	s.apply(fields)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

func (s *Service) apply(fields ServiceFields) {
	s.Name = strings.TrimSpace(fields.Name)
	s.Description = fields.Description
	s.Price = fields.Price
	s.Category = fields.Category
	if s.Category == "" {
		s.Category = DefaultCategory
	}
}

func validateFields(fields ServiceFields) error {
	if strings.TrimSpace(fields.Name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Service name cannot be empty")
	}
	if len(fields.Name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Service name cannot exceed 200 characters")
	}
	if fields.Price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}
