package models

import (
	"github.com/financespro/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ServiceModel is the persistence model for the catalog Service entity.
type ServiceModel struct {
	TenantAggregateModel
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Category    string          `gorm:"type:varchar(50);not null;default:'service'"`
}

// TableName returns the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ToDomain converts the persistence model to a domain Service entity.
func (m *ServiceModel) ToDomain() *catalog.Service {
	return &catalog.Service{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Name:                m.Name,
		Description:         m.Description,
		Price:               m.Price,
		Category:            m.Category,
	}
}

// FromDomain populates the persistence model from a domain Service entity.
func (m *ServiceModel) FromDomain(s *catalog.Service) {
	m.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	m.Name = s.Name
	m.Description = s.Description
	m.Price = s.Price
	m.Category = s.Category
}

// ServiceModelFromDomain creates a new persistence model from a domain Service entity.
func ServiceModelFromDomain(s *catalog.Service) *ServiceModel {
	m := &ServiceModel{}
	m.FromDomain(s)
	return m
}
