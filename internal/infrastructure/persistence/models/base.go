package models

import (
	"time"

	"github.com/financespro/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AggregateModel provides common persistence fields for aggregate roots.
// It extends BaseModel with version for optimistic locking.
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null;default:1"`
}

// FromDomainAggregateRoot populates AggregateModel from domain BaseAggregateRoot
func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
}

// ToDomainAggregateRoot converts the model fields to a domain BaseAggregateRoot
func (m *AggregateModel) ToDomainAggregateRoot() shared.BaseAggregateRoot {
	return shared.BaseAggregateRoot{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Version: m.Version,
	}
}

// TenantAggregateModel provides common persistence fields for tenant-scoped
// aggregate roots.
type TenantAggregateModel struct {
	AggregateModel
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// FromDomainTenantAggregateRoot populates TenantAggregateModel from domain TenantAggregateRoot
func (m *TenantAggregateModel) FromDomainTenantAggregateRoot(t shared.TenantAggregateRoot) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.TenantID = t.TenantID
}

// ToDomainTenantAggregateRoot converts the model fields to a domain TenantAggregateRoot
func (m *TenantAggregateModel) ToDomainTenantAggregateRoot() shared.TenantAggregateRoot {
	return shared.TenantAggregateRoot{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		TenantID:          m.TenantID,
	}
}
