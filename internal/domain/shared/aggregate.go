package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// TenantAggregateRoot extends BaseAggregateRoot with tenant scoping.
// The tenant is the owning user account; every client, service and
// invoice belongs to exactly one tenant.
type TenantAggregateRoot struct {
	BaseAggregateRoot
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// NewTenantAggregateRoot creates a new tenant-scoped aggregate root
func NewTenantAggregateRoot(tenantID uuid.UUID) TenantAggregateRoot {
	return TenantAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		TenantID:          tenantID,
	}
}
