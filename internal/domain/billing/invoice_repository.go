package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DashboardStats aggregates a tenant's invoices for the dashboard view
type DashboardStats struct {
	TotalInvoices int64
	TotalPaid     Amount
	TotalPending  Amount
	OverdueCount  int64
}

// InvoiceSummary is a lightweight projection for admin activity feeds
type InvoiceSummary struct {
	ID         uuid.UUID
	Number     string
	ClientName string
	Total      Amount
	Status     InvoiceStatus
	CreatedAt  time.Time
}

// InvoiceRepository defines persistence operations for invoices.
// Create allocates the per-tenant invoice number inside the same
// transaction as the insert, so concurrent creates cannot produce
// duplicate numbers.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *Invoice) error
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]Invoice, error)
	Save(ctx context.Context, invoice *Invoice) error
	// DeleteForTenant succeeds even when the id does not exist; delete is
	// idempotent by contract.
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	StatsForTenant(ctx context.Context, tenantID uuid.UUID) (*DashboardStats, error)
	CountAll(ctx context.Context) (int64, error)
	SumPaidAll(ctx context.Context) (Amount, error)
	Recent(ctx context.Context, limit int) ([]InvoiceSummary, error)
}
