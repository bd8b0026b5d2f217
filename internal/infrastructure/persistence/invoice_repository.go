package persistence

import (
	"context"
	"errors"

	"github.com/financespro/backend/internal/domain/billing"
	"github.com/financespro/backend/internal/domain/shared"
	"github.com/financespro/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Create persists a new invoice. The per-tenant invoice number is
// allocated inside the same transaction as the insert, so two invoices
// of one tenant can never receive the same number.
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *billing.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextInvoiceSequence(tx, invoice.TenantID)
		if err != nil {
			return err
		}
		if err := invoice.AssignNumber(billing.FormatNumber(seq)); err != nil {
			return err
		}

		model, err := models.InvoiceModelFromDomain(invoice)
		if err != nil {
			return err
		}
		return tx.Create(model).Error
	})
}

// nextInvoiceSequence allocates the next sequence value for the tenant.
// The increment is a single atomic UPDATE; when no sequence row exists
// yet one is inserted, retrying the increment once if a concurrent
// insert won the race.
func nextInvoiceSequence(tx *gorm.DB, tenantID uuid.UUID) (int64, error) {
	for attempt := 0; attempt < 2; attempt++ {
		result := tx.Model(&models.InvoiceSequenceModel{}).
			Where("tenant_id = ?", tenantID).
			Update("next_value", gorm.Expr("next_value + 1"))
		if result.Error != nil {
			return 0, result.Error
		}

		if result.RowsAffected > 0 {
			var seq models.InvoiceSequenceModel
			if err := tx.First(&seq, "tenant_id = ?", tenantID).Error; err != nil {
				return 0, err
			}
			return seq.NextValue - 1, nil
		}

		// No sequence row yet: seed it with next_value 2 and hand out 1.
		// A duplicate-key error means another transaction seeded it first;
		// loop back to the increment path.
		err := tx.Create(&models.InvoiceSequenceModel{TenantID: tenantID, NextValue: 2}).Error
		if err == nil {
			return 1, nil
		}
		if attempt == 0 {
			continue
		}
		return 0, err
	}
	return 0, shared.NewDomainError("SEQUENCE_ERROR", "Failed to allocate invoice number")
}

// FindByIDForTenant finds an invoice by ID within a tenant
func (r *GormInvoiceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAllForTenant finds all invoices for a tenant, newest first
func (r *GormInvoiceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoice, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		invoices[i] = *invoice
	}
	return invoices, nil
}

// Save updates an existing invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	model, err := models.InvoiceModelFromDomain(invoice)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForTenant deletes an invoice within a tenant. Deleting an id
// that does not exist is not an error; delete is idempotent.
func (r *GormInvoiceRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.InvoiceModel{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}

// StatsForTenant aggregates the tenant's invoices for the dashboard
func (r *GormInvoiceRepository) StatsForTenant(ctx context.Context, tenantID uuid.UUID) (*billing.DashboardStats, error) {
	var row struct {
		TotalInvoices int64
		TotalPaid     decimal.Decimal
		TotalPending  decimal.Decimal
		OverdueCount  int64
	}

	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Select(`COUNT(*) AS total_invoices,
			COALESCE(SUM(CASE WHEN status = 'paid' THEN total ELSE 0 END), 0) AS total_paid,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN total ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN status = 'overdue' THEN 1 ELSE 0 END), 0) AS overdue_count`).
		Where("tenant_id = ?", tenantID).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	return &billing.DashboardStats{
		TotalInvoices: row.TotalInvoices,
		TotalPaid:     billing.NewAmount(row.TotalPaid),
		TotalPending:  billing.NewAmount(row.TotalPending),
		OverdueCount:  row.OverdueCount,
	}, nil
}

// CountAll counts invoices across all tenants
func (r *GormInvoiceRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumPaidAll sums the totals of paid invoices across all tenants
func (r *GormInvoiceRepository) SumPaidAll(ctx context.Context) (billing.Amount, error) {
	var row struct {
		TotalPaid decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Select("COALESCE(SUM(total), 0) AS total_paid").
		Where("status = ?", billing.StatusPaid).
		Scan(&row).Error; err != nil {
		return billing.ZeroAmount(), err
	}
	return billing.NewAmount(row.TotalPaid), nil
}

// Recent returns the most recently created invoices across all tenants
func (r *GormInvoiceRepository) Recent(ctx context.Context, limit int) ([]billing.InvoiceSummary, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Select("id, number, client_name, total, status, created_at").
		Order("created_at DESC").
		Limit(limit).
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	summaries := make([]billing.InvoiceSummary, len(invoiceModels))
	for i, model := range invoiceModels {
		summaries[i] = billing.InvoiceSummary{
			ID:         model.ID,
			Number:     model.Number,
			ClientName: model.ClientName,
			Total:      billing.NewAmount(model.Total),
			Status:     model.Status,
			CreatedAt:  model.CreatedAt,
		}
	}
	return summaries, nil
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)
