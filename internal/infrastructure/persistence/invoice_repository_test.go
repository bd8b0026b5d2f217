package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/financespro/backend/internal/domain/billing"
	"github.com/financespro/backend/internal/domain/shared"
	"github.com/financespro/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupInvoiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.InvoiceModel{}, &models.InvoiceSequenceModel{})
	require.NoError(t, err)

	return db
}

func newTestInvoice(t *testing.T, tenantID uuid.UUID, status billing.InvoiceStatus, total float64) *billing.Invoice {
	t.Helper()

	issue, _ := time.Parse(billing.DateLayout, "2024-01-01")
	due, _ := time.Parse(billing.DateLayout, "2024-01-31")
	invoice, err := billing.NewInvoice(tenantID, billing.InvoiceDetails{
		ClientID:   uuid.New(),
		ClientName: "Client SA",
		IssueDate:  issue,
		DueDate:    due,
		Items: []billing.LineItem{
			{Description: "Prestation", Qty: billing.AmountFromFloat(1), Price: billing.AmountFromFloat(total)},
		},
		Status: status,
	})
	require.NoError(t, err)
	return invoice
}

func TestGormInvoiceRepository_Create(t *testing.T) {
	db := setupInvoiceTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()

	t.Run("assigns sequential numbers per tenant", func(t *testing.T) {
		tenantID := uuid.New()

		first := newTestInvoice(t, tenantID, billing.StatusPending, 100)
		require.NoError(t, repo.Create(ctx, first))
		assert.Equal(t, "FAC-0001", first.Number)

		second := newTestInvoice(t, tenantID, billing.StatusPending, 200)
		require.NoError(t, repo.Create(ctx, second))
		assert.Equal(t, "FAC-0002", second.Number)
	})

	t.Run("numbering is independent across tenants", func(t *testing.T) {
		invoice := newTestInvoice(t, uuid.New(), billing.StatusPending, 50)
		require.NoError(t, repo.Create(ctx, invoice))
		assert.Equal(t, "FAC-0001", invoice.Number)
	})

	t.Run("numbers never repeat within a tenant", func(t *testing.T) {
		tenantID := uuid.New()
		seen := make(map[string]bool)

		for i := 0; i < 10; i++ {
			invoice := newTestInvoice(t, tenantID, billing.StatusPending, 10)
			require.NoError(t, repo.Create(ctx, invoice))
			assert.False(t, seen[invoice.Number], "duplicate number %s", invoice.Number)
			seen[invoice.Number] = true
		}
		assert.Len(t, seen, 10)
		assert.True(t, seen["FAC-0010"])
	})
}

func TestGormInvoiceRepository_FindByIDForTenant(t *testing.T) {
	db := setupInvoiceTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	issue, _ := time.Parse(billing.DateLayout, "2024-01-01")
	due, _ := time.Parse(billing.DateLayout, "2024-01-31")
	invoice, err := billing.NewInvoice(tenantID, billing.InvoiceDetails{
		ClientID:   uuid.New(),
		ClientName: "Client SA",
		IssueDate:  issue,
		DueDate:    due,
		Items: []billing.LineItem{
			{Description: "Consulting", Qty: billing.AmountFromFloat(2), Price: billing.AmountFromFloat(100)},
		},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, invoice))

	t.Run("line items round-trip unchanged", func(t *testing.T) {
		found, err := repo.FindByIDForTenant(ctx, tenantID, invoice.ID)
		require.NoError(t, err)

		require.Len(t, found.Items, 1)
		assert.Equal(t, "Consulting", found.Items[0].Description)
		assert.True(t, found.Items[0].Qty.Equal(billing.AmountFromFloat(2)))
		assert.True(t, found.Items[0].Price.Equal(billing.AmountFromFloat(100)))
	})

	t.Run("foreign tenant sees not found", func(t *testing.T) {
		_, err := repo.FindByIDForTenant(ctx, uuid.New(), invoice.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormInvoiceRepository_Save(t *testing.T) {
	db := setupInvoiceTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	invoice := newTestInvoice(t, tenantID, billing.StatusPending, 100)
	require.NoError(t, repo.Create(ctx, invoice))

	details := billing.InvoiceDetails{
		ClientID:   invoice.ClientID,
		ClientName: invoice.ClientName,
		IssueDate:  invoice.IssueDate,
		DueDate:    invoice.DueDate,
		Items:      invoice.Items,
		Status:     billing.StatusPaid,
	}
	require.NoError(t, invoice.Update(details))
	require.NoError(t, repo.Save(ctx, invoice))

	found, err := repo.FindByIDForTenant(ctx, tenantID, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusPaid, found.Status)
	assert.Equal(t, "FAC-0001", found.Number)
	assert.Equal(t, 2, found.Version)
}

func TestGormInvoiceRepository_DeleteForTenant(t *testing.T) {
	db := setupInvoiceTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	invoice := newTestInvoice(t, tenantID, billing.StatusPending, 100)
	require.NoError(t, repo.Create(ctx, invoice))

	t.Run("deletes own invoice", func(t *testing.T) {
		require.NoError(t, repo.DeleteForTenant(ctx, tenantID, invoice.ID))
		_, err := repo.FindByIDForTenant(ctx, tenantID, invoice.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("deleting a missing id is not an error", func(t *testing.T) {
		assert.NoError(t, repo.DeleteForTenant(ctx, tenantID, uuid.New()))
		assert.NoError(t, repo.DeleteForTenant(ctx, tenantID, invoice.ID))
	})
}

func TestGormInvoiceRepository_StatsForTenant(t *testing.T) {
	db := setupInvoiceTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	require.NoError(t, repo.Create(ctx, newTestInvoice(t, tenantID, billing.StatusPaid, 100)))
	require.NoError(t, repo.Create(ctx, newTestInvoice(t, tenantID, billing.StatusPaid, 200)))
	require.NoError(t, repo.Create(ctx, newTestInvoice(t, tenantID, billing.StatusPending, 50)))
	require.NoError(t, repo.Create(ctx, newTestInvoice(t, tenantID, billing.StatusOverdue, 75)))

	// Another tenant's invoices must not leak into the stats
	require.NoError(t, repo.Create(ctx, newTestInvoice(t, uuid.New(), billing.StatusPaid, 999)))

	stats, err := repo.StatsForTenant(ctx, tenantID)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalInvoices)
	assert.True(t, stats.TotalPaid.Equal(billing.AmountFromFloat(300)), "got %s", stats.TotalPaid)
	assert.True(t, stats.TotalPending.Equal(billing.AmountFromFloat(50)), "got %s", stats.TotalPending)
	assert.Equal(t, int64(1), stats.OverdueCount)
}

func TestGormInvoiceRepository_PlatformAggregates(t *testing.T) {
	db := setupInvoiceTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestInvoice(t, uuid.New(), billing.StatusPaid, 100)))
	require.NoError(t, repo.Create(ctx, newTestInvoice(t, uuid.New(), billing.StatusPaid, 200)))
	require.NoError(t, repo.Create(ctx, newTestInvoice(t, uuid.New(), billing.StatusPending, 40)))

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	paid, err := repo.SumPaidAll(ctx)
	require.NoError(t, err)
	assert.True(t, paid.Equal(billing.AmountFromFloat(300)), "got %s", paid)

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
	for _, summary := range recent {
		assert.NotEmpty(t, summary.Number)
		assert.Equal(t, "Client SA", summary.ClientName)
	}
}
