package billing

import (
	"context"
	"testing"
	"time"

	"github.com/financespro/backend/internal/domain/billing"
	"github.com/financespro/backend/internal/domain/catalog"
	"github.com/financespro/backend/internal/domain/partner"
	"github.com/financespro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]billing.Invoice, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) StatsForTenant(ctx context.Context, tenantID uuid.UUID) (*billing.DashboardStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.DashboardStats), args.Error(1)
}

func (m *MockInvoiceRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) SumPaidAll(ctx context.Context) (billing.Amount, error) {
	args := m.Called(ctx)
	return args.Get(0).(billing.Amount), args.Error(1)
}

func (m *MockInvoiceRepository) Recent(ctx context.Context, limit int) ([]billing.InvoiceSummary, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]billing.InvoiceSummary), args.Error(1)
}

// MockClientRepository is a mock implementation of partner.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]partner.Client, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockClientRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockServiceRepository is a mock implementation of catalog.ServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Service, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockServiceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]catalog.Service, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]catalog.Service), args.Error(1)
}

func (m *MockServiceRepository) Save(ctx context.Context, service *catalog.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockServiceRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func testClient(t *testing.T, tenantID uuid.UUID) *partner.Client {
	t.Helper()
	client, err := partner.NewClient(tenantID, partner.ClientFields{Company: "Fiduciaire Lac SA"})
	require.NoError(t, err)
	return client
}

func testInvoiceRequest(clientID uuid.UUID) InvoiceRequest {
	return InvoiceRequest{
		ClientID:  clientID,
		IssueDate: "2024-01-01",
		DueDate:   "2024-01-31",
		Items: []billing.LineItem{
			{Description: "Consulting", Qty: billing.AmountFromFloat(1), Price: billing.AmountFromFloat(200)},
		},
	}
}

func TestInvoiceService_Create(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("creates invoice with computed totals", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		clientRepo := new(MockClientRepository)
		service := NewInvoiceService(invoiceRepo, clientRepo)

		client := testClient(t, tenantID)
		clientRepo.On("FindByIDForTenant", ctx, tenantID, client.ID).Return(client, nil)
		invoiceRepo.On("Create", ctx, mock.AnythingOfType("*billing.Invoice")).Return(nil)

		resp, err := service.Create(ctx, tenantID, testInvoiceRequest(client.ID))
		require.NoError(t, err)

		// client_name defaults to the client's company
		assert.Equal(t, "Fiduciaire Lac SA", resp.ClientName)
		assert.True(t, resp.Subtotal.Equal(billing.AmountFromFloat(200)))
		assert.True(t, resp.TVA.Equal(billing.AmountFromFloat(15.4)))
		assert.True(t, resp.Total.Equal(billing.AmountFromFloat(200)))
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "en attente", resp.StatusLabel)
		invoiceRepo.AssertExpectations(t)
	})

	t.Run("rejects a client that does not belong to the tenant", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		clientRepo := new(MockClientRepository)
		service := NewInvoiceService(invoiceRepo, clientRepo)

		clientID := uuid.New()
		clientRepo.On("FindByIDForTenant", ctx, tenantID, clientID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, tenantID, testInvoiceRequest(clientID))
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CLIENT", domainErr.Code)
		invoiceRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		clientRepo := new(MockClientRepository)
		service := NewInvoiceService(invoiceRepo, clientRepo)

		req := testInvoiceRequest(uuid.New())
		req.IssueDate = "01/01/2024"

		_, err := service.Create(ctx, tenantID, req)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DATE", domainErr.Code)
	})
}

func TestInvoiceService_Update(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	service := NewInvoiceService(invoiceRepo, clientRepo)

	client := testClient(t, tenantID)
	existing, err := billing.NewInvoice(tenantID, billing.InvoiceDetails{
		ClientID:   client.ID,
		ClientName: client.Company,
		IssueDate:  mustDate(t, "2024-01-01"),
		DueDate:    mustDate(t, "2024-01-31"),
		Items: []billing.LineItem{
			{Description: "Consulting", Qty: billing.AmountFromFloat(1), Price: billing.AmountFromFloat(100)},
		},
	})
	require.NoError(t, err)
	require.NoError(t, existing.AssignNumber("FAC-0001"))

	invoiceRepo.On("FindByIDForTenant", ctx, tenantID, existing.ID).Return(existing, nil)
	clientRepo.On("FindByIDForTenant", ctx, tenantID, client.ID).Return(client, nil)
	invoiceRepo.On("Save", ctx, existing).Return(nil)

	req := testInvoiceRequest(client.ID)
	req.Status = "paid"
	resp, err := service.Update(ctx, tenantID, existing.ID, req)
	require.NoError(t, err)

	// the number survives every update
	assert.Equal(t, "FAC-0001", resp.Number)
	assert.Equal(t, "paid", resp.Status)
	assert.True(t, resp.Subtotal.Equal(billing.AmountFromFloat(200)))
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceService_Delete(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	invoiceID := uuid.New()

	invoiceRepo := new(MockInvoiceRepository)
	service := NewInvoiceService(invoiceRepo, new(MockClientRepository))

	invoiceRepo.On("DeleteForTenant", ctx, tenantID, invoiceID).Return(nil)

	assert.NoError(t, service.Delete(ctx, tenantID, invoiceID))
	invoiceRepo.AssertExpectations(t)
}

func TestDashboardService_Dashboard(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	serviceRepo := new(MockServiceRepository)
	service := NewDashboardService(invoiceRepo, clientRepo, serviceRepo)

	invoiceRepo.On("StatsForTenant", ctx, tenantID).Return(&billing.DashboardStats{
		TotalInvoices: 4,
		TotalPaid:     billing.AmountFromFloat(300),
		TotalPending:  billing.AmountFromFloat(50),
		OverdueCount:  1,
	}, nil)
	clientRepo.On("CountForTenant", ctx, tenantID).Return(int64(7), nil)
	serviceRepo.On("CountForTenant", ctx, tenantID).Return(int64(3), nil)

	dashboard, err := service.Dashboard(ctx, tenantID)
	require.NoError(t, err)

	assert.Equal(t, int64(4), dashboard.TotalInvoices)
	assert.True(t, dashboard.TotalPaid.Equal(billing.AmountFromFloat(300)))
	assert.True(t, dashboard.TotalPending.Equal(billing.AmountFromFloat(50)))
	assert.Equal(t, int64(1), dashboard.OverdueCount)
	assert.Equal(t, int64(7), dashboard.ClientCount)
	assert.Equal(t, int64(3), dashboard.ServiceCount)
}

func mustDate(t *testing.T, value string) (parsed time.Time) {
	t.Helper()
	parsed, err := time.Parse(billing.DateLayout, value)
	require.NoError(t, err)
	return parsed
}
