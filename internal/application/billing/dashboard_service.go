package billing

import (
	"context"

	"github.com/financespro/backend/internal/domain/billing"
	"github.com/financespro/backend/internal/domain/catalog"
	"github.com/financespro/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// DashboardService assembles the tenant dashboard from invoice
// aggregates and catalog counts
type DashboardService struct {
	invoiceRepo billing.InvoiceRepository
	clientRepo  partner.ClientRepository
	serviceRepo catalog.ServiceRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	invoiceRepo billing.InvoiceRepository,
	clientRepo partner.ClientRepository,
	serviceRepo catalog.ServiceRepository,
) *DashboardService {
	return &DashboardService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		serviceRepo: serviceRepo,
	}
}

// Dashboard computes the tenant's dashboard figures
func (s *DashboardService) Dashboard(ctx context.Context, tenantID uuid.UUID) (*DashboardResponse, error) {
	stats, err := s.invoiceRepo.StatsForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	clientCount, err := s.clientRepo.CountForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	serviceCount, err := s.serviceRepo.CountForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		TotalInvoices: stats.TotalInvoices,
		TotalPaid:     stats.TotalPaid,
		TotalPending:  stats.TotalPending,
		OverdueCount:  stats.OverdueCount,
		ClientCount:   clientCount,
		ServiceCount:  serviceCount,
	}, nil
}
