package billing

import (
	"context"
	"errors"

	"github.com/financespro/backend/internal/domain/billing"
	"github.com/financespro/backend/internal/domain/partner"
	"github.com/financespro/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceService handles invoice-related business operations
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	clientRepo  partner.ClientRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, clientRepo partner.ClientRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
	}
}

// Create creates a new invoice for the tenant. The referenced client
// must belong to the same tenant; its company name is used when the
// request omits client_name.
func (s *InvoiceService) Create(ctx context.Context, tenantID uuid.UUID, req InvoiceRequest) (*InvoiceResponse, error) {
	details, err := s.resolveDetails(ctx, tenantID, req)
	if err != nil {
		return nil, err
	}

	invoice, err := billing.NewInvoice(tenantID, details)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves one of the tenant's invoices
func (s *InvoiceService) GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForTenant(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves all of the tenant's invoices
func (s *InvoiceService) List(ctx context.Context, tenantID uuid.UUID) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses, nil
}

// Update overwrites an invoice's attributes with the supplied fields.
// The invoice number never changes; totals are recomputed.
func (s *InvoiceService) Update(ctx context.Context, tenantID, invoiceID uuid.UUID, req InvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForTenant(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	details, err := s.resolveDetails(ctx, tenantID, req)
	if err != nil {
		return nil, err
	}

	if err := invoice.Update(details); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete removes one of the tenant's invoices. Deleting an unknown id
// succeeds; the operation is idempotent.
func (s *InvoiceService) Delete(ctx context.Context, tenantID, invoiceID uuid.UUID) error {
	return s.invoiceRepo.DeleteForTenant(ctx, tenantID, invoiceID)
}

func (s *InvoiceService) resolveDetails(ctx context.Context, tenantID uuid.UUID, req InvoiceRequest) (billing.InvoiceDetails, error) {
	details, err := req.details()
	if err != nil {
		return billing.InvoiceDetails{}, err
	}

	client, err := s.clientRepo.FindByIDForTenant(ctx, tenantID, req.ClientID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return billing.InvoiceDetails{}, shared.NewDomainError("INVALID_CLIENT", "Client does not exist")
		}
		return billing.InvoiceDetails{}, err
	}

	if details.ClientName == "" {
		details.ClientName = client.Company
	}
	return details, nil
}
