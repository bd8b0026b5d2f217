package billing

import (
	"time"

	"github.com/financespro/backend/internal/domain/billing"
	"github.com/financespro/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRequest carries the full set of invoice attributes. Create and
// update share it; updates overwrite every field. The wire names are the
// French ones the frontend has always sent: date, echeance, articles.
// Caller-supplied subtotal/tva/total fields are ignored, totals are
// always recomputed from the line items.
type InvoiceRequest struct {
	ClientID   uuid.UUID          `json:"client_id" binding:"required"`
	ClientName string             `json:"client_name" binding:"max=200"`
	IssueDate  string             `json:"date" binding:"required"`
	DueDate    string             `json:"echeance" binding:"required"`
	Items      []billing.LineItem `json:"articles" binding:"required,min=1"`
	Status     string             `json:"status"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID          uuid.UUID          `json:"id"`
	Number      string             `json:"numero_facture"`
	ClientID    uuid.UUID          `json:"client_id"`
	ClientName  string             `json:"client_name"`
	IssueDate   string             `json:"date"`
	DueDate     string             `json:"echeance"`
	Items       []billing.LineItem `json:"articles"`
	Subtotal    billing.Amount     `json:"subtotal"`
	TVA         billing.Amount     `json:"tva"`
	Total       billing.Amount     `json:"total"`
	Status      string             `json:"status"`
	StatusLabel string             `json:"status_label"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// DashboardResponse aggregates the tenant's activity for the dashboard
// view. The camelCase keys match what the dashboard page reads.
type DashboardResponse struct {
	TotalInvoices int64          `json:"totalFactures"`
	TotalPaid     billing.Amount `json:"totalPaid"`
	TotalPending  billing.Amount `json:"totalPending"`
	OverdueCount  int64          `json:"overdueCount"`
	ClientCount   int64          `json:"clientCount"`
	ServiceCount  int64          `json:"serviceCount"`
}

// ToInvoiceResponse converts a domain Invoice to a response DTO
func ToInvoiceResponse(i *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          i.ID,
		Number:      i.Number,
		ClientID:    i.ClientID,
		ClientName:  i.ClientName,
		IssueDate:   i.IssueDate.Format(billing.DateLayout),
		DueDate:     i.DueDate.Format(billing.DateLayout),
		Items:       i.Items,
		Subtotal:    i.Subtotal,
		TVA:         i.VATAmount,
		Total:       i.Total,
		Status:      string(i.Status),
		StatusLabel: billing.StatusLabelFR(i.Status),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (r InvoiceRequest) details() (billing.InvoiceDetails, error) {
	issueDate, err := time.Parse(billing.DateLayout, r.IssueDate)
	if err != nil {
		return billing.InvoiceDetails{}, shared.NewDomainError("INVALID_DATE", "Issue date must use format YYYY-MM-DD")
	}
	dueDate, err := time.Parse(billing.DateLayout, r.DueDate)
	if err != nil {
		return billing.InvoiceDetails{}, shared.NewDomainError("INVALID_DATE", "Due date must use format YYYY-MM-DD")
	}

	return billing.InvoiceDetails{
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Items:      r.Items,
		Status:     billing.InvoiceStatus(r.Status),
	}, nil
}
