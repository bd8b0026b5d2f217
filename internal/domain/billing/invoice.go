package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/financespro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the closed status vocabulary of the invoice engine.
// French labels used by the UI are a presentation concern; see StatusLabelFR.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
	StatusOverdue InvoiceStatus = "overdue"
)

// VATRate is the Swiss standard VAT rate (7.7%) applied to invoice subtotals
var VATRate = decimal.NewFromFloat(0.077)

// DateLayout is the wire format for issue and due dates
const DateLayout = "2006-01-02"

// NumberPrefix prefixes every generated invoice number
const NumberPrefix = "FAC"

// LineItem is a single billable line on an invoice. The list round-trips
// losslessly through storage: description text is preserved verbatim and
// qty/price keep their numeric precision.
type LineItem struct {
	Description string `json:"description"`
	Qty         Amount `json:"qty"`
	Price       Amount `json:"price"`
}

// Invoice is the central billable document ("facture").
// Monetary fields are always derived from the line items; caller-supplied
// totals are never trusted.
type Invoice struct {
	shared.TenantAggregateRoot
	Number     string
	ClientID   uuid.UUID
	ClientName string
	IssueDate  time.Time
	DueDate    time.Time
	Items      []LineItem
	Subtotal   Amount
	VATAmount  Amount
	Total      Amount
	Status     InvoiceStatus
}

// InvoiceDetails carries the caller-supplied attributes of an invoice
type InvoiceDetails struct {
	ClientID   uuid.UUID
	ClientName string
	IssueDate  time.Time
	DueDate    time.Time
	Items      []LineItem
	Status     InvoiceStatus
}

// NewInvoice creates a new invoice owned by the given tenant. The invoice
// number is assigned by the repository when the invoice is persisted, so
// allocation and insert happen in one transaction.
func NewInvoice(tenantID uuid.UUID, details InvoiceDetails) (*Invoice, error) {
	if details.Status == "" {
		details.Status = StatusPending
	}
	if err := validateDetails(details); err != nil {
		return nil, err
	}

	inv := &Invoice{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	inv.apply(details)

	return inv, nil
}

// AssignNumber sets the generated invoice number exactly once
func (i *Invoice) AssignNumber(number string) error {
	if i.Number != "" {
		return shared.NewDomainError("NUMBER_ALREADY_ASSIGNED", "Invoice number has already been assigned")
	}
	if number == "" {
		return shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot be empty")
	}
	i.Number = number
	return nil
}

// Update overwrites the invoice's attributes with the supplied fields.
// An empty status keeps the current one; any other value must belong to
// the closed enum. No transition graph is enforced.
func (i *Invoice) Update(details InvoiceDetails) error {
	if details.Status == "" {
		details.Status = i.Status
	}
	if err := validateDetails(details); err != nil {
		return err
	}

	i.apply(details)
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

func (i *Invoice) apply(details InvoiceDetails) {
	i.ClientID = details.ClientID
	i.ClientName = strings.TrimSpace(details.ClientName)
	i.IssueDate = details.IssueDate
	i.DueDate = details.DueDate
	i.Items = details.Items
	i.Status = details.Status
	i.recomputeTotals()
}

// recomputeTotals derives subtotal, VAT and total from the line items.
// Following the Swiss convention used here, VAT is disclosed on the
// document but not added: total equals subtotal.
func (i *Invoice) recomputeTotals() {
	subtotal := ZeroAmount()
	for _, item := range i.Items {
		subtotal = subtotal.Add(item.Qty.Mul(item.Price))
	}
	i.Subtotal = subtotal
	i.VATAmount = NewAmount(subtotal.Decimal.Mul(VATRate)).Round2()
	i.Total = subtotal
}

// IsPastDue reports whether the due date has passed at the given time
func (i *Invoice) IsPastDue(now time.Time) bool {
	return !i.DueDate.IsZero() && now.After(i.DueDate)
}

func validateDetails(details InvoiceDetails) error {
	if details.ClientID == uuid.Nil {
		return shared.NewDomainError("INVALID_CLIENT", "Client is required")
	}
	if strings.TrimSpace(details.ClientName) == "" {
		return shared.NewDomainError("INVALID_CLIENT", "Client name is required")
	}
	if details.IssueDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Issue date is required")
	}
	if details.DueDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Due date is required")
	}
	if len(details.Items) == 0 {
		return shared.NewDomainError("INVALID_ITEMS", "Invoice must contain at least one line item")
	}
	for _, item := range details.Items {
		if strings.TrimSpace(item.Description) == "" {
			return shared.NewDomainError("INVALID_ITEMS", "Line item description cannot be empty")
		}
		if !item.Qty.Decimal.IsPositive() {
			return shared.NewDomainError("INVALID_ITEMS", "Line item quantity must be positive")
		}
		if item.Price.Decimal.IsNegative() {
			return shared.NewDomainError("INVALID_ITEMS", "Line item price cannot be negative")
		}
	}
	if err := ValidateStatus(details.Status); err != nil {
		return err
	}
	return nil
}

// ValidateStatus checks membership in the closed status enum
func ValidateStatus(status InvoiceStatus) error {
	switch status {
	case StatusPending, StatusPaid, StatusOverdue:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Status must be 'pending', 'paid' or 'overdue'")
	}
}

// FormatNumber renders a per-tenant sequence value as an invoice number,
// e.g. 1 -> FAC-0001
func FormatNumber(seq int64) string {
	return fmt.Sprintf("%s-%04d", NumberPrefix, seq)
}

// StatusLabelFR maps engine statuses to the French labels shown in the UI.
// This is a read-side localization mapping, never an input vocabulary.
func StatusLabelFR(status InvoiceStatus) string {
	switch status {
	case StatusPending:
		return "en attente"
	case StatusPaid:
		return "payée"
	case StatusOverdue:
		return "en retard"
	default:
		return string(status)
	}
}
