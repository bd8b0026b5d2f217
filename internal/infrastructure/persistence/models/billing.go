package models

import (
	"encoding/json"
	"time"

	"github.com/financespro/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice domain entity.
// Line items are stored as a JSON document so description text and
// numeric precision survive the round trip unchanged.
type InvoiceModel struct {
	TenantAggregateModel
	Number     string                `gorm:"type:varchar(20);not null;uniqueIndex:idx_invoice_tenant_number,priority:2"`
	ClientID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	ClientName string                `gorm:"type:varchar(200);not null"`
	IssueDate  time.Time             `gorm:"not null"`
	DueDate    time.Time             `gorm:"not null"`
	Items      string                `gorm:"type:jsonb;not null"`
	Subtotal   decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	VATAmount  decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	Total      decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	Status     billing.InvoiceStatus `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() (*billing.Invoice, error) {
	var items []billing.LineItem
	if err := json.Unmarshal([]byte(m.Items), &items); err != nil {
		return nil, err
	}
	return &billing.Invoice{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Number:              m.Number,
		ClientID:            m.ClientID,
		ClientName:          m.ClientName,
		IssueDate:           m.IssueDate,
		DueDate:             m.DueDate,
		Items:               items,
		Subtotal:            billing.NewAmount(m.Subtotal),
		VATAmount:           billing.NewAmount(m.VATAmount),
		Total:               billing.NewAmount(m.Total),
		Status:              m.Status,
	}, nil
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(i *billing.Invoice) error {
	items, err := json.Marshal(i.Items)
	if err != nil {
		return err
	}
	m.FromDomainTenantAggregateRoot(i.TenantAggregateRoot)
	m.Number = i.Number
	m.ClientID = i.ClientID
	m.ClientName = i.ClientName
	m.IssueDate = i.IssueDate
	m.DueDate = i.DueDate
	m.Items = string(items)
	m.Subtotal = i.Subtotal.Decimal
	m.VATAmount = i.VATAmount.Decimal
	m.Total = i.Total.Decimal
	m.Status = i.Status
	return nil
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(i *billing.Invoice) (*InvoiceModel, error) {
	m := &InvoiceModel{}
	if err := m.FromDomain(i); err != nil {
		return nil, err
	}
	return m, nil
}

// InvoiceSequenceModel backs per-tenant invoice numbering. One row per
// tenant; next_value is the sequence value the next invoice receives.
// Allocation increments the row atomically inside the insert transaction.
type InvoiceSequenceModel struct {
	TenantID  uuid.UUID `gorm:"type:uuid;primary_key"`
	NextValue int64     `gorm:"not null;default:1"`
}

// TableName returns the table name for GORM
func (InvoiceSequenceModel) TableName() string {
	return "invoice_sequences"
}
