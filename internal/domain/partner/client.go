package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/financespro/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Defaults applied when the caller leaves the field empty
const (
	DefaultCountry  = "Suisse"
	DefaultCategory = "facture"
)

// Client represents a tenant's customer record.
// It is the aggregate root for client-related operations.
type Client struct {
	shared.TenantAggregateRoot
	Company       string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	City          string
	PostalCode    string
	Country       string
	Category      string
}

// ClientFields carries the caller-supplied attributes of a client
type ClientFields struct {
	Company       string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	City          string
	PostalCode    string
	Country       string
	Category      string
}

// NewClient creates a new client owned by the given tenant
func NewClient(tenantID uuid.UUID, fields ClientFields) (*Client, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	client := &Client{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	client.apply(fields)

	return client, nil
}

// Update overwrites the client's attributes with the supplied fields
func (c *Client) Update(fields ClientFields) error {
	if err := validateFields(fields); err != nil {
		return err
	}

	c.apply(fields)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

func (c *Client) apply(fields ClientFields) {
	c.Company = strings.TrimSpace(fields.Company)
	c.ContactPerson = strings.TrimSpace(fields.ContactPerson)
	c.Email = strings.ToLower(strings.TrimSpace(fields.Email))
	c.Phone = strings.TrimSpace(fields.Phone)
	c.Address = fields.Address
	c.City = strings.TrimSpace(fields.City)
	c.PostalCode = strings.TrimSpace(fields.PostalCode)
	c.Country = fields.Country
	if c.Country == "" {
		c.Country = DefaultCountry
	}
	c.Category = fields.Category
	if c.Category == "" {
		c.Category = DefaultCategory
	}
}

var clientEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateFields(fields ClientFields) error {
	if strings.TrimSpace(fields.Company) == "" {
		return shared.NewDomainError("INVALID_COMPANY", "Company name cannot be empty")
	}
	if len(fields.Company) > 200 {
		return shared.NewDomainError("INVALID_COMPANY", "Company name cannot exceed 200 characters")
	}
	if fields.Email != "" && !clientEmailRegex.MatchString(strings.TrimSpace(fields.Email)) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	if len(fields.Address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	return nil
}
