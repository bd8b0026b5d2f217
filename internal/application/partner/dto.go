package partner

import (
	"time"

	"github.com/financespro/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// ClientRequest carries the full set of client attributes. Create and
// update share it; updates overwrite every field.
type ClientRequest struct {
	Company       string `json:"company" binding:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person" binding:"max=200"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	Phone         string `json:"phone" binding:"max=50"`
	Address       string `json:"address" binding:"max=500"`
	City          string `json:"city" binding:"max=100"`
	PostalCode    string `json:"postal_code" binding:"max=20"`
	Country       string `json:"country" binding:"max=100"`
	Category      string `json:"category" binding:"max=50"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID            uuid.UUID `json:"id"`
	Company       string    `json:"company"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	PostalCode    string    `json:"postal_code"`
	Country       string    `json:"country"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToClientResponse converts a domain Client to a response DTO
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:            c.ID,
		Company:       c.Company,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		City:          c.City,
		PostalCode:    c.PostalCode,
		Country:       c.Country,
		Category:      c.Category,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (r ClientRequest) fields() partner.ClientFields {
	return partner.ClientFields{
		Company:       r.Company,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		City:          r.City,
		PostalCode:    r.PostalCode,
		Country:       r.Country,
		Category:      r.Category,
	}
}
