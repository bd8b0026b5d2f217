package catalog

import (
	"time"

	"github.com/financespro/backend/internal/domain/billing"
	"github.com/financespro/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// ServiceRequest carries the full set of service attributes. Create and
// update share it; updates overwrite every field.
type ServiceRequest struct {
	Name        string         `json:"name" binding:"required,min=1,max=200"`
	Description string         `json:"description"`
	Price       billing.Amount `json:"price"`
	Category    string         `json:"category" binding:"max=50"`
}

// ServiceResponse represents a catalog service in API responses
type ServiceResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       billing.Amount `json:"price"`
	Category    string         `json:"category"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ToServiceResponse converts a domain Service to a response DTO
func ToServiceResponse(s *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       billing.NewAmount(s.Price),
		Category:    s.Category,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r ServiceRequest) fields() catalog.ServiceFields {
	return catalog.ServiceFields{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price.Decimal,
		Category:    r.Category,
	}
}
