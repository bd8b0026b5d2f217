package partner

import (
	"context"

	"github.com/financespro/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Create creates a new client for the tenant
func (s *ClientService) Create(ctx context.Context, tenantID uuid.UUID, req ClientRequest) (*ClientResponse, error) {
	client, err := partner.NewClient(tenantID, req.fields())
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves one of the tenant's clients
func (s *ClientService) GetByID(ctx context.Context, tenantID, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByIDForTenant(ctx, tenantID, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves all of the tenant's clients
func (s *ClientService) List(ctx context.Context, tenantID uuid.UUID) ([]ClientResponse, error) {
	clients, err := s.clientRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses, nil
}

// Update overwrites a client's attributes with the supplied fields
func (s *ClientService) Update(ctx context.Context, tenantID, clientID uuid.UUID, req ClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByIDForTenant(ctx, tenantID, clientID)
	if err != nil {
		return nil, err
	}

	if err := client.Update(req.fields()); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes one of the tenant's clients
func (s *ClientService) Delete(ctx context.Context, tenantID, clientID uuid.UUID) error {
	return s.clientRepo.DeleteForTenant(ctx, tenantID, clientID)
}
