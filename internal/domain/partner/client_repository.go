package partner

import (
	"context"

	"github.com/google/uuid"
)

// ClientRepository defines persistence operations for clients.
// Every operation is scoped by tenant; a foreign tenant's id behaves
// exactly like a missing record.
type ClientRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Client, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]Client, error)
	Save(ctx context.Context, client *Client) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}
