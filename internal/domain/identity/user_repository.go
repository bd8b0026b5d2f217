package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CompanyCount aggregates registered users per company name
type CompanyCount struct {
	Company   string
	UserCount int64
}

// RegistrationSummary is a lightweight projection for admin activity feeds
type RegistrationSummary struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Company   string
	CreatedAt time.Time
}

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]User, error)
	Save(ctx context.Context, user *User) error
	Count(ctx context.Context) (int64, error)
	CountByCompany(ctx context.Context) ([]CompanyCount, error)
	RecentRegistrations(ctx context.Context, limit int) ([]RegistrationSummary, error)
}
