package identity

import (
	"time"

	"github.com/financespro/backend/internal/domain/billing"
	"github.com/financespro/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// RegisterRequest represents a request to create a new account
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email,max=200"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	FullName    string `json:"full_name" binding:"required,min=1,max=200"`
	Company     string `json:"company" binding:"max=200"`
	AccountType string `json:"account_type" binding:"omitempty,oneof=entreprise administrateur"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Company     string    `json:"company"`
	AccountType string    `json:"account_type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthResponse carries a session token and the authenticated user
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UpdateUserStatusRequest represents an admin request to change an
// account's status
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}

// PlatformStatsResponse aggregates platform-wide figures for the admin view
type PlatformStatsResponse struct {
	TotalUsers    int64          `json:"total_users"`
	TotalClients  int64          `json:"total_clients"`
	TotalInvoices int64          `json:"total_invoices"`
	TotalRevenue  billing.Amount `json:"total_revenue"`
}

// CompanyResponse is one row of the admin companies listing
type CompanyResponse struct {
	Company   string `json:"company"`
	UserCount int64  `json:"user_count"`
}

// RegistrationResponse is one row of the admin activity feed
type RegistrationResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentInvoiceResponse is one row of the admin activity feed
type RecentInvoiceResponse struct {
	ID         uuid.UUID      `json:"id"`
	Number     string         `json:"numero_facture"`
	ClientName string         `json:"client_name"`
	Total      billing.Amount `json:"total"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}

// RecentActivityResponse combines the latest registrations and invoices
type RecentActivityResponse struct {
	Registrations []RegistrationResponse  `json:"registrations"`
	Invoices      []RecentInvoiceResponse `json:"invoices"`
}

// ToUserResponse converts a domain User to a response DTO
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		Company:     u.Company,
		AccountType: string(u.AccountType),
		Status:      string(u.Status),
		CreatedAt:   u.CreatedAt,
	}
}
