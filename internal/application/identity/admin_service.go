package identity

import (
	"context"

	"github.com/financespro/backend/internal/domain/billing"
	"github.com/financespro/backend/internal/domain/identity"
	"github.com/financespro/backend/internal/domain/partner"
	"github.com/google/uuid"
)

const recentActivityLimit = 10

// AdminService exposes the platform administration surface: global
// figures across all tenants and user account management.
type AdminService struct {
	userRepo    identity.UserRepository
	clientRepo  partner.ClientRepository
	invoiceRepo billing.InvoiceRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo identity.UserRepository,
	clientRepo partner.ClientRepository,
	invoiceRepo billing.InvoiceRepository,
) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		clientRepo:  clientRepo,
		invoiceRepo: invoiceRepo,
	}
}

// PlatformStats computes platform-wide totals across all tenants
func (s *AdminService) PlatformStats(ctx context.Context) (*PlatformStatsResponse, error) {
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalClients, err := s.clientRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalInvoices, err := s.invoiceRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.invoiceRepo.SumPaidAll(ctx)
	if err != nil {
		return nil, err
	}

	return &PlatformStatsResponse{
		TotalUsers:    totalUsers,
		TotalClients:  totalClients,
		TotalInvoices: totalInvoices,
		TotalRevenue:  totalRevenue,
	}, nil
}

// ListUsers returns every registered account
func (s *AdminService) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses, nil
}

// GetUser returns a single account by id
func (s *AdminService) GetUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// SetUserStatus activates or suspends an account
func (s *AdminService) SetUserStatus(ctx context.Context, userID uuid.UUID, req UpdateUserStatusRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.SetStatus(identity.UserStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// ListCompanies groups registered accounts by company name
func (s *AdminService) ListCompanies(ctx context.Context) ([]CompanyResponse, error) {
	counts, err := s.userRepo.CountByCompany(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CompanyResponse, len(counts))
	for i, c := range counts {
		responses[i] = CompanyResponse{
			Company:   c.Company,
			UserCount: c.UserCount,
		}
	}
	return responses, nil
}

// RecentActivity returns the latest registrations and invoices across
// the whole platform
func (s *AdminService) RecentActivity(ctx context.Context) (*RecentActivityResponse, error) {
	registrations, err := s.userRepo.RecentRegistrations(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	activity := &RecentActivityResponse{
		Registrations: make([]RegistrationResponse, len(registrations)),
		Invoices:      make([]RecentInvoiceResponse, len(invoices)),
	}
	for i, r := range registrations {
		activity.Registrations[i] = RegistrationResponse{
			ID:        r.ID,
			Email:     r.Email,
			FullName:  r.FullName,
			Company:   r.Company,
			CreatedAt: r.CreatedAt,
		}
	}
	for i, inv := range invoices {
		activity.Invoices[i] = RecentInvoiceResponse{
			ID:         inv.ID,
			Number:     inv.Number,
			ClientName: inv.ClientName,
			Total:      inv.Total,
			Status:     string(inv.Status),
			CreatedAt:  inv.CreatedAt,
		}
	}
	return activity, nil
}
