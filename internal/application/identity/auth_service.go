package identity

import (
	"context"
	"errors"

	"github.com/financespro/backend/internal/domain/identity"
	"github.com/financespro/backend/internal/domain/shared"
	"github.com/financespro/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// AuthService handles registration, login and session lookups
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account and returns a session token for it
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	user, err := identity.NewUser(req.Email, req.Password, req.FullName, req.Company, identity.AccountType(req.AccountType))
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

// Login verifies credentials and returns a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		return nil, shared.ErrInvalidCredentials
	}
	if user.IsSuspended() {
		return nil, shared.NewDomainError("ACCOUNT_SUSPENDED", "This account has been suspended")
	}

	return s.authResponse(user)
}

// Me returns the profile of the authenticated user
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

func (s *AuthService) authResponse(user *identity.User) (*AuthResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.AccountType))
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(user),
	}, nil
}
