package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/financespro/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// AccountType distinguishes ordinary tenants from platform administrators
type AccountType string

const (
	AccountTypeEntreprise     AccountType = "entreprise"
	AccountTypeAdministrateur AccountType = "administrateur"
)

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// Password cost for bcrypt
const bcryptCost = 12

const minPasswordLength = 8

// User represents a registered account. It is the tenancy root: all
// clients, services and invoices are scoped to a user.
type User struct {
	shared.BaseAggregateRoot
	Email        string
	PasswordHash string
	FullName     string
	Company      string
	AccountType  AccountType
	Status       UserStatus
}

// NewUser creates a new user with required fields
func NewUser(email, password, fullName, company string, accountType AccountType) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Full name cannot be empty")
	}
	if accountType == "" {
		accountType = AccountTypeEntreprise
	}
	if err := validateAccountType(accountType); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      passwordHash,
		FullName:          strings.TrimSpace(fullName),
		Company:           strings.TrimSpace(company),
		AccountType:       accountType,
		Status:            UserStatusActive,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsAdministrator returns true for platform administrator accounts
func (u *User) IsAdministrator() bool {
	return u.AccountType == AccountTypeAdministrateur
}

// IsSuspended returns true if the account has been suspended
func (u *User) IsSuspended() bool {
	return u.Status == UserStatusSuspended
}

// SetStatus updates the account status
func (u *User) SetStatus(status UserStatus) error {
	switch status {
	case UserStatusActive, UserStatusSuspended:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Status must be 'active' or 'suspended'")
	}

	u.Status = status
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt truncates beyond 72 bytes
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func validateAccountType(t AccountType) error {
	switch t {
	case AccountTypeEntreprise, AccountTypeAdministrateur:
		return nil
	default:
		return shared.NewDomainError("INVALID_ACCOUNT_TYPE", "Account type must be 'entreprise' or 'administrateur'")
	}
}
