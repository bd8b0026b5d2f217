package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/financespro/backend/internal/domain/identity"
	"github.com/financespro/backend/internal/domain/shared"
	"github.com/financespro/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by its ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a user by email. Emails are stored lowercase.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		First(&model, "email = ?", strings.ToLower(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByEmail checks if a user with the given email exists
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll returns every user, newest registrations first
func (r *GormUserRepository) FindAll(ctx context.Context) ([]identity.User, error) {
	var userModels []models.UserModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]identity.User, len(userModels))
	for i, model := range userModels {
		users[i] = *model.ToDomain()
	}
	return users, nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts all registered users
func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCompany groups users by company name, largest companies first
func (r *GormUserRepository) CountByCompany(ctx context.Context) ([]identity.CompanyCount, error) {
	var counts []identity.CompanyCount
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Select("company, COUNT(*) AS user_count").
		Where("company <> ''").
		Group("company").
		Order("user_count DESC, company ASC").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// RecentRegistrations returns the most recently registered users
func (r *GormUserRepository) RecentRegistrations(ctx context.Context, limit int) ([]identity.RegistrationSummary, error) {
	var summaries []identity.RegistrationSummary
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Select("id, email, full_name, company, created_at").
		Order("created_at DESC").
		Limit(limit).
		Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// Ensure GormUserRepository implements UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)
