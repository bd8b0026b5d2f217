package models

import (
	"github.com/financespro/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email        string               `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string               `gorm:"type:varchar(100);not null"`
	FullName     string               `gorm:"type:varchar(200);not null"`
	Company      string               `gorm:"type:varchar(200);index"`
	AccountType  identity.AccountType `gorm:"type:varchar(20);not null;default:'entreprise'"`
	Status       identity.UserStatus  `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		FullName:          m.FullName,
		Company:           m.Company,
		AccountType:       m.AccountType,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FullName = u.FullName
	m.Company = u.Company
	m.AccountType = u.AccountType
	m.Status = u.Status
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
