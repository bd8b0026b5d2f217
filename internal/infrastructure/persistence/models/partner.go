package models

import (
	"github.com/financespro/backend/internal/domain/partner"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	TenantAggregateModel
	Company       string `gorm:"type:varchar(200);not null"`
	ContactPerson string `gorm:"type:varchar(200)"`
	Email         string `gorm:"type:varchar(200);index"`
	Phone         string `gorm:"type:varchar(50)"`
	Address       string `gorm:"type:text"`
	City          string `gorm:"type:varchar(100)"`
	PostalCode    string `gorm:"type:varchar(20)"`
	Country       string `gorm:"type:varchar(100);not null;default:'Suisse'"`
	Category      string `gorm:"type:varchar(50);not null;default:'facture'"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Company:             m.Company,
		ContactPerson:       m.ContactPerson,
		Email:               m.Email,
		Phone:               m.Phone,
		Address:             m.Address,
		City:                m.City,
		PostalCode:          m.PostalCode,
		Country:             m.Country,
		Category:            m.Category,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *partner.Client) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.Company = c.Company
	m.ContactPerson = c.ContactPerson
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
	m.City = c.City
	m.PostalCode = c.PostalCode
	m.Country = c.Country
	m.Category = c.Category
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity.
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}
