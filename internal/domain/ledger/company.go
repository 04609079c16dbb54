package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/siteledger/backend/internal/domain/shared"
)

// Address holds a company's postal address
type Address struct {
	Street  string `gorm:"type:varchar(200)" json:"street,omitempty"`
	City    string `gorm:"type:varchar(100)" json:"city,omitempty"`
	State   string `gorm:"type:varchar(100)" json:"state,omitempty"`
	Zip     string `gorm:"type:varchar(20)" json:"zip,omitempty"`
	Country string `gorm:"type:varchar(100)" json:"country,omitempty"`
}

// Contact holds a company's contact information
type Contact struct {
	Phone   string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Email   string `gorm:"type:varchar(200)" json:"email,omitempty"`
	Website string `gorm:"type:varchar(200)" json:"website,omitempty"`
}

// Company is the top-level aggregate: it owns zero or more projects, and
// transitively everything booked against them.
type Company struct {
	shared.BaseEntity
	Name               string    `gorm:"type:varchar(100);not null" json:"name"`
	RegistrationNumber string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"registrationNumber"`
	Address            Address   `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Contact            Contact   `gorm:"embedded;embeddedPrefix:contact_" json:"contact"`
	Projects           []Project `gorm:"foreignKey:CompanyID" json:"projects,omitempty"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// CompanyMutationPolicy is the role table for company mutations. Only admins
// may delete a company because deletion cascades to every dependent record.
var CompanyMutationPolicy = shared.MutationPolicy{
	Update: []shared.Role{shared.RoleAdmin, shared.RoleManager},
	Delete: []shared.Role{shared.RoleAdmin},
}

// NewCompany creates a company with required fields
func NewCompany(createdBy uuid.UUID, name, registrationNumber string) (*Company, error) {
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}
	registrationNumber = strings.TrimSpace(registrationNumber)
	if registrationNumber == "" {
		return nil, shared.NewDomainError("VALIDATION", "Registration number is required")
	}

	return &Company{
		BaseEntity:         shared.NewBaseEntity(createdBy),
		Name:               strings.TrimSpace(name),
		RegistrationNumber: registrationNumber,
	}, nil
}

// Rename changes the company name
func (c *Company) Rename(name string) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	return nil
}

// SetAddress replaces the company's address
func (c *Company) SetAddress(address Address) {
	c.Address = address
	c.UpdatedAt = time.Now()
}

// SetContact replaces the company's contact information
func (c *Company) SetContact(contact Contact) {
	c.Contact = contact
	c.UpdatedAt = time.Now()
}

func validateCompanyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("VALIDATION", "Company name is required")
	}
	if len(name) > 100 {
		return shared.NewDomainError("VALIDATION", "Company name cannot be more than 100 characters")
	}
	return nil
}
