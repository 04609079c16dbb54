package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siteledger/backend/internal/domain/shared"
)

// Payment is money received against a project. Like Expense, the company
// reference is derived from the owning project and immutable.
type Payment struct {
	shared.BaseEntity
	Code         string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	ReceivedFrom string          `gorm:"type:varchar(200);not null" json:"receivedFrom"`
	Reference    string          `gorm:"type:varchar(100)" json:"reference,omitempty"`
	Description  string          `gorm:"type:varchar(200)" json:"description,omitempty"`
	ProjectID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"projectId"`
	CompanyID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"companyId"`
	Project      *Project        `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Company      *Company        `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// PaymentMutationPolicy is the role table for payment mutations
var PaymentMutationPolicy = shared.MutationPolicy{
	Update: []shared.Role{shared.RoleAdmin, shared.RoleAccountant},
	Delete: []shared.Role{shared.RoleAdmin, shared.RoleAccountant},
}

// NewPayment creates a payment against the given project
func NewPayment(createdBy uuid.UUID, project *Project, code string, date time.Time, amount decimal.Decimal, receivedFrom string) (*Payment, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("VALIDATION", "Payment code is required")
	}
	receivedFrom = strings.TrimSpace(receivedFrom)
	if receivedFrom == "" {
		return nil, shared.NewDomainError("VALIDATION", "Received from is required")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Payment{
		BaseEntity:   shared.NewBaseEntity(createdBy),
		Code:         code,
		Date:         date,
		Amount:       amount,
		ReceivedFrom: receivedFrom,
		ProjectID:    project.ID,
		CompanyID:    project.CompanyID,
	}, nil
}

// SetAmount replaces the payment amount
func (p *Payment) SetAmount(amount decimal.Decimal) {
	p.Amount = amount
	p.UpdatedAt = time.Now()
}

// Describe replaces the payment description
func (p *Payment) Describe(description string) error {
	if len(description) > 200 {
		return shared.NewDomainError("VALIDATION", "Description cannot be more than 200 characters")
	}
	p.Description = description
	p.UpdatedAt = time.Now()
	return nil
}

// SetDate moves the payment to another booking date
func (p *Payment) SetDate(date time.Time) error {
	if date.IsZero() {
		return shared.NewDomainError("VALIDATION", "Date is required")
	}
	p.Date = date
	p.UpdatedAt = time.Now()
	return nil
}

// SetReference replaces the external reference
func (p *Payment) SetReference(reference string) {
	p.Reference = strings.TrimSpace(reference)
	p.UpdatedAt = time.Now()
}

// SetReceivedFrom changes the payer name
func (p *Payment) SetReceivedFrom(receivedFrom string) error {
	receivedFrom = strings.TrimSpace(receivedFrom)
	if receivedFrom == "" {
		return shared.NewDomainError("VALIDATION", "Received from is required")
	}
	p.ReceivedFrom = receivedFrom
	p.UpdatedAt = time.Now()
	return nil
}
