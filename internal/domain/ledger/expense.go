package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siteledger/backend/internal/domain/shared"
)

// ExpenseCategory represents the category of an expense
type ExpenseCategory string

const (
	ExpenseCategoryOffice    ExpenseCategory = "office"
	ExpenseCategoryTravel    ExpenseCategory = "travel"
	ExpenseCategorySupplies  ExpenseCategory = "supplies"
	ExpenseCategoryEquipment ExpenseCategory = "equipment"
	ExpenseCategorySalary    ExpenseCategory = "salary"
	ExpenseCategoryMisc      ExpenseCategory = "misc"
)

// IsValid checks if the category is a valid ExpenseCategory
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryOffice, ExpenseCategoryTravel, ExpenseCategorySupplies,
		ExpenseCategoryEquipment, ExpenseCategorySalary, ExpenseCategoryMisc:
		return true
	}
	return false
}

// String returns the string representation of ExpenseCategory
func (c ExpenseCategory) String() string {
	return string(c)
}

// Expense is a cost booked against a project. The company reference is copied
// from the owning project at creation and never written by callers.
type Expense struct {
	shared.BaseEntity
	Code        string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(200);not null" json:"description"`
	Category    ExpenseCategory `gorm:"type:varchar(20);not null;default:'misc'" json:"category"`
	Reference   string          `gorm:"type:varchar(100)" json:"reference,omitempty"`
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"projectId"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"companyId"`
	Project     *Project        `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Company     *Company        `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// ExpenseMutationPolicy is the role table for expense mutations
var ExpenseMutationPolicy = shared.MutationPolicy{
	Update: []shared.Role{shared.RoleAdmin, shared.RoleAccountant},
	Delete: []shared.Role{shared.RoleAdmin, shared.RoleAccountant},
}

// NewExpense creates an expense against the given project. The company
// reference must be the project's owning company.
func NewExpense(createdBy uuid.UUID, project *Project, code string, date time.Time, amount decimal.Decimal, description string, category ExpenseCategory) (*Expense, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("VALIDATION", "Expense code is required")
	}
	if err := validateExpenseDescription(description); err != nil {
		return nil, err
	}
	if category == "" {
		category = ExpenseCategoryMisc
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("VALIDATION", "Category must be one of: office, travel, supplies, equipment, salary, misc")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Expense{
		BaseEntity:  shared.NewBaseEntity(createdBy),
		Code:        code,
		Date:        date,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Category:    category,
		ProjectID:   project.ID,
		CompanyID:   project.CompanyID,
	}, nil
}

// SetAmount replaces the expense amount
func (e *Expense) SetAmount(amount decimal.Decimal) {
	e.Amount = amount
	e.UpdatedAt = time.Now()
}

// Describe replaces the expense description
func (e *Expense) Describe(description string) error {
	if err := validateExpenseDescription(description); err != nil {
		return err
	}
	e.Description = strings.TrimSpace(description)
	e.UpdatedAt = time.Now()
	return nil
}

// SetDate moves the expense to another booking date
func (e *Expense) SetDate(date time.Time) error {
	if date.IsZero() {
		return shared.NewDomainError("VALIDATION", "Date is required")
	}
	e.Date = date
	e.UpdatedAt = time.Now()
	return nil
}

// SetReference replaces the external reference
func (e *Expense) SetReference(reference string) {
	e.Reference = strings.TrimSpace(reference)
	e.UpdatedAt = time.Now()
}

// SetCategory changes the expense category
func (e *Expense) SetCategory(category ExpenseCategory) error {
	if !category.IsValid() {
		return shared.NewDomainError("VALIDATION", "Category must be one of: office, travel, supplies, equipment, salary, misc")
	}
	e.Category = category
	e.UpdatedAt = time.Now()
	return nil
}

func validateExpenseDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return shared.NewDomainError("VALIDATION", "Description is required")
	}
	if len(description) > 200 {
		return shared.NewDomainError("VALIDATION", "Description cannot be more than 200 characters")
	}
	return nil
}
