package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siteledger/backend/internal/domain/ledger"
	"github.com/siteledger/backend/internal/domain/shared"
)

// Actor is the authenticated caller on whose behalf an operation runs
type Actor struct {
	ID   uuid.UUID
	Role shared.Role
}

// CreateCompanyInput contains input for creating a company
type CreateCompanyInput struct {
	Name               string
	RegistrationNumber string
	Address            *ledger.Address
	Contact            *ledger.Contact
}

// UpdateCompanyInput contains the partial update for a company. Nil fields
// are left unchanged.
type UpdateCompanyInput struct {
	Name    *string
	Address *ledger.Address
	Contact *ledger.Contact
}

// CreateProjectInput contains input for creating a project
type CreateProjectInput struct {
	CompanyID   uuid.UUID
	Code        string
	Name        string
	Description string
	Status      string
	StartDate   time.Time
	EndDate     *time.Time
}

// UpdateProjectInput contains the partial update for a project. The owning
// company and the project code are immutable.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *string
	StartDate   *time.Time
	EndDate     *time.Time
}

// CreateExpenseInput contains input for creating an expense
type CreateExpenseInput struct {
	ProjectID   uuid.UUID
	Code        string
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Category    string
	Reference   string
}

// UpdateExpenseInput contains the partial update for an expense. The owning
// project and company references and the code are immutable.
type UpdateExpenseInput struct {
	Date        *time.Time
	Amount      *decimal.Decimal
	Description *string
	Category    *string
	Reference   *string
}

// CreatePaymentInput contains input for creating a payment
type CreatePaymentInput struct {
	ProjectID    uuid.UUID
	Code         string
	Date         time.Time
	Amount       decimal.Decimal
	ReceivedFrom string
	Description  string
	Reference    string
}

// UpdatePaymentInput contains the partial update for a payment
type UpdatePaymentInput struct {
	Date         *time.Time
	Amount       *decimal.Decimal
	ReceivedFrom *string
	Description  *string
	Reference    *string
}

// CreateManpowerInput contains input for creating a manpower record
type CreateManpowerInput struct {
	ProjectID   uuid.UUID
	Name        string
	Role        string
	HoursWorked decimal.Decimal
	WageRate    decimal.Decimal
	StartDate   time.Time
	EndDate     *time.Time
}

// UpdateManpowerInput contains the partial update for a manpower record.
// TotalPayable is never accepted; it is recomputed from the merged pair.
type UpdateManpowerInput struct {
	Name        *string
	Role        *string
	HoursWorked *decimal.Decimal
	WageRate    *decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
}
