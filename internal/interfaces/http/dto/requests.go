package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/backend/internal/domain/ledger"
)

// CreateCompanyRequest is the payload for registering a company
type CreateCompanyRequest struct {
	Name               string          `json:"name" binding:"required,max=100"`
	RegistrationNumber string          `json:"registrationNumber" binding:"required,max=50"`
	Address            *ledger.Address `json:"address"`
	Contact            *ledger.Contact `json:"contact"`
}

// UpdateCompanyRequest is the partial update payload for a company.
// Absent fields are left unchanged.
type UpdateCompanyRequest struct {
	Name    *string         `json:"name" binding:"omitempty,max=100"`
	Address *ledger.Address `json:"address"`
	Contact *ledger.Contact `json:"contact"`
}

// CreateProjectRequest is the payload for registering a project
type CreateProjectRequest struct {
	CompanyID   string     `json:"companyId" binding:"required,uuid"`
	Code        string     `json:"code" binding:"required,max=50"`
	Name        string     `json:"name" binding:"required,max=100"`
	Description string     `json:"description" binding:"omitempty,max=500"`
	Status      string     `json:"status" binding:"omitempty,oneof=active pending completed"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate"`
}

// UpdateProjectRequest is the partial update payload for a project. The
// owning company and the code cannot be changed.
type UpdateProjectRequest struct {
	Name        *string    `json:"name" binding:"omitempty,max=100"`
	Description *string    `json:"description" binding:"omitempty,max=500"`
	Status      *string    `json:"status" binding:"omitempty,oneof=active pending completed"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// CreateExpenseRequest is the payload for booking an expense
type CreateExpenseRequest struct {
	ProjectID   string          `json:"projectId" binding:"required,uuid"`
	Code        string          `json:"code" binding:"required,max=50"`
	Date        *time.Time      `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required,max=200"`
	Category    string          `json:"category" binding:"omitempty,oneof=office travel supplies equipment salary misc"`
	Reference   string          `json:"reference" binding:"omitempty,max=100"`
}

// UpdateExpenseRequest is the partial update payload for an expense. The
// owning project and company references cannot be changed.
type UpdateExpenseRequest struct {
	Date        *time.Time       `json:"date"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" binding:"omitempty,max=200"`
	Category    *string          `json:"category" binding:"omitempty,oneof=office travel supplies equipment salary misc"`
	Reference   *string          `json:"reference" binding:"omitempty,max=100"`
}

// CreatePaymentRequest is the payload for booking a payment
type CreatePaymentRequest struct {
	ProjectID    string          `json:"projectId" binding:"required,uuid"`
	Code         string          `json:"code" binding:"required,max=50"`
	Date         *time.Time      `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	ReceivedFrom string          `json:"receivedFrom" binding:"required,max=200"`
	Description  string          `json:"description" binding:"omitempty,max=200"`
	Reference    string          `json:"reference" binding:"omitempty,max=100"`
}

// UpdatePaymentRequest is the partial update payload for a payment
type UpdatePaymentRequest struct {
	Date         *time.Time       `json:"date"`
	Amount       *decimal.Decimal `json:"amount"`
	ReceivedFrom *string          `json:"receivedFrom" binding:"omitempty,max=200"`
	Description  *string          `json:"description" binding:"omitempty,max=200"`
	Reference    *string          `json:"reference" binding:"omitempty,max=100"`
}

// CreateManpowerRequest is the payload for booking a manpower record
type CreateManpowerRequest struct {
	ProjectID   string          `json:"projectId" binding:"required,uuid"`
	Name        string          `json:"name" binding:"required,max=100"`
	Role        string          `json:"role" binding:"required,max=100"`
	HoursWorked decimal.Decimal `json:"hoursWorked"`
	WageRate    decimal.Decimal `json:"wageRate"`
	StartDate   time.Time       `json:"startDate" binding:"required"`
	EndDate     *time.Time      `json:"endDate"`
}

// UpdateManpowerRequest is the partial update payload for a manpower record.
// totalPayable is never accepted; it is always recomputed.
type UpdateManpowerRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=100"`
	Role        *string          `json:"role" binding:"omitempty,max=100"`
	HoursWorked *decimal.Decimal `json:"hoursWorked"`
	WageRate    *decimal.Decimal `json:"wageRate"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
}
