package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siteledger/backend/internal/domain/shared"
)

// Manpower is a labour record booked against a project. TotalPayable is
// always the product of the current HoursWorked and WageRate; it is
// recomputed on every write and never accepted from callers.
type Manpower struct {
	shared.BaseEntity
	Name         string          `gorm:"type:varchar(100);not null" json:"name"`
	Role         string          `gorm:"type:varchar(100);not null" json:"role"`
	HoursWorked  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"hoursWorked"`
	WageRate     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"wageRate"`
	TotalPayable decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"totalPayable"`
	StartDate    time.Time       `gorm:"not null" json:"startDate"`
	EndDate      *time.Time      `json:"endDate,omitempty"`
	ProjectID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"projectId"`
	CompanyID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"companyId"`
	Project      *Project        `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Company      *Company        `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// TableName returns the table name for GORM
func (Manpower) TableName() string {
	return "manpower"
}

// ManpowerMutationPolicy is the role table for manpower mutations
var ManpowerMutationPolicy = shared.MutationPolicy{
	Update: []shared.Role{shared.RoleAdmin, shared.RoleManager},
	Delete: []shared.Role{shared.RoleAdmin, shared.RoleManager},
}

// NewManpower creates a manpower record against the given project
func NewManpower(createdBy uuid.UUID, project *Project, name, role string, hoursWorked, wageRate decimal.Decimal, startDate time.Time) (*Manpower, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION", "Name is required")
	}
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, shared.NewDomainError("VALIDATION", "Role is required")
	}
	if hoursWorked.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION", "Hours worked cannot be negative")
	}
	if wageRate.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION", "Wage rate cannot be negative")
	}
	if startDate.IsZero() {
		return nil, shared.NewDomainError("VALIDATION", "Start date is required")
	}

	m := &Manpower{
		BaseEntity:  shared.NewBaseEntity(createdBy),
		Name:        name,
		Role:        role,
		HoursWorked: hoursWorked,
		WageRate:    wageRate,
		StartDate:   startDate,
		ProjectID:   project.ID,
		CompanyID:   project.CompanyID,
	}
	m.recompute()
	return m, nil
}

// Rename changes the worker name
func (m *Manpower) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("VALIDATION", "Name is required")
	}
	m.Name = name
	m.UpdatedAt = time.Now()
	return nil
}

// SetRole changes the worker's role on the project
func (m *Manpower) SetRole(role string) error {
	role = strings.TrimSpace(role)
	if role == "" {
		return shared.NewDomainError("VALIDATION", "Role is required")
	}
	m.Role = role
	m.UpdatedAt = time.Now()
	return nil
}

// SetHours replaces the hours worked and recomputes the payable total
func (m *Manpower) SetHours(hoursWorked decimal.Decimal) error {
	if hoursWorked.IsNegative() {
		return shared.NewDomainError("VALIDATION", "Hours worked cannot be negative")
	}
	m.HoursWorked = hoursWorked
	m.recompute()
	m.UpdatedAt = time.Now()
	return nil
}

// SetWageRate replaces the wage rate and recomputes the payable total
func (m *Manpower) SetWageRate(wageRate decimal.Decimal) error {
	if wageRate.IsNegative() {
		return shared.NewDomainError("VALIDATION", "Wage rate cannot be negative")
	}
	m.WageRate = wageRate
	m.recompute()
	m.UpdatedAt = time.Now()
	return nil
}

// SetSchedule updates the worked date range
func (m *Manpower) SetSchedule(startDate time.Time, endDate *time.Time) error {
	if startDate.IsZero() {
		return shared.NewDomainError("VALIDATION", "Start date is required")
	}
	if endDate != nil && endDate.Before(startDate) {
		return shared.NewDomainError("VALIDATION", "End date cannot precede start date")
	}
	m.StartDate = startDate
	m.EndDate = endDate
	m.UpdatedAt = time.Now()
	return nil
}

// recompute keeps the payable total consistent with its inputs. The pair is
// always read from the record itself, so a partial update that touched only
// one input still multiplies against the stored other half.
func (m *Manpower) recompute() {
	m.TotalPayable = m.HoursWorked.Mul(m.WageRate)
}
