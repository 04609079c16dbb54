package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/siteledger/backend/internal/domain/shared"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusPending   ProjectStatus = "pending"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// IsValid checks if the status is a valid ProjectStatus
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusPending, ProjectStatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of ProjectStatus
func (s ProjectStatus) String() string {
	return string(s)
}

// Project belongs to a company and owns the expenses, payments and manpower
// records booked against it.
type Project struct {
	shared.BaseEntity
	Code        string        `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Name        string        `gorm:"type:varchar(100);not null" json:"name"`
	Description string        `gorm:"type:varchar(500)" json:"description,omitempty"`
	StartDate   time.Time     `gorm:"not null" json:"startDate"`
	EndDate     *time.Time    `json:"endDate,omitempty"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CompanyID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"companyId"`
	Company     *Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Expenses    []Expense     `gorm:"foreignKey:ProjectID" json:"expenses,omitempty"`
	Payments    []Payment     `gorm:"foreignKey:ProjectID" json:"payments,omitempty"`
	Manpower    []Manpower    `gorm:"foreignKey:ProjectID" json:"manpower,omitempty"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// ProjectMutationPolicy is the role table for project mutations
var ProjectMutationPolicy = shared.MutationPolicy{
	Update: []shared.Role{shared.RoleAdmin, shared.RoleManager},
	Delete: []shared.Role{shared.RoleAdmin},
}

// NewProject creates a project owned by the given company
func NewProject(createdBy, companyID uuid.UUID, code, name string, startDate time.Time) (*Project, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("VALIDATION", "Project code is required")
	}
	if err := validateProjectName(name); err != nil {
		return nil, err
	}
	if startDate.IsZero() {
		return nil, shared.NewDomainError("VALIDATION", "Start date is required")
	}
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION", "Company reference is required")
	}

	return &Project{
		BaseEntity: shared.NewBaseEntity(createdBy),
		Code:       code,
		Name:       strings.TrimSpace(name),
		StartDate:  startDate,
		Status:     ProjectStatusPending,
		CompanyID:  companyID,
	}, nil
}

// Rename changes the project name
func (p *Project) Rename(name string) error {
	if err := validateProjectName(name); err != nil {
		return err
	}
	p.Name = strings.TrimSpace(name)
	p.UpdatedAt = time.Now()
	return nil
}

// Describe replaces the project description
func (p *Project) Describe(description string) error {
	if len(description) > 500 {
		return shared.NewDomainError("VALIDATION", "Description cannot be more than 500 characters")
	}
	p.Description = description
	p.UpdatedAt = time.Now()
	return nil
}

// SetStatus transitions the project to the given status
func (p *Project) SetStatus(status ProjectStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("VALIDATION", "Status must be one of: active, pending, completed")
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	return nil
}

// SetSchedule updates the project's date range. The end date, when present,
// must not precede the start date.
func (p *Project) SetSchedule(startDate time.Time, endDate *time.Time) error {
	if startDate.IsZero() {
		return shared.NewDomainError("VALIDATION", "Start date is required")
	}
	if endDate != nil && endDate.Before(startDate) {
		return shared.NewDomainError("VALIDATION", "End date cannot precede start date")
	}
	p.StartDate = startDate
	p.EndDate = endDate
	p.UpdatedAt = time.Now()
	return nil
}

func validateProjectName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("VALIDATION", "Project name is required")
	}
	if len(name) > 100 {
		return shared.NewDomainError("VALIDATION", "Project name cannot be more than 100 characters")
	}
	return nil
}
