package persistence

import (
	"github.com/siteledger/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// The descriptors below are the only entity-specific knowledge the stores
// carry: which request fields map to which columns, the default ordering,
// and which relations each resource expands by default.

var companyDescriptor = Descriptor{
	Columns: map[string]string{
		"name":               "name",
		"registrationNumber": "registration_number",
		"city":               "address_city",
		"country":            "address_country",
		"createdBy":          "created_by",
		"createdAt":          "created_at",
		"updatedAt":          "updated_at",
	},
	DefaultSort: "created_at",
	CodeColumn:  "registration_number",
	Expansions: map[string]Expansion{
		"projects": {Association: "Projects"},
	},
	GetExpand: []string{"projects"},
	Required:  []string{"id", "created_by", "created_at"},
}

var projectDescriptor = Descriptor{
	Columns: map[string]string{
		"code":      "code",
		"name":      "name",
		"status":    "status",
		"startDate": "start_date",
		"endDate":   "end_date",
		"company":   "company_id",
		"companyId": "company_id",
		"createdBy": "created_by",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	},
	DefaultSort: "created_at",
	CodeColumn:  "code",
	Expansions: map[string]Expansion{
		"company":  {Association: "Company", Columns: []string{"id", "name", "registration_number"}},
		"expenses": {Association: "Expenses"},
		"payments": {Association: "Payments"},
		"manpower": {Association: "Manpower"},
	},
	ListExpand: []string{"company"},
	GetExpand:  []string{"company", "expenses", "payments", "manpower"},
	Required:   []string{"id", "company_id", "created_by", "created_at"},
}

var expenseDescriptor = Descriptor{
	Columns: map[string]string{
		"code":      "code",
		"date":      "date",
		"amount":    "amount",
		"category":  "category",
		"reference": "reference",
		"project":   "project_id",
		"projectId": "project_id",
		"company":   "company_id",
		"companyId": "company_id",
		"createdBy": "created_by",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	},
	DefaultSort: "date",
	CodeColumn:  "code",
	Expansions: map[string]Expansion{
		"project": {Association: "Project", Columns: []string{"id", "name", "code"}},
		"company": {Association: "Company", Columns: []string{"id", "name"}},
	},
	ListExpand: []string{"project", "company"},
	GetExpand:  []string{"project", "company"},
	Required:   []string{"id", "project_id", "company_id", "created_by", "created_at"},
}

var paymentDescriptor = Descriptor{
	Columns: map[string]string{
		"code":         "code",
		"date":         "date",
		"amount":       "amount",
		"receivedFrom": "received_from",
		"reference":    "reference",
		"project":      "project_id",
		"projectId":    "project_id",
		"company":      "company_id",
		"companyId":    "company_id",
		"createdBy":    "created_by",
		"createdAt":    "created_at",
		"updatedAt":    "updated_at",
	},
	DefaultSort: "date",
	CodeColumn:  "code",
	Expansions: map[string]Expansion{
		"project": {Association: "Project", Columns: []string{"id", "name", "code"}},
		"company": {Association: "Company", Columns: []string{"id", "name"}},
	},
	ListExpand: []string{"project", "company"},
	GetExpand:  []string{"project", "company"},
	Required:   []string{"id", "project_id", "company_id", "created_by", "created_at"},
}

var manpowerDescriptor = Descriptor{
	Columns: map[string]string{
		"name":        "name",
		"role":        "role",
		"hoursWorked": "hours_worked",
		"wageRate":    "wage_rate",
		"startDate":   "start_date",
		"endDate":     "end_date",
		"project":     "project_id",
		"projectId":   "project_id",
		"company":     "company_id",
		"companyId":   "company_id",
		"createdBy":   "created_by",
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
	},
	DefaultSort: "created_at",
	Expansions: map[string]Expansion{
		"project": {Association: "Project", Columns: []string{"id", "name", "code"}},
		"company": {Association: "Company", Columns: []string{"id", "name"}},
	},
	ListExpand: []string{"project", "company"},
	GetExpand:  []string{"project", "company"},
	Required:   []string{"id", "project_id", "company_id", "created_by", "created_at"},
}

// NewCompanyRepository creates a company store
func NewCompanyRepository(db *gorm.DB) *Store[ledger.Company] {
	return NewStore[ledger.Company](db, companyDescriptor)
}

// NewProjectRepository creates a project store
func NewProjectRepository(db *gorm.DB) *Store[ledger.Project] {
	return NewStore[ledger.Project](db, projectDescriptor)
}

// NewExpenseRepository creates an expense store
func NewExpenseRepository(db *gorm.DB) *Store[ledger.Expense] {
	return NewStore[ledger.Expense](db, expenseDescriptor)
}

// NewPaymentRepository creates a payment store
func NewPaymentRepository(db *gorm.DB) *Store[ledger.Payment] {
	return NewStore[ledger.Payment](db, paymentDescriptor)
}

// NewManpowerRepository creates a manpower store
func NewManpowerRepository(db *gorm.DB) *Store[ledger.Manpower] {
	return NewStore[ledger.Manpower](db, manpowerDescriptor)
}
