package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/siteledger/backend/internal/domain/ledger"
	"github.com/siteledger/backend/internal/domain/shared"
)

// ExpenseService handles expense operations
type ExpenseService struct {
	expenses shared.ResourceRepository[ledger.Expense]
	projects shared.ResourceRepository[ledger.Project]
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(
	expenses shared.ResourceRepository[ledger.Expense],
	projects shared.ResourceRepository[ledger.Project],
) *ExpenseService {
	return &ExpenseService{expenses: expenses, projects: projects}
}

// List returns one page of expenses matching the query
func (s *ExpenseService) List(ctx context.Context, spec shared.QuerySpec) (shared.Page[ledger.Expense], error) {
	return s.expenses.List(ctx, spec)
}

// ListForProject returns one page of the project's expenses
func (s *ExpenseService) ListForProject(ctx context.Context, projectID uuid.UUID, spec shared.QuerySpec) (shared.Page[ledger.Expense], error) {
	spec.Filters = append(spec.Filters, shared.FilterClause{
		Field: "projectId", Op: shared.OpEq, Values: []string{projectID.String()},
	})
	return s.expenses.List(ctx, spec)
}

// ListForCompany returns one page of the company's expenses across all projects
func (s *ExpenseService) ListForCompany(ctx context.Context, companyID uuid.UUID, spec shared.QuerySpec) (shared.Page[ledger.Expense], error) {
	spec.Filters = append(spec.Filters, shared.FilterClause{
		Field: "companyId", Op: shared.OpEq, Values: []string{companyID.String()},
	})
	return s.expenses.List(ctx, spec)
}

// Get returns an expense with its project and company expanded
func (s *ExpenseService) Get(ctx context.Context, id uuid.UUID) (*ledger.Expense, error) {
	return s.expenses.Get(ctx, id)
}

// Create books an expense against an existing project. The company reference
// is derived from the project, never from the caller.
func (s *ExpenseService) Create(ctx context.Context, actor Actor, input CreateExpenseInput) (*ledger.Expense, error) {
	project, err := s.projects.Find(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	exists, err := s.expenses.ExistsByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrAlreadyExists
	}

	expense, err := ledger.NewExpense(actor.ID, project, input.Code, input.Date, input.Amount,
		input.Description, ledger.ExpenseCategory(input.Category))
	if err != nil {
		return nil, err
	}
	if input.Reference != "" {
		expense.SetReference(input.Reference)
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Update applies a partial update. Permitted for admins, accountants, and
// the record's creator. Project and company references never change.
func (s *ExpenseService) Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateExpenseInput) (*ledger.Expense, error) {
	expense, err := s.expenses.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !shared.CanMutate(actor.ID, actor.Role, expense.CreatedBy, ledger.ExpenseMutationPolicy.Update) {
		return nil, shared.ErrUnauthorized
	}

	if input.Date != nil {
		if err := expense.SetDate(*input.Date); err != nil {
			return nil, err
		}
	}
	if input.Amount != nil {
		expense.SetAmount(*input.Amount)
	}
	if input.Description != nil {
		if err := expense.Describe(*input.Description); err != nil {
			return nil, err
		}
	}
	if input.Category != nil {
		if err := expense.SetCategory(ledger.ExpenseCategory(*input.Category)); err != nil {
			return nil, err
		}
	}
	if input.Reference != nil {
		expense.SetReference(*input.Reference)
	}

	if err := s.expenses.Save(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete removes the expense. Permitted for admins, accountants, and the
// record's creator.
func (s *ExpenseService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	expense, err := s.expenses.Find(ctx, id)
	if err != nil {
		return err
	}
	if !shared.CanMutate(actor.ID, actor.Role, expense.CreatedBy, ledger.ExpenseMutationPolicy.Delete) {
		return shared.ErrUnauthorized
	}
	return s.expenses.Delete(ctx, id)
}
