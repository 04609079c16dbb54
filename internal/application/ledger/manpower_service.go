package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/siteledger/backend/internal/domain/ledger"
	"github.com/siteledger/backend/internal/domain/shared"
)

// ManpowerService handles manpower operations
type ManpowerService struct {
	manpower shared.ResourceRepository[ledger.Manpower]
	projects shared.ResourceRepository[ledger.Project]
}

// NewManpowerService creates a new ManpowerService
func NewManpowerService(
	manpower shared.ResourceRepository[ledger.Manpower],
	projects shared.ResourceRepository[ledger.Project],
) *ManpowerService {
	return &ManpowerService{manpower: manpower, projects: projects}
}

// List returns one page of manpower records matching the query
func (s *ManpowerService) List(ctx context.Context, spec shared.QuerySpec) (shared.Page[ledger.Manpower], error) {
	return s.manpower.List(ctx, spec)
}

// ListForProject returns one page of the project's manpower records
func (s *ManpowerService) ListForProject(ctx context.Context, projectID uuid.UUID, spec shared.QuerySpec) (shared.Page[ledger.Manpower], error) {
	spec.Filters = append(spec.Filters, shared.FilterClause{
		Field: "projectId", Op: shared.OpEq, Values: []string{projectID.String()},
	})
	return s.manpower.List(ctx, spec)
}

// ListForCompany returns one page of the company's manpower records
func (s *ManpowerService) ListForCompany(ctx context.Context, companyID uuid.UUID, spec shared.QuerySpec) (shared.Page[ledger.Manpower], error) {
	spec.Filters = append(spec.Filters, shared.FilterClause{
		Field: "companyId", Op: shared.OpEq, Values: []string{companyID.String()},
	})
	return s.manpower.List(ctx, spec)
}

// Get returns a manpower record with its project and company expanded
func (s *ManpowerService) Get(ctx context.Context, id uuid.UUID) (*ledger.Manpower, error) {
	return s.manpower.Get(ctx, id)
}

// Create books a manpower record against an existing project
func (s *ManpowerService) Create(ctx context.Context, actor Actor, input CreateManpowerInput) (*ledger.Manpower, error) {
	project, err := s.projects.Find(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	worker, err := ledger.NewManpower(actor.ID, project, input.Name, input.Role,
		input.HoursWorked, input.WageRate, input.StartDate)
	if err != nil {
		return nil, err
	}
	if input.EndDate != nil {
		if err := worker.SetSchedule(input.StartDate, input.EndDate); err != nil {
			return nil, err
		}
	}

	if err := s.manpower.Create(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

// Update applies a partial update. Permitted for admins, managers, and the
// record's creator. Updating hours or wage rate recomputes the payable total
// against the stored other half.
func (s *ManpowerService) Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateManpowerInput) (*ledger.Manpower, error) {
	worker, err := s.manpower.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !shared.CanMutate(actor.ID, actor.Role, worker.CreatedBy, ledger.ManpowerMutationPolicy.Update) {
		return nil, shared.ErrUnauthorized
	}

	if input.Name != nil {
		if err := worker.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Role != nil {
		if err := worker.SetRole(*input.Role); err != nil {
			return nil, err
		}
	}
	if input.HoursWorked != nil {
		if err := worker.SetHours(*input.HoursWorked); err != nil {
			return nil, err
		}
	}
	if input.WageRate != nil {
		if err := worker.SetWageRate(*input.WageRate); err != nil {
			return nil, err
		}
	}
	if input.StartDate != nil || input.EndDate != nil {
		start := worker.StartDate
		if input.StartDate != nil {
			start = *input.StartDate
		}
		end := worker.EndDate
		if input.EndDate != nil {
			end = input.EndDate
		}
		if err := worker.SetSchedule(start, end); err != nil {
			return nil, err
		}
	}

	if err := s.manpower.Save(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

// Delete removes the manpower record. Permitted for admins, managers, and
// the record's creator.
func (s *ManpowerService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	worker, err := s.manpower.Find(ctx, id)
	if err != nil {
		return err
	}
	if !shared.CanMutate(actor.ID, actor.Role, worker.CreatedBy, ledger.ManpowerMutationPolicy.Delete) {
		return shared.ErrUnauthorized
	}
	return s.manpower.Delete(ctx, id)
}
