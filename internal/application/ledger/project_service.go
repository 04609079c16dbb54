package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/siteledger/backend/internal/domain/ledger"
	"github.com/siteledger/backend/internal/domain/shared"
)

// ProjectService handles project operations
type ProjectService struct {
	projects  shared.ResourceRepository[ledger.Project]
	companies shared.ResourceRepository[ledger.Company]
	cascade   ledger.CascadeCoordinator
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projects shared.ResourceRepository[ledger.Project],
	companies shared.ResourceRepository[ledger.Company],
	cascade ledger.CascadeCoordinator,
) *ProjectService {
	return &ProjectService{projects: projects, companies: companies, cascade: cascade}
}

// List returns one page of projects matching the query
func (s *ProjectService) List(ctx context.Context, spec shared.QuerySpec) (shared.Page[ledger.Project], error) {
	return s.projects.List(ctx, spec)
}

// ListForCompany returns one page of the company's projects
func (s *ProjectService) ListForCompany(ctx context.Context, companyID uuid.UUID, spec shared.QuerySpec) (shared.Page[ledger.Project], error) {
	spec.Filters = append(spec.Filters, shared.FilterClause{
		Field: "companyId", Op: shared.OpEq, Values: []string{companyID.String()},
	})
	return s.projects.List(ctx, spec)
}

// Get returns a project with company, expenses, payments and manpower expanded
func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*ledger.Project, error) {
	return s.projects.Get(ctx, id)
}

// Create registers a new project under an existing company
func (s *ProjectService) Create(ctx context.Context, actor Actor, input CreateProjectInput) (*ledger.Project, error) {
	if _, err := s.companies.Find(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	exists, err := s.projects.ExistsByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrAlreadyExists
	}

	project, err := ledger.NewProject(actor.ID, input.CompanyID, input.Code, input.Name, input.StartDate)
	if err != nil {
		return nil, err
	}
	if input.Description != "" {
		if err := project.Describe(input.Description); err != nil {
			return nil, err
		}
	}
	if input.Status != "" {
		if err := project.SetStatus(ledger.ProjectStatus(input.Status)); err != nil {
			return nil, err
		}
	}
	if input.EndDate != nil {
		if err := project.SetSchedule(input.StartDate, input.EndDate); err != nil {
			return nil, err
		}
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update applies a partial update. The owning company never changes; moving
// a project between companies is not supported.
func (s *ProjectService) Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateProjectInput) (*ledger.Project, error) {
	project, err := s.projects.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !shared.CanMutate(actor.ID, actor.Role, project.CreatedBy, ledger.ProjectMutationPolicy.Update) {
		return nil, shared.ErrUnauthorized
	}

	if input.Name != nil {
		if err := project.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := project.Describe(*input.Description); err != nil {
			return nil, err
		}
	}
	if input.Status != nil {
		if err := project.SetStatus(ledger.ProjectStatus(*input.Status)); err != nil {
			return nil, err
		}
	}
	if input.StartDate != nil || input.EndDate != nil {
		// merge against the stored schedule so a lone end date still
		// validates against the current start
		start := project.StartDate
		if input.StartDate != nil {
			start = *input.StartDate
		}
		end := project.EndDate
		if input.EndDate != nil {
			end = input.EndDate
		}
		if err := project.SetSchedule(start, end); err != nil {
			return nil, err
		}
	}

	if err := s.projects.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes the project and cascades to its expenses, payments and
// manpower. Admin only, unless the actor created the project.
func (s *ProjectService) Delete(ctx context.Context, actor Actor, id uuid.UUID) (ledger.CascadeResult, error) {
	project, err := s.projects.Find(ctx, id)
	if err != nil {
		return ledger.CascadeResult{}, err
	}
	if !shared.CanMutate(actor.ID, actor.Role, project.CreatedBy, ledger.ProjectMutationPolicy.Delete) {
		return ledger.CascadeResult{}, shared.ErrUnauthorized
	}

	return s.cascade.DeleteProject(ctx, id)
}
