package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/siteledger/backend/internal/domain/ledger"
	"github.com/siteledger/backend/internal/domain/shared"
)

// CompanyService handles company operations
type CompanyService struct {
	companies shared.ResourceRepository[ledger.Company]
	cascade   ledger.CascadeCoordinator
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(
	companies shared.ResourceRepository[ledger.Company],
	cascade ledger.CascadeCoordinator,
) *CompanyService {
	return &CompanyService{companies: companies, cascade: cascade}
}

// List returns one page of companies matching the query
func (s *CompanyService) List(ctx context.Context, spec shared.QuerySpec) (shared.Page[ledger.Company], error) {
	return s.companies.List(ctx, spec)
}

// Get returns a company with its projects expanded
func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*ledger.Company, error) {
	return s.companies.Get(ctx, id)
}

// Create registers a new company. The registration number must be unique.
func (s *CompanyService) Create(ctx context.Context, actor Actor, input CreateCompanyInput) (*ledger.Company, error) {
	exists, err := s.companies.ExistsByCode(ctx, input.RegistrationNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrAlreadyExists
	}

	company, err := ledger.NewCompany(actor.ID, input.Name, input.RegistrationNumber)
	if err != nil {
		return nil, err
	}
	if input.Address != nil {
		company.SetAddress(*input.Address)
	}
	if input.Contact != nil {
		company.SetContact(*input.Contact)
	}

	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Update applies a partial update. Permitted for admins, managers, and the
// record's creator.
func (s *CompanyService) Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateCompanyInput) (*ledger.Company, error) {
	company, err := s.companies.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !shared.CanMutate(actor.ID, actor.Role, company.CreatedBy, ledger.CompanyMutationPolicy.Update) {
		return nil, shared.ErrUnauthorized
	}

	if input.Name != nil {
		if err := company.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Address != nil {
		company.SetAddress(*input.Address)
	}
	if input.Contact != nil {
		company.SetContact(*input.Contact)
	}

	if err := s.companies.Save(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete removes the company and cascades to all its projects and their
// records. Admin only, unless the actor created the company.
func (s *CompanyService) Delete(ctx context.Context, actor Actor, id uuid.UUID) (ledger.CascadeResult, error) {
	company, err := s.companies.Find(ctx, id)
	if err != nil {
		return ledger.CascadeResult{}, err
	}
	if !shared.CanMutate(actor.ID, actor.Role, company.CreatedBy, ledger.CompanyMutationPolicy.Delete) {
		return ledger.CascadeResult{}, shared.ErrUnauthorized
	}

	return s.cascade.DeleteCompany(ctx, id)
}
