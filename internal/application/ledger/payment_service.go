package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/siteledger/backend/internal/domain/ledger"
	"github.com/siteledger/backend/internal/domain/shared"
)

// PaymentService handles payment operations
type PaymentService struct {
	payments shared.ResourceRepository[ledger.Payment]
	projects shared.ResourceRepository[ledger.Project]
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	payments shared.ResourceRepository[ledger.Payment],
	projects shared.ResourceRepository[ledger.Project],
) *PaymentService {
	return &PaymentService{payments: payments, projects: projects}
}

// List returns one page of payments matching the query
func (s *PaymentService) List(ctx context.Context, spec shared.QuerySpec) (shared.Page[ledger.Payment], error) {
	return s.payments.List(ctx, spec)
}

// ListForProject returns one page of the project's payments
func (s *PaymentService) ListForProject(ctx context.Context, projectID uuid.UUID, spec shared.QuerySpec) (shared.Page[ledger.Payment], error) {
	spec.Filters = append(spec.Filters, shared.FilterClause{
		Field: "projectId", Op: shared.OpEq, Values: []string{projectID.String()},
	})
	return s.payments.List(ctx, spec)
}

// ListForCompany returns one page of the company's payments across all projects
func (s *PaymentService) ListForCompany(ctx context.Context, companyID uuid.UUID, spec shared.QuerySpec) (shared.Page[ledger.Payment], error) {
	spec.Filters = append(spec.Filters, shared.FilterClause{
		Field: "companyId", Op: shared.OpEq, Values: []string{companyID.String()},
	})
	return s.payments.List(ctx, spec)
}

// Get returns a payment with its project and company expanded
func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	return s.payments.Get(ctx, id)
}

// Create books a payment against an existing project
func (s *PaymentService) Create(ctx context.Context, actor Actor, input CreatePaymentInput) (*ledger.Payment, error) {
	project, err := s.projects.Find(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	exists, err := s.payments.ExistsByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrAlreadyExists
	}

	payment, err := ledger.NewPayment(actor.ID, project, input.Code, input.Date, input.Amount, input.ReceivedFrom)
	if err != nil {
		return nil, err
	}
	if input.Description != "" {
		if err := payment.Describe(input.Description); err != nil {
			return nil, err
		}
	}
	if input.Reference != "" {
		payment.SetReference(input.Reference)
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Update applies a partial update. Permitted for admins, accountants, and
// the record's creator. Project and company references never change.
func (s *PaymentService) Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdatePaymentInput) (*ledger.Payment, error) {
	payment, err := s.payments.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !shared.CanMutate(actor.ID, actor.Role, payment.CreatedBy, ledger.PaymentMutationPolicy.Update) {
		return nil, shared.ErrUnauthorized
	}

	if input.Date != nil {
		if err := payment.SetDate(*input.Date); err != nil {
			return nil, err
		}
	}
	if input.Amount != nil {
		payment.SetAmount(*input.Amount)
	}
	if input.ReceivedFrom != nil {
		if err := payment.SetReceivedFrom(*input.ReceivedFrom); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := payment.Describe(*input.Description); err != nil {
			return nil, err
		}
	}
	if input.Reference != nil {
		payment.SetReference(*input.Reference)
	}

	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Delete removes the payment. Permitted for admins, accountants, and the
// record's creator.
func (s *PaymentService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	payment, err := s.payments.Find(ctx, id)
	if err != nil {
		return err
	}
	if !shared.CanMutate(actor.ID, actor.Role, payment.CreatedBy, ledger.PaymentMutationPolicy.Delete) {
		return shared.ErrUnauthorized
	}
	return s.payments.Delete(ctx, id)
}
