package ledger

import (
	"context"

	"github.com/google/uuid"
)

// CascadeResult counts the records removed by a cascading delete
type CascadeResult struct {
	Projects int64 `json:"projects"`
	Expenses int64 `json:"expenses"`
	Payments int64 `json:"payments"`
	Manpower int64 `json:"manpower"`
}

// CascadeCoordinator removes an aggregate together with every record booked
// under it, atomically. Deleting an absent aggregate reports ErrNotFound.
type CascadeCoordinator interface {
	DeleteProject(ctx context.Context, projectID uuid.UUID) (CascadeResult, error)
	DeleteCompany(ctx context.Context, companyID uuid.UUID) (CascadeResult, error)
}
