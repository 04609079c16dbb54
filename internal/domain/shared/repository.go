package shared

import (
	"context"

	"github.com/google/uuid"
)

// ResourceRepository is the generic store contract shared by all five entity
// types. One GORM-backed implementation parameterized by an entity descriptor
// serves every resource.
type ResourceRepository[T any] interface {
	// List applies the query specification and returns one page plus the
	// total number of records matching the filter before pagination.
	List(ctx context.Context, spec QuerySpec) (Page[T], error)
	// Get returns a single record with the entity's fixed default
	// expansions applied. Missing records surface ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	// Find returns the bare record without expansions, for mutation paths.
	Find(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ExistsByCode reports whether a record already carries the entity's
	// unique external code.
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// PageCursor points at an adjacent page in a list response
type PageCursor struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Page is one window of a filtered listing. Total reflects the filter before
// the offset/limit window was applied.
type Page[T any] struct {
	Items  []T
	Total  int64
	Number int
	Limit  int
}

// Next returns the cursor for the following page, or nil when this window
// already reaches the end of the filtered set.
func (p Page[T]) Next() *PageCursor {
	offset := (p.Number - 1) * p.Limit
	if int64(offset+p.Limit) < p.Total {
		return &PageCursor{Page: p.Number + 1, Limit: p.Limit}
	}
	return nil
}

// Prev returns the cursor for the preceding page, or nil on the first page.
func (p Page[T]) Prev() *PageCursor {
	if (p.Number-1)*p.Limit > 0 {
		return &PageCursor{Page: p.Number - 1, Limit: p.Limit}
	}
	return nil
}
