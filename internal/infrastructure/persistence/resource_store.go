package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/siteledger/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Expansion describes one expandable relation: the GORM association to
// preload and the fixed column projection to load it with. An empty column
// list loads the full related record.
type Expansion struct {
	Association string
	Columns     []string
}

// Descriptor parameterizes the generic store for one entity type. The five
// resource shapes share one algorithm; everything entity-specific lives here.
type Descriptor struct {
	// Columns whitelists exposed query-field names and maps them to
	// database columns. Filter and sort keys outside the map are ignored.
	Columns map[string]string
	// DefaultSort is the column ordered descending when no sort is given.
	DefaultSort string
	// CodeColumn is the entity's unique external code column, "" when none.
	CodeColumn string
	// Expansions enumerates expandable relations by their exposed name.
	Expansions map[string]Expansion
	// ListExpand and GetExpand name relations always expanded on list and
	// single-record fetch respectively, independent of the request.
	ListExpand []string
	GetExpand  []string
	// Required columns are always included in an explicit projection so
	// keys and foreign keys survive field selection.
	Required []string
}

// Store is the generic GORM-backed resource repository. It implements
// shared.ResourceRepository[T] for each entity via its descriptor.
type Store[T any] struct {
	db   *gorm.DB
	desc Descriptor
}

// NewStore creates a store for one entity type
func NewStore[T any](db *gorm.DB, desc Descriptor) *Store[T] {
	return &Store[T]{db: db, desc: desc}
}

// List applies the query specification: filter, count over the same filter
// before pagination, sort, projection, offset/limit window, then expansions.
func (s *Store[T]) List(ctx context.Context, spec shared.QuerySpec) (shared.Page[T], error) {
	page := shared.Page[T]{Items: []T{}, Number: spec.Page, Limit: spec.Limit}

	counter := s.applyFilters(s.db.WithContext(ctx).Model(new(T)), spec.Filters)
	if err := counter.Count(&page.Total).Error; err != nil {
		return page, err
	}

	q := s.applyFilters(s.db.WithContext(ctx).Model(new(T)), spec.Filters)
	q = s.applySort(q, spec.Sort)
	q = s.applyProjection(q, spec.Select)
	q = s.applyExpansions(q, s.expansionNames(spec.Expand, s.desc.ListExpand))
	q = q.Offset(spec.Offset()).Limit(spec.Limit)

	if err := q.Find(&page.Items).Error; err != nil {
		return page, err
	}
	return page, nil
}

// Get returns a single record with the entity's fixed default expansions
func (s *Store[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	q := s.applyExpansions(s.db.WithContext(ctx), s.expansionNames(nil, s.desc.GetExpand))
	var entity T
	if err := q.First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// Find returns the bare record without expansions, for mutation paths
func (s *Store[T]) Find(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := s.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// Create persists a new record. A duplicate on a unique column surfaces as
// ErrAlreadyExists.
func (s *Store[T]) Create(ctx context.Context, entity *T) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	return err
}

// Save persists all fields of an existing record
func (s *Store[T]) Save(ctx context.Context, entity *T) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	return err
}

// Delete removes a record by key. Deleting an absent record reports
// ErrNotFound so a repeated delete stays observable as a no-op.
func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByCode reports whether a record already carries the unique external code
func (s *Store[T]) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if s.desc.CodeColumn == "" {
		return false, nil
	}
	var count int64
	err := s.db.WithContext(ctx).Model(new(T)).
		Where(s.desc.CodeColumn+" = ?", code).
		Count(&count).Error
	return count > 0, err
}

// applyFilters translates whitelisted filter clauses into WHERE conditions.
// Unknown fields are dropped rather than failed: filtering on a field the
// entity does not expose matches the full set, mirroring a filter the store
// cannot see.
func (s *Store[T]) applyFilters(q *gorm.DB, filters []shared.FilterClause) *gorm.DB {
	for _, f := range filters {
		col, ok := s.desc.Columns[f.Field]
		if !ok || len(f.Values) == 0 {
			continue
		}
		switch f.Op {
		case shared.OpEq:
			q = q.Where(col+" = ?", f.Value())
		case shared.OpGt:
			q = q.Where(col+" > ?", f.Value())
		case shared.OpGte:
			q = q.Where(col+" >= ?", f.Value())
		case shared.OpLt:
			q = q.Where(col+" < ?", f.Value())
		case shared.OpLte:
			q = q.Where(col+" <= ?", f.Value())
		case shared.OpIn:
			q = q.Where(col+" IN ?", f.Values)
		}
	}
	return q
}

// applySort orders by the whitelisted sort keys, falling back to the entity
// default, with creation order as the stable tie-break.
func (s *Store[T]) applySort(q *gorm.DB, keys []shared.SortKey) *gorm.DB {
	applied := false
	for _, key := range keys {
		col, ok := s.desc.Columns[key.Field]
		if !ok {
			continue
		}
		if key.Desc {
			q = q.Order(col + " DESC")
		} else {
			q = q.Order(col + " ASC")
		}
		applied = true
	}
	if !applied {
		q = q.Order(s.desc.DefaultSort + " DESC")
	}
	return q.Order("created_at ASC").Order("id ASC")
}

// applyProjection narrows the selected columns to the requested field set
// plus the columns every row must carry.
func (s *Store[T]) applyProjection(q *gorm.DB, fields []string) *gorm.DB {
	if len(fields) == 0 {
		return q
	}
	cols := make([]string, 0, len(fields)+len(s.desc.Required))
	seen := make(map[string]bool, len(fields)+len(s.desc.Required))
	for _, col := range s.desc.Required {
		if !seen[col] {
			seen[col] = true
			cols = append(cols, col)
		}
	}
	for _, f := range fields {
		if col, ok := s.desc.Columns[f]; ok && !seen[col] {
			seen[col] = true
			cols = append(cols, col)
		}
	}
	return q.Select(cols)
}

// expansionNames resolves the relations to expand: the fixed defaults plus
// any requested name the entity actually declares. Unknown names are
// silently ignored.
func (s *Store[T]) expansionNames(requested, defaults []string) []string {
	names := append([]string(nil), defaults...)
	for _, name := range requested {
		if _, ok := s.desc.Expansions[name]; !ok {
			continue
		}
		dup := false
		for _, n := range names {
			if n == name {
				dup = true
				break
			}
		}
		if !dup {
			names = append(names, name)
		}
	}
	return names
}

// applyExpansions preloads each named relation with its fixed projection.
// Expansion is a read-side join only; an orphaned foreign key simply leaves
// the relation unset.
func (s *Store[T]) applyExpansions(q *gorm.DB, names []string) *gorm.DB {
	for _, name := range names {
		exp, ok := s.desc.Expansions[name]
		if !ok {
			continue
		}
		if len(exp.Columns) > 0 {
			cols := exp.Columns
			q = q.Preload(exp.Association, func(db *gorm.DB) *gorm.DB {
				return db.Select(cols)
			})
		} else {
			q = q.Preload(exp.Association)
		}
	}
	return q
}
