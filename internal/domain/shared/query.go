package shared

import (
	"net/url"
	"strconv"
	"strings"
)

// Reserved query keys that are never treated as entity-field filters.
const (
	ParamSelect   = "select"
	ParamSort     = "sort"
	ParamPage     = "page"
	ParamLimit    = "limit"
	ParamPopulate = "populate"
)

// Pagination defaults
const (
	DefaultPage  = 1
	DefaultLimit = 25
)

// FilterOp is a comparison operator recognized in filter parameters
type FilterOp string

const (
	OpEq  FilterOp = "eq"
	OpGt  FilterOp = "gt"
	OpGte FilterOp = "gte"
	OpLt  FilterOp = "lt"
	OpLte FilterOp = "lte"
	OpIn  FilterOp = "in"
)

// comparisonOps are the operator tokens accepted in the field[op]=value key shape.
// Anything else is kept as a literal key so a value or field name that merely
// contains an operator word is never rewritten.
var comparisonOps = map[string]FilterOp{
	"gt":  OpGt,
	"gte": OpGte,
	"lt":  OpLt,
	"lte": OpLte,
	"in":  OpIn,
}

// FilterClause is a single field comparison. Values holds one element for
// scalar operators and one element per candidate for OpIn.
type FilterClause struct {
	Field  string
	Op     FilterOp
	Values []string
}

// Value returns the first filter value, or "" when none was supplied.
func (f FilterClause) Value() string {
	if len(f.Values) == 0 {
		return ""
	}
	return f.Values[0]
}

// SortKey is a single resolved sort field
type SortKey struct {
	Field string
	Desc  bool
}

// QuerySpec is the parsed, structured form of a list request: filter predicate,
// sort order, projection set, pagination window, and relation expansions.
type QuerySpec struct {
	Filters []FilterClause
	Sort    []SortKey
	Select  []string
	Page    int
	Limit   int
	Expand  []string
}

// Offset returns the number of records to skip for the requested page.
func (s QuerySpec) Offset() int {
	return (s.Page - 1) * s.Limit
}

// HasProjection reports whether the caller requested an explicit field set.
func (s QuerySpec) HasProjection() bool {
	return len(s.Select) > 0
}

// WantsExpansion reports whether the named relation was requested.
func (s QuerySpec) WantsExpansion(name string) bool {
	for _, e := range s.Expand {
		if e == name {
			return true
		}
	}
	return false
}

// DefaultQuerySpec returns a spec with default pagination and no filters.
func DefaultQuerySpec() QuerySpec {
	return QuerySpec{Page: DefaultPage, Limit: DefaultLimit}
}

// ParseQuerySpec turns raw request parameters into a QuerySpec. Malformed
// pagination, sort, select and populate values fall back to defaults and never
// fail; the only fatal input is a filter key whose bracket form is not
// well-formed, which surfaces ErrInvalidInput.
func ParseQuerySpec(values url.Values) (QuerySpec, error) {
	spec := DefaultQuerySpec()

	spec.Select = splitList(values.Get(ParamSelect))
	spec.Expand = splitList(values.Get(ParamPopulate))
	spec.Sort = parseSortKeys(values.Get(ParamSort))
	spec.Page = parsePositiveInt(values.Get(ParamPage), DefaultPage)
	spec.Limit = parsePositiveInt(values.Get(ParamLimit), DefaultLimit)

	for key, vals := range values {
		switch key {
		case ParamSelect, ParamSort, ParamPage, ParamLimit, ParamPopulate:
			continue
		}
		clause, err := parseFilterClause(key, vals)
		if err != nil {
			return QuerySpec{}, err
		}
		spec.Filters = append(spec.Filters, clause)
	}

	return spec, nil
}

// parseFilterClause parses one non-reserved key into a filter clause. The key
// shape field[op] selects a comparison operator; a bare key is an equality
// match. An unrecognized bracket token degrades to a literal equality on the
// raw key rather than being rewritten.
func parseFilterClause(key string, vals []string) (FilterClause, error) {
	field, opToken, err := splitFilterKey(key)
	if err != nil {
		return FilterClause{}, err
	}

	if opToken != "" {
		if op, ok := comparisonOps[opToken]; ok {
			if op == OpIn {
				return FilterClause{Field: field, Op: OpIn, Values: splitList(strings.Join(vals, ","))}, nil
			}
			return FilterClause{Field: field, Op: op, Values: vals}, nil
		}
		// Unknown token: match the raw key literally.
		field = key
	}

	if len(vals) > 1 {
		// Repeated equality parameters collapse into a set membership test.
		return FilterClause{Field: field, Op: OpIn, Values: vals}, nil
	}
	return FilterClause{Field: field, Op: OpEq, Values: vals}, nil
}

// splitFilterKey splits "field[op]" into its parts. A key without brackets
// returns an empty op. A key with unbalanced or misplaced brackets is a fatal
// input error.
func splitFilterKey(key string) (field, op string, err error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		if strings.ContainsRune(key, ']') {
			return "", "", NewDomainError("INVALID_INPUT", "Malformed filter parameter: "+key)
		}
		return key, "", nil
	}
	if open == 0 || !strings.HasSuffix(key, "]") || strings.Count(key, "[") > 1 || strings.Count(key, "]") > 1 {
		return "", "", NewDomainError("INVALID_INPUT", "Malformed filter parameter: "+key)
	}
	op = key[open+1 : len(key)-1]
	if op == "" {
		return "", "", NewDomainError("INVALID_INPUT", "Malformed filter parameter: "+key)
	}
	return key[:open], op, nil
}

func parseSortKeys(raw string) []SortKey {
	var keys []SortKey
	for _, part := range splitList(raw) {
		if desc := strings.HasPrefix(part, "-"); desc {
			if field := strings.TrimPrefix(part, "-"); field != "" {
				keys = append(keys, SortKey{Field: field, Desc: true})
			}
		} else {
			keys = append(keys, SortKey{Field: part})
		}
	}
	return keys
}

// parsePositiveInt parses a positive integer, falling back to def on
// non-numeric or non-positive input. Pagination input never errors.
func parsePositiveInt(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// splitList splits a comma-separated parameter into trimmed, non-empty parts.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
