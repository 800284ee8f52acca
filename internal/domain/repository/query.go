package repository

import (
	"fmt"
	"strings"

	"mapbook/internal/errors"
)

// Stored field names that can be filtered on.
const (
	FieldUser     = "user"
	FieldIsPublic = "isPublic"
)

// ErrUnsupportedQuery is returned when a backend rejects the shape of a filter,
// e.g. a compound filter without a matching index.
var ErrUnsupportedQuery = errors.New("unsupported query")

// Clause is a single equality predicate on a stored field.
type Clause struct {
	Field string
	Value any
}

// Eq builds an equality clause.
func Eq(field string, value any) Clause {
	return Clause{Field: field, Value: value}
}

// Filter is a conjunction of clauses. An empty filter matches every record.
type Filter []Clause

// IsCompound reports whether the filter constrains more than one field.
func (f Filter) IsCompound() bool {
	return len(f) > 1
}

func (f Filter) String() string {
	if len(f) == 0 {
		return "*"
	}

	parts := make([]string, 0, len(f))
	for _, c := range f {
		parts = append(parts, fmt.Sprintf("%s == %v", c.Field, c.Value))
	}

	return strings.Join(parts, " && ")
}

// QueryCapabilities describes which filter shapes a store promises to accept.
type QueryCapabilities struct {
	// CompoundFilter is true when equality filters on several fields can be combined in one query.
	CompoundFilter bool
}
