package domain

import (
	"fmt"
	"slices"
)

// IDColumn is the primary key column shared by every entity table.
const IDColumn = "id"

// Changes maps column names to the values a write should store.
// A nil value stores NULL.
type Changes map[string]any

// Only returns the subset of c whose keys are in keys.
func (c Changes) Only(keys map[string]struct{}) Changes {
	out := make(Changes, len(keys))
	for k, v := range c {
		if _, ok := keys[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Input is a decoded create or update payload for one entity.
// Implementations are pointers to structs carrying validator tags.
type Input interface {
	// Changes returns every writable column with its value from the payload.
	// Absent or null fields map to nil.
	Changes() Changes
}

// Resource describes how an entity of type T is stored and exposed.
type Resource[T any] struct {
	// Singular is the envelope key for one row, e.g. "character".
	Singular string
	// Plural is the envelope key for a list and the route segment, e.g. "characters".
	Plural string
	// Label is used in client-facing messages, e.g. "Character".
	Label string

	Table string

	// SearchColumn is matched case-insensitively by list searches.
	SearchColumn string

	// SortColumns lists the values accepted by the orderBy query parameter.
	SortColumns []string

	// Columns lists the writable columns in select order, excluding id.
	Columns []string

	// Required columns must be present on create and can never be set to null.
	Required []string

	// Scan returns scan destinations for id followed by Columns.
	Scan func(*T) []any

	// NewInput returns an empty payload ready for JSON decoding.
	NewInput func() Input
}

// SelectColumns returns id followed by the writable columns.
func (r *Resource[T]) SelectColumns() []string {
	return append([]string{IDColumn}, r.Columns...)
}

// Sortable reports whether column is an accepted orderBy value.
func (r *Resource[T]) Sortable(column string) bool {
	return slices.Contains(r.SortColumns, column)
}

// IsRequired reports whether column must never be null.
func (r *Resource[T]) IsRequired(column string) bool {
	return slices.Contains(r.Required, column)
}

// HasColumn reports whether column is one of the writable columns.
func (r *Resource[T]) HasColumn(column string) bool {
	return slices.Contains(r.Columns, column)
}

// Check verifies that the metadata is internally consistent.
func (r *Resource[T]) Check() error {
	if r.Singular == "" || r.Plural == "" || r.Label == "" || r.Table == "" {
		return fmt.Errorf("resource %q: names and table are required", r.Table)
	}
	if r.Scan == nil || r.NewInput == nil {
		return fmt.Errorf("resource %q: Scan and NewInput are required", r.Table)
	}
	if !r.HasColumn(r.SearchColumn) {
		return fmt.Errorf("resource %q: unknown search column %q", r.Table, r.SearchColumn)
	}
	for _, c := range r.SortColumns {
		if c != IDColumn && !r.HasColumn(c) {
			return fmt.Errorf("resource %q: unknown sort column %q", r.Table, c)
		}
	}
	for _, c := range r.Required {
		if !r.HasColumn(c) {
			return fmt.Errorf("resource %q: unknown required column %q", r.Table, c)
		}
	}

	var zero T
	if got, want := len(r.Scan(&zero)), len(r.Columns)+1; got != want {
		return fmt.Errorf("resource %q: Scan returns %d destinations, want %d", r.Table, got, want)
	}
	for col := range r.NewInput().Changes() {
		if !r.HasColumn(col) {
			return fmt.Errorf("resource %q: payload maps unknown column %q", r.Table, col)
		}
	}
	return nil
}

// Relation links an owner resource to a target resource through a table
// holding both ids. Join tables and plain foreign keys are both expressed
// this way: for a foreign key the "join" table is the owning entity table.
type Relation struct {
	// Name is the route segment and the envelope key, e.g. "films".
	Name string
	// Table holds the (owner, target) id pairs.
	Table string
	// OwnerColumn holds the owner's id in Table.
	OwnerColumn string
	// TargetColumn holds the target's id in Table.
	TargetColumn string
}

// str dereferences an optional string into a SQL argument.
func str(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// num dereferences an optional integer into a SQL argument.
func num[N ~int | ~int32 | ~int64](p *N) any {
	if p == nil {
		return nil
	}
	return *p
}
