package store

import (
	"context"
	"database/sql"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
)

// ListFilter selects one page of rows.
type ListFilter struct {
	// Search is matched case-insensitively as a substring of the
	// resource's search column. Empty means no filtering.
	Search string
	// OrderBy must be one of the resource's sort columns. Rows are always
	// ordered ascending with id as the tie-breaker.
	OrderBy string
	Limit   int
	Offset  int
}

// ResourceStore persists entities of type T.
type ResourceStore[T any] interface {
	// List returns one page of rows matching the filter, together with the
	// number of rows matching the search regardless of paging.
	List(ctx context.Context, filter ListFilter) ([]*T, int, error)

	// GetByID returns the row with the given id.
	// Returns ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*T, error)

	// Exists reports whether a row with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts a row built from changes and returns it.
	// Returns ErrInvalidEntity or ErrDuplicate when the database rejects it.
	Create(ctx context.Context, changes domain.Changes) (*T, error)

	// Update applies changes to the row with the given id and returns it.
	// Returns ErrNotFound if it does not exist.
	Update(ctx context.Context, id int64, changes domain.Changes) (*T, error)

	// Delete removes the row with the given id.
	// Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// ListRelated returns the rows of T linked to ownerID through rel,
	// ordered by id.
	ListRelated(ctx context.Context, rel domain.Relation, ownerID int64) ([]*T, error)

	// UpdateColumnWhere sets column to value on every row whose
	// matchColumn equals matchValue and returns the number of rows changed.
	UpdateColumnWhere(ctx context.Context, column string, value any, matchColumn string, matchValue any) (int64, error)

	// WithTx returns a store that runs its queries in tx.
	WithTx(tx *sql.Tx) ResourceStore[T]
}

// LinkStore writes join table rows.
type LinkStore interface {
	// Link inserts the (ownerID, targetID) pair into rel's table.
	// Linking an existing pair is a no-op.
	Link(ctx context.Context, rel domain.Relation, ownerID, targetID int64) error

	// WithTx returns a store that runs its queries in tx.
	WithTx(tx *sql.Tx) LinkStore
}
