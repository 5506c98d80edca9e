package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
)

type errorClass struct {
	target error
	what   string
}

// SQLSTATE codes that are the caller's fault. Anything else is passed
// through unchanged and surfaces as an internal error.
var errorClasses = map[string]errorClass{
	"23505": {store.ErrDuplicate, "unique violation"},
	"23503": {store.ErrInvalidEntity, "referenced row does not exist"},
	"23514": {store.ErrInvalidEntity, "check constraint violated"},
	"23502": {store.ErrInvalidEntity, "required column is null"},
	"22001": {store.ErrInvalidEntity, "value too long"},
	"22003": {store.ErrInvalidEntity, "numeric value out of range"},
}

// MapError maps a database error to the matching store error.
// It wraps the original error so the driver details stay available to logs.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	class, ok := errorClasses[pgErr.Code]
	if !ok {
		return err
	}

	subject := pgErr.ConstraintName
	if subject == "" {
		subject = pgErr.ColumnName
	}
	if subject == "" {
		return fmt.Errorf("%w: %s: %v", class.target, class.what, err)
	}
	return fmt.Errorf("%w: %s (%s): %v", class.target, class.what, subject, err)
}

// RequireAffected returns store.ErrNotFound when a statement touched no rows.
func RequireAffected(result sql.Result, resource string) error {
	n, err := result.RowsAffected()
	switch {
	case err != nil:
		return fmt.Errorf("rows affected: %w", err)
	case n == 0:
		return fmt.Errorf("%w: %s", store.ErrNotFound, resource)
	}
	return nil
}
