package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
)

// TxFn is the unit of work run by RunInTransaction.
// It receives the transaction to hand to each store's WithTx, and returns
// nil to commit or an error to roll everything back.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction begins a transaction on db and runs fn inside it.
// The transaction is committed when fn returns nil and rolled back when fn
// returns an error. A panic in fn also rolls back, and is re-raised
// afterwards so the caller's recovery still sees it.
//
// Seeding uses this to insert planets, characters, craft, films and their
// join rows as one batch: either the whole data set lands or none of it.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	// Request-scoped logger when the caller put one on ctx.
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", slog.String("error", err.Error()))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Roll back on panic, then keep unwinding.
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.String("error", rbErr.Error()), slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic", slog.Any("panic", p))
			}
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		// fn's error is the one callers match on; a rollback failure is
		// attached as text only.
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", rbErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf("error rolling back transaction: %v (original error: %w)", rbErr, err)
		}
		log.Debug("rolled back transaction", slog.String("error", err.Error()))
		return err
	}

	// Commit failures are wrapped so callers can tell them apart from fn errors.
	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", slog.String("error", err.Error()))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
