package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
)

// LinkStore implements store.LinkStore for join tables.
type LinkStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewLinkStore creates a LinkStore. If logger is nil, a default logger will be used.
func NewLinkStore(db store.DBTX, logger *slog.Logger) *LinkStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LinkStore{
		db:     db,
		logger: logger.With(slog.String("component", "link_store")),
	}
}

var _ store.LinkStore = (*LinkStore)(nil)

// Link implements store.LinkStore.Link.
// Foreign-key relations such as a character's homeworld are written through
// the owning entity instead, so relations keyed on id are rejected.
func (s *LinkStore) Link(ctx context.Context, rel domain.Relation, ownerID, targetID int64) error {
	if rel.OwnerColumn == domain.IDColumn || rel.TargetColumn == domain.IDColumn {
		return fmt.Errorf("%w: relation %q is not a join table", store.ErrInvalidEntity, rel.Name)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		ident(rel.Table), ident(rel.OwnerColumn), ident(rel.TargetColumn),
	)
	if _, err := s.db.ExecContext(ctx, query, ownerID, targetID); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to link rows",
			slog.String("error", err.Error()),
			slog.String("table", rel.Table),
			slog.Int64("owner_id", ownerID),
			slog.Int64("target_id", targetID))
		return store.NewStoreError(rel.Table, "link", "insert failed", MapError(err))
	}
	return nil
}

// WithTx implements store.LinkStore.WithTx.
func (s *LinkStore) WithTx(tx *sql.Tx) store.LinkStore {
	return &LinkStore{db: tx, logger: s.logger}
}
