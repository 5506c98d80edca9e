package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// ResourceStore implements store.ResourceStore for any entity described
// by a domain.Resource. Every identifier is quoted, so column names such
// as MGLT keep their case.
type ResourceStore[T any] struct {
	db       store.DBTX
	resource *domain.Resource[T]
	logger   *slog.Logger

	table      string
	selectList string
}

// NewResourceStore creates a PostgreSQL store for resource.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewResourceStore[T any](db store.DBTX, resource *domain.Resource[T], logger *slog.Logger) *ResourceStore[T] {
	if db == nil {
		panic("db cannot be nil")
	}
	if resource == nil {
		panic("resource cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ResourceStore[T]{
		db:         db,
		resource:   resource,
		logger:     logger.With(slog.String("component", resource.Singular+"_store")),
		table:      ident(resource.Table),
		selectList: columnList("", resource.SelectColumns()),
	}
}

var _ store.ResourceStore[domain.Planet] = (*ResourceStore[domain.Planet])(nil)

// List implements store.ResourceStore.List.
// The page and the total count are fetched concurrently unless the store
// runs inside a transaction, which cannot serve two queries at once.
func (s *ResourceStore[T]) List(ctx context.Context, filter store.ListFilter) ([]*T, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = domain.IDColumn
	}
	if !s.resource.Sortable(orderBy) {
		return nil, 0, fmt.Errorf("%w: cannot order %s by %q", store.ErrInvalidEntity, s.resource.Table, orderBy)
	}

	var (
		where string
		args  []any
	)
	if filter.Search != "" {
		where = fmt.Sprintf(" WHERE %s ILIKE $1", ident(s.resource.SearchColumn))
		args = append(args, "%"+escapeLike(filter.Search)+"%")
	}

	order := ident(orderBy) + " ASC"
	if orderBy != domain.IDColumn {
		order += ", " + ident(domain.IDColumn) + " ASC"
	}
	dataQuery := fmt.Sprintf(
		"SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		s.selectList, s.table, where, order, len(args)+1, len(args)+2,
	)
	dataArgs := append(append([]any{}, args...), filter.Limit, filter.Offset)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", s.table, where)

	log.Debug("listing rows",
		slog.String("table", s.resource.Table),
		slog.String("search", filter.Search),
		slog.String("order_by", orderBy),
		slog.Int("limit", filter.Limit),
		slog.Int("offset", filter.Offset))

	var (
		items []*T
		total int
	)
	fetchPage := func(ctx context.Context) error {
		var err error
		items, err = s.queryRows(ctx, dataQuery, dataArgs...)
		return err
	}
	fetchCount := func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total)
	}

	var err error
	if _, inTx := s.db.(*sql.Tx); inTx {
		if err = fetchPage(ctx); err == nil {
			err = fetchCount(ctx)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return fetchPage(gctx) })
		g.Go(func() error { return fetchCount(gctx) })
		err = g.Wait()
	}
	if err != nil {
		log.Error("failed to list rows",
			slog.String("error", err.Error()),
			slog.String("table", s.resource.Table))
		return nil, 0, store.NewStoreError(s.resource.Table, "list", "query failed", MapError(err))
	}

	return items, total, nil
}

// GetByID implements store.ResourceStore.GetByID.
func (s *ResourceStore[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", s.selectList, s.table, ident(domain.IDColumn))

	item, err := s.queryRow(ctx, query, id)
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			log.Debug("row not found", slog.String("table", s.resource.Table), slog.Int64("id", id))
			return nil, mapped
		}
		log.Error("failed to get row",
			slog.String("error", err.Error()),
			slog.String("table", s.resource.Table),
			slog.Int64("id", id))
		return nil, store.NewStoreError(s.resource.Table, "get", "query failed", mapped)
	}
	return item, nil
}

// Exists implements store.ResourceStore.Exists.
func (s *ResourceStore[T]) Exists(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", s.table, ident(domain.IDColumn))

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check existence",
			slog.String("error", err.Error()),
			slog.String("table", s.resource.Table),
			slog.Int64("id", id))
		return false, store.NewStoreError(s.resource.Table, "exists", "query failed", MapError(err))
	}
	return exists, nil
}

// Create implements store.ResourceStore.Create.
func (s *ResourceStore[T]) Create(ctx context.Context, changes domain.Changes) (*T, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cols, args, err := s.orderedChanges(changes)
	if err != nil {
		return nil, err
	}

	var query string
	if len(cols) == 0 {
		query = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", s.table, s.selectList)
	} else {
		placeholders := make([]string, len(cols))
		for i := range cols {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		query = fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			s.table, columnList("", cols), strings.Join(placeholders, ", "), s.selectList,
		)
	}

	item, err := s.queryRow(ctx, query, args...)
	if err != nil {
		mapped := MapError(err)
		log.Warn("failed to create row",
			slog.String("error", err.Error()),
			slog.String("table", s.resource.Table))
		return nil, store.NewStoreError(s.resource.Table, "create", "insert failed", mapped)
	}

	log.Info("row created", slog.String("table", s.resource.Table))
	return item, nil
}

// Update implements store.ResourceStore.Update.
// An empty change set returns the current row unchanged.
func (s *ResourceStore[T]) Update(ctx context.Context, id int64, changes domain.Changes) (*T, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cols, args, err := s.orderedChanges(changes)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return s.GetByID(ctx, id)
	}

	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", ident(c), i+1)
	}
	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		s.table, strings.Join(sets, ", "), ident(domain.IDColumn), len(args), s.selectList,
	)

	item, err := s.queryRow(ctx, query, args...)
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			log.Debug("row to update not found", slog.String("table", s.resource.Table), slog.Int64("id", id))
			return nil, mapped
		}
		log.Warn("failed to update row",
			slog.String("error", err.Error()),
			slog.String("table", s.resource.Table),
			slog.Int64("id", id))
		return nil, store.NewStoreError(s.resource.Table, "update", "update failed", mapped)
	}

	log.Info("row updated", slog.String("table", s.resource.Table), slog.Int64("id", id))
	return item, nil
}

// Delete implements store.ResourceStore.Delete.
func (s *ResourceStore[T]) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", s.table, ident(domain.IDColumn))
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete row",
			slog.String("error", err.Error()),
			slog.String("table", s.resource.Table),
			slog.Int64("id", id))
		return store.NewStoreError(s.resource.Table, "delete", "delete failed", MapError(err))
	}

	if err := RequireAffected(result, s.resource.Singular); err != nil {
		return err
	}

	log.Info("row deleted", slog.String("table", s.resource.Table), slog.Int64("id", id))
	return nil
}

// ListRelated implements store.ResourceStore.ListRelated.
func (s *ResourceStore[T]) ListRelated(ctx context.Context, rel domain.Relation, ownerID int64) ([]*T, error) {
	if rel.Table == "" || rel.OwnerColumn == "" || rel.TargetColumn == "" {
		return nil, fmt.Errorf("relation %q is incomplete", rel.Name)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s t JOIN %s j ON t.%s = j.%s WHERE j.%s = $1 ORDER BY t.%s ASC",
		columnList("t", s.resource.SelectColumns()),
		s.table, ident(rel.Table),
		ident(domain.IDColumn), ident(rel.TargetColumn),
		ident(rel.OwnerColumn), ident(domain.IDColumn),
	)

	items, err := s.queryRows(ctx, query, ownerID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list related rows",
			slog.String("error", err.Error()),
			slog.String("table", s.resource.Table),
			slog.String("relation", rel.Name),
			slog.Int64("owner_id", ownerID))
		return nil, store.NewStoreError(s.resource.Table, "list related", "query failed", MapError(err))
	}
	return items, nil
}

// UpdateColumnWhere implements store.ResourceStore.UpdateColumnWhere.
func (s *ResourceStore[T]) UpdateColumnWhere(
	ctx context.Context,
	column string,
	value any,
	matchColumn string,
	matchValue any,
) (int64, error) {
	if !s.resource.HasColumn(column) {
		return 0, fmt.Errorf("%w: unknown column %q", store.ErrInvalidEntity, column)
	}
	if matchColumn != domain.IDColumn && !s.resource.HasColumn(matchColumn) {
		return 0, fmt.Errorf("%w: unknown column %q", store.ErrInvalidEntity, matchColumn)
	}

	query := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2", s.table, ident(column), ident(matchColumn))
	result, err := s.db.ExecContext(ctx, query, value, matchValue)
	if err != nil {
		return 0, store.NewStoreError(s.resource.Table, "update", "update failed", MapError(err))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("column updated",
		slog.String("table", s.resource.Table),
		slog.String("column", column),
		slog.Int64("rows", n))
	return n, nil
}

// WithTx implements store.ResourceStore.WithTx.
func (s *ResourceStore[T]) WithTx(tx *sql.Tx) store.ResourceStore[T] {
	return &ResourceStore[T]{
		db:         tx,
		resource:   s.resource,
		logger:     s.logger,
		table:      s.table,
		selectList: s.selectList,
	}
}

// orderedChanges returns the columns of changes in table order together
// with their values. Unknown columns are rejected.
func (s *ResourceStore[T]) orderedChanges(changes domain.Changes) ([]string, []any, error) {
	for col := range changes {
		if !s.resource.HasColumn(col) {
			return nil, nil, fmt.Errorf("%w: unknown column %q", store.ErrInvalidEntity, col)
		}
	}

	cols := make([]string, 0, len(changes))
	args := make([]any, 0, len(changes))
	for _, col := range s.resource.Columns {
		if v, ok := changes[col]; ok {
			cols = append(cols, col)
			args = append(args, v)
		}
	}
	return cols, args, nil
}

func (s *ResourceStore[T]) queryRow(ctx context.Context, query string, args ...any) (*T, error) {
	item := new(T)
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(s.resource.Scan(item)...); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ResourceStore[T]) queryRows(ctx context.Context, query string, args ...any) ([]*T, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	items := []*T{}
	for rows.Next() {
		item := new(T)
		if err := rows.Scan(s.resource.Scan(item)...); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ident quotes a single SQL identifier.
func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// columnList renders quoted columns, optionally qualified by alias.
func columnList(alias string, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		if alias != "" {
			quoted[i] = alias + "." + ident(c)
		} else {
			quoted[i] = ident(c)
		}
	}
	return strings.Join(quoted, ", ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so term matches literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
