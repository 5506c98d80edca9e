package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
)

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage keeps (page-1)*limit within the range of a SERIAL id, so no
	// table can hold more rows than the largest offset skips.
	MaxPage = math.MaxInt32/MaxLimit + 1
)

// ListQuery is a validated list request.
type ListQuery struct {
	Search  string
	OrderBy string
	Page    int
	Limit   int
}

// normalize fills defaults and clamps out-of-range values.
func (q ListQuery) normalize() ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.OrderBy == "" {
		q.OrderBy = domain.IDColumn
	}
	return q
}

// Offset returns the number of rows skipped before the requested page.
func (q ListQuery) Offset() int {
	q = q.normalize()
	return (q.Page - 1) * q.Limit
}

// Page is one page of results plus the total number of matching rows.
type Page[T any] struct {
	Items []*T
	Total int
}

// ResourceService implements list, get, create, update and delete for one entity.
type ResourceService[T any] struct {
	resource *domain.Resource[T]
	store    store.ResourceStore[T]
	logger   *slog.Logger
}

// NewResourceService creates a ResourceService.
// It returns an error if resource or st is nil.
func NewResourceService[T any](
	resource *domain.Resource[T],
	st store.ResourceStore[T],
	logger *slog.Logger,
) (*ResourceService[T], error) {
	if resource == nil {
		return nil, constructorError("resource")
	}
	if st == nil {
		return nil, constructorError(resource.Plural)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ResourceService[T]{
		resource: resource,
		store:    st,
		logger:   logger.With(slog.String("component", resource.Singular+"_service")),
	}, nil
}

// Resource returns the metadata the service was built with.
func (s *ResourceService[T]) Resource() *domain.Resource[T] {
	return s.resource
}

// List returns the requested page. Total counts every row matching the
// search, independent of paging.
func (s *ResourceService[T]) List(ctx context.Context, q ListQuery) (*Page[T], error) {
	q = q.normalize()
	if !s.resource.Sortable(q.OrderBy) {
		return nil, domain.NewValidationError("orderBy", "invalid sort column", nil)
	}

	items, total, err := s.store.List(ctx, store.ListFilter{
		Search:  q.Search,
		OrderBy: q.OrderBy,
		Limit:   q.Limit,
		Offset:  q.Offset(),
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list rows",
			slog.String("error", err.Error()),
			slog.String("search", q.Search),
			slog.Int("page", q.Page),
			slog.Int("limit", q.Limit))
		return nil, NewServiceError("fetch", s.resource.Plural, err)
	}

	if items == nil {
		items = []*T{}
	}
	return &Page[T]{Items: items, Total: total}, nil
}

// Get returns one row or a domain.NotFoundError.
func (s *ResourceService[T]) Get(ctx context.Context, id int64) (*T, error) {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError(ctx, "fetch", id, err)
	}
	return item, nil
}

// Create inserts a new row.
func (s *ResourceService[T]) Create(ctx context.Context, changes domain.Changes) (*T, error) {
	item, err := s.store.Create(ctx, changes)
	if err != nil {
		return nil, s.mapError(ctx, "create", 0, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("row created",
		slog.String("resource", s.resource.Plural))
	return item, nil
}

// Update applies a partial update to an existing row.
func (s *ResourceService[T]) Update(ctx context.Context, id int64, changes domain.Changes) (*T, error) {
	if err := s.requireExisting(ctx, "update", id); err != nil {
		return nil, err
	}

	item, err := s.store.Update(ctx, id, changes)
	if err != nil {
		return nil, s.mapError(ctx, "update", id, err)
	}
	return item, nil
}

// Delete removes an existing row.
func (s *ResourceService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.requireExisting(ctx, "delete", id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return s.mapError(ctx, "delete", id, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("row deleted",
		slog.String("resource", s.resource.Plural),
		slog.Int64("id", id))
	return nil
}

// Exists reports whether a row with id exists.
func (s *ResourceService[T]) Exists(ctx context.Context, id int64) (bool, error) {
	return s.store.Exists(ctx, id)
}

func (s *ResourceService[T]) requireExisting(ctx context.Context, op string, id int64) error {
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		return s.mapError(ctx, op, id, err)
	}
	if !exists {
		return domain.NewNotFoundError(s.resource.Label, id)
	}
	return nil
}

// mapError converts store errors into the errors the API layer renders.
func (s *ResourceService[T]) mapError(ctx context.Context, op string, id int64, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return domain.NewNotFoundError(s.resource.Label, id)
	}

	name := s.resource.Singular
	if op == "fetch" && id == 0 {
		name = s.resource.Plural
	}
	if !isExpected(err) {
		logger.FromContextOrDefault(ctx, s.logger).Error("store operation failed",
			slog.String("operation", op),
			slog.Int64("id", id),
			slog.String("error", err.Error()))
	}
	return NewServiceError(op, name, err)
}
