package mocks

import (
	"context"
	"database/sql"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// ResourceStore mocks store.ResourceStore for any entity type.
type ResourceStore[T any] struct {
	mock.Mock
}

var _ store.ResourceStore[domain.Planet] = (*ResourceStore[domain.Planet])(nil)

// List implements store.ResourceStore.
func (m *ResourceStore[T]) List(ctx context.Context, filter store.ListFilter) ([]*T, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*T), args.Int(1), args.Error(2)
}

// GetByID implements store.ResourceStore.
func (m *ResourceStore[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// Exists implements store.ResourceStore.
func (m *ResourceStore[T]) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// Create implements store.ResourceStore.
func (m *ResourceStore[T]) Create(ctx context.Context, changes domain.Changes) (*T, error) {
	args := m.Called(ctx, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// Update implements store.ResourceStore.
func (m *ResourceStore[T]) Update(ctx context.Context, id int64, changes domain.Changes) (*T, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// Delete implements store.ResourceStore.
func (m *ResourceStore[T]) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// ListRelated implements store.ResourceStore.
func (m *ResourceStore[T]) ListRelated(ctx context.Context, rel domain.Relation, ownerID int64) ([]*T, error) {
	args := m.Called(ctx, rel, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*T), args.Error(1)
}

// UpdateColumnWhere implements store.ResourceStore.
func (m *ResourceStore[T]) UpdateColumnWhere(
	ctx context.Context,
	column string,
	value any,
	matchColumn string,
	matchValue any,
) (int64, error) {
	args := m.Called(ctx, column, value, matchColumn, matchValue)
	return args.Get(0).(int64), args.Error(1)
}

// WithTx returns m.
func (m *ResourceStore[T]) WithTx(*sql.Tx) store.ResourceStore[T] {
	return m
}
