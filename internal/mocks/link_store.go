package mocks

import (
	"context"
	"database/sql"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// LinkStore mocks store.LinkStore.
type LinkStore struct {
	mock.Mock
}

var _ store.LinkStore = (*LinkStore)(nil)

// Link implements store.LinkStore.
func (m *LinkStore) Link(ctx context.Context, rel domain.Relation, ownerID, targetID int64) error {
	return m.Called(ctx, rel, ownerID, targetID).Error(0)
}

// WithTx returns m.
func (m *LinkStore) WithTx(*sql.Tx) store.LinkStore {
	return m
}
