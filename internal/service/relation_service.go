package service

import (
	"context"
	"log/slog"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
)

// OwnerChecker reports whether the owning row of a relation exists.
type OwnerChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// RelationService lists the targets linked to one owner row.
type RelationService[T any] struct {
	relation   domain.Relation
	ownerLabel string
	owners     OwnerChecker
	targets    store.ResourceStore[T]
	logger     *slog.Logger
}

// NewRelationService creates a RelationService.
// It returns an error if owners or targets is nil.
func NewRelationService[T any](
	relation domain.Relation,
	ownerLabel string,
	owners OwnerChecker,
	targets store.ResourceStore[T],
	logger *slog.Logger,
) (*RelationService[T], error) {
	if owners == nil || targets == nil {
		return nil, constructorError(relation.Name)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RelationService[T]{
		relation:   relation,
		ownerLabel: ownerLabel,
		owners:     owners,
		targets:    targets,
		logger:     logger.With(slog.String("component", "relation_service")),
	}, nil
}

// Relation returns the relation the service reads.
func (s *RelationService[T]) Relation() domain.Relation {
	return s.relation
}

// List returns the targets linked to ownerID, ordered by id.
// It returns a domain.NotFoundError when the owner does not exist.
func (s *RelationService[T]) List(ctx context.Context, ownerID int64) ([]*T, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	exists, err := s.owners.Exists(ctx, ownerID)
	if err != nil {
		log.Error("failed to check relation owner",
			slog.String("relation", s.relation.Name),
			slog.Int64("owner_id", ownerID),
			slog.String("error", err.Error()))
		return nil, NewServiceError("fetch", s.relation.Name, err)
	}
	if !exists {
		return nil, domain.NewNotFoundError(s.ownerLabel, ownerID)
	}

	items, err := s.targets.ListRelated(ctx, s.relation, ownerID)
	if err != nil {
		log.Error("failed to list related rows",
			slog.String("relation", s.relation.Name),
			slog.Int64("owner_id", ownerID),
			slog.String("error", err.Error()))
		return nil, NewServiceError("fetch", s.relation.Name, err)
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}
