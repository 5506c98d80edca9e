package api

import (
	"net/http"

	"github.com/isaqu3d/star-wars-wiki-api/internal/api/shared"
	"github.com/isaqu3d/star-wars-wiki-api/internal/service"
)

// RelationHandler serves the targets linked to one owner row.
type RelationHandler[T any] struct {
	service *service.RelationService[T]
	errors  ErrorHandler
}

var _ RelationRoute = (*RelationHandler[struct{}])(nil)

// NewRelationHandler creates a RelationHandler.
func NewRelationHandler[T any](svc *service.RelationService[T], errs ErrorHandler) *RelationHandler[T] {
	if svc == nil {
		panic("service cannot be nil")
	}
	return &RelationHandler[T]{service: svc, errors: errs}
}

// Name returns the route segment and envelope key.
func (h *RelationHandler[T]) Name() string {
	return h.service.Relation().Name
}

// ServeHTTP handles GET /{plural}/{id}/{relation}.
func (h *RelationHandler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	op := "fetch " + h.Name()

	id, err := parseID(r)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}

	items, err := h.service.List(r.Context(), id)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
		h.Name(): items,
		"total":  len(items),
	})
}
