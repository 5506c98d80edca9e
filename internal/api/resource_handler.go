package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/isaqu3d/star-wars-wiki-api/internal/api/shared"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
	"github.com/isaqu3d/star-wars-wiki-api/internal/service"
)

// RelationRoute serves GET /{plural}/{id}/{Name()}.
type RelationRoute interface {
	http.Handler
	Name() string
}

// ResourceHandler serves the CRUD routes of one entity.
type ResourceHandler[T any] struct {
	service    *service.ResourceService[T]
	resource   *domain.Resource[T]
	errors     ErrorHandler
	relations  []RelationRoute
	itemRoutes []func(chi.Router)
	bodyLimit  int64
	logger     *slog.Logger
}

// NewResourceHandler creates a ResourceHandler.
func NewResourceHandler[T any](
	svc *service.ResourceService[T],
	errs ErrorHandler,
	logger *slog.Logger,
) *ResourceHandler[T] {
	if svc == nil {
		panic("service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ResourceHandler[T]{
		service:  svc,
		resource: svc.Resource(),
		errors:   errs,
		logger:   logger.With(slog.String("component", svc.Resource().Singular+"_handler")),
	}
}

// WithRelations adds relation routes below /{id}.
func (h *ResourceHandler[T]) WithRelations(routes ...RelationRoute) *ResourceHandler[T] {
	h.relations = append(h.relations, routes...)
	return h
}

// WithItemRoutes registers additional routes below /{id}.
func (h *ResourceHandler[T]) WithItemRoutes(fn func(chi.Router)) *ResourceHandler[T] {
	h.itemRoutes = append(h.itemRoutes, fn)
	return h
}

// WithBodyLimit caps create and update request bodies at n bytes.
func (h *ResourceHandler[T]) WithBodyLimit(n int64) *ResourceHandler[T] {
	h.bodyLimit = n
	return h
}

// Routes returns the router to mount at /{plural}.
func (h *ResourceHandler[T]) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	h.limited(r).Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		h.limited(r).Put("/", h.Update)
		r.Delete("/", h.Delete)
		for _, rel := range h.relations {
			r.Method(http.MethodGet, "/"+rel.Name(), rel)
		}
		for _, fn := range h.itemRoutes {
			fn(r)
		}
	})
	return r
}

// limited returns r with the body limit applied, if any.
func (h *ResourceHandler[T]) limited(r chi.Router) chi.Router {
	if h.bodyLimit <= 0 {
		return r
	}
	return r.With(middleware.RequestSize(h.bodyLimit))
}

// List handles GET /{plural}.
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	op := "fetch " + h.resource.Plural

	q, err := parseListQuery(r, h.resource.Sortable)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}

	page, err := h.service.List(r.Context(), q)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
		h.resource.Plural: page.Items,
		"total":           page.Total,
	})
}

// Get handles GET /{plural}/{id}.
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	op := "fetch " + h.resource.Singular

	id, err := parseID(r)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}
	h.respondItem(w, r, http.StatusOK, item)
}

// Create handles POST /{plural}.
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	op := "create " + h.resource.Singular

	changes, err := decodePayload(r, h.resource, modeCreate)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}

	item, err := h.service.Create(r.Context(), changes)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("created",
		slog.String("resource", h.resource.Plural))
	h.respondItem(w, r, http.StatusCreated, item)
}

// Update handles PUT /{plural}/{id}.
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	op := "update " + h.resource.Singular

	id, err := parseID(r)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}
	changes, err := decodePayload(r, h.resource, modeUpdate)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}

	item, err := h.service.Update(r.Context(), id, changes)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}
	h.respondItem(w, r, http.StatusOK, item)
}

// Delete handles DELETE /{plural}/{id}.
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	op := "delete " + h.resource.Singular

	id, err := parseID(r)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ResourceHandler[T]) respondItem(w http.ResponseWriter, r *http.Request, status int, item *T) {
	shared.RespondWithJSON(w, r, status, map[string]any{h.resource.Singular: item})
}
