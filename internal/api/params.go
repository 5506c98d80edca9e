package api

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/service"
)

// Query and path parameter limits.
const (
	MaxSearchLength = 100
	MaxID           = 2147483647
)

var searchUnsafeChars = regexp.MustCompile(`[^\w\s-]`)

// sanitizeSearch trims the term, strips everything except word characters,
// whitespace and hyphens, and truncates to MaxSearchLength runes.
func sanitizeSearch(raw string) string {
	s := searchUnsafeChars.ReplaceAllString(strings.TrimSpace(raw), "")
	if r := []rune(s); len(r) > MaxSearchLength {
		s = string(r[:MaxSearchLength])
	}
	return strings.TrimSpace(s)
}

// parseListQuery reads search, orderBy, page and limit. Every bad parameter
// is reported, not only the first.
func parseListQuery(r *http.Request, sortable func(string) bool) (service.ListQuery, error) {
	q := r.URL.Query()
	out := service.ListQuery{
		Search:  sanitizeSearch(q.Get("search")),
		OrderBy: domain.IDColumn,
		Page:    service.DefaultPage,
		Limit:   service.DefaultLimit,
	}
	verr := &domain.ValidationError{}

	if v := q.Get("orderBy"); v != "" {
		if sortable(v) {
			out.OrderBy = v
		} else {
			verr.Add("orderBy", "invalid sort column")
		}
	}

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		switch {
		case err != nil:
			verr.Add("page", "must be an integer")
		case n < 1:
			verr.Add("page", "must be at least 1")
		case n > service.MaxPage:
			verr.Add("page", "must be at most "+strconv.Itoa(service.MaxPage))
		default:
			out.Page = n
		}
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		switch {
		case err != nil:
			verr.Add("limit", "must be an integer")
		case n < 1:
			verr.Add("limit", "must be at least 1")
		case n > service.MaxLimit:
			verr.Add("limit", "must be at most "+strconv.Itoa(service.MaxLimit))
		default:
			out.Limit = n
		}
	}

	if verr.HasErrors() {
		return service.ListQuery{}, verr
	}
	return out, nil
}

// parseID reads the {id} path parameter as an integer in 1..MaxID.
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, domain.NewValidationError("id", "is required", domain.ErrInvalidID)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("id", "must be an integer", domain.ErrInvalidID)
	}
	if id < 1 || id > MaxID {
		return 0, domain.NewValidationError("id", "must be between 1 and 2147483647", domain.ErrInvalidID)
	}
	return id, nil
}
