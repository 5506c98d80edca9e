package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"  Luke  ", "Luke"},
		{"Obi-Wan Kenobi", "Obi-Wan Kenobi"},
		{"R2-D2", "R2-D2"},
		{"'; DROP TABLE planets; --", "DROP TABLE planets --"},
		{"100%", "100"},
		{"", ""},
		{strings.Repeat("a", 150), strings.Repeat("a", 100)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeSearch(tt.in), tt.in)
	}
}

func TestParseListQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?search=ho&orderBy=population&page=2&limit=25", nil)
	q, err := parseListQuery(req, domain.Planets.Sortable)
	require.NoError(t, err)
	assert.Equal(t, service.ListQuery{Search: "ho", OrderBy: "population", Page: 2, Limit: 25}, q)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	q, err = parseListQuery(req, domain.Planets.Sortable)
	require.NoError(t, err)
	assert.Equal(t, service.ListQuery{OrderBy: "id", Page: 1, Limit: 10}, q)

	req = httptest.NewRequest(http.MethodGet, "/?page=abc&limit=0", nil)
	_, err = parseListQuery(req, domain.Planets.Sortable)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "must be an integer", ve.Fields["page"])
	assert.Equal(t, "must be at least 1", ve.Fields["limit"])

	req = httptest.NewRequest(http.MethodGet, "/?page=100000000000000000&limit=100", nil)
	_, err = parseListQuery(req, domain.Planets.Sortable)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "must be at most 21474837", ve.Fields["page"])

	req = httptest.NewRequest(http.MethodGet, "/?page=21474837&limit=100", nil)
	q, err = parseListQuery(req, domain.Planets.Sortable)
	require.NoError(t, err)
	assert.Equal(t, service.MaxPage, q.Page)
}

func TestParseID(t *testing.T) {
	t.Parallel()

	withID := func(id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := parseID(withID("2147483647"))
	require.NoError(t, err)
	assert.Equal(t, int64(MaxID), id)

	for _, bad := range []string{"", "0", "x", "2147483648", "-3"} {
		_, err := parseID(withID(bad))
		assert.ErrorIs(t, err, domain.ErrInvalidID, bad)
		assert.ErrorIs(t, err, domain.ErrValidation, bad)
	}
}
