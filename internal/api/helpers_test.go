package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/mocks"
	"github.com/isaqu3d/star-wars-wiki-api/internal/service"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	router     chi.Router
	characters *mocks.ResourceStore[domain.Character]
	planets    *mocks.ResourceStore[domain.Planet]
	films      *mocks.ResourceStore[domain.Film]
	starships  *mocks.ResourceStore[domain.Starship]
	vehicles   *mocks.ResourceStore[domain.Vehicle]
}

type apiOption func(*apiConfig)

type apiConfig struct {
	production bool
	uploader   service.ImageUploader
	bodyLimit  int64
}

func withProduction() apiOption { return func(c *apiConfig) { c.production = true } }

func withUploader(u service.ImageUploader) apiOption { return func(c *apiConfig) { c.uploader = u } }

func withBodyLimit(n int64) apiOption { return func(c *apiConfig) { c.bodyLimit = n } }

func newTestAPI(t *testing.T, opts ...apiOption) *testAPI {
	t.Helper()
	var cfg apiConfig
	for _, o := range opts {
		o(&cfg)
	}

	a := &testAPI{
		characters: &mocks.ResourceStore[domain.Character]{},
		planets:    &mocks.ResourceStore[domain.Planet]{},
		films:      &mocks.ResourceStore[domain.Film]{},
		starships:  &mocks.ResourceStore[domain.Starship]{},
		vehicles:   &mocks.ResourceStore[domain.Vehicle]{},
	}
	catalog, err := service.NewCatalog(service.Stores{
		Characters: a.characters,
		Planets:    a.planets,
		Films:      a.films,
		Starships:  a.starships,
		Vehicles:   a.vehicles,
	}, cfg.uploader, nil)
	require.NoError(t, err)

	errs := ErrorHandler{Production: cfg.production}
	r := chi.NewRouter()
	r.NotFound(errs.NotFound)
	r.MethodNotAllowed(errs.MethodNotAllowed)
	Mount(r, catalog, RouteOptions{Errors: errs, BodyLimit: cfg.bodyLimit}, "test")
	a.router = r
	return a
}

func (a *testAPI) do(t *testing.T, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }
