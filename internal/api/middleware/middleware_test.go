package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/isaqu3d/star-wars-wiki-api/internal/api/shared"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestReadOnly(t *testing.T) {
	t.Parallel()

	gated := ReadOnly(true)(okHandler)
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run(method+" blocked", func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(method, "/planets", nil)
			w := httptest.NewRecorder()
			gated.ServeHTTP(w, req)

			require.Equal(t, http.StatusMethodNotAllowed, w.Code)
			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, ReadOnlyError, body.Error)
			assert.Equal(t, shared.CodeMethodNotAllowed, body.Code)
			assert.Equal(t, http.StatusMethodNotAllowed, body.StatusCode)
			assert.Equal(t, ReadOnlyMessage, body.Message)
			assert.Equal(t, ReadOnlyHint, body.Hint)
			assert.Equal(t, "/planets", body.Path)
		})
	}

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		req := httptest.NewRequest(method, "/planets", nil)
		w := httptest.NewRecorder()
		gated.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, method)
	}

	req := httptest.NewRequest(http.MethodDelete, "/planets/1", nil)
	w := httptest.NewRecorder()
	ReadOnly(false)(okHandler).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seenTrace, seenRequestID string
	var seenLogger *slog.Logger
	h := chimw.RequestID(NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTrace = shared.GetTraceID(r.Context())
		seenRequestID = logger.RequestIDFromContext(r.Context())
		seenLogger = logger.FromContextOrDefault(r.Context(), nil)
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(shared.TraceIDHeader, "client-trace-1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "client-trace-1", seenTrace)
	assert.Equal(t, "client-trace-1", w.Header().Get(shared.TraceIDHeader))
	assert.NotEmpty(t, seenRequestID)
	assert.NotNil(t, seenLogger)
	assert.Contains(t, buf.String(), `"msg":"request completed"`)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"trace_id":"client-trace-1"`)
}

func TestRecoverer(t *testing.T) {
	t.Parallel()

	var got any
	h := Recoverer(func(w http.ResponseWriter, _ *http.Request, rec any) {
		got = rec
		w.WriteHeader(http.StatusInternalServerError)
	})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "boom", got)

	abort := Recoverer(func(http.ResponseWriter, *http.Request, any) {})(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) }))
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		abort.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	SecurityHeaders(true)(okHandler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))

	w = httptest.NewRecorder()
	SecurityHeaders(false)(okHandler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	m := NewMetrics("swapi")
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/planets/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Handle("/metrics", m.Handler())

	for _, path := range []string{"/planets/1", "/planets/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body,
		`swapi_http_requests_total{method="GET",route="/planets/{id}",status="404"} 2`), body)
	assert.Contains(t, body, "swapi_http_request_duration_seconds_bucket")
}
