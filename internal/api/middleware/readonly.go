package middleware

import (
	"net/http"

	"github.com/isaqu3d/star-wars-wiki-api/internal/api/shared"
)

// Read-only gate messages.
const (
	ReadOnlyError   = "This API is read-only in production"
	ReadOnlyMessage = "Write operations (POST, PUT, DELETE, PATCH) are not allowed in production. This is a public read-only API."
	ReadOnlyHint    = "Only GET requests are permitted. For development or testing purposes, use a local environment."
)

// ReadOnly rejects POST, PUT, PATCH and DELETE with 405 when enabled.
// Reads, HEAD and OPTIONS always pass.
func ReadOnly(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isWrite(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			body := shared.NewErrorResponse(r, http.StatusMethodNotAllowed, shared.CodeMethodNotAllowed, ReadOnlyError)
			body.Message = ReadOnlyMessage
			body.Hint = ReadOnlyHint
			w.Header().Set("Allow", "GET, HEAD, OPTIONS")
			shared.RespondWithErrorAndLog(w, r, body, nil)
		})
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
