package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
	"github.com/isaqu3d/star-wars-wiki-api/internal/redact"
)

// Machine-readable error codes.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidEntity      = "INVALID_ENTITY"
	CodeConflict           = "CONFLICT"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"
	CodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error      string            `json:"error"`
	Message    string            `json:"message,omitempty"`
	Code       string            `json:"code"`
	StatusCode int               `json:"statusCode"`
	Timestamp  string            `json:"timestamp"`
	Path       string            `json:"path"`
	TraceID    string            `json:"trace_id,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	// Detail carries the raw error outside production only.
	Detail string `json:"detail,omitempty"`
	Hint   string `json:"hint,omitempty"`
}

// NewErrorResponse fills the fields every error body carries.
func NewErrorResponse(r *http.Request, status int, code, message string) ErrorResponse {
	return ErrorResponse{
		Error:      message,
		Code:       code,
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Path:       r.URL.RequestURI(),
		TraceID:    GetTraceID(r.Context()),
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// RespondWithError writes body without logging.
func RespondWithError(w http.ResponseWriter, r *http.Request, body ErrorResponse) {
	RespondWithJSON(w, r, body.StatusCode, body)
}

// RespondWithErrorAndLog writes body and logs the redacted cause.
//
// Log level strategy:
//   - 5xx errors: ERROR
//   - 4xx errors: WARN, they are operational and worth seeing in production
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, body ErrorResponse, err error) {
	attrs := []slog.Attr{
		slog.String("trace_id", body.TraceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", body.StatusCode),
		slog.String("code", body.Code),
		slog.String("user_message", body.Error),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelWarn
	msg := "operational error"
	if body.StatusCode >= http.StatusInternalServerError {
		level = slog.LevelError
		msg = "application error"
	}
	logger.FromContext(r.Context()).LogAttrs(r.Context(), level, msg, attrs...)

	RespondWithError(w, r, body)
}
