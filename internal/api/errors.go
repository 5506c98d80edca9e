package api

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/isaqu3d/star-wars-wiki-api/internal/api/shared"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/service"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
)

// ErrorHandler renders errors returned by services as JSON responses.
// It is the only place where errors are mapped to status codes.
type ErrorHandler struct {
	// Production hides raw error details from response bodies.
	Production bool
}

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking their types to clients.
func MapErrorToStatusCode(err error) int {
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorCode returns the machine-readable code for status.
func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return shared.CodeValidation
	case http.StatusNotFound:
		return shared.CodeNotFound
	case http.StatusConflict:
		return shared.CodeConflict
	case http.StatusMethodNotAllowed:
		return shared.CodeMethodNotAllowed
	case http.StatusRequestEntityTooLarge:
		return shared.CodePayloadTooLarge
	case http.StatusTooManyRequests:
		return shared.CodeTooManyRequests
	case http.StatusServiceUnavailable:
		return shared.CodeServiceUnavailable
	default:
		return shared.CodeInternal
	}
}

// GetSafeErrorMessage returns a client-facing message for err. operation
// describes what failed, e.g. "fetch characters", and is used for
// unexpected errors.
func GetSafeErrorMessage(err error, operation string) string {
	var nf *domain.NotFoundError
	switch {
	case err == nil:
		return "An unexpected error occurred"
	case errors.Is(err, domain.ErrValidation):
		return "Validation error"
	case errors.As(err, &nf):
		return nf.Error()
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	case MapErrorToStatusCode(err) == http.StatusRequestEntityTooLarge:
		return "Request body is too large"
	case errors.Is(err, service.ErrStorageUnavailable):
		return "Image storage is not configured"
	case operation != "":
		return "Failed to " + operation
	default:
		return "Internal server error"
	}
}

// HandleAPIError writes the error response for err and logs it.
func (h ErrorHandler) HandleAPIError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	status := MapErrorToStatusCode(err)
	body := shared.NewErrorResponse(r, status, errorCode(status), GetSafeErrorMessage(err, operation))

	var ve *domain.ValidationError
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &ve):
		body.Details = ve.Fields
	case errors.As(err, &nf):
		body.Message = nf.Message()
	case errors.Is(err, store.ErrInvalidEntity):
		body.Code = shared.CodeInvalidEntity
	}

	if status >= http.StatusInternalServerError && !h.Production && err != nil {
		body.Detail = err.Error()
	}

	shared.RespondWithErrorAndLog(w, r, body, err)
}

// NotFound renders unknown routes.
func (h ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	body := shared.NewErrorResponse(r, http.StatusNotFound, shared.CodeNotFound,
		fmt.Sprintf("Route %s %s not found", r.Method, r.URL.Path))
	shared.RespondWithErrorAndLog(w, r, body, nil)
}

// MethodNotAllowed renders known routes requested with the wrong verb.
func (h ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	body := shared.NewErrorResponse(r, http.StatusMethodNotAllowed, shared.CodeMethodNotAllowed,
		fmt.Sprintf("Method %s not allowed on %s", r.Method, r.URL.Path))
	shared.RespondWithErrorAndLog(w, r, body, nil)
}

// Panic renders a recovered panic. The stack is only exposed outside production.
func (h ErrorHandler) Panic(w http.ResponseWriter, r *http.Request, recovered any) {
	err := fmt.Errorf("panic: %v", recovered)
	body := shared.NewErrorResponse(r, http.StatusInternalServerError, shared.CodeInternal, "Internal server error")
	if !h.Production {
		body.Detail = fmt.Sprintf("%v\n%s", recovered, debug.Stack())
	}
	shared.RespondWithErrorAndLog(w, r, body, err)
}

// TooManyRequests renders rate limit rejections.
func (h ErrorHandler) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	body := shared.NewErrorResponse(r, http.StatusTooManyRequests, shared.CodeTooManyRequests,
		"Too many requests, please try again later")
	shared.RespondWithErrorAndLog(w, r, body, nil)
}
