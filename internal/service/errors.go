package service

import (
	"errors"
	"fmt"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
)

// Common service errors. The API layer maps them to HTTP status codes.
var (
	// ErrStorageUnavailable indicates that image uploads are requested but no
	// object store is configured. API layer should map this to 503.
	ErrStorageUnavailable = errors.New("image storage is not configured")
)

// ServiceError wraps unexpected failures with the operation and resource
// that produced them.
type ServiceError struct {
	// Operation is the verb that failed, e.g. "fetch", "create".
	Operation string
	// Resource is the client-facing resource name, e.g. "characters".
	Resource string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %v", e.Operation, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s %s failed", e.Operation, e.Resource)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError wraps err for operation on resource.
// Errors the API layer renders directly are returned unwrapped.
func NewServiceError(operation, resource string, err error) error {
	if err == nil {
		return nil
	}
	if isExpected(err) {
		return err
	}
	return &ServiceError{Operation: operation, Resource: resource, Err: err}
}

// isExpected reports whether err describes a client-caused condition.
func isExpected(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, store.ErrInvalidEntity) ||
		errors.Is(err, store.ErrDuplicate) ||
		errors.Is(err, ErrStorageUnavailable)
}

func constructorError(name string) error {
	return &ServiceError{Operation: "create_service", Resource: name, Err: errors.New("dependency cannot be nil")}
}
