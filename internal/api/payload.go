package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/isaqu3d/star-wars-wiki-api/internal/api/shared"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
)

// writeMode selects the presence rules applied to a payload.
type writeMode int

const (
	modeCreate writeMode = iota
	modeUpdate
)

// decodePayload reads a JSON object from the request body and returns the
// column changes it carries. Only keys present in the body are returned;
// unknown keys are ignored and id is never writable.
//
// On create every required column must be present and non-null. On update
// required columns may be omitted but never set to null.
func decodePayload[T any](r *http.Request, resource *domain.Resource[T], mode writeMode) (domain.Changes, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, err
		}
		return nil, fmt.Errorf("read request body: %w", err)
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(body), &present); err != nil || present == nil {
		return nil, domain.NewValidationError("body", "must be a JSON object", domain.ErrInvalidFormat)
	}

	input := resource.NewInput()
	if err := json.Unmarshal(body, input); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, domain.NewValidationError(typeErr.Field, typeMessage(typeErr.Type), domain.ErrInvalidFormat)
		}
		return nil, domain.NewValidationError("body", "must be a JSON object", domain.ErrInvalidFormat)
	}

	verr := &domain.ValidationError{}
	if err := shared.ValidateRequest(input); err != nil {
		msgs := shared.ValidationMessages(err)
		if msgs == nil {
			return nil, fmt.Errorf("validate %s payload: %w", resource.Singular, err)
		}
		for field, msg := range msgs {
			verr.Add(field, msg)
		}
	}

	all := input.Changes()
	changes := make(domain.Changes, len(present))
	for col, value := range all {
		if _, ok := present[col]; !ok {
			continue
		}
		if value == nil && resource.IsRequired(col) {
			verr.Add(col, "cannot be null")
			continue
		}
		changes[col] = value
	}

	if mode == modeCreate {
		for _, col := range resource.Required {
			if _, ok := present[col]; !ok {
				verr.Add(col, "is required")
			}
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return changes, nil
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "has an invalid type"
	}
	switch t.Kind() {
	case reflect.String:
		return "must be a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be an integer"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Bool:
		return "must be a boolean"
	default:
		return "has an invalid type"
	}
}
