package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"generic", errors.New("boom"), false},
		{"not found", ErrNotFound, true},
		{"wrapped not found", fmt.Errorf("get planet: %w", ErrNotFound), true},
		{"duplicate", ErrDuplicate, false},
		{"store error", NewStoreError("films", "get", "query failed", ErrNotFound), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsNotFoundError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("%w: referenced row does not exist", ErrInvalidEntity)
	err := NewStoreError("characters", "create", "insert failed", cause)
	assert.Equal(t, "create characters: insert failed: invalid entity: referenced row does not exist", err.Error())
	assert.ErrorIs(t, err, ErrInvalidEntity)

	bare := NewStoreError("planets", "delete", "no rows", nil)
	assert.Equal(t, "delete planets: no rows", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
