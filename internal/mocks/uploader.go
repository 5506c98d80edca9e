package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Uploader mocks the object store uploader used for character images.
type Uploader struct {
	mock.Mock
}

// Upload stores data under key and returns its public URL.
func (m *Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}
