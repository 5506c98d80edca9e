package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/mocks"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/objectstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestImageServiceWithoutStorage(t *testing.T) {
	t.Parallel()

	svc, err := NewImageService(&mocks.ResourceStore[domain.Character]{}, nil, nil)
	require.NoError(t, err)
	assert.False(t, svc.Available())

	_, err = svc.SetCharacterImage(context.Background(), 1, pngBytes)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestImageServiceSetCharacterImage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("uploads and stores url", func(t *testing.T) {
		t.Parallel()
		characters := &mocks.ResourceStore[domain.Character]{}
		uploader := &mocks.Uploader{}
		svc, err := NewImageService(characters, uploader, nil)
		require.NoError(t, err)

		characters.On("Exists", ctx, int64(1)).Return(true, nil)
		uploader.On("Upload", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "characters/1/") && strings.HasSuffix(key, ".png")
		}), pngBytes, "image/png").Return("https://cdn.example.com/characters/1/x.png", nil)
		characters.On("Update", ctx, int64(1), domain.Changes{"image_url": "https://cdn.example.com/characters/1/x.png"}).
			Return(&domain.Character{ID: 1, Name: "Luke", ImageURL: strPtr("https://cdn.example.com/characters/1/x.png")}, nil)

		character, err := svc.SetCharacterImage(ctx, 1, pngBytes)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/characters/1/x.png", *character.ImageURL)
		uploader.AssertExpectations(t)
	})

	t.Run("missing character", func(t *testing.T) {
		t.Parallel()
		characters := &mocks.ResourceStore[domain.Character]{}
		uploader := &mocks.Uploader{}
		svc, err := NewImageService(characters, uploader, nil)
		require.NoError(t, err)
		characters.On("Exists", ctx, int64(2)).Return(false, nil)

		_, err = svc.SetCharacterImage(ctx, 2, pngBytes)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		t.Parallel()
		characters := &mocks.ResourceStore[domain.Character]{}
		svc, err := NewImageService(characters, &mocks.Uploader{}, nil)
		require.NoError(t, err)
		characters.On("Exists", ctx, int64(1)).Return(true, nil)

		_, err = svc.SetCharacterImage(ctx, 1, []byte("GIF89a\x01\x00\x01\x00"))
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, objectstore.ErrUnsupportedImageType.Error(), ve.Fields["image"])
	})

	t.Run("upload failure", func(t *testing.T) {
		t.Parallel()
		characters := &mocks.ResourceStore[domain.Character]{}
		uploader := &mocks.Uploader{}
		svc, err := NewImageService(characters, uploader, nil)
		require.NoError(t, err)
		characters.On("Exists", ctx, int64(1)).Return(true, nil)
		uploader.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("denied"))

		_, err = svc.SetCharacterImage(ctx, 1, pngBytes)
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		characters.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}
