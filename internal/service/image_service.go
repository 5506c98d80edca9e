package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/objectstore"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
)

// ImageUploader stores an object and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ImageService attaches uploaded portraits to characters.
type ImageService struct {
	characters store.ResourceStore[domain.Character]
	uploader   ImageUploader
	logger     *slog.Logger
}

// NewImageService creates an ImageService. uploader may be nil, in which
// case every upload fails with ErrStorageUnavailable.
func NewImageService(
	characters store.ResourceStore[domain.Character],
	uploader ImageUploader,
	logger *slog.Logger,
) (*ImageService, error) {
	if characters == nil {
		return nil, constructorError("character images")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageService{
		characters: characters,
		uploader:   uploader,
		logger:     logger.With(slog.String("component", "image_service")),
	}, nil
}

// Available reports whether uploads can succeed.
func (s *ImageService) Available() bool {
	return s.uploader != nil
}

// SetCharacterImage validates data, uploads it and stores the resulting URL
// as the character's image_url.
func (s *ImageService) SetCharacterImage(ctx context.Context, id int64, data []byte) (*domain.Character, error) {
	if s.uploader == nil {
		return nil, ErrStorageUnavailable
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	exists, err := s.characters.Exists(ctx, id)
	if err != nil {
		return nil, NewServiceError("upload", "character image", err)
	}
	if !exists {
		return nil, domain.NewNotFoundError(domain.Characters.Label, id)
	}

	contentType, ext, err := objectstore.DetectImageType(data)
	if err != nil {
		return nil, domain.NewValidationError("image", imageMessage(err), err)
	}

	key := fmt.Sprintf("characters/%d/%s%s", id, uuid.NewString(), ext)
	url, err := s.uploader.Upload(ctx, key, data, contentType)
	if err != nil {
		log.Error("failed to upload character image",
			slog.Int64("character_id", id),
			slog.String("error", err.Error()))
		return nil, NewServiceError("upload", "character image", err)
	}

	character, err := s.characters.Update(ctx, id, domain.Changes{domain.CharacterImageColumn: url})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NewNotFoundError(domain.Characters.Label, id)
		}
		return nil, NewServiceError("update", "character", err)
	}

	log.Info("character image updated",
		slog.Int64("character_id", id),
		slog.String("key", key))
	return character, nil
}

func imageMessage(err error) string {
	switch {
	case errors.Is(err, objectstore.ErrEmptyImage):
		return "image is required"
	case errors.Is(err, objectstore.ErrImageTooLarge):
		return objectstore.ErrImageTooLarge.Error()
	default:
		return objectstore.ErrUnsupportedImageType.Error()
	}
}
