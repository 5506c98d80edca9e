package seed

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/objectstore"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
)

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ImageResult counts what SeedImages did.
type ImageResult struct {
	Uploaded  int
	Updated   int64
	Skipped   int
	Unmatched []string
}

// ImageSeeder uploads character portraits and records their URLs.
type ImageSeeder struct {
	characters store.ResourceStore[domain.Character]
	uploader   Uploader
	logger     *slog.Logger
}

// NewImageSeeder creates an ImageSeeder.
func NewImageSeeder(characters store.ResourceStore[domain.Character], uploader Uploader, logger *slog.Logger) *ImageSeeder {
	if characters == nil {
		panic("characters store cannot be nil")
	}
	if uploader == nil {
		panic("uploader cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageSeeder{
		characters: characters,
		uploader:   uploader,
		logger:     logger.With(slog.String("component", "image_seeder")),
	}
}

// SeedImages uploads every image file at the top level of fsys to
// characters/<file> and sets image_url on the character whose name is the
// file name without extension, first letter upper-cased. Files that are not
// JPEG, PNG or WebP are skipped.
func (s *ImageSeeder) SeedImages(ctx context.Context, fsys fs.FS) (ImageResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return ImageResult{}, fmt.Errorf("read image directory: %w", err)
	}

	var res ImageResult
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		file := entry.Name()

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return res, fmt.Errorf("read %s: %w", file, err)
		}
		contentType, _, err := objectstore.DetectImageType(data)
		if err != nil {
			log.Warn("skipping file", slog.String("file", file), slog.String("reason", err.Error()))
			res.Skipped++
			continue
		}

		url, err := s.uploader.Upload(ctx, objectstore.CharacterImageKey(file), data, contentType)
		if err != nil {
			return res, fmt.Errorf("upload %s: %w", file, err)
		}
		res.Uploaded++

		name := CharacterNameFromFile(file)
		n, err := s.characters.UpdateColumnWhere(ctx, domain.CharacterImageColumn, url, "name", name)
		if err != nil {
			return res, fmt.Errorf("set image for %q: %w", name, err)
		}
		if n == 0 {
			log.Warn("no character matches image", slog.String("file", file), slog.String("name", name))
			res.Unmatched = append(res.Unmatched, file)
			continue
		}
		res.Updated += n
		log.Info("updated character image", slog.String("name", name), slog.String("url", url))
	}
	return res, nil
}

// CharacterNameFromFile returns the file name without extension with its
// first letter upper-cased, e.g. "leia.png" becomes "Leia".
func CharacterNameFromFile(file string) string {
	stem := strings.TrimSuffix(file, path.Ext(file))
	r, size := utf8.DecodeRuneInString(stem)
	if r == utf8.RuneError {
		return stem
	}
	return string(unicode.ToUpper(r)) + stem[size:]
}
