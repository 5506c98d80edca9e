package objectstore

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageSize is the largest accepted image payload in bytes.
const MaxImageSize = 5 << 20

// Image validation errors.
var (
	ErrEmptyImage           = errors.New("image is empty")
	ErrImageTooLarge        = fmt.Errorf("image exceeds %d MiB", MaxImageSize>>20)
	ErrUnsupportedImageType = errors.New("only JPEG, PNG and WebP images are allowed")
)

// allowedImageTypes maps accepted MIME types to their canonical extension.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// DetectImageType sniffs data and returns its MIME type and extension.
// The declared content type of an upload is never trusted.
func DetectImageType(data []byte) (contentType, ext string, err error) {
	if len(data) == 0 {
		return "", "", ErrEmptyImage
	}
	if len(data) > MaxImageSize {
		return "", "", ErrImageTooLarge
	}

	mt := mimetype.Detect(data)
	for allowed, e := range allowedImageTypes {
		if mt.Is(allowed) {
			return allowed, e, nil
		}
	}
	return "", "", fmt.Errorf("%w: got %s", ErrUnsupportedImageType, mt.String())
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// SanitizeFileName replaces every character outside [a-zA-Z0-9.-] with an
// underscore. Directory components are dropped first.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" {
		return "_"
	}
	return unsafeKeyChars.ReplaceAllString(name, "_")
}

// CharacterImageKey returns the object key for a character image file.
func CharacterImageKey(fileName string) string {
	return "characters/" + SanitizeFileName(fileName)
}
