package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isaqu3d/star-wars-wiki-api/internal/api/shared"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/objectstore"
	"github.com/isaqu3d/star-wars-wiki-api/internal/service"
)

// ImageFormField is the multipart field holding the uploaded image.
const ImageFormField = "image"

// MaxImageRequestBytes bounds the whole multipart request.
const MaxImageRequestBytes = objectstore.MaxImageSize + 1<<20

// ImageHandler serves character image uploads.
type ImageHandler struct {
	service *service.ImageService
	errors  ErrorHandler
	logger  *slog.Logger
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(svc *service.ImageService, errs ErrorHandler, logger *slog.Logger) *ImageHandler {
	if svc == nil {
		panic("service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageHandler{
		service: svc,
		errors:  errs,
		logger:  logger.With(slog.String("component", "image_handler")),
	}
}

// Routes registers PUT /image below a character's /{id} router.
func (h *ImageHandler) Routes(r chi.Router) {
	r.Put("/image", h.Upload)
}

// Upload handles PUT /characters/{id}/image.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "upload character image"

	id, err := parseID(r)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}
	if !h.service.Available() {
		h.errors.HandleAPIError(w, r, service.ErrStorageUnavailable, op)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxImageRequestBytes)
	file, _, err := r.FormFile(ImageFormField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			err = domain.NewValidationError(ImageFormField, objectstore.ErrImageTooLarge.Error(), err)
		} else {
			err = domain.NewValidationError(ImageFormField, "multipart field image is required", err)
		}
		h.errors.HandleAPIError(w, r, err, op)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, objectstore.MaxImageSize+1))
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}

	character, err := h.service.SetCharacterImage(r.Context(), id, data)
	if err != nil {
		h.errors.HandleAPIError(w, r, err, op)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{domain.Characters.Singular: character})
}
