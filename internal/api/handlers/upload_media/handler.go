package upload_media

import (
	"errors"
	"net/http"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
	"github.com/marrymk/marketplace-service/internal/api/middleware"
	"github.com/marrymk/marketplace-service/internal/i18n"
	"github.com/marrymk/marketplace-service/internal/infra/media"
)

const maxMultipartMemory = 10 << 20 // 10 MiB

// UploadResponse ответ с URL загруженного файла
type UploadResponse struct {
	URL string `json:"url"`
}

type Handler struct {
	storage MediaStorage
	bundle  *i18n.Bundle
	logger  Logger
}

func NewHandler(storage MediaStorage, bundle *i18n.Bundle, logger Logger) *Handler {
	return &Handler{
		storage: storage,
		bundle:  bundle,
		logger:  logger,
	}
}

// Handle POST /api/v1/media
// Multipart форма с полем "file"; folder задает подпапку (cover/gallery).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, h.bundle.T(loc, i18n.MsgUnauthorized))
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		h.logger.Warn("POST /media - Failed to parse multipart form: %v", err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	_, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("POST /media - Missing file field: %v", err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	folder := r.FormValue("folder")
	if folder != "cover" && folder != "gallery" {
		folder = "providers"
	} else {
		folder = "providers/" + folder
	}

	url, err := h.storage.Upload(header, folder)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrUnsupportedType), errors.Is(err, media.ErrTooLarge):
			h.logger.Warn("POST /media - Rejected upload from %s: %v", user.Email, err)
			handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgUploadFailed))

		default:
			h.logger.Error("POST /media - Upload failed for %s: %v", user.Email, err)
			handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgUploadFailed))
		}
		return
	}

	h.logger.Info("POST /media - Uploaded %s by %s", url, user.Email)
	handlers.RespondJSON(w, http.StatusCreated, UploadResponse{URL: url})
}
