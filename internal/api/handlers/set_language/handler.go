package set_language

import (
	"net/http"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
	"github.com/marrymk/marketplace-service/internal/api/middleware"
	"github.com/marrymk/marketplace-service/internal/i18n"
)

// SetLanguageRequest запрос на смену языка
type SetLanguageRequest struct {
	Language string `json:"language"` // en, sq, mk
}

// SetLanguageResponse подтверждение смены языка
type SetLanguageResponse struct {
	Language string `json:"language"`
}

type Handler struct {
	prefs  PreferenceStore
	bundle *i18n.Bundle
	logger Logger
}

func NewHandler(prefs PreferenceStore, bundle *i18n.Bundle, logger Logger) *Handler {
	return &Handler{
		prefs:  prefs,
		bundle: bundle,
		logger: logger,
	}
}

// Handle PUT /api/v1/preferences/language
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, h.bundle.T(loc, i18n.MsgUnauthorized))
		return
	}

	var req SetLanguageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /preferences/language - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	newLoc, valid := i18n.ParseLocale(req.Language)
	if !valid {
		h.logger.Warn("PUT /preferences/language - Unsupported language %q from %s", req.Language, user.Email)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidLanguage))
		return
	}

	if err := h.prefs.Set(r.Context(), user.Email, newLoc); err != nil {
		h.logger.Error("PUT /preferences/language - Failed to save preference for %s: %v", user.Email, err)
		handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		return
	}

	h.logger.Info("PUT /preferences/language - %s switched to %s", user.Email, newLoc)
	handlers.RespondJSON(w, http.StatusOK, SetLanguageResponse{Language: string(newLoc)})
}
