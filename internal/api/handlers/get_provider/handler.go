package get_provider

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
	"github.com/marrymk/marketplace-service/internal/i18n"
	providersService "github.com/marrymk/marketplace-service/internal/service/providers"
)

type Handler struct {
	service ProvidersService
	bundle  *i18n.Bundle
	logger  Logger
}

func NewHandler(service ProvidersService, bundle *i18n.Bundle, logger Logger) *Handler {
	return &Handler{
		service: service,
		bundle:  bundle,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())
	slug := mux.Vars(r)["slug"]

	result, err := h.service.GetBySlug(r.Context(), slug, string(loc))
	if err != nil {
		if errors.Is(err, providersService.ErrProviderNotFound) {
			h.logger.Warn("GET /providers/%s - Provider not found", slug)
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgProviderNotFound))
			return
		}
		h.logger.Error("GET /providers/%s - error: %v", slug, err)
		handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
