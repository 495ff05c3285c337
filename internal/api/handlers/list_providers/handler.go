package list_providers

import (
	"errors"
	"net/http"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
	"github.com/marrymk/marketplace-service/internal/i18n"
	providersService "github.com/marrymk/marketplace-service/internal/service/providers"
	"github.com/marrymk/marketplace-service/internal/service/providers/models"
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

// Handle GET /api/v1/providers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())
	query := r.URL.Query()

	req := &models.ListProvidersRequest{Lang: string(loc)}
	if v := query.Get("category"); v != "" {
		req.Category = &v
	}
	if v := query.Get("city"); v != "" {
		req.City = &v
	}
	if v := query.Get("q"); v != "" {
		req.Query = &v
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, providersService.ErrInvalidInput) {
			h.logger.Warn("GET /providers - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
			return
		}
		h.logger.Error("GET /providers - error: %v", err)
		handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
