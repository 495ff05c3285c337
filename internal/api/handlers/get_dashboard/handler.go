package get_dashboard

import (
	"errors"
	"net/http"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
	"github.com/marrymk/marketplace-service/internal/api/middleware"
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

// Handle GET /api/v1/dashboard/provider
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, h.bundle.T(loc, i18n.MsgUnauthorized))
		return
	}

	result, err := h.service.GetDashboard(r.Context(), user.Email)
	if err != nil {
		if errors.Is(err, providersService.ErrProviderNotFound) {
			h.logger.Warn("GET /dashboard/provider - No provider for owner=%s", user.Email)
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgProviderNotFound))
			return
		}
		h.logger.Error("GET /dashboard/provider - error for owner=%s: %v", user.Email, err)
		handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
