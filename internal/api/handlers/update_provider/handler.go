package update_provider

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
	"github.com/marrymk/marketplace-service/internal/api/middleware"
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

// Handle PUT /api/v1/providers/{providerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, h.bundle.T(loc, i18n.MsgUnauthorized))
		return
	}

	providerID, err := uuid.Parse(mux.Vars(r)["providerId"])
	if err != nil {
		h.logger.Warn("PUT /providers/{providerId} - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	var req models.UpdateProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /providers/%s - Invalid request body: %v", providerID, err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	actor := providersService.Actor{Email: user.Email, IsAdmin: user.IsAdmin}

	result, err := h.service.Update(r.Context(), providerID, actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, providersService.ErrProviderNotFound):
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgProviderNotFound))

		case errors.Is(err, providersService.ErrAccessDenied):
			h.logger.Warn("PUT /providers/%s - Access denied for %s", providerID, user.Email)
			handlers.RespondForbidden(w, h.bundle.T(loc, i18n.MsgAccessDenied))

		case errors.Is(err, providersService.ErrInvalidInput):
			h.logger.Warn("PUT /providers/%s - Invalid input: %v", providerID, err)
			handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))

		default:
			h.logger.Error("PUT /providers/%s - error: %v", providerID, err)
			handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		}
		return
	}

	h.logger.Info("PUT /providers/%s - Updated by %s", providerID, user.Email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
