package register_provider

import (
	"errors"
	"net/http"

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

// Handle POST /api/v1/providers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, h.bundle.T(loc, i18n.MsgUnauthorized))
		return
	}

	var req models.RegisterProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	result, err := h.service.Register(r.Context(), user.Email, &req)
	if err != nil {
		switch {
		case errors.Is(err, providersService.ErrSlugTaken):
			h.logger.Warn("POST /providers - Slug taken: %s", req.Slug)
			handlers.RespondConflict(w, h.bundle.T(loc, i18n.MsgSlugTaken))

		case errors.Is(err, providersService.ErrOwnerHasProvider):
			h.logger.Warn("POST /providers - Owner %s already has a provider", user.Email)
			handlers.RespondConflict(w, h.bundle.T(loc, i18n.MsgProviderExists))

		case errors.Is(err, providersService.ErrInvalidInput):
			h.logger.Warn("POST /providers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))

		default:
			h.logger.Error("POST /providers - error for owner=%s: %v", user.Email, err)
			handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		}
		return
	}

	h.logger.Info("POST /providers - Provider registered: id=%s slug=%s owner=%s", result.ID, result.Slug, user.Email)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
