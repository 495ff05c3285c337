package get_unavailable_dates

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
	"github.com/marrymk/marketplace-service/internal/i18n"
	getUnavailableDates "github.com/marrymk/marketplace-service/internal/usecase/get_unavailable_dates"
)

type Handler struct {
	useCase GetUnavailableDatesUseCase
	bundle  *i18n.Bundle
	logger  Logger
}

func NewHandler(useCase GetUnavailableDatesUseCase, bundle *i18n.Bundle, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		bundle:  bundle,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/unavailable-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	providerID, err := uuid.Parse(mux.Vars(r)["providerId"])
	if err != nil {
		h.logger.Warn("GET /providers/{providerId}/unavailable-dates - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getUnavailableDates.Request{ProviderID: providerID})
	if err != nil {
		switch {
		case errors.Is(err, getUnavailableDates.ErrProviderNotFound):
			h.logger.Warn("GET /providers/%s/unavailable-dates - Provider not found", providerID)
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgProviderNotFound))

		case errors.Is(err, getUnavailableDates.ErrInvalidInput):
			handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))

		default:
			h.logger.Error("GET /providers/%s/unavailable-dates - error: %v", providerID, err)
			handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
