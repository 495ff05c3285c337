package get_provider_bookings

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
	"github.com/marrymk/marketplace-service/internal/api/middleware"
	"github.com/marrymk/marketplace-service/internal/i18n"
	bookingsService "github.com/marrymk/marketplace-service/internal/service/bookings"
	"github.com/marrymk/marketplace-service/internal/service/bookings/models"
)

type Handler struct {
	service BookingsService
	bundle  *i18n.Bundle
	logger  Logger
}

func NewHandler(service BookingsService, bundle *i18n.Bundle, logger Logger) *Handler {
	return &Handler{
		service: service,
		bundle:  bundle,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, h.bundle.T(loc, i18n.MsgUnauthorized))
		return
	}

	providerID, err := uuid.Parse(mux.Vars(r)["providerId"])
	if err != nil {
		h.logger.Warn("GET /providers/{providerId}/bookings - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	query := r.URL.Query()
	req := &models.GetProviderBookingsRequest{}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("eventDate"); v != "" {
		req.EventDate = &v
	}

	actor := bookingsService.Actor{Email: user.Email, IsAdmin: user.IsAdmin}

	result, err := h.service.GetProviderBookings(r.Context(), providerID, actor, req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrProviderNotFound):
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgProviderNotFound))

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("GET /providers/%s/bookings - Access denied for %s", providerID, user.Email)
			handlers.RespondForbidden(w, h.bundle.T(loc, i18n.MsgAccessDenied))

		case errors.Is(err, bookingsService.ErrInvalidStatus),
			errors.Is(err, bookingsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))

		default:
			h.logger.Error("GET /providers/%s/bookings - error: %v", providerID, err)
			handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
