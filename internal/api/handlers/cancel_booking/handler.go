package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
	"github.com/marrymk/marketplace-service/internal/api/middleware"
	"github.com/marrymk/marketplace-service/internal/i18n"
	bookingsService "github.com/marrymk/marketplace-service/internal/service/bookings"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, h.bundle.T(loc, i18n.MsgUnauthorized))
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	actor := bookingsService.Actor{Email: user.Email, IsAdmin: user.IsAdmin}

	result, err := h.service.Cancel(r.Context(), bookingID, actor)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgBookingNotFound))

		case errors.Is(err, bookingsService.ErrProviderNotFound):
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgProviderNotFound))

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/%s/cancel - Access denied for %s", bookingID, user.Email)
			handlers.RespondForbidden(w, h.bundle.T(loc, i18n.MsgAccessDenied))

		case errors.Is(err, bookingsService.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/%s/cancel - Cannot cancel: %v", bookingID, err)
			handlers.RespondConflict(w, h.bundle.T(loc, i18n.MsgInvalidTransition))

		default:
			h.logger.Error("PATCH /bookings/%s/cancel - error: %v", bookingID, err)
			handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		}
		return
	}

	h.logger.Info("PATCH /bookings/%s/cancel - Cancelled by %s", bookingID, user.Email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
