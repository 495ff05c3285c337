package update_booking_status

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

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, h.bundle.T(loc, i18n.MsgUnauthorized))
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%s/status - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	actor := bookingsService.Actor{Email: user.Email, IsAdmin: user.IsAdmin}

	result, err := h.service.UpdateStatus(r.Context(), bookingID, actor, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgBookingNotFound))

		case errors.Is(err, bookingsService.ErrProviderNotFound):
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgProviderNotFound))

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/%s/status - Access denied for %s", bookingID, user.Email)
			handlers.RespondForbidden(w, h.bundle.T(loc, i18n.MsgAccessDenied))

		case errors.Is(err, bookingsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/%s/status - Invalid transition: %v", bookingID, err)
			handlers.RespondConflict(w, h.bundle.T(loc, i18n.MsgInvalidTransition))

		case errors.Is(err, bookingsService.ErrInvalidStatus):
			handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))

		default:
			h.logger.Error("PATCH /bookings/%s/status - error: %v", bookingID, err)
			handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		}
		return
	}

	h.logger.Info("PATCH /bookings/%s/status - Status set to %s by %s", bookingID, result.Status, user.Email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
