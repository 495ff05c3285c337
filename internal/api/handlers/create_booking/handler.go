package create_booking

import (
	"errors"
	"net/http"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
	"github.com/marrymk/marketplace-service/internal/i18n"
	createBooking "github.com/marrymk/marketplace-service/internal/usecase/create_booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	bundle  *i18n.Bundle
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, bundle *i18n.Bundle, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		bundle:  bundle,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidDate))
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDateConflict):
			h.logger.Warn("POST /bookings - Date conflict: provider=%s, date=%s", req.ProviderID, req.EventDate)
			handlers.RespondConflict(w, h.bundle.T(loc, i18n.MsgDateAlreadyBooked))

		case errors.Is(err, createBooking.ErrProviderNotFound),
			errors.Is(err, createBooking.ErrProviderNotBookable):
			h.logger.Warn("POST /bookings - Provider not found or not bookable: provider=%s", req.ProviderID)
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgProviderNotFound))

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: provider=%s, date=%s", req.ProviderID, req.EventDate)
			handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgDateInPast))

		case errors.Is(err, createBooking.ErrGuestsOverCapacity):
			h.logger.Warn("POST /bookings - Guests over capacity: provider=%s", req.ProviderID)
			handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgGuestsOverCapacity))

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: provider=%s, error=%v", req.ProviderID, err)
			handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		}
		return
	}

	response := FromUseCaseResponse(result, h.bundle.T(loc, i18n.MsgBookingSubmitted))

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, provider=%s, date=%s",
		result.ID, result.ProviderID, result.EventDate)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
