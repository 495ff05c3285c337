package admin_bookings

import (
	"net/http"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
	"github.com/marrymk/marketplace-service/internal/i18n"
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

// Handle GET /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/bookings - error: %v", err)
		handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
