// Package reserved_dates админский CRUD дат, заблокированных оператором.
package reserved_dates

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
	"github.com/marrymk/marketplace-service/internal/i18n"
	rdService "github.com/marrymk/marketplace-service/internal/service/reserveddates"
	"github.com/marrymk/marketplace-service/internal/service/reserveddates/models"
)

type Handler struct {
	service ReservedDatesService
	bundle  *i18n.Bundle
	logger  Logger
}

func NewHandler(service ReservedDatesService, bundle *i18n.Bundle, logger Logger) *Handler {
	return &Handler{
		service: service,
		bundle:  bundle,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/admin/reserved-dates
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	var req models.UpsertReservedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reserved-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rdService.ErrProviderNotFound):
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgProviderNotFound))

		case errors.Is(err, rdService.ErrInvalidInput):
			h.logger.Warn("POST /admin/reserved-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))

		default:
			h.logger.Error("POST /admin/reserved-dates - error: %v", err)
			handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		}
		return
	}

	h.logger.Info("POST /admin/reserved-dates - Created id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/admin/reserved-dates?providerId=...
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	var providerID *uuid.UUID
	if v := r.URL.Query().Get("providerId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
			return
		}
		providerID = &id
	}

	result, err := h.service.List(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /admin/reserved-dates - error: %v", err)
		handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/admin/reserved-dates/{reservedDateId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["reservedDateId"])
	if err != nil {
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, rdService.ErrReservedDateNotFound) {
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgReservedNotFound))
			return
		}
		h.logger.Error("GET /admin/reserved-dates/%s - error: %v", id, err)
		handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/admin/reserved-dates/{reservedDateId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["reservedDateId"])
	if err != nil {
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	var req models.UpsertReservedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/reserved-dates/%s - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, rdService.ErrReservedDateNotFound):
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgReservedNotFound))

		case errors.Is(err, rdService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/reserved-dates/%s - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))

		default:
			h.logger.Error("PUT /admin/reserved-dates/%s - error: %v", id, err)
			handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		}
		return
	}

	h.logger.Info("PUT /admin/reserved-dates/%s - Updated", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/reserved-dates/{reservedDateId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["reservedDateId"])
	if err != nil {
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, rdService.ErrReservedDateNotFound) {
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgReservedNotFound))
			return
		}
		h.logger.Error("DELETE /admin/reserved-dates/%s - error: %v", id, err)
		handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		return
	}

	h.logger.Info("DELETE /admin/reserved-dates/%s - Removed", id)
	handlers.RespondNoContent(w)
}
