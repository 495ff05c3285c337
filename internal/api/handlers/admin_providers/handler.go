// Package admin_providers админские операции над провайдерами:
// просмотр всех, модерация, включение/отключение.
package admin_providers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
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

// HandleList GET /api/v1/admin/providers
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/providers - error: %v", err)
		handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleApproval PATCH /api/v1/admin/providers/{providerId}/approval
func (h *Handler) HandleApproval(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	providerID, err := uuid.Parse(mux.Vars(r)["providerId"])
	if err != nil {
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	var req models.ModerationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/providers/%s/approval - Invalid request body: %v", providerID, err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	result, err := h.service.SetApproval(r.Context(), providerID, &req)
	if err != nil {
		if errors.Is(err, providersService.ErrProviderNotFound) {
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgProviderNotFound))
			return
		}
		h.logger.Error("PATCH /admin/providers/%s/approval - error: %v", providerID, err)
		handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		return
	}

	h.logger.Info("PATCH /admin/providers/%s/approval - approve=%t", providerID, req.Approve)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSetActive PATCH /api/v1/admin/providers/{providerId}/active
func (h *Handler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	providerID, err := uuid.Parse(mux.Vars(r)["providerId"])
	if err != nil {
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	var req models.SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/providers/%s/active - Invalid request body: %v", providerID, err)
		handlers.RespondBadRequest(w, h.bundle.T(loc, i18n.MsgInvalidRequestBody))
		return
	}

	result, err := h.service.SetActive(r.Context(), providerID, req.IsActive)
	if err != nil {
		if errors.Is(err, providersService.ErrProviderNotFound) {
			handlers.RespondNotFound(w, h.bundle.T(loc, i18n.MsgProviderNotFound))
			return
		}
		h.logger.Error("PATCH /admin/providers/%s/active - error: %v", providerID, err)
		handlers.RespondInternalError(w, h.bundle.T(loc, i18n.MsgInternalError))
		return
	}

	h.logger.Info("PATCH /admin/providers/%s/active - active=%t", providerID, req.IsActive)
	handlers.RespondJSON(w, http.StatusOK, result)
}
