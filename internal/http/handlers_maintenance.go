package httpx

import (
	"net/http"

	"github.com/nexacrm/crm-console/internal/domain/model"
	apperrors "github.com/nexacrm/crm-console/internal/errors"
	"github.com/nexacrm/crm-console/internal/ports"
)

// MaintenanceHandlers provides HTTP handlers for maintenance agreements.
type MaintenanceHandlers struct {
	Gateway ports.MaintenanceGateway
}

// List handles GET /api/maintenances.
func (h *MaintenanceHandlers) List(w http.ResponseWriter, r *http.Request) {
	agreements, err := h.Gateway.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, agreements)
}

// Create handles POST /api/maintenances.
func (h *MaintenanceHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMaintenanceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	switch {
	case req.CustomerID == 0:
		WriteAppError(w, apperrors.NewField("customerId", "Müşteri seçimi gereklidir"))
		return
	case req.Subject == "":
		WriteAppError(w, apperrors.NewField("subject", "Konu gereklidir"))
		return
	}

	agreement, err := h.Gateway.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, agreement)
}

// Update handles PUT /api/maintenances/{id}.
func (h *MaintenanceHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req model.UpdateMaintenanceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	if err := h.Gateway.Update(r.Context(), id, req); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Delete handles DELETE /api/maintenances/{id}.
func (h *MaintenanceHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Gateway.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
