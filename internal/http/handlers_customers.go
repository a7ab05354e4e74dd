package httpx

import (
	"net/http"
	"strconv"

	"github.com/nexacrm/crm-console/internal/domain/model"
	apperrors "github.com/nexacrm/crm-console/internal/errors"
	"github.com/nexacrm/crm-console/internal/ports"
)

// CustomerHandlers provides HTTP handlers for the customer proxy surface.
type CustomerHandlers struct {
	Gateway ports.CustomerGateway
}

// List handles GET /api/customers.
func (h *CustomerHandlers) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Gateway.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, customers)
}

// GetByID handles GET /api/customers/{id}.
func (h *CustomerHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	customer, err := h.Gateway.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, customer)
}

// Create handles POST /api/customers.
func (h *CustomerHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCustomerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.CompanyName == "" {
		WriteAppError(w, apperrors.NewField("companyName", "Firma adı gereklidir"))
		return
	}

	customer, err := h.Gateway.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, customer)
}

// Update handles PUT /api/customers/{id}.
func (h *CustomerHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req model.UpdateCustomerRequest
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

// Delete handles DELETE /api/customers/{id}.
func (h *CustomerHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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

// ChangeLogs handles GET /api/customers/logs.
func (h *CustomerHandlers) ChangeLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Gateway.ChangeLogs(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, logs)
}

// ChangeLogsByCustomer handles GET /api/customers/{id}/logs.
func (h *CustomerHandlers) ChangeLogsByCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	logs, err := h.Gateway.ChangeLogsByCustomer(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, logs)
}

// pathID parses the {id} path segment as an int64, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_id",
			Err:     apperrors.New(apperrors.ErrCodeValidation, "Geçersiz id"),
		})
		return 0, false
	}
	return id, true
}
