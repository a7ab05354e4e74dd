package httpx

import (
	"net/http"

	"github.com/nexacrm/crm-console/internal/domain/model"
	apperrors "github.com/nexacrm/crm-console/internal/errors"
	"github.com/nexacrm/crm-console/internal/ports"
)

// AuthorizedPersonHandlers provides HTTP handlers for customer contacts.
type AuthorizedPersonHandlers struct {
	Gateway ports.AuthorizedPersonGateway
}

// List handles GET /api/authorized-persons.
func (h *AuthorizedPersonHandlers) List(w http.ResponseWriter, r *http.Request) {
	persons, err := h.Gateway.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, persons)
}

// GetByID handles GET /api/authorized-persons/{id}.
func (h *AuthorizedPersonHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	person, err := h.Gateway.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, person)
}

// Create handles POST /api/authorized-persons.
func (h *AuthorizedPersonHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAuthorizedPersonRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	switch {
	case req.CustomerID == 0:
		WriteAppError(w, apperrors.NewField("customerId", "Müşteri seçimi gereklidir"))
		return
	case req.FullName == "":
		WriteAppError(w, apperrors.NewField("fullName", "Ad soyad gereklidir"))
		return
	}

	person, err := h.Gateway.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, person)
}

// Update handles PUT /api/authorized-persons/{id}.
func (h *AuthorizedPersonHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req model.UpdateAuthorizedPersonRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	person, err := h.Gateway.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, person)
}

// Delete handles DELETE /api/authorized-persons/{id}.
func (h *AuthorizedPersonHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
