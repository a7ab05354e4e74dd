package httpx

import (
	"net/http"

	"github.com/nexacrm/crm-console/internal/domain/model"
	apperrors "github.com/nexacrm/crm-console/internal/errors"
	"github.com/nexacrm/crm-console/internal/ports"
)

// ProductHandlers provides HTTP handlers for the product proxy surface.
type ProductHandlers struct {
	Gateway ports.ProductGateway
}

// List handles GET /api/products.
func (h *ProductHandlers) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Gateway.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id}.
func (h *ProductHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := h.Gateway.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products.
func (h *ProductHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		WriteAppError(w, apperrors.NewField("name", "Ürün adı gereklidir"))
		return
	}

	product, err := h.Gateway.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id}.
func (h *ProductHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req model.UpdateProductRequest
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

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
