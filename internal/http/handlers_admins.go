package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
	"github.com/nexacrm/crm-console/internal/domain/model"
	apperrors "github.com/nexacrm/crm-console/internal/errors"
	"github.com/nexacrm/crm-console/internal/service"
)

// AdminServiceInterface defines the interface for administrator management operations.
type AdminServiceInterface interface {
	List(ctx context.Context, viewer *domainauth.Principal) ([]model.Admin, error)
	Add(ctx context.Context, viewer *domainauth.Principal, req model.AddAdminRequest) (*service.AdminMutationResult, error)
	SetStatus(ctx context.Context, viewer *domainauth.Principal, upd model.AdminStatusUpdate) (*service.AdminMutationResult, error)
	Delete(ctx context.Context, viewer *domainauth.Principal, id string) (*service.AdminMutationResult, error)
}

// AdminHandlers provides HTTP handlers for the administrator directory.
type AdminHandlers struct {
	Svc AdminServiceInterface
}

// Page serves the management page view model.
// GET /admins. A viewer below the management tier gets the page with its
// denial state set, status 200; the navigation itself is never blocked.
func (h *AdminHandlers) Page(w http.ResponseWriter, r *http.Request) {
	viewer := PrincipalOrNil(r.Context())

	admins, err := h.Svc.List(r.Context(), viewer)
	if err != nil {
		if apperrors.IsForbidden(err) {
			WriteJSON(w, http.StatusOK, DeniedAdminListPage())
			return
		}
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, NewAdminListPage(viewer, admins))
}

// List returns the raw directory.
// GET /api/admins. Unlike Page, a denied viewer gets a plain 403 here.
func (h *AdminHandlers) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.Svc.List(r.Context(), PrincipalOrNil(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, admins)
}

// Add creates an administrator account.
// POST /api/admins.
func (h *AdminHandlers) Add(w http.ResponseWriter, r *http.Request) {
	var req model.AddAdminRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Add(r.Context(), PrincipalOrNil(r.Context()), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// SetStatus toggles an administrator's active flag.
// POST /api/admins/status.
func (h *AdminHandlers) SetStatus(w http.ResponseWriter, r *http.Request) {
	var upd model.AdminStatusUpdate
	if !DecodeJSON(w, r, &upd) {
		return
	}

	result, err := h.Svc.SetStatus(r.Context(), PrincipalOrNil(r.Context()), upd)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// Delete removes an administrator account.
// DELETE /api/admins/{id}.
func (h *AdminHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_id",
			Err:     apperrors.New(apperrors.ErrCodeValidation, "id gereklidir"),
		})
		return
	}

	result, err := h.Svc.Delete(r.Context(), PrincipalOrNil(r.Context()), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}
