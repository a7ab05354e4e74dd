package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
	"github.com/nexacrm/crm-console/internal/domain/model"
)

// DashboardServiceInterface defines the interface for dashboard aggregation.
type DashboardServiceInterface interface {
	Summary(ctx context.Context, viewer *domainauth.Principal) (*model.DashboardSummary, error)
}

// DashboardHandlers provides HTTP handlers for the landing page summary.
type DashboardHandlers struct {
	Svc DashboardServiceInterface
}

// Summary handles GET /api/dashboard/summary.
func (h *DashboardHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Svc.Summary(r.Context(), PrincipalOrNil(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}
