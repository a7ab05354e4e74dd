package httpx

import (
	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
	"github.com/nexacrm/crm-console/internal/domain/model"
	"github.com/nexacrm/crm-console/internal/service"
)

// Control tooltips for the administrator table.
const (
	tooltipToggle       = "Aktif/Pasif değiştir"
	tooltipDelete       = "Sil"
	createListOnlyLabel = "Sadece listeleme yetkiniz var"
)

// AdminRow is one administrator as rendered in the management table. The
// mutation controls are always present; rows the viewer may not act on carry
// disabled controls with an explanatory tooltip instead of hiding them.
type AdminRow struct {
	model.Admin
	RoleLabel     string `json:"roleLabel"`
	IsSelf        bool   `json:"isSelf"`
	CanToggle     bool   `json:"canToggle"`
	ToggleTooltip string `json:"toggleTooltip"`
	CanDelete     bool   `json:"canDelete"`
	DeleteTooltip string `json:"deleteTooltip"`
}

// AdminListPage is the view model for the administrator management page.
// A viewer below the management tier still receives the page, with
// PermissionDenied set and no directory data, rather than being bounced.
type AdminListPage struct {
	PermissionDenied     bool       `json:"permissionDenied"`
	Message              string     `json:"message,omitempty"`
	Admins               []AdminRow `json:"admins"`
	CanCreate            bool       `json:"canCreate"`
	CreateDisabledReason string     `json:"createDisabledReason,omitempty"`
}

// NewAdminListPage projects the directory into the page for this viewer.
func NewAdminListPage(viewer *domainauth.Principal, admins []model.Admin) AdminListPage {
	page := AdminListPage{
		Admins:    make([]AdminRow, 0, len(admins)),
		CanCreate: viewer != nil && viewer.Capabilities.CanCreateAdmin,
	}
	if !page.CanCreate {
		page.CreateDisabledReason = createListOnlyLabel
	}
	for _, a := range admins {
		page.Admins = append(page.Admins, newAdminRow(viewer, a))
	}
	return page
}

// DeniedAdminListPage is the page shown to viewers below the management tier.
func DeniedAdminListPage() AdminListPage {
	return AdminListPage{
		PermissionDenied:     true,
		Message:              service.MsgNoPermission,
		Admins:               []AdminRow{},
		CreateDisabledReason: createListOnlyLabel,
	}
}

func newAdminRow(viewer *domainauth.Principal, a model.Admin) AdminRow {
	row := AdminRow{
		Admin:     a,
		RoleLabel: "Admin",
		IsSelf:    viewer != nil && viewer.Claims.SubjectID == a.ID,
	}
	if a.IsSuperAdmin {
		row.RoleLabel = "SuperAdmin"
	}

	canMutate := viewer != nil && viewer.Capabilities.CanToggleAdminStatus

	// An elevated target disables both controls no matter who is looking.
	switch {
	case a.IsSuperAdmin:
		row.ToggleTooltip = service.MsgElevatedNoToggle
	case !canMutate:
		row.ToggleTooltip = service.MsgNoPermission
	default:
		row.CanToggle = true
		row.ToggleTooltip = tooltipToggle
	}

	canDelete := viewer != nil && viewer.Capabilities.CanDeleteAdmin
	switch {
	case a.IsSuperAdmin:
		row.DeleteTooltip = service.MsgElevatedNoDelete
	case row.IsSelf:
		row.DeleteTooltip = service.MsgSelfDelete
	case !canDelete:
		row.DeleteTooltip = service.MsgNoPermission
	default:
		row.CanDelete = true
		row.DeleteTooltip = tooltipDelete
	}

	return row
}
