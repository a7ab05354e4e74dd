package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
	"github.com/nexacrm/crm-console/internal/domain/model"
	"github.com/nexacrm/crm-console/internal/service"
)

var directoryFixture = []model.Admin{
	{ID: "a-1", Username: "root", IsActive: true, IsSuperAdmin: true},
	{ID: "a-2", Username: "ops", IsActive: true},
	{ID: "a-3", Username: "support", IsActive: false},
}

func TestNewAdminListPage_ElevatedViewer(t *testing.T) {
	viewer := testPrincipal("a-2", domainauth.RoleSuperAdmin)
	page := NewAdminListPage(viewer, directoryFixture)

	assert.False(t, page.PermissionDenied)
	assert.True(t, page.CanCreate)
	assert.Empty(t, page.CreateDisabledReason)
	require.Len(t, page.Admins, 3)

	// Elevated target: both controls stay visible but disabled, whoever looks.
	rootRow := page.Admins[0]
	assert.Equal(t, "SuperAdmin", rootRow.RoleLabel)
	assert.False(t, rootRow.CanToggle)
	assert.Equal(t, service.MsgElevatedNoToggle, rootRow.ToggleTooltip)
	assert.False(t, rootRow.CanDelete)
	assert.Equal(t, service.MsgElevatedNoDelete, rootRow.DeleteTooltip)

	// The viewer's own row keeps toggle but never delete.
	selfRow := page.Admins[1]
	assert.True(t, selfRow.IsSelf)
	assert.True(t, selfRow.CanToggle)
	assert.False(t, selfRow.CanDelete)
	assert.Equal(t, service.MsgSelfDelete, selfRow.DeleteTooltip)

	otherRow := page.Admins[2]
	assert.Equal(t, "Admin", otherRow.RoleLabel)
	assert.True(t, otherRow.CanToggle)
	assert.Equal(t, tooltipToggle, otherRow.ToggleTooltip)
	assert.True(t, otherRow.CanDelete)
	assert.Equal(t, tooltipDelete, otherRow.DeleteTooltip)
}

func TestNewAdminListPage_AdminViewerListOnly(t *testing.T) {
	viewer := testPrincipal("a-2", domainauth.RoleAdmin)
	page := NewAdminListPage(viewer, directoryFixture)

	assert.False(t, page.CanCreate)
	assert.Equal(t, createListOnlyLabel, page.CreateDisabledReason)

	for _, row := range page.Admins {
		assert.False(t, row.CanToggle, "row %s", row.ID)
		assert.False(t, row.CanDelete, "row %s", row.ID)
	}

	// Non-elevated rows explain the refusal with the permission message.
	assert.Equal(t, service.MsgNoPermission, page.Admins[1].ToggleTooltip)
	assert.Equal(t, service.MsgNoPermission, page.Admins[2].DeleteTooltip)
	// Elevated rows keep the stronger, target-specific message.
	assert.Equal(t, service.MsgElevatedNoToggle, page.Admins[0].ToggleTooltip)
}

func TestDeniedAdminListPage(t *testing.T) {
	page := DeniedAdminListPage()

	assert.True(t, page.PermissionDenied)
	assert.Equal(t, service.MsgNoPermission, page.Message)
	assert.NotNil(t, page.Admins)
	assert.Empty(t, page.Admins)
	assert.False(t, page.CanCreate)
	assert.Equal(t, createListOnlyLabel, page.CreateDisabledReason)
}
