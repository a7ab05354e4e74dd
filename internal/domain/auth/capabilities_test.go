package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCapabilities(t *testing.T) {
	tests := []struct {
		name  string
		roles []Role
		want  Capabilities
	}{
		{
			name:  "no roles",
			roles: nil,
			want:  Capabilities{},
		},
		{
			name:  "manager",
			roles: []Role{RoleManager},
			want:  Capabilities{CanSeeAuthorizedPersons: true},
		},
		{
			name:  "admin",
			roles: []Role{RoleAdmin},
			want: Capabilities{
				CanManageAdmins:         true,
				CanSeeAuthorizedPersons: true,
			},
		},
		{
			name:  "superadmin",
			roles: []Role{RoleSuperAdmin},
			want: Capabilities{
				CanManageAdmins:         true,
				CanCreateAdmin:          true,
				CanToggleAdminStatus:    true,
				CanDeleteAdmin:          true,
				CanSeeAuthorizedPersons: true,
			},
		},
		{
			name:  "admin and superadmin",
			roles: []Role{RoleAdmin, RoleSuperAdmin},
			want: Capabilities{
				CanManageAdmins:         true,
				CanCreateAdmin:          true,
				CanToggleAdminStatus:    true,
				CanDeleteAdmin:          true,
				CanSeeAuthorizedPersons: true,
			},
		},
		{
			name:  "unknown role ignored",
			roles: []Role{"Auditor"},
			want:  Capabilities{},
		},
		{
			name:  "unknown role alongside admin",
			roles: []Role{"Auditor", RoleAdmin},
			want: Capabilities{
				CanManageAdmins:         true,
				CanSeeAuthorizedPersons: true,
			},
		},
		{
			name:  "manager plus admin",
			roles: []Role{RoleManager, RoleAdmin},
			want: Capabilities{
				CanManageAdmins:         true,
				CanSeeAuthorizedPersons: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCapabilities(tt.roles))
		})
	}
}

func TestResolveCapabilities_Pure(t *testing.T) {
	roles := []Role{RoleAdmin, RoleManager}
	first := ResolveCapabilities(roles)
	second := ResolveCapabilities(roles)
	assert.Equal(t, first, second)
}

func TestClaims_IsElevated(t *testing.T) {
	assert.True(t, Claims{Roles: []Role{RoleSuperAdmin}}.IsElevated())
	assert.False(t, Claims{Roles: []Role{RoleAdmin}}.IsElevated())
	assert.False(t, Claims{}.IsElevated())
}
