package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
	"github.com/nexacrm/crm-console/internal/testutil"
)

func TestNewDecoder_RejectsInvalidExpression(t *testing.T) {
	_, err := NewDecoder(Config{RolePaths: []string{"not[a valid"}})
	require.Error(t, err)
}

func TestDecoder_Decode_RoleShapes(t *testing.T) {
	d := MustNewDecoder()

	tests := []struct {
		name string
		role any
		want []domainauth.Role
	}{
		{name: "single string", role: "Admin", want: []domainauth.Role{domainauth.RoleAdmin}},
		{name: "list", role: []any{"Admin", "Manager"}, want: []domainauth.Role{domainauth.RoleAdmin, domainauth.RoleManager}},
		{name: "absent", role: nil, want: nil},
		{name: "number ignored", role: float64(7), want: nil},
		{name: "mixed list skips non-strings", role: []any{"SuperAdmin", float64(1)}, want: []domainauth.Role{domainauth.RoleSuperAdmin}},
		{name: "empty string", role: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credential := testutil.BackendToken(t, testutil.TokenOpts{Role: tt.role})
			claims, err := d.Decode(credential)
			require.NoError(t, err)
			assert.Equal(t, tt.want, claims.Roles)
		})
	}
}

func TestDecoder_Decode_ShortRoleClaimFallback(t *testing.T) {
	d := MustNewDecoder()

	credential := testutil.Token(t, map[string]any{"role": "Admin"})
	claims, err := d.Decode(credential)
	require.NoError(t, err)
	assert.Equal(t, []domainauth.Role{domainauth.RoleAdmin}, claims.Roles)
}

func TestDecoder_Decode_SchemaURIWinsOverShortName(t *testing.T) {
	d := MustNewDecoder()

	credential := testutil.Token(t, map[string]any{
		"http://schemas.microsoft.com/ws/2008/06/identity/claims/role": "SuperAdmin",
		"role": "Admin",
	})
	claims, err := d.Decode(credential)
	require.NoError(t, err)
	assert.Equal(t, []domainauth.Role{domainauth.RoleSuperAdmin}, claims.Roles)
}

func TestDecoder_Decode_SubjectPriority(t *testing.T) {
	d := MustNewDecoder()

	tests := []struct {
		name   string
		claims map[string]any
		want   string
	}{
		{
			name: "nameidentifier URI first",
			claims: map[string]any{
				"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier": "u-1",
				"nameid": "u-2",
				"sub":    "u-3",
			},
			want: "u-1",
		},
		{
			name:   "nameid fallback",
			claims: map[string]any{"nameid": "u-2", "sub": "u-3"},
			want:   "u-2",
		},
		{
			name:   "sub last",
			claims: map[string]any{"sub": "u-3"},
			want:   "u-3",
		},
		{
			name:   "absent",
			claims: map[string]any{},
			want:   "",
		},
		{
			name:   "non-string ignored",
			claims: map[string]any{"sub": float64(12)},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := d.Decode(testutil.Token(t, tt.claims))
			require.NoError(t, err)
			assert.Equal(t, tt.want, claims.SubjectID)
		})
	}
}

func TestDecoder_Decode_Expiry(t *testing.T) {
	d := MustNewDecoder()
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)

	claims, err := d.Decode(testutil.BackendToken(t, testutil.TokenOpts{Role: "Admin", ExpiresAt: exp}))
	require.NoError(t, err)
	assert.WithinDuration(t, exp, claims.ExpiresAt, time.Second)

	claims, err = d.Decode(testutil.BackendToken(t, testutil.TokenOpts{Role: "Admin"}))
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.IsZero())
}

func TestDecoder_Decode_Malformed(t *testing.T) {
	d := MustNewDecoder()

	for _, credential := range []string{"", "garbage", "a.b", "x.y.z"} {
		claims, err := d.Decode(credential)
		assert.ErrorIs(t, err, ErrNotAToken, "credential %q", credential)
		assert.Equal(t, domainauth.Claims{}, claims)
	}
}

func TestDecoder_Decode_CustomPaths(t *testing.T) {
	d, err := NewDecoder(Config{
		RolePaths:    []string{"permissions"},
		SubjectPaths: []string{"uid"},
	})
	require.NoError(t, err)

	claims, err := d.Decode(testutil.Token(t, map[string]any{
		"permissions": []any{"Manager"},
		"uid":         "abc",
	}))
	require.NoError(t, err)
	assert.Equal(t, []domainauth.Role{domainauth.RoleManager}, claims.Roles)
	assert.Equal(t, "abc", claims.SubjectID)
}
