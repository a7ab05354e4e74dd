package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_APIRequestGets401(t *testing.T) {
	handler := RequireAuth()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oturum geçersiz")
}

func TestRequireAuth_BrowserRequestRedirectsToLogin(t *testing.T) {
	handler := RequireAuth()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/customers?page=2", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc := rec.Header().Get("Location")
	assert.Contains(t, loc, "/login?redirect_uri=")
	assert.Contains(t, loc, "%2Fcustomers%3Fpage%3D2")
}

func TestRequireAuth_PassesAuthenticated(t *testing.T) {
	handler := RequireAuth()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req = withPrincipal(req, testPrincipal("u-1", domainauth.RoleManager))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireCapability(t *testing.T) {
	handler := RequireCapability(func(c domainauth.Capabilities) bool {
		return c.CanSeeAuthorizedPersons
	})(okHandler())

	// Anonymous: 401 even before the capability is consulted.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/authorized-persons", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Signed in without the capability: 403 with the refusal message.
	rec = httptest.NewRecorder()
	req := withPrincipal(httptest.NewRequest(http.MethodGet, "/api/authorized-persons", nil),
		testPrincipal("u-1"))
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Yetkiniz yok.")

	// Supervisory viewer passes.
	rec = httptest.NewRecorder()
	req = withPrincipal(httptest.NewRequest(http.MethodGet, "/api/authorized-persons", nil),
		testPrincipal("u-1", domainauth.RoleManager))
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIsBrowserRequest(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		accept string
		want   bool
	}{
		{name: "api path never browser", path: "/api/customers", accept: "text/html", want: false},
		{name: "page with html accept", path: "/customers", accept: "text/html,application/xhtml+xml", want: true},
		{name: "page with empty accept", path: "/customers", accept: "", want: true},
		{name: "page with json accept", path: "/customers", accept: "application/json", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, IsBrowserRequest(req))
		})
	}
}

func TestSafeRedirectPath(t *testing.T) {
	assert.Equal(t, "/customers?page=2", safeRedirectPath("/customers?page=2"))
	assert.Equal(t, "/", safeRedirectPath(""))
	assert.Equal(t, "/", safeRedirectPath("https://evil.example/phish"))
	assert.Equal(t, "/", safeRedirectPath("//evil.example"))
}
