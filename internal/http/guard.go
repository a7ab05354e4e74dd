package httpx

import (
	"net/http"
	"strings"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
)

// Well-known console destinations.
const (
	PathLogin     = "/login"
	PathRegister  = "/register"
	PathDashboard = "/dashboard"
	PathAdmins    = "/admins"
	PathAdminsAdd = "/admins/add"
)

// Decision is the outcome of evaluating a navigation target. Exactly one of
// the two shapes holds: Allow true with empty RedirectTo, or Allow false with
// a non-empty RedirectTo. The guard never dead-ends a navigation.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision             { return Decision{Allow: true} }
func redirect(to string) Decision { return Decision{RedirectTo: to} }

// routeRule describes one guarded destination. Requires is nil for routes
// that only need a signed-in principal; Fallback is where an authenticated
// but under-privileged navigation lands.
type routeRule struct {
	prefix   string
	requires func(domainauth.Capabilities) bool
	fallback string
}

// Order matters: more specific prefixes first.
var guardedRoutes = []routeRule{
	{prefix: PathAdminsAdd, requires: func(c domainauth.Capabilities) bool { return c.CanCreateAdmin }, fallback: PathAdmins},
	{prefix: PathAdmins},
	{prefix: PathDashboard},
	{prefix: "/customers"},
	{prefix: "/products"},
	{prefix: "/maintenances"},
	{prefix: "/authorized-persons"},
}

// EvaluateNavigation decides whether a principal may land on the target path.
// Entry pages are reachable only while signed out; guarded pages only while
// signed in; unknown paths collapse to the dashboard or the sign-in page.
// The function is pure: same target and principal, same decision.
func EvaluateNavigation(target string, p *domainauth.Principal) Decision {
	path := normalizePath(target)
	authed := p != nil

	if path == PathLogin || path == PathRegister {
		if authed {
			return redirect(PathDashboard)
		}
		return allow()
	}

	for _, rule := range guardedRoutes {
		if !matchesPrefix(path, rule.prefix) {
			continue
		}
		if !authed {
			return redirect(PathLogin)
		}
		if rule.requires != nil && !rule.requires(p.Capabilities) {
			return redirect(rule.fallback)
		}
		return allow()
	}

	if authed {
		return redirect(PathDashboard)
	}
	return redirect(PathLogin)
}

// Guard returns a middleware enforcing EvaluateNavigation on page routes.
// Redirects use 303 so the browser always re-requests with GET.
func Guard() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := EvaluateNavigation(r.URL.Path, PrincipalOrNil(r.Context()))
			if !decision.Allow {
				http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func normalizePath(target string) string {
	path := target
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// matchesPrefix reports whether path equals prefix or sits beneath it as a
// whole segment, so "/products" matches "/products/7" but not "/productsx".
func matchesPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}
