package config

import (
	"strings"
	"time"
)

// AuthConfig contains session and claim-mapping configuration.
// All variables carry the AUTH_ prefix.
type AuthConfig struct {
	// CookieName is the session cookie name.
	CookieName string `env:"COOKIE_NAME" envDefault:"crm_session"`

	// SessionTTL bounds sessions whose token carries no exp claim.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`

	// RoleClaimPaths are JMESPath expressions locating the role claim,
	// tried in priority order. Empty means the built-in ASP.NET defaults.
	RoleClaimPaths []string `env:"ROLE_CLAIM_PATHS" envDefault:""`

	// SubjectClaimPaths are JMESPath expressions locating the subject claim.
	// Empty means the built-in defaults.
	SubjectClaimPaths []string `env:"SUBJECT_CLAIM_PATHS" envDefault:""`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	a.CookieName = strings.TrimSpace(a.CookieName)
	if a.CookieName == "" {
		a.CookieName = "crm_session"
	}
	if a.SessionTTL <= 0 {
		a.SessionTTL = 8 * time.Hour
	}
	a.RoleClaimPaths = trimNonEmpty(a.RoleClaimPaths)
	a.SubjectClaimPaths = trimNonEmpty(a.SubjectClaimPaths)
}

func trimNonEmpty(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
