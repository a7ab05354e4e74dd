package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application authorization role as issued by the CRM
// backend inside the bearer token. Role names are case-sensitive and match
// the backend's claim values exactly.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
	RoleManager    Role = "Manager"
)

// Claims is the structured projection of a bearer credential. It is always
// re-derived from the credential string and never persisted on its own, so it
// cannot drift from the token it came from.
type Claims struct {
	// SubjectID is the authenticated account identifier. Empty when the
	// token carries no recognizable subject claim.
	SubjectID string
	// Roles holds the role claims. A token without a role claim yields an
	// empty (never nil-panicking) set.
	Roles []Role
	// ExpiresAt is the token expiry. Zero when the token has no exp claim.
	ExpiresAt time.Time
}

// HasRole reports whether the claim set contains the given role.
func (c Claims) HasRole(role Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsElevated reports whether the claims grant the highest privilege tier.
func (c Claims) IsElevated() bool { return c.HasRole(RoleSuperAdmin) }

// Session is the server-side record persisted for an authenticated operator.
// Only the credential is stored; claims are re-derived from Token on every
// resolve (see the capability resolver and AuthService.Resolve).
type Session struct {
	// ID is an opaque session identifier stored in the browser cookie.
	ID string `json:"id"`
	// Token is the bearer credential issued by the CRM backend at login.
	Token string `json:"token"`
	// ExpiresAt bounds the session lifetime, taken from the token exp claim
	// or a configured fallback when the token has none.
	ExpiresAt time.Time `json:"expires_at"`
}

// Principal joins a live session with the claims re-derived from its
// credential and the capabilities resolved from those claims. It is built
// per-request and carried in the request context; it is never persisted.
type Principal struct {
	Session      Session
	Claims       Claims
	Capabilities Capabilities
}

// IsElevated reports whether the principal holds the SuperAdmin role.
func (p *Principal) IsElevated() bool { return p.Claims.IsElevated() }
