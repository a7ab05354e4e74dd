package httpx

import (
	"context"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
)

// principalKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type principalKey struct{}

// SetPrincipalInContext returns a child context that carries the given principal.
// If principal is nil, the original ctx is returned unchanged.
func SetPrincipalInContext(ctx context.Context, p *domainauth.Principal) context.Context {
	if p == nil {
		return ctx
	}
	return context.WithValue(ctx, principalKey{}, p)
}

// GetPrincipalFromContext returns the principal from context and a boolean indicating presence.
func GetPrincipalFromContext(ctx context.Context) (*domainauth.Principal, bool) {
	if p, ok := ctx.Value(principalKey{}).(*domainauth.Principal); ok && p != nil {
		return p, true
	}
	return nil, false
}

// PrincipalOrNil retrieves the principal from the request context, nil when absent.
func PrincipalOrNil(ctx context.Context) *domainauth.Principal {
	if p, ok := GetPrincipalFromContext(ctx); ok {
		return p
	}
	return nil
}
