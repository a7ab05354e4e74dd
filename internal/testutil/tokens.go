// Package testutil provides shared helpers for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token builds an unsigned JWT carrying the given claims. The console only
// parses tokens structurally, so an alg=none token is enough for tests.
func Token(t *testing.T, claims map[string]any) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims(claims))
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}
	return signed
}

// TokenOpts describes the common claim shapes used across tests.
type TokenOpts struct {
	// Role is the value of the Microsoft schema role claim. A string or a
	// []any of strings; nil omits the claim.
	Role any
	// Subject fills the nameidentifier claim when non-empty.
	Subject string
	// ExpiresAt fills exp when non-zero.
	ExpiresAt time.Time
}

const (
	roleClaimURI    = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	subjectClaimURI = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
)

// BackendToken builds a token shaped like the CRM backend issues them.
func BackendToken(t *testing.T, opts TokenOpts) string {
	t.Helper()
	claims := map[string]any{}
	if opts.Role != nil {
		claims[roleClaimURI] = opts.Role
	}
	if opts.Subject != "" {
		claims[subjectClaimURI] = opts.Subject
	}
	if !opts.ExpiresAt.IsZero() {
		claims["exp"] = opts.ExpiresAt.Unix()
	}
	return Token(t, claims)
}
