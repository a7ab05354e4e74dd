package token

// Package token decodes bearer credentials issued by the CRM backend into
// domain claims. Decoding is structural only: the token signature is verified
// by the backend on every API call, so the console trusts credentials it
// received from the login endpoint or restored from a live session.

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
	"github.com/nexacrm/crm-console/internal/ports"
)

// Default claim locations, in priority order. The backend is an ASP.NET
// issuer, so the Microsoft schema URIs come first with the short names as
// fallbacks. URI keys must be quoted for JMESPath.
var (
	DefaultRolePaths = []string{
		`"http://schemas.microsoft.com/ws/2008/06/identity/claims/role"`,
		`role`,
	}
	DefaultSubjectPaths = []string{
		`"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"`,
		`nameid`,
		`sub`,
	}
)

// ErrNotAToken is returned when the credential is not structurally a JWT.
// The accompanying Claims value is still the usable all-empty result.
var ErrNotAToken = errors.New("credential is not a decodable token")

// Config controls where the decoder looks for role and subject claims.
// Empty slices fall back to the defaults above.
type Config struct {
	RolePaths    []string
	SubjectPaths []string
}

// Decoder is a best-effort JWT claim decoder. Claim locations are JMESPath
// expressions evaluated against the raw claim map, tried in priority order.
type Decoder struct {
	rolePaths    []string
	subjectPaths []string
}

var _ ports.CredentialDecoder = (*Decoder)(nil)

// NewDecoder validates the configured claim paths. Invalid expressions are
// rejected up front rather than silently skipped at decode time.
func NewDecoder(cfg Config) (*Decoder, error) {
	rolePaths := cfg.RolePaths
	if len(rolePaths) == 0 {
		rolePaths = DefaultRolePaths
	}
	subjectPaths := cfg.SubjectPaths
	if len(subjectPaths) == 0 {
		subjectPaths = DefaultSubjectPaths
	}

	for _, expr := range append(append([]string{}, rolePaths...), subjectPaths...) {
		if _, err := jmespath.Compile(expr); err != nil {
			return nil, err
		}
	}
	return &Decoder{rolePaths: rolePaths, subjectPaths: subjectPaths}, nil
}

// MustNewDecoder is NewDecoder for the default configuration, which is known
// to compile.
func MustNewDecoder() *Decoder {
	d, err := NewDecoder(Config{})
	if err != nil {
		panic(err)
	}
	return d
}

// Decode extracts claims from the credential. It never panics and the
// returned Claims are always usable: a token without a role claim yields an
// empty role set, a missing subject yields an empty SubjectID, and a missing
// exp yields a zero ExpiresAt. Only structurally undecodable input produces
// a non-nil error (ErrNotAToken) alongside the all-empty Claims.
func (d *Decoder) Decode(credential string) (domainauth.Claims, error) {
	raw := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, raw); err != nil {
		return domainauth.Claims{}, ErrNotAToken
	}

	claims := domainauth.Claims{
		Roles:     extractRoles(d.rolePaths, map[string]any(raw)),
		SubjectID: extractSubject(d.subjectPaths, map[string]any(raw)),
	}
	if exp, err := raw.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}

func extractRoles(paths []string, data map[string]any) []domainauth.Role {
	for _, expr := range paths {
		value, err := jmespath.Search(expr, data)
		if err != nil || value == nil {
			continue
		}
		if roles := normalizeRoles(value); len(roles) > 0 {
			return roles
		}
	}
	return nil
}

func extractSubject(paths []string, data map[string]any) string {
	for _, expr := range paths {
		value, err := jmespath.Search(expr, data)
		if err != nil {
			continue
		}
		if s, ok := value.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// normalizeRoles accepts the three shapes the backend has been observed to
// emit: a single role string, a list of role values, or something else
// entirely (ignored). Non-string list entries are skipped, not errors.
func normalizeRoles(value any) []domainauth.Role {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []domainauth.Role{domainauth.Role(v)}
	case []any:
		roles := make([]domainauth.Role, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				roles = append(roles, domainauth.Role(s))
			}
		}
		return roles
	default:
		return nil
	}
}
