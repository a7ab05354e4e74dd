package ports

// Package ports defines interfaces (hexagonal ports) for auth and upstream
// behavior. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
	"github.com/nexacrm/crm-console/internal/domain/model"
)

// CredentialDecoder extracts structured claims from an opaque bearer
// credential. Decoding is best-effort structural parsing: the signature is
// not verified here (that is the backend's job), and the returned Claims are
// always usable. A non-nil error only signals that the input was not
// decodable at all, in which case Claims is the all-empty value.
type CredentialDecoder interface {
	Decode(credential string) (domainauth.Claims, error)
}

// SessionStore persists and retrieves operator sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// AuthGateway is the upstream authentication surface.
type AuthGateway interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, req model.LoginRequest) (string, error)
	// Register creates a staff account and returns the backend message.
	Register(ctx context.Context, req model.RegisterRequest) (string, error)
}

// AdminDirectory is the upstream administrator-account surface.
type AdminDirectory interface {
	List(ctx context.Context) ([]model.Admin, error)
	Add(ctx context.Context, req model.AddAdminRequest) (string, error)
	SetStatus(ctx context.Context, upd model.AdminStatusUpdate) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}
