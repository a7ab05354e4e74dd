package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
	"github.com/nexacrm/crm-console/internal/domain/model"
	apperrors "github.com/nexacrm/crm-console/internal/errors"
	"github.com/nexacrm/crm-console/internal/observability/statsd"
	"github.com/nexacrm/crm-console/internal/ports"
)

// ErrNoSession is returned by Resolve when no usable session exists for the
// given id: missing, expired, evicted, or holding a credential that is no
// longer decodable. Callers treat all of these as logged-out.
var ErrNoSession = errors.New("no session")

const defaultSessionTTL = 8 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Gateway  ports.AuthGateway
	Sessions ports.SessionStore
	Decoder  ports.CredentialDecoder
	// SessionTTL bounds sessions whose token carries no exp claim.
	// Zero means 8h.
	SessionTTL time.Duration
	Metrics    statsd.Sink
	Logger     *slog.Logger
}

// AuthService owns the session lifecycle: login, logout, and per-request
// session resolution. The session record stores only the credential; claims
// and capabilities are re-derived from it on every resolve, so they can
// never disagree with the token they came from.
type AuthService struct {
	gateway  ports.AuthGateway
	sessions ports.SessionStore
	decoder  ports.CredentialDecoder
	ttl      time.Duration
	metrics  statsd.Sink
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		gateway:  opts.Gateway,
		sessions: opts.Sessions,
		decoder:  opts.Decoder,
		ttl:      ttl,
		metrics:  opts.Metrics,
		logger:   logger,
	}
}

// Login exchanges credentials for a bearer token, derives claims from it,
// and commits the new session atomically: the session becomes visible only
// after credential and claims agree, with no intermediate state.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*domainauth.Principal, error) {
	if req.Username == "" {
		return nil, apperrors.NewField("username", "Kullanıcı adı gereklidir")
	}
	if req.Password == "" {
		return nil, apperrors.NewField("password", "Şifre gereklidir")
	}

	token, err := s.gateway.Login(ctx, req)
	if err != nil {
		s.countLogin("failure")
		return nil, err
	}

	// A token fresh from the login endpoint is trusted even if its claims
	// cannot be read; the session simply carries no capabilities then.
	claims, decodeErr := s.decoder.Decode(token)
	if decodeErr != nil {
		s.logger.WarnContext(ctx, "login token not decodable", "error", decodeErr)
	}

	expiresAt := claims.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(s.ttl)
	}

	sess := domainauth.Session{
		ID:        uuid.NewString(),
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
		s.countLogin("failure")
		return nil, apperrors.Wrap(saveErr, apperrors.ErrCodeInternal, "save session")
	}

	s.countLogin("success")
	return s.principal(sess, claims), nil
}

// Resolve loads the session for the given id and rebuilds the principal by
// decoding the stored credential. A session whose credential has become
// undecodable is discarded rather than surfaced half-broken.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*domainauth.Principal, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, ErrNoSession
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, ErrNoSession
	}

	claims, err := s.decoder.Decode(sess.Token)
	if err != nil {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, ErrNoSession
	}
	return s.principal(sess, claims), nil
}

// Logout removes the session. It is idempotent: logging out an absent or
// already-cleared session succeeds.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "delete session")
	}
	return nil
}

// Register proxies self-registration to the backend. Success does not create
// a session; the operator signs in afterwards.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (string, error) {
	switch {
	case req.Username == "":
		return "", apperrors.NewField("username", "Kullanıcı adı gereklidir")
	case req.Email == "":
		return "", apperrors.NewField("email", "Email gereklidir")
	case req.FullName == "":
		return "", apperrors.NewField("fullName", "Ad soyad gereklidir")
	case req.Password == "":
		return "", apperrors.NewField("password", "Şifre gereklidir")
	}
	return s.gateway.Register(ctx, req)
}

func (s *AuthService) principal(sess domainauth.Session, claims domainauth.Claims) *domainauth.Principal {
	return &domainauth.Principal{
		Session:      sess,
		Claims:       claims,
		Capabilities: domainauth.ResolveCapabilities(claims.Roles),
	}
}

func (s *AuthService) countLogin(result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.Count("auth.login", 1, map[string]string{"result": result})
}
