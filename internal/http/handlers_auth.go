package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
	"github.com/nexacrm/crm-console/internal/domain/model"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, req model.LoginRequest) (*domainauth.Principal, error)
	Logout(ctx context.Context, sessionID string) error
	Register(ctx context.Context, req model.RegisterRequest) (string, error)
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieName   string
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// MeResponse describes the signed-in operator to the console frontend.
// Capabilities come from the same claim derivation the server enforces with,
// so the frontend never computes permissions on its own.
type MeResponse struct {
	Authenticated bool                     `json:"authenticated"`
	UserID        string                   `json:"userId,omitempty"`
	Roles         []domainauth.Role        `json:"roles,omitempty"`
	Capabilities  *domainauth.Capabilities `json:"capabilities,omitempty"`
	ExpiresAt     *time.Time               `json:"expiresAt,omitempty"`
}

// Login handles credential sign-in.
// POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	principal, err := h.Svc.Login(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, r, principal.Session)
	WriteJSON(w, http.StatusOK, meResponseFor(principal))
}

// Logout invalidates the server-side session and clears the cookie.
// POST /api/auth/logout. Always succeeds from the client's point of view.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.CookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), cookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	h.clearCookie(w, r, h.CookieName)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Register proxies operator self-registration to the backend.
// POST /api/auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	msg, err := h.Svc.Register(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// Me returns the current authentication state.
// GET /api/auth/me. Anonymous callers get authenticated=false, not a 401.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusOK, MeResponse{Authenticated: false})
		return
	}
	WriteJSON(w, http.StatusOK, meResponseFor(principal))
}

func meResponseFor(p *domainauth.Principal) MeResponse {
	caps := p.Capabilities
	expires := p.Session.ExpiresAt
	return MeResponse{
		Authenticated: true,
		UserID:        p.Claims.SubjectID,
		Roles:         p.Claims.Roles,
		Capabilities:  &caps,
		ExpiresAt:     &expires,
	}
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
