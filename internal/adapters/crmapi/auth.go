package crmapi

import (
	"context"
	"net/http"

	"github.com/nexacrm/crm-console/internal/domain/model"
	apperrors "github.com/nexacrm/crm-console/internal/errors"
	"github.com/nexacrm/crm-console/internal/ports"
)

var _ ports.AuthGateway = (*Client)(nil)

// Login exchanges credentials for a bearer token. A 401 from the backend
// means the credentials were wrong, not that a session expired, so the
// generic session-invalid message is replaced with the login-specific one.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	var resp model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/Auth/login", req, &resp); err != nil {
		if apperrors.IsUnauthorized(err) {
			return "", apperrors.New(apperrors.ErrCodeUnauthorized, MsgInvalidCredentials)
		}
		return "", err
	}
	if resp.Token == "" {
		return "", apperrors.New(apperrors.ErrCodeUpstream, MsgServerError)
	}
	return resp.Token, nil
}

// Register creates a staff account and returns the backend's message. A 400
// surfaces as a validation error carrying the backend's explanation
// (typically duplicate username or invalid data).
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (string, error) {
	return c.doMessage(ctx, http.MethodPost, "/api/Auth/register", req)
}
