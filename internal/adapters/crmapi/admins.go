package crmapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nexacrm/crm-console/internal/domain/model"
	"github.com/nexacrm/crm-console/internal/ports"
)

type adminGateway struct{ c *Client }

var _ ports.AdminDirectory = adminGateway{}

// Admins returns the administrator-directory surface of the client.
func (c *Client) Admins() ports.AdminDirectory { return adminGateway{c: c} }

// List fetches all administrator accounts.
func (g adminGateway) List(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	if err := g.c.do(ctx, http.MethodGet, "/api/Auth/admin/list", nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

// Add creates an administrator account and returns the backend message.
func (g adminGateway) Add(ctx context.Context, req model.AddAdminRequest) (string, error) {
	return g.c.doMessage(ctx, http.MethodPost, "/api/Auth/admin/add", req)
}

// SetStatus toggles an administrator's active flag.
func (g adminGateway) SetStatus(ctx context.Context, upd model.AdminStatusUpdate) (string, error) {
	return g.c.doMessage(ctx, http.MethodPost, "/api/Auth/admin/setstatus", upd)
}

// Delete removes an administrator account.
func (g adminGateway) Delete(ctx context.Context, id string) (string, error) {
	return g.c.doMessage(ctx, http.MethodDelete, "/api/Auth/admin/delete/"+url.PathEscape(id), nil)
}
