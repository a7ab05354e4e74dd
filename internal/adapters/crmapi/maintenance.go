package crmapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/nexacrm/crm-console/internal/domain/model"
	"github.com/nexacrm/crm-console/internal/ports"
)

type maintenanceGateway struct{ c *Client }

var _ ports.MaintenanceGateway = maintenanceGateway{}

// Maintenances returns the maintenance-agreement CRUD surface of the client.
func (c *Client) Maintenances() ports.MaintenanceGateway { return maintenanceGateway{c: c} }

func (g maintenanceGateway) List(ctx context.Context) ([]model.Maintenance, error) {
	var agreements []model.Maintenance
	if err := g.c.do(ctx, http.MethodGet, "/api/Maintenance", nil, &agreements); err != nil {
		return nil, err
	}
	return agreements, nil
}

func (g maintenanceGateway) Create(ctx context.Context, req model.CreateMaintenanceRequest) (model.Maintenance, error) {
	var agreement model.Maintenance
	err := g.c.do(ctx, http.MethodPost, "/api/Maintenance", req, &agreement)
	return agreement, err
}

func (g maintenanceGateway) Update(ctx context.Context, id int64, req model.UpdateMaintenanceRequest) error {
	return g.c.do(ctx, http.MethodPut, "/api/Maintenance/"+strconv.FormatInt(id, 10), req, nil)
}

func (g maintenanceGateway) Delete(ctx context.Context, id int64) error {
	return g.c.do(ctx, http.MethodDelete, "/api/Maintenance/"+strconv.FormatInt(id, 10), nil, nil)
}
