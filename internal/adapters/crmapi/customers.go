package crmapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/nexacrm/crm-console/internal/domain/model"
	"github.com/nexacrm/crm-console/internal/ports"
)

// customerGateway is implemented on a named method set to keep the Client's
// exported surface per resource; Customers() returns the customer view.
type customerGateway struct{ c *Client }

var _ ports.CustomerGateway = customerGateway{}

// Customers returns the customer CRUD surface of the client.
func (c *Client) Customers() ports.CustomerGateway { return customerGateway{c: c} }

func (g customerGateway) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := g.c.do(ctx, http.MethodGet, "/api/Customer", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (g customerGateway) GetByID(ctx context.Context, id int64) (model.Customer, error) {
	var customer model.Customer
	err := g.c.do(ctx, http.MethodGet, "/api/Customer/"+strconv.FormatInt(id, 10), nil, &customer)
	return customer, err
}

func (g customerGateway) Create(ctx context.Context, req model.CreateCustomerRequest) (model.Customer, error) {
	var customer model.Customer
	err := g.c.do(ctx, http.MethodPost, "/api/Customer", req, &customer)
	return customer, err
}

func (g customerGateway) Update(ctx context.Context, id int64, req model.UpdateCustomerRequest) error {
	return g.c.do(ctx, http.MethodPut, "/api/Customer/"+strconv.FormatInt(id, 10), req, nil)
}

func (g customerGateway) Delete(ctx context.Context, id int64) error {
	return g.c.do(ctx, http.MethodDelete, "/api/Customer/"+strconv.FormatInt(id, 10), nil, nil)
}

func (g customerGateway) ChangeLogs(ctx context.Context) ([]model.CustomerChangeLog, error) {
	var logs []model.CustomerChangeLog
	if err := g.c.do(ctx, http.MethodGet, "/api/CustomerChangeLog/all", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (g customerGateway) ChangeLogsByCustomer(ctx context.Context, customerID int64) ([]model.CustomerChangeLog, error) {
	var logs []model.CustomerChangeLog
	path := "/api/CustomerChangeLog/" + strconv.FormatInt(customerID, 10)
	if err := g.c.do(ctx, http.MethodGet, path, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
