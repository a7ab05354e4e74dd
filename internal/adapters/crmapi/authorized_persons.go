package crmapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/nexacrm/crm-console/internal/domain/model"
	"github.com/nexacrm/crm-console/internal/ports"
)

type authorizedPersonGateway struct{ c *Client }

var _ ports.AuthorizedPersonGateway = authorizedPersonGateway{}

// AuthorizedPersons returns the authorized-person CRUD surface of the client.
func (c *Client) AuthorizedPersons() ports.AuthorizedPersonGateway {
	return authorizedPersonGateway{c: c}
}

func (g authorizedPersonGateway) List(ctx context.Context) ([]model.AuthorizedPerson, error) {
	var persons []model.AuthorizedPerson
	if err := g.c.do(ctx, http.MethodGet, "/api/AuthorizedPerson", nil, &persons); err != nil {
		return nil, err
	}
	return persons, nil
}

func (g authorizedPersonGateway) GetByID(ctx context.Context, id int64) (model.AuthorizedPerson, error) {
	var person model.AuthorizedPerson
	err := g.c.do(ctx, http.MethodGet, "/api/AuthorizedPerson/"+strconv.FormatInt(id, 10), nil, &person)
	return person, err
}

func (g authorizedPersonGateway) Create(ctx context.Context, req model.CreateAuthorizedPersonRequest) (model.AuthorizedPerson, error) {
	var person model.AuthorizedPerson
	err := g.c.do(ctx, http.MethodPost, "/api/AuthorizedPerson", req, &person)
	return person, err
}

func (g authorizedPersonGateway) Update(ctx context.Context, id int64, req model.UpdateAuthorizedPersonRequest) (model.AuthorizedPerson, error) {
	var person model.AuthorizedPerson
	err := g.c.do(ctx, http.MethodPut, "/api/AuthorizedPerson/"+strconv.FormatInt(id, 10), req, &person)
	return person, err
}

func (g authorizedPersonGateway) Delete(ctx context.Context, id int64) error {
	return g.c.do(ctx, http.MethodDelete, "/api/AuthorizedPerson/"+strconv.FormatInt(id, 10), nil, nil)
}
