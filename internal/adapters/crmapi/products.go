package crmapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/nexacrm/crm-console/internal/domain/model"
	"github.com/nexacrm/crm-console/internal/ports"
)

type productGateway struct{ c *Client }

var _ ports.ProductGateway = productGateway{}

// Products returns the product CRUD surface of the client.
func (c *Client) Products() ports.ProductGateway { return productGateway{c: c} }

func (g productGateway) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := g.c.do(ctx, http.MethodGet, "/api/Product", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (g productGateway) GetByID(ctx context.Context, id int64) (model.Product, error) {
	var product model.Product
	err := g.c.do(ctx, http.MethodGet, "/api/Product/"+strconv.FormatInt(id, 10), nil, &product)
	return product, err
}

func (g productGateway) Create(ctx context.Context, req model.CreateProductRequest) (model.Product, error) {
	var product model.Product
	err := g.c.do(ctx, http.MethodPost, "/api/Product", req, &product)
	return product, err
}

func (g productGateway) Update(ctx context.Context, id int64, req model.UpdateProductRequest) error {
	return g.c.do(ctx, http.MethodPut, "/api/Product/"+strconv.FormatInt(id, 10), req, nil)
}

func (g productGateway) Delete(ctx context.Context, id int64) error {
	return g.c.do(ctx, http.MethodDelete, "/api/Product/"+strconv.FormatInt(id, 10), nil, nil)
}
