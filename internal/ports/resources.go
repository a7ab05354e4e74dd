package ports

import (
	"context"

	"github.com/nexacrm/crm-console/internal/domain/model"
)

// CustomerGateway is the upstream customer CRUD surface, including the
// customer change-log endpoints.
type CustomerGateway interface {
	List(ctx context.Context) ([]model.Customer, error)
	GetByID(ctx context.Context, id int64) (model.Customer, error)
	Create(ctx context.Context, req model.CreateCustomerRequest) (model.Customer, error)
	Update(ctx context.Context, id int64, req model.UpdateCustomerRequest) error
	Delete(ctx context.Context, id int64) error
	ChangeLogs(ctx context.Context) ([]model.CustomerChangeLog, error)
	ChangeLogsByCustomer(ctx context.Context, customerID int64) ([]model.CustomerChangeLog, error)
}

// ProductGateway is the upstream product CRUD surface.
type ProductGateway interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, req model.CreateProductRequest) (model.Product, error)
	Update(ctx context.Context, id int64, req model.UpdateProductRequest) error
	Delete(ctx context.Context, id int64) error
}

// AuthorizedPersonGateway is the upstream authorized-person CRUD surface.
type AuthorizedPersonGateway interface {
	List(ctx context.Context) ([]model.AuthorizedPerson, error)
	GetByID(ctx context.Context, id int64) (model.AuthorizedPerson, error)
	Create(ctx context.Context, req model.CreateAuthorizedPersonRequest) (model.AuthorizedPerson, error)
	Update(ctx context.Context, id int64, req model.UpdateAuthorizedPersonRequest) (model.AuthorizedPerson, error)
	Delete(ctx context.Context, id int64) error
}

// MaintenanceGateway is the upstream maintenance-agreement CRUD surface.
type MaintenanceGateway interface {
	List(ctx context.Context) ([]model.Maintenance, error)
	Create(ctx context.Context, req model.CreateMaintenanceRequest) (model.Maintenance, error)
	Update(ctx context.Context, id int64, req model.UpdateMaintenanceRequest) error
	Delete(ctx context.Context, id int64) error
}
