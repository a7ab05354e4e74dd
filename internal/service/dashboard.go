package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
	"github.com/nexacrm/crm-console/internal/domain/model"
	"github.com/nexacrm/crm-console/internal/ports"
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Customers         ports.CustomerGateway
	Products          ports.ProductGateway
	Maintenances      ports.MaintenanceGateway
	AuthorizedPersons ports.AuthorizedPersonGateway
}

// DashboardService aggregates record counts for the landing page. The
// backend has no count endpoints, so each count is the length of the
// corresponding list, fetched concurrently.
type DashboardService struct {
	customers    ports.CustomerGateway
	products     ports.ProductGateway
	maintenances ports.MaintenanceGateway
	persons      ports.AuthorizedPersonGateway
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	return &DashboardService{
		customers:    opts.Customers,
		products:     opts.Products,
		maintenances: opts.Maintenances,
		persons:      opts.AuthorizedPersons,
	}
}

// Summary fetches all counts in parallel. The authorized-person count is
// included only for viewers whose tier may see that directory; for others
// the field is absent, not zero.
func (s *DashboardService) Summary(ctx context.Context, viewer *domainauth.Principal) (*model.DashboardSummary, error) {
	includePersons := viewer != nil && viewer.Capabilities.CanSeeAuthorizedPersons

	var customers, products, maintenances, persons int
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.customers.List(ctx)
		if err != nil {
			return err
		}
		customers = len(list)
		return nil
	})
	g.Go(func() error {
		list, err := s.products.List(ctx)
		if err != nil {
			return err
		}
		products = len(list)
		return nil
	})
	g.Go(func() error {
		list, err := s.maintenances.List(ctx)
		if err != nil {
			return err
		}
		maintenances = len(list)
		return nil
	})
	if includePersons {
		g.Go(func() error {
			list, err := s.persons.List(ctx)
			if err != nil {
				return err
			}
			persons = len(list)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &model.DashboardSummary{
		Customers:    customers,
		Products:     products,
		Maintenances: maintenances,
	}
	if includePersons {
		summary.AuthorizedPersons = &persons
	}
	return summary, nil
}
