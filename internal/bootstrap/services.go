package bootstrap

import (
	"log/slog"

	"github.com/nexacrm/crm-console/config"
	"github.com/nexacrm/crm-console/internal/service"
)

// ServiceContainer holds the application services built on the adapters.
type ServiceContainer struct {
	Auth      *service.AuthService
	Admins    *service.AdminService
	Dashboard *service.DashboardService
}

// ServiceDeps groups inputs for NewServices.
type ServiceDeps struct {
	Config   *config.AppConfig
	Adapters *Adapters
	Logger   *slog.Logger
}

// NewServices wires the service layer.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	adapters := deps.Adapters

	auth := service.NewAuthService(service.AuthServiceOptions{
		Gateway:    adapters.Backend,
		Sessions:   adapters.Sessions,
		Decoder:    adapters.Decoder,
		SessionTTL: deps.Config.Auth.SessionTTL,
		Metrics:    adapters.Metrics,
		Logger:     logger,
	})
	admins := service.NewAdminService(service.AdminServiceOptions{
		Directory: adapters.Backend.Admins(),
		Metrics:   adapters.Metrics,
		Logger:    logger,
	})
	dashboard := service.NewDashboardService(service.DashboardServiceOptions{
		Customers:         adapters.Backend.Customers(),
		Products:          adapters.Backend.Products(),
		Maintenances:      adapters.Backend.Maintenances(),
		AuthorizedPersons: adapters.Backend.AuthorizedPersons(),
	})

	return ServiceContainer{
		Auth:      auth,
		Admins:    admins,
		Dashboard: dashboard,
	}
}
