package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
	"github.com/nexacrm/crm-console/internal/ports"
	"github.com/nexacrm/crm-console/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth              *service.AuthService
	Admins            *service.AdminService
	Dashboard         *service.DashboardService
	Customers         ports.CustomerGateway
	Products          ports.ProductGateway
	AuthorizedPersons ports.AuthorizedPersonGateway
	Maintenances      ports.MaintenanceGateway
	CookieName        string
	CookieDomain      string
	Logger            *slog.Logger
}

// NewRouter creates and configures the HTTP router. Every request passes
// through LoadPrincipal; API routes enforce authentication with JSON errors
// while page routes go through the navigation guard and redirect instead.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieName:   services.CookieName,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	adminHandlers := &AdminHandlers{Svc: services.Admins}
	dashboardHandlers := &DashboardHandlers{Svc: services.Dashboard}
	customerHandlers := &CustomerHandlers{Gateway: services.Customers}
	productHandlers := &ProductHandlers{Gateway: services.Products}
	personHandlers := &AuthorizedPersonHandlers{Gateway: services.AuthorizedPersons}
	maintenanceHandlers := &MaintenanceHandlers{Gateway: services.Maintenances}

	registerAuthRoutes(mux, authHandlers)
	registerAdminRoutes(mux, adminHandlers)
	registerResourceRoutes(mux, resourceHandlers{
		Customers:    customerHandlers,
		Products:     productHandlers,
		Persons:      personHandlers,
		Maintenances: maintenanceHandlers,
		Dashboard:    dashboardHandlers,
	})
	registerPageRoutes(mux, adminHandlers)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return LoadPrincipal(services.Auth, services.CookieName)(mux)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/me", h.Me)
}

func registerAdminRoutes(mux *http.ServeMux, h *AdminHandlers) {
	authed := RequireAuth()
	wrap := func(fn http.HandlerFunc) http.Handler { return authed(fn) }

	// Capability checks live in the service so refusals carry their exact
	// user-facing message; the middleware only guarantees a principal.
	mux.Handle("GET /api/admins", wrap(h.List))
	mux.Handle("POST /api/admins", wrap(h.Add))
	mux.Handle("POST /api/admins/status", wrap(h.SetStatus))
	mux.Handle("DELETE /api/admins/{id}", wrap(h.Delete))
}

type resourceHandlers struct {
	Customers    *CustomerHandlers
	Products     *ProductHandlers
	Persons      *AuthorizedPersonHandlers
	Maintenances *MaintenanceHandlers
	Dashboard    *DashboardHandlers
}

func registerResourceRoutes(mux *http.ServeMux, h resourceHandlers) {
	authed := RequireAuth()
	wrap := func(fn http.HandlerFunc) http.Handler { return authed(fn) }

	mux.Handle("GET /api/customers", wrap(h.Customers.List))
	mux.Handle("GET /api/customers/logs", wrap(h.Customers.ChangeLogs))
	mux.Handle("GET /api/customers/{id}", wrap(h.Customers.GetByID))
	mux.Handle("GET /api/customers/{id}/logs", wrap(h.Customers.ChangeLogsByCustomer))
	mux.Handle("POST /api/customers", wrap(h.Customers.Create))
	mux.Handle("PUT /api/customers/{id}", wrap(h.Customers.Update))
	mux.Handle("DELETE /api/customers/{id}", wrap(h.Customers.Delete))

	mux.Handle("GET /api/products", wrap(h.Products.List))
	mux.Handle("GET /api/products/{id}", wrap(h.Products.GetByID))
	mux.Handle("POST /api/products", wrap(h.Products.Create))
	mux.Handle("PUT /api/products/{id}", wrap(h.Products.Update))
	mux.Handle("DELETE /api/products/{id}", wrap(h.Products.Delete))

	personOnly := RequireCapability(func(c domainauth.Capabilities) bool { return c.CanSeeAuthorizedPersons })
	wrapPerson := func(fn http.HandlerFunc) http.Handler { return authed(personOnly(fn)) }
	mux.Handle("GET /api/authorized-persons", wrapPerson(h.Persons.List))
	mux.Handle("GET /api/authorized-persons/{id}", wrapPerson(h.Persons.GetByID))
	mux.Handle("POST /api/authorized-persons", wrapPerson(h.Persons.Create))
	mux.Handle("PUT /api/authorized-persons/{id}", wrapPerson(h.Persons.Update))
	mux.Handle("DELETE /api/authorized-persons/{id}", wrapPerson(h.Persons.Delete))

	mux.Handle("GET /api/maintenances", wrap(h.Maintenances.List))
	mux.Handle("POST /api/maintenances", wrap(h.Maintenances.Create))
	mux.Handle("PUT /api/maintenances/{id}", wrap(h.Maintenances.Update))
	mux.Handle("DELETE /api/maintenances/{id}", wrap(h.Maintenances.Delete))

	mux.Handle("GET /api/dashboard/summary", wrap(h.Dashboard.Summary))
}

// PageState is the navigation payload for plain console pages. Pages with a
// richer view model (the admin directory) have their own handlers.
type PageState struct {
	Path          string                   `json:"path"`
	Authenticated bool                     `json:"authenticated"`
	Capabilities  *domainauth.Capabilities `json:"capabilities,omitempty"`
}

func registerPageRoutes(mux *http.ServeMux, admins *AdminHandlers) {
	guard := Guard()
	page := guard(http.HandlerFunc(pageStateHandler))

	mux.Handle("GET /login", page)
	mux.Handle("GET /register", page)
	mux.Handle("GET /dashboard", page)
	mux.Handle("GET /customers", page)
	mux.Handle("GET /customers/{id}", page)
	mux.Handle("GET /products", page)
	mux.Handle("GET /maintenances", page)
	mux.Handle("GET /authorized-persons", page)
	mux.Handle("GET /admins", guard(http.HandlerFunc(admins.Page)))
	mux.Handle("GET /admins/add", page)

	// Everything else, the root included, falls through to the guard's
	// unknown-path handling and gets redirected.
	mux.Handle("GET /", page)
}

func pageStateHandler(w http.ResponseWriter, r *http.Request) {
	state := PageState{Path: r.URL.Path}
	if principal, ok := GetPrincipalFromContext(r.Context()); ok {
		state.Authenticated = true
		caps := principal.Capabilities
		state.Capabilities = &caps
	}
	WriteJSON(w, http.StatusOK, state)
}
