package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/nexacrm/crm-console/config"
	httpx "github.com/nexacrm/crm-console/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Adapters *Adapters
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	backend := cfg.Adapters.Backend
	router := httpx.NewRouter(httpx.RouterServices{
		Auth:              cfg.Services.Auth,
		Admins:            cfg.Services.Admins,
		Dashboard:         cfg.Services.Dashboard,
		Customers:         backend.Customers(),
		Products:          backend.Products(),
		AuthorizedPersons: backend.AuthorizedPersons(),
		Maintenances:      backend.Maintenances(),
		CookieName:        cfg.Config.Auth.CookieName,
		CookieDomain:      cfg.Config.HTTP.CookieDomain,
		Logger:            logger,
	})

	// Order: Recover -> Logging -> Router
	handler := httpx.Logging(logger)(router)
	handler = httpx.Recover(logger)(handler)

	server := &http.Server{
		Addr:         cfg.Config.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}
	if logger != nil {
		logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("HTTP server stopped")
	}
	return nil
}
