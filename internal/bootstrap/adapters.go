package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nexacrm/crm-console/config"
	"github.com/nexacrm/crm-console/internal/adapters/crmapi"
	redisstore "github.com/nexacrm/crm-console/internal/adapters/redis"
	"github.com/nexacrm/crm-console/internal/adapters/token"
	"github.com/nexacrm/crm-console/internal/observability/statsd"
)

// Adapters holds the infrastructure clients shared by the services.
type Adapters struct {
	Redis    redis.UniversalClient
	Sessions *redisstore.SessionStore
	Decoder  *token.Decoder
	Backend  *crmapi.Client
	Metrics  statsd.Sink

	metricsClient *statsd.Client
}

// AdapterDeps groups inputs for BuildAdapters.
type AdapterDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// BuildAdapters connects the session store, the claim decoder, the metrics
// sink, and the backend client. A failure in any of them is fatal; the
// console has nothing useful to do without its backend or its store.
func BuildAdapters(ctx context.Context, deps AdapterDeps) (*Adapters, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.URI,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.URI, err)
	}

	metrics, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  cfg.Observability.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	decoder, err := token.NewDecoder(token.Config{
		RolePaths:    cfg.Auth.RoleClaimPaths,
		SubjectPaths: cfg.Auth.SubjectClaimPaths,
	})
	if err != nil {
		return nil, fmt.Errorf("init claim decoder: %w", err)
	}

	backend, err := crmapi.New(crmapi.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
		Metrics: metrics,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init backend client: %w", err)
	}

	return &Adapters{
		Redis:         redisClient,
		Sessions:      redisstore.NewSessionStore(redisClient),
		Decoder:       decoder,
		Backend:       backend,
		Metrics:       metrics,
		metricsClient: metrics,
	}, nil
}

// Close releases the adapter connections.
func (a *Adapters) Close(logger *slog.Logger) {
	if a == nil {
		return
	}
	if a.metricsClient != nil {
		if err := a.metricsClient.Close(); err != nil && logger != nil {
			logger.Warn("close metrics client failed", "error", err)
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil && logger != nil {
			logger.Warn("close redis failed", "error", err)
		}
	}
}
