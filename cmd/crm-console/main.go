package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nexacrm/crm-console/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting crm console",
		"addr", cfg.HTTP.Addr,
		"upstream", cfg.Upstream.BaseURL,
		"dev", cfg.IsDev)

	adapters, err := bootstrap.BuildAdapters(ctx, bootstrap.AdapterDeps{
		Config: &cfg,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer adapters.Close(logger)

	services := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config:   &cfg,
		Adapters: adapters,
		Logger:   logger,
	})

	server := bootstrap.StartHTTPServer(&bootstrap.HTTPServerConfig{
		Config:   &cfg,
		Services: services,
		Adapters: adapters,
		Logger:   logger,
	})

	stop, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	return bootstrap.ShutdownHTTPServer(ctx, server, logger)
}
