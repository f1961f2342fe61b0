package app

import (
	"context"

	"go.uber.org/zap"

	"nexus/internal/infra/catalog"
	"nexus/internal/infra/telemetry"
)

type ServeOptions struct {
	ConfigPath string
}

// Serve loads the config, assembles the core, and runs the observability
// endpoint until ctx is canceled.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	cfg, err := catalog.NewLoader(a.logger).Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	metrics := telemetry.NewPrometheusMetrics(nil)
	core, err := a.Build(ctx, BuildOptions{Config: cfg, Metrics: metrics})
	if err != nil {
		return err
	}
	defer func() { _ = core.Close() }()

	go func() {
		if err := catalog.Watch(ctx, opts.ConfigPath, a.logger); err != nil {
			a.logger.Warn("config watcher stopped", zap.Error(err))
		}
	}()

	health := telemetry.NewHealthTracker()
	health.SetReady(true)

	a.logger.Info("nexus core ready",
		zap.Int("tools", core.Catalog.Len()),
		zap.String("mode", string(core.Dispatcher.Mode())),
		zap.Int("credits", core.Ledger.Balance()),
	)

	return telemetry.StartHTTPServer(ctx, telemetry.HTTPServerOptions{
		Addr:          cfg.Runtime.Observability.ListenAddress,
		EnableMetrics: cfg.Runtime.Observability.EnableMetrics,
		EnableHealthz: cfg.Runtime.Observability.EnableHealthz,
		Health:        health,
	}, a.logger)
}

type ValidateOptions struct {
	ConfigPath string
}

// ValidateConfig loads and validates the config without opening state or
// contacting the capability.
func (a *App) ValidateConfig(_ context.Context, opts ValidateOptions) error {
	cfg, err := catalog.NewLoader(a.logger).Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	store, err := catalog.NewStore(cfg.Tools)
	if err != nil {
		return err
	}
	a.logger.Info("config is valid",
		zap.String("path", opts.ConfigPath),
		zap.Int("tools", store.Len()),
		zap.String("provider", cfg.Runtime.Capability.Provider),
	)
	return nil
}
