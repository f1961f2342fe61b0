// Package app wires the core subsystems together for the nexusd daemon and
// for shells that embed the core in-process.
package app

import (
	"context"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"nexus/internal/domain"
	"nexus/internal/infra/auth"
	"nexus/internal/infra/billing"
	"nexus/internal/infra/capability"
	"nexus/internal/infra/catalog"
	"nexus/internal/infra/history"
	"nexus/internal/infra/search"
	"nexus/internal/infra/studio"
	"nexus/internal/infra/telemetry"
)

type App struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{logger: logger}
}

// Core is the assembled in-process surface a presentation shell consumes.
// The engine and dispatcher share nothing; they can be used and torn down
// independently.
type Core struct {
	Catalog    *catalog.Store
	Engine     *search.Engine
	Dispatcher *studio.Dispatcher
	History    *history.Store
	Auth       auth.Provider
	Ledger     *billing.Ledger
	Metrics    domain.Metrics

	db *bolt.DB
}

// Close releases the state store. Safe to call once.
func (c *Core) Close() error {
	c.History.Close()
	return c.db.Close()
}

type BuildOptions struct {
	Config  domain.Config
	Metrics domain.Metrics
}

// Build assembles a Core from a loaded config. The caller owns Close.
func (a *App) Build(ctx context.Context, opts BuildOptions) (*Core, error) {
	cfg := opts.Config
	metrics := opts.Metrics
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}

	store, err := catalog.NewStore(cfg.Tools)
	if err != nil {
		return nil, err
	}

	statePath := cfg.Runtime.State.Path
	if statePath == "" {
		statePath = domain.DefaultStatePath
	}
	db, err := bolt.Open(statePath, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, domain.E(domain.CodeUnavailable, "app.Build", "open state store "+statePath, err)
	}

	histStore, err := history.NewStore(db, a.logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sessions, err := auth.NewSessionStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	generator, err := capability.New(ctx, cfg.Runtime.Capability, metrics, a.logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	engine := search.NewEngine(
		store,
		history.NewSource(histStore, 0, a.logger),
		search.WithMetrics(metrics),
		search.WithLogger(a.logger),
	)

	settle := time.Duration(cfg.Runtime.Billing.SettleSeconds) * time.Second
	ledger := billing.NewLedger(
		cfg.Runtime.Billing.InitialCredits,
		billing.NewSimulatedProvider(settle),
		a.logger,
	)

	return &Core{
		Catalog:    store,
		Engine:     engine,
		Dispatcher: studio.NewDispatcher(generator, metrics, a.logger),
		History:    histStore,
		Auth:       auth.NewSimulatedProvider(sessions, a.logger),
		Ledger:     ledger,
		Metrics:    metrics,
		db:         db,
	}, nil
}
