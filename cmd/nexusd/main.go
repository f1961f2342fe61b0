package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexus/internal/app"
	"nexus/internal/infra/catalog"
)

type rootOptions struct {
	configPath string
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	opts := rootOptions{
		configPath: "nexus.yaml",
	}

	root := &cobra.Command{
		Use:   "nexusd",
		Short: "Nexus AI dashboard core: unified tool search and generation dispatch",
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", opts.configPath, "path to nexus config file")

	root.AddCommand(
		newServeCmd(logger, &opts),
		newValidateCmd(logger, &opts),
		newInitCmd(logger, &opts),
	)

	return root
}

func newServeCmd(logger *zap.Logger, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the core with its observability endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()

			application := app.New(logger)
			return application.Serve(ctx, app.ServeOptions{
				ConfigPath: opts.configPath,
			})
		},
	}
}

func newValidateCmd(logger *zap.Logger, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the config and catalog without starting anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application := app.New(logger)
			return application.ValidateConfig(cmd.Context(), app.ValidateOptions{
				ConfigPath: opts.configPath,
			})
		},
	}
}

func newInitCmd(logger *zap.Logger, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config with the built-in catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := catalog.WriteSample(opts.configPath); err != nil {
				return err
			}
			logger.Info("wrote starter config", zap.String("path", opts.configPath))
			return nil
		},
	}
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
