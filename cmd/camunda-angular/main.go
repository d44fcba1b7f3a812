package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/camunda-angular/client/internal/bootstrap"
	"github.com/camunda-angular/client/internal/config"
	"github.com/camunda-angular/client/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "camunda-angular",
		Short:         "Terminal client shell",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			log, err := logging.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("logging: %w", err)
			}
			logging.SetLogger(log)
			defer func() { _ = log.Sync() }()

			rt := bootstrap.New(cfg)
			log.Info("starting", zap.String("initial_route", cfg.Router.InitialRoute))
			return rt.Run(cmd.Context())
		},
	}

	f := cmd.Flags()
	f.String("config", "", "path to a TOML config file")
	f.String("route", "/", "location to open on start")
	f.Bool("headless", false, "paint a single frame to stdout and exit")
	f.String("log-level", "info", "log level (debug, info, warn, error)")
	return cmd
}
