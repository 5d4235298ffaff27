package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planforge/internal/health"
	"github.com/felixgeelhaar/planforge/internal/plan"
	"github.com/felixgeelhaar/planforge/internal/server"
	"github.com/felixgeelhaar/planforge/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the planforge HTTP API",
	Long: `Start the HTTP API serving the wizard assistant endpoint, the
completion relay, and Kubernetes-style health probes.

Endpoints:
  /api/assistant  - Step insights and plan generation
  /api/relay      - Raw completion relay
  /health/live    - Liveness probe (process alive and responsive)
  /health/ready   - Readiness probe (ready to accept traffic)
  /health/startup - Startup probe (finished initialization)
  /healthz        - Backward-compatible readiness endpoint

The server drains connections gracefully on SIGTERM or SIGINT.

Example:
  # Listen on the configured address (default :8787)
  planforge serve

  # Listen on a custom address
  planforge serve --address :9090`,
	RunE: runServe,
}

var (
	serveAddress         string
	serveShutdownTimeout time.Duration
)

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", "", "Listen address (overrides config)")
	serveCmd.Flags().DurationVar(&serveShutdownTimeout, "shutdown-timeout", 30*time.Second, "Maximum time to wait for connections to drain during shutdown")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddress != "" {
		cfg.Server.Address = serveAddress
	}

	synthesizer, relayClient := buildSynthesizer(cfg, logger)

	info := version.GetInfo()
	pm := health.NewProbeManager(info.Version)

	// A typed-nil client must not reach the interface fields; the nil
	// checks downstream compare against the interface zero value.
	var prober health.RelayProber
	if relayClient != nil {
		prober = relayClient
	}
	pm.AddChecker(health.NewRelayChecker(prober))

	deps := server.Deps{
		Synthesizer: synthesizer,
		Store:       plan.NewMemoryStore(),
		Probes:      pm,
		Logger:      logger,
	}
	if relayClient != nil {
		deps.Relay = relayClient
	}

	srv := server.NewServer(deps, server.Config{
		Address:         cfg.Server.Address,
		ShutdownTimeout: serveShutdownTimeout,
	})

	fmt.Printf("planforge %s\n", info.Version)
	fmt.Printf("Listening on: http://%s\n", cfg.Server.Address)
	fmt.Printf("Press Ctrl+C to stop the server\n\n")

	logger.Info("server starting",
		"address", cfg.Server.Address,
		"relay", relayClient != nil,
	)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutdown signal received, draining connections")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout+5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}

		logger.Info("server stopped")
		return nil
	}
}
