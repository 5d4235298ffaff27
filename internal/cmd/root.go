// Package cmd wires the planforge CLI: the HTTP API server, the terminal
// wizard, and supporting commands.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planforge/internal/config"
	"github.com/felixgeelhaar/planforge/internal/log"
	"github.com/felixgeelhaar/planforge/internal/relay"
	"github.com/felixgeelhaar/planforge/internal/synth"
)

var rootCmd = &cobra.Command{
	Use:   "planforge",
	Short: "AI-powered marketing growth plans",
	Long: `planforge turns a short interview about your business into a structured
marketing growth plan: quick wins, strategic initiatives, a phased roadmap,
recommended tooling, and success metrics.

Plans are generated through an AI completion provider when a credential is
configured, and fall back to a curated playbook when it is not.`,
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.planforge/config.yaml)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a cancellable context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig resolves configuration and installs the global logger
func loadConfig() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = log.ParseLevel(cfg.Logging.Level)
	logCfg.Format = log.ParseFormat(cfg.Logging.Format)
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	return cfg, logger, nil
}

// buildSynthesizer constructs the plan synthesizer, with a live relay when
// a credential is configured and fallback-only generation otherwise. The
// relay is nil in the fallback-only case.
func buildSynthesizer(cfg *config.Config, logger *log.Logger) (*synth.Synthesizer, *relay.Client) {
	if err := cfg.ValidateRelay(); err != nil {
		logger.Warn("no API credential configured, plans use the fallback playbook")
		return synth.New(nil, logger), nil
	}

	client, err := relay.NewClient(relay.Config{
		APIKey:    cfg.Relay.APIKey,
		BaseURL:   cfg.Relay.BaseURL,
		Model:     cfg.Relay.Model,
		MaxTokens: cfg.Relay.MaxTokens,
	}, logger)
	if err != nil {
		logger.WithError(err).Warn("relay client unavailable, plans use the fallback playbook")
		return synth.New(nil, logger), nil
	}

	return synth.New(client, logger), client
}
