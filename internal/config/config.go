// Package config loads planforge configuration from YAML with environment overrides.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/planforge/internal/errors"
)

// Config is the top-level planforge configuration
type Config struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Relay   RelayConfig   `yaml:"relay,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// RelayConfig configures the completion relay.
// The credential is resolved once at load time; components receive it
// explicitly instead of reading the process environment per call.
type RelayConfig struct {
	APIKey    string `yaml:"api_key,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Model     string `yaml:"model,omitempty"`
	MaxTokens int    `yaml:"max_tokens,omitempty"`
}

// LoggingConfig configures structured logging
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address: ":8787",
		},
		Relay: RelayConfig{
			BaseURL:   "https://api.anthropic.com/v1",
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 3000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultPath returns the default config file location (~/.planforge/config.yaml)
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".planforge", "config.yaml")
	}
	return filepath.Join(home, ".planforge", "config.yaml")
}

// Load reads configuration from path, falling back to defaults if the file
// does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "failed to read config file", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewFileUnmarshalError(path, "YAML", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv applies environment variable overrides
func (c *Config) applyEnv() {
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.Relay.APIKey = v
	}
	if v := os.Getenv("PLANFORGE_ADDR"); v != "" {
		c.Server.Address = v
	}
	if v := os.Getenv("PLANFORGE_MODEL"); v != "" {
		c.Relay.Model = v
	}
	if v := os.Getenv("PLANFORGE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// ValidateRelay checks that the relay can be constructed.
// Absence of the credential is a startup error, not a per-request one.
func (c *Config) ValidateRelay() error {
	if c.Relay.APIKey == "" {
		return errors.NewCredentialMissingError()
	}
	return nil
}

// Save writes the configuration to path, creating parent directories as needed
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "failed to marshal config", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to write config file", err)
	}
	return nil
}
