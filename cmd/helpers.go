package cmd

import (
	"fmt"
	"os"

	"codetune/internal/config"
	"codetune/internal/finetune"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `codetune init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Debug {
		verbose = true
	}
	return cfg, nil
}

// newClient creates a fine-tune client from the credential in the
// environment.
func newClient() (*finetune.Client, error) {
	apiKey := os.Getenv(config.APIKeyEnvVar)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable is required", config.APIKeyEnvVar)
	}
	return finetune.NewClient(apiKey), nil
}

// debugf prints to stderr when verbose output is enabled.
func debugf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
