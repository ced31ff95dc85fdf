package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/s0up4200/fastpix/bulk"
)

// envKeys are bound to FASTPIX_* variables, e.g. fastpix.api_key -> FASTPIX_API_KEY.
var envKeys = map[string]string{
	"fastpix.username":        "FASTPIX_USERNAME",
	"fastpix.password":        "FASTPIX_PASSWORD",
	"fastpix.api_key":         "FASTPIX_API_KEY",
	"fastpix.base_url":        "FASTPIX_BASE_URL",
	"fastpix.timeout":         "FASTPIX_TIMEOUT",
	"fastpix.skip_validation": "FASTPIX_SKIP_VALIDATION",
	"output.format":           "FASTPIX_OUTPUT",
	"bulk.concurrency":        "FASTPIX_BULK_CONCURRENCY",
	"logging.level":           "FASTPIX_LOG_LEVEL",
	"logging.format":          "FASTPIX_LOG_FORMAT",
}

// Load loads the configuration from file and environment. A .env file in
// the working directory is loaded first; existing variables win. Without an
// explicit path a missing config file is not an error, so credentials can
// come from the environment alone.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := viper.New()

	// Set default values
	setDefaults(v)

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".fastpix"))
		}

		// Check /etc
		v.AddConfigPath("/etc/fastpix/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("fastpix.base_url", "https://v1.fastpix.io")
	v.SetDefault("fastpix.timeout", "30s")
	v.SetDefault("fastpix.skip_validation", false)

	v.SetDefault("output.format", "json")
	v.SetDefault("output.color", true)

	v.SetDefault("bulk.concurrency", bulk.DefaultConcurrency)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if !cfg.FastPix.HasCredentials() {
		return fmt.Errorf("fastpix.api_key or fastpix.username and fastpix.password must be set")
	}

	if cfg.FastPix.BaseURL != "" && !strings.HasPrefix(cfg.FastPix.BaseURL, "http://") &&
		!strings.HasPrefix(cfg.FastPix.BaseURL, "https://") {
		return fmt.Errorf("invalid fastpix.base_url: %s", cfg.FastPix.BaseURL)
	}

	if cfg.FastPix.Timeout < 0 {
		return fmt.Errorf("fastpix.timeout must not be negative")
	}

	validOutputs := map[string]bool{
		"json":   true,
		"yaml":   true,
		"pretty": true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s (must be json, yaml or pretty)", cfg.Output.Format)
	}

	if cfg.Bulk.Concurrency < 1 || cfg.Bulk.Concurrency > bulk.MaxConcurrency {
		return fmt.Errorf("bulk.concurrency must be between 1 and %d, got %d", bulk.MaxConcurrency, cfg.Bulk.Concurrency)
	}

	for name, expr := range cfg.Filter {
		if strings.TrimSpace(expr) == "" {
			return fmt.Errorf("filter preset %q has an empty expression", name)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
