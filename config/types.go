package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	FastPix FastPixConfig `mapstructure:"fastpix"`
	Output  OutputConfig  `mapstructure:"output"`
	Bulk    BulkConfig    `mapstructure:"bulk"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FastPixConfig holds API credentials and connection settings
type FastPixConfig struct {
	Username       string        `mapstructure:"username"`
	Password       string        `mapstructure:"password"`
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	SkipValidation bool          `mapstructure:"skip_validation"`
}

// HasCredentials reports whether either credential form is complete.
func (c FastPixConfig) HasCredentials() bool {
	return c.APIKey != "" || (c.Username != "" && c.Password != "")
}

// OutputConfig controls how command results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// BulkConfig controls multi-ID operations
type BulkConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
