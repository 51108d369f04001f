// Package config loads pokesearch settings from defaults, an optional
// YAML config file, and POKESEARCH_* environment variables, in that
// order of precedence (CLI flags override all of these at the command
// layer).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultBaseURL        = "https://pokeapi.co/api/v2"
	DefaultCacheDir       = ".cache"
	DefaultTimeoutSeconds = 30
)

// Environment variable names recognized by Load.
const (
	EnvBaseURL      = "POKESEARCH_BASE_URL"
	EnvCacheDir     = "POKESEARCH_CACHE_DIR"
	EnvCacheEnabled = "POKESEARCH_CACHE_ENABLED"
	EnvTimeout      = "POKESEARCH_TIMEOUT"
	EnvLogLevel     = "POKESEARCH_LOG_LEVEL"
	EnvLogFormat    = "POKESEARCH_LOG_FORMAT"
)

// Config holds all pokesearch settings.
type Config struct {
	// BaseURL is the PokéAPI root, without a trailing slash.
	BaseURL string `yaml:"base_url"`

	// CacheDir is the directory cache entries are stored under.
	CacheDir string `yaml:"cache_dir"`

	// CacheEnabled toggles response caching.
	CacheEnabled bool `yaml:"cache_enabled"`

	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Logging controls log output.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig mirrors logging.Config for YAML parsing.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// New returns a Config populated with defaults only.
func New() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		CacheDir:       DefaultCacheDir,
		CacheEnabled:   true,
		TimeoutSeconds: DefaultTimeoutSeconds,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load builds a Config from defaults, then the config file (if present),
// then environment variables. A missing config file is not an error; a
// malformed one is.
func Load() (*Config, error) {
	cfg := New()

	path := configFilePath()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants that later layers rely on.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url cannot be empty")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be > 0, got %d", c.TimeoutSeconds)
	}
	if c.CacheEnabled && c.CacheDir == "" {
		return fmt.Errorf("cache_dir cannot be empty while caching is enabled")
	}
	return nil
}

// mergeFile overlays values from a YAML config file onto c.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays POKESEARCH_* environment variables onto c.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv(EnvCacheEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.CacheEnabled = enabled
		}
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			c.TimeoutSeconds = seconds
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

// configFilePath locates the optional user config file
// ($HOME/.pokesearch/config.yaml). Returns "" when the home directory
// cannot be determined.
func configFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pokesearch", "config.yaml")
}
