// Package config provides configuration loading, validation, and management.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"miguel.build/cfurl/internal/fileperms"
)

// Config represents the application configuration
type Config struct {
	// BaseURL is the dashboard origin every resolved URL is rooted at
	BaseURL string `mapstructure:"baseURL"`

	// Browser is an override command for opening URLs; empty uses the
	// system default browser
	Browser string `mapstructure:"browser"`

	// PrintOnly resolves and prints the URL without opening a browser
	PrintOnly bool `mapstructure:"printOnly"`

	// Quiet suppresses the confirmation line on the terminal
	Quiet bool `mapstructure:"quiet"`

	// DefaultSection is the security section used when -s is absent
	DefaultSection string `mapstructure:"defaultSection"`

	// Aliases maps user-defined command aliases to command names
	Aliases map[string]string `mapstructure:"aliases"`

	// Logging holds log output settings
	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"maxSizeMB"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAgeDays"`
}

// DefaultConfig returns a configuration with sensible defaults.
// NOTE: These values must match setDefaults() to ensure consistent behavior
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://dash.cloudflare.com",
		Browser:        "",
		PrintOnly:      false,
		Quiet:          false,
		DefaultSection: "",
		Aliases:        map[string]string{},
		Logging: LoggingConfig{
			Level:      "warn",
			File:       "",
			MaxSizeMB:  5,
			MaxBackups: 2,
			MaxAgeDays: 7,
		},
	}
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	return LoadWithPath("")
}

// LoadWithPath reads configuration from a specific file path
func LoadWithPath(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.cfurl")
		v.AddConfigPath("/etc/cfurl")
	}

	// Environment variable support (CFURL_BASEURL, CFURL_QUIET, ...)
	v.SetEnvPrefix("CFURL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine; defaults and environment apply
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers defaults with viper so environment variables
// bind even when no config file exists.
// NOTE: These values must match DefaultConfig()
func setDefaults(v *viper.Viper) {
	v.SetDefault("baseURL", "https://dash.cloudflare.com")
	v.SetDefault("browser", "")
	v.SetDefault("printOnly", false)
	v.SetDefault("quiet", false)
	v.SetDefault("defaultSection", "")
	v.SetDefault("aliases", map[string]string{})
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.maxSizeMB", 5)
	v.SetDefault("logging.maxBackups", 2)
	v.SetDefault("logging.maxAgeDays", 7)
}

// Validate checks the configuration for logical errors
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid baseURL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid baseURL %q: scheme must be http or https", c.BaseURL)
	}

	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}

	return nil
}

// Dir returns the user configuration directory, creating it if needed
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	dir := filepath.Join(home, ".cfurl")
	if err := os.MkdirAll(dir, fileperms.ConfigDir); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return dir, nil
}

// Path returns the default config file location
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
