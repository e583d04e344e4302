package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://dash.cloudflare.com", cfg.BaseURL)
	assert.Empty(t, cfg.Browser)
	assert.False(t, cfg.PrintOnly)
	assert.False(t, cfg.Quiet)
	assert.Empty(t, cfg.DefaultSection)
	assert.Empty(t, cfg.Aliases)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadWithPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `baseURL: https://dash.example.test
printOnly: true
defaultSection: waf
aliases:
  w: workers
  sec: security
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadWithPath(path)
	require.NoError(t, err)

	assert.Equal(t, "https://dash.example.test", cfg.BaseURL)
	assert.True(t, cfg.PrintOnly)
	assert.Equal(t, "waf", cfg.DefaultSection)
	assert.Equal(t, map[string]string{"w": "workers", "sec": "security"}, cfg.Aliases)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unset values keep their defaults.
	assert.False(t, cfg.Quiet)
	assert.Empty(t, cfg.Browser)
}

func TestLoadWithPathInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("baseURL: [unclosed"), 0o600))

	_, err := LoadWithPath(path)
	assert.Error(t, err)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("CFURL_BASEURL", "https://dash.env.test")
	t.Setenv("CFURL_QUIET", "true")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("printOnly: true\n"), 0o600))

	cfg, err := LoadWithPath(path)
	require.NoError(t, err)

	assert.Equal(t, "https://dash.env.test", cfg.BaseURL)
	assert.True(t, cfg.Quiet)
	assert.True(t, cfg.PrintOnly)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"http base is valid", func(c *Config) { c.BaseURL = "http://localhost:8080" }, false},
		{"non-http scheme rejected", func(c *Config) { c.BaseURL = "ftp://example.com" }, true},
		{"garbage base rejected", func(c *Config) { c.BaseURL = "://nope" }, true},
		{"bad log level rejected", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"empty log level allowed", func(c *Config) { c.Logging.Level = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	cfg.BaseURL = "https://dash.example.test"
	cfg.DefaultSection = "events"
	cfg.Aliases = map[string]string{"w": "workers"}

	require.NoError(t, cfg.WriteFile(path, false))

	loaded, err := LoadWithPath(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.BaseURL, loaded.BaseURL)
	assert.Equal(t, cfg.DefaultSection, loaded.DefaultSection)
	assert.Equal(t, cfg.Aliases, loaded.Aliases)
}

func TestWriteFileRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, DefaultConfig().WriteFile(path, false))

	err := DefaultConfig().WriteFile(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	assert.NoError(t, DefaultConfig().WriteFile(path, true))
}

func TestRenderUsesLoaderKeys(t *testing.T) {
	rendered, err := DefaultConfig().Render()
	require.NoError(t, err)

	assert.Contains(t, rendered, "baseURL:")
	assert.Contains(t, rendered, "logging:")
	assert.Contains(t, rendered, "level:")
}
