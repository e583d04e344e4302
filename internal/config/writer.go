package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"miguel.build/cfurl/internal/fileperms"
)

// fileConfig mirrors Config with yaml tags for writing config files.
// mapstructure tags drive reading; this keeps the written file keys
// identical to the ones viper reads back.
type fileConfig struct {
	BaseURL        string            `yaml:"baseURL"`
	Browser        string            `yaml:"browser,omitempty"`
	PrintOnly      bool              `yaml:"printOnly"`
	Quiet          bool              `yaml:"quiet"`
	DefaultSection string            `yaml:"defaultSection,omitempty"`
	Aliases        map[string]string `yaml:"aliases,omitempty"`
	Logging        fileLogging       `yaml:"logging"`
}

type fileLogging struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
}

const fileHeader = `# cfurl configuration
# Values here can be overridden with CFURL_* environment variables.
`

// Render returns the configuration as YAML using the same keys the
// loader reads.
func (c *Config) Render() (string, error) {
	fc := fileConfig{
		BaseURL:        c.BaseURL,
		Browser:        c.Browser,
		PrintOnly:      c.PrintOnly,
		Quiet:          c.Quiet,
		DefaultSection: c.DefaultSection,
		Aliases:        c.Aliases,
		Logging: fileLogging{
			Level:      c.Logging.Level,
			File:       c.Logging.File,
			MaxSizeMB:  c.Logging.MaxSizeMB,
			MaxBackups: c.Logging.MaxBackups,
			MaxAgeDays: c.Logging.MaxAgeDays,
		},
	}

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	return string(data), nil
}

// WriteFile renders the configuration to path. An existing file is
// left untouched unless overwrite is set.
func (c *Config) WriteFile(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
	}

	rendered, err := c.Render()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(fileHeader+rendered), fileperms.ConfigFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
