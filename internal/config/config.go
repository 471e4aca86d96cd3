package config

import "fmt"

// Config represents the complete fieldlint tool configuration
type Config struct {
	Lint    LintConfig    `mapstructure:"lint"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LintConfig represents lint behavior configuration
type LintConfig struct {
	Mode     string `mapstructure:"mode"`      // create or update: which request variant to build
	Format   string `mapstructure:"format"`    // json or pretty: how request bodies are printed
	FailFast bool   `mapstructure:"fail_fast"` // stop at the first definition that fails its check
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json or console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, or a file path
}

// Validate verifies the configuration values
func (c *Config) Validate() error {
	validModes := map[string]bool{
		"create": true, "update": true,
	}
	if !validModes[c.Lint.Mode] {
		return fmt.Errorf("lint.mode must be one of: create, update (got %q)", c.Lint.Mode)
	}

	validFormats := map[string]bool{
		"json": true, "pretty": true,
	}
	if !validFormats[c.Lint.Format] {
		return fmt.Errorf("lint.format must be one of: json, pretty (got %q)", c.Lint.Format)
	}

	return nil
}
