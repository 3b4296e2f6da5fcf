// Package config loads gitfleet configuration from
// ~/.config/gitfleet/config.toml.
//
// Every setting is a default that command-line flags can override; the file
// is optional and its absence is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the gitfleet configuration.
type Config struct {
	// Roots are the default paths scanned for repositories when no --root
	// flag is given.
	Roots []string `toml:"roots"`

	// Recurse scans full subtrees instead of only immediate children.
	Recurse bool `toml:"recurse"`

	// MaxParallel caps concurrently running repository operations.
	// Zero means each command picks its own default.
	MaxParallel int `toml:"max_parallel"`

	// TimeoutSeconds bounds each per-repository operation.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// IncludeClean keeps clean repositories in status reports.
	IncludeClean bool `toml:"include_clean"`
}

// Default returns the default configuration. MaxParallel stays zero so
// each command's own default applies when the file does not set it.
func Default() Config {
	return Config{
		TimeoutSeconds: 300,
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitfleet", "config.toml"), nil
}

// Load reads the config file, returning defaults if it does not exist.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path, returning defaults if
// it does not exist.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	for i, root := range cfg.Roots {
		expanded, err := expandPath(root)
		if err != nil {
			return Default(), err
		}
		cfg.Roots[i] = expanded
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks configured values for consistency.
func (c Config) Validate() error {
	if c.MaxParallel < 0 {
		return fmt.Errorf("max_parallel must not be negative, got %d", c.MaxParallel)
	}
	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	for _, root := range c.Roots {
		if err := validatePath(root, "roots"); err != nil {
			return err
		}
	}
	return nil
}

// validatePath checks that the path is absolute or starts with ~.
func validatePath(path, fieldName string) error {
	if path == "" {
		return fmt.Errorf("%s entries must not be empty", fieldName)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s entries must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}
