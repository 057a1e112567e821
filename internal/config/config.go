// Package config loads the axkit CLI defaults from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "AXKIT_CONFIG"

// Config holds values the CLI uses when the matching flag is not given.
type Config struct {
	// Timeout is the process-wide messaging timeout, e.g. "2s", set once on
	// the system-wide element when the system is opened. Zero keeps the
	// system default.
	Timeout  time.Duration
	LogLevel string
	Format   string
}

type rawConfig struct {
	Timeout  string `yaml:"timeout"`
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{LogLevel: "warn", Format: "yaml"}
}

// DefaultConfigPath returns $AXKIT_CONFIG or ~/.config/axkit/config.yaml.
func DefaultConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "axkit", "config.yaml"), nil
}

// Load reads the config from the standard location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads path over the defaults. A missing file is not an error.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid timeout %q: must not be negative", raw.Timeout)
		}
		cfg.Timeout = d
	}
	if raw.LogLevel != "" {
		cfg.LogLevel = raw.LogLevel
	}
	if raw.Format != "" {
		switch raw.Format {
		case "yaml", "json":
			cfg.Format = raw.Format
		default:
			return nil, fmt.Errorf("invalid format %q: use yaml or json", raw.Format)
		}
	}
	return cfg, nil
}
