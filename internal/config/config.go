// Package config loads optional display defaults for the measurement
// tools.
//
// Config file locations (priority order):
//  1. $EDGEWISE_CONFIG
//  2. ./edgewise.yaml
//  3. ~/.config/edgewise/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"edgewise/pkg/geometry"
	"edgewise/pkg/units"
)

// Config holds display defaults. Flags override everything here.
type Config struct {
	Units string `yaml:"units"` // "metric" or "imperial"
	Axis  string `yaml:"axis"`  // default axis for cursor distance: "x", "y" or "z"
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, path, nil
}

// FindConfigPath returns the first existing config path, or ""
func FindConfigPath() string {
	if p := os.Getenv("EDGEWISE_CONFIG"); p != "" {
		return p
	}

	candidates := []string{"./edgewise.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "edgewise", "config.yaml"))
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// DefaultConfig returns the defaults used when no file exists
func DefaultConfig() *Config {
	return &Config{Units: "metric", Axis: "x"}
}

func (c *Config) applyDefaults() {
	if c.Units == "" {
		c.Units = "metric"
	}
	if c.Axis == "" {
		c.Axis = "x"
	}
}

// UnitSystem resolves the configured unit system
func (c *Config) UnitSystem() (units.System, error) {
	switch c.Units {
	case "metric":
		return units.Metric, nil
	case "imperial":
		return units.Imperial, nil
	}
	return units.Metric, fmt.Errorf("unknown unit system %q (expected metric or imperial)", c.Units)
}

// DefaultAxis resolves the configured default axis
func (c *Config) DefaultAxis() (geometry.Axis, error) {
	return geometry.ParseAxis(c.Axis)
}
