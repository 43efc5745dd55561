package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/polytopia/polyname/internal/config"
)

// ConfigFile is the optional per-directory configuration file.
const ConfigFile = "polyname.yaml"

// Config represents the top-level polyname.yaml configuration.
type Config struct {
	// Regime is the default name regime for commands that take none:
	// "abs", "con32" or "con64".
	Regime string `yaml:"regime,omitempty"`

	// Database is the path of the library index database.
	Database string `yaml:"database,omitempty"`

	// Extensions overrides the recognized geometry file extensions.
	Extensions []string `yaml:"extensions,omitempty"`
}

// loadConfig reads polyname.yaml from the working directory. A missing
// file yields the defaults.
func loadConfig() (Config, error) {
	cfg := Config{
		Regime:   config.RegimeTagDouble,
		Database: config.DefaultLibraryFile,
	}
	data, err := os.ReadFile(ConfigFile)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", ConfigFile, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", ConfigFile, err)
	}
	if cfg.Regime == "" {
		cfg.Regime = config.RegimeTagDouble
	}
	if cfg.Database == "" {
		cfg.Database = config.DefaultLibraryFile
	}
	if len(cfg.Extensions) > 0 {
		config.GeometryFileExtensions = cfg.Extensions
	}
	return cfg, nil
}
