// Package config loads server configuration from an optional YAML file
// with environment overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the server settings.
type Config struct {
	// Addr is the listen address (host:port).
	Addr string `yaml:"addr"`
	// Store selects the identity store backend: "memory" or "sqlite".
	Store string `yaml:"store"`
	// DSN is the sqlite database path, used when Store is "sqlite".
	DSN string `yaml:"dsn"`
	// UploadDir is the directory holding uploaded screenshots.
	UploadDir string `yaml:"upload_dir"`
	// ViewsDir is the HTML template directory.
	ViewsDir string `yaml:"views_dir"`
}

// Default returns the built-in settings: in-memory fixtures, local
// upload directory, port 8080.
func Default() *Config {
	return &Config{
		Addr:      ":8080",
		Store:     "memory",
		DSN:       "bank.db",
		UploadDir: "uploads/screenshots",
		ViewsDir:  "./views",
	}
}

// Load reads the YAML file at path over the defaults. A missing file is
// an error so the caller can decide to fall back to Default. The ADDR
// environment variable overrides the listen address.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Addr = addr
	}
	return cfg, nil
}
