package iconservice

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML service configuration, applying defaults for
// anything unset. An empty path returns a pure-default configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = ":8080"
	}
	if cfg.CacheDir == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user cache directory: %w", err)
		}
		cfg.CacheDir = filepath.Join(userCache, "svgicon")
	}
	if cfg.GlyphCellWidth <= 0 {
		cfg.GlyphCellWidth = 10
	}
	if cfg.GlyphCellHeight <= 0 {
		cfg.GlyphCellHeight = 20
	}

	return cfg, nil
}
