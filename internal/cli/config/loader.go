package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yndnr/cribcrack/internal/infra/confloader"
)

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".cribcrack", "config.yaml")
}

// Load builds the configuration from defaults, the config file, CRIBCRACK_*
// environment variables and flags, in increasing priority, and verifies
// it. flags maps dotted keys such as "search.workers" to values.
//
// An empty path reads DefaultConfigPath if it exists. An explicit path
// must exist.
func Load(path string, flags map[string]any) (*Config, error) {
	if path == "" {
		if p := DefaultConfigPath(); fileExists(p) {
			path = p
		}
	}

	cfg := Default()
	loader := confloader.NewLoader(confloader.WithConfigFile(path))
	if err := loader.Load(cfg, flags); err != nil {
		return nil, err
	}

	if err := Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
