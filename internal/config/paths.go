package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvHome overrides the ecotrack home directory.
const EnvHome = "ECOTRACK_HOME"

// GetConfigDir returns the ecotrack home directory, ~/.ecotrack unless
// ECOTRACK_HOME is set.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ecotrack"), nil
}

// EnsureConfigDir creates the ecotrack home directory.
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}
