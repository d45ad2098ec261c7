package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override, e.g. ECOTRACK_STORAGE_BACKEND.
const EnvPrefix = "ECOTRACK_"

// ApplyEnv overrides fields of c from ECOTRACK_* environment variables.
// Unset variables leave fields unchanged.
func ApplyEnv(c *Config) error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyEnvFrom is ApplyEnv with an explicit environment, for tests.
func ApplyEnvFrom(c *Config, environ map[string]string) error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
