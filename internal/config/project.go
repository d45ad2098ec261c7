package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/rshade/ecotrack/internal/logging"
)

// ProjectDirName is the per-project configuration directory.
const ProjectDirName = ".ecotrack"

// EnvProjectDir points at a project root or its .ecotrack directory.
const EnvProjectDir = "ECOTRACK_PROJECT_DIR"

// ResolveProjectDir finds the project-local .ecotrack directory. It checks,
// in order, flagValue, ECOTRACK_PROJECT_DIR, and a walk up from startDir.
// The walk stops at the user's home directory, whose .ecotrack is the global
// one. Returns "" when no project is found.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}
	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}
	if startDir == "" {
		return ""
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	home, _ := os.UserHomeDir()
	global, _ := GetConfigDir()
	for {
		if dir == home {
			return ""
		}
		candidate := filepath.Join(dir, ProjectDirName)
		if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() && candidate != global {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// NewWithProjectDir loads the global config then shallow-merges
// projectDir/config.yaml on top. A broken overlay is logged and skipped.
func NewWithProjectDir(ctx context.Context, projectDir string) (*Config, error) {
	return newLayered(ctx, "", projectDir)
}

func newLayered(ctx context.Context, configPath, projectDir string) (*Config, error) {
	base := func() (*Config, error) {
		cfg := New()
		if configPath != "" {
			cfg.SetConfigPath(configPath)
		}
		if err := cfg.LoadFile(cfg.ConfigPath()); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := base()
	if err != nil {
		return nil, err
	}
	if projectDir == "" {
		return cfg, nil
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, statErr := os.Stat(overlayPath); statErr != nil {
		if !errors.Is(statErr, os.ErrNotExist) {
			logging.FromContext(ctx).Warn().Err(statErr).Str("overlay_path", overlayPath).
				Msg("cannot read project config, using global config")
		}
		return cfg, nil
	}

	if mergeErr := ShallowMergeYAML(cfg, overlayPath); mergeErr != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(mergeErr).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global config")
		return base()
	}
	return cfg, nil
}

// Load builds the effective configuration: defaults, global file, project
// overlay, environment. The result is validated.
func Load(ctx context.Context, projectDir string) (*Config, error) {
	return LoadFrom(ctx, "", projectDir)
}

// LoadFrom is Load with the global config file replaced by configPath.
// An empty configPath selects the default location.
func LoadFrom(ctx context.Context, configPath, projectDir string) (*Config, error) {
	cfg, err := newLayered(ctx, configPath, projectDir)
	if err != nil {
		return nil, err
	}
	if envErr := ApplyEnv(cfg); envErr != nil {
		return nil, envErr
	}
	cfg.applyDefaults()
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return cfg, nil
}

func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}
	if filepath.Base(abs) == ProjectDirName {
		return abs
	}
	return filepath.Join(abs, ProjectDirName)
}
