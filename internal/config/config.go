// Package config loads ecotrack settings from the global config file, an
// optional project overlay and ECOTRACK_* environment variables, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ecotrack/internal/classify"
	"github.com/rshade/ecotrack/internal/store"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const configFileName = "config.yaml"

// DefaultAPIKeyEnv names the environment variable read for the classifier key.
const DefaultAPIKeyEnv = "ECOTRACK_CLASSIFIER_API_KEY"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full ecotrack configuration.
type Config struct {
	Storage    StorageConfig    `yaml:"storage"    envPrefix:"STORAGE_"`
	Classifier ClassifierConfig `yaml:"classifier" envPrefix:"CLASSIFIER_"`
	Logging    LoggingConfig    `yaml:"logging"    envPrefix:"LOG_"`
	Output     OutputConfig     `yaml:"output"     envPrefix:"OUTPUT_"`

	configPath string
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend       string `yaml:"backend"                  env:"BACKEND"`
	Path          string `yaml:"path,omitempty"           env:"PATH"`
	RedisAddr     string `yaml:"redis_addr,omitempty"     env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password,omitempty" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db,omitempty"       env:"REDIS_DB"`
	RedisPrefix   string `yaml:"redis_prefix,omitempty"   env:"REDIS_PREFIX"`
}

// ClassifierConfig configures the remote waste classifier and its cache.
type ClassifierConfig struct {
	Endpoint     string        `yaml:"endpoint,omitempty"  env:"ENDPOINT"`
	APIKeyEnv    string        `yaml:"api_key_env"         env:"API_KEY_ENV"`
	Timeout      time.Duration `yaml:"timeout"             env:"TIMEOUT"`
	CacheEnabled bool          `yaml:"cache_enabled"       env:"CACHE_ENABLED"`
	CacheDir     string        `yaml:"cache_dir,omitempty" env:"CACHE_DIR"`
	CacheTTL     time.Duration `yaml:"cache_ttl"           env:"CACHE_TTL"`
}

// APIKey reads the classifier key from the configured environment variable.
func (c ClassifierConfig) APIKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `yaml:"level"          env:"LEVEL"`
	Format string `yaml:"format"         env:"FORMAT"`
	File   string `yaml:"file,omitempty" env:"FILE"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" env:"DEFAULT_FORMAT"`
	Interactive   bool   `yaml:"interactive"    env:"INTERACTIVE"`
}

// New returns a Config holding defaults, pointed at the global config file.
func New() *Config {
	cfg := &Config{
		Storage: StorageConfig{Backend: store.BackendFile},
		Classifier: ClassifierConfig{
			APIKeyEnv:    DefaultAPIKeyEnv,
			Timeout:      classify.DefaultTimeout,
			CacheEnabled: true,
			CacheTTL:     classify.DefaultCacheTTL,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Output:  OutputConfig{DefaultFormat: FormatTable},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
	}
	return cfg
}

// ConfigPath returns the file Save writes to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Load reads from and Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// LoadFile decodes the YAML file at path onto c. Keys absent from the file
// keep their current values. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// Save writes c as YAML to ConfigPath.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(c.configPath), 0o700); mkdirErr != nil {
		return fmt.Errorf("creating config directory: %w", mkdirErr)
	}
	if writeErr := os.WriteFile(c.configPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing config file: %w", writeErr)
	}
	return nil
}

// applyDefaults fills zero values left behind by a section replaced in an
// overlay.
func (c *Config) applyDefaults() {
	d := New()
	if c.Storage.Backend == "" {
		c.Storage.Backend = d.Storage.Backend
	}
	if c.Classifier.APIKeyEnv == "" {
		c.Classifier.APIKeyEnv = d.Classifier.APIKeyEnv
	}
	if c.Classifier.Timeout == 0 {
		c.Classifier.Timeout = d.Classifier.Timeout
	}
	if c.Classifier.CacheTTL == 0 {
		c.Classifier.CacheTTL = d.Classifier.CacheTTL
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
	if c.Output.DefaultFormat == "" {
		c.Output.DefaultFormat = d.Output.DefaultFormat
	}
}

// Validate checks every section and reports the first bad field.
func (c *Config) Validate() error {
	backend := strings.ToLower(c.Storage.Backend)
	if !slices.Contains(store.Backends(), backend) {
		return fmt.Errorf("%w: storage.backend %q must be one of %s",
			ErrInvalidConfig, c.Storage.Backend, strings.Join(store.Backends(), ", "))
	}
	if c.Storage.RedisDB < 0 {
		return fmt.Errorf("%w: storage.redis_db must be >= 0, got %d", ErrInvalidConfig, c.Storage.RedisDB)
	}
	if c.Classifier.Timeout < 0 {
		return fmt.Errorf("%w: classifier.timeout must be positive, got %s", ErrInvalidConfig, c.Classifier.Timeout)
	}
	if c.Classifier.CacheTTL < classify.MinCacheTTL || c.Classifier.CacheTTL > classify.MaxCacheTTL {
		return fmt.Errorf("%w: classifier.cache_ttl: %w", ErrInvalidConfig, classify.ErrInvalidTTL)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q must be text or json", ErrInvalidConfig, c.Logging.Format)
	}
	switch strings.ToLower(c.Output.DefaultFormat) {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("%w: output.default_format %q must be table or json",
			ErrInvalidConfig, c.Output.DefaultFormat)
	}
	return nil
}

// StoreOptions maps the storage section onto store.Options, resolving the
// default location for file and sqlite backends under the config directory.
func (c *Config) StoreOptions() store.Options {
	opts := store.Options{
		Backend:       strings.ToLower(c.Storage.Backend),
		Path:          c.Storage.Path,
		RedisAddr:     c.Storage.RedisAddr,
		RedisPassword: c.Storage.RedisPassword,
		RedisDB:       c.Storage.RedisDB,
		RedisPrefix:   c.Storage.RedisPrefix,
	}
	if opts.Path == "" {
		if dir, err := GetConfigDir(); err == nil {
			switch opts.Backend {
			case store.BackendSQLite:
				opts.Path = filepath.Join(dir, "ecotrack.db")
			case store.BackendFile, "":
				opts.Path = filepath.Join(dir, "data")
			}
		}
	}
	return opts
}

// ClassifierCacheDir returns the classification cache directory.
func (c *Config) ClassifierCacheDir() string {
	if c.Classifier.CacheDir != "" {
		return c.Classifier.CacheDir
	}
	dir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cache", "classify")
}
