package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rshade/ecotrack/internal/logging"
)

// ToLoggingConfig bridges the logging section to logging.Config. A file
// selects file output; otherwise logs go to stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// EnsureLogDir creates the directory of the configured log file, if any.
func (lc LoggingConfig) EnsureLogDir() error {
	if lc.File == "" {
		return nil
	}
	dir := filepath.Dir(lc.File)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", dir, err)
	}
	return nil
}
