// Package logging builds the zerolog loggers used across ecotrack and carries
// them through context.Context.
package logging

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output destinations and formats.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
	FormatJSON   = "json"
	FormatText   = "console"
)

// Config describes how a logger is built.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// Result is a built logger plus the file handle it may own.
type Result struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if one was opened.
func (r *Result) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a logger from cfg. When the log file cannot be opened it falls
// back to stderr and records why, instead of failing the command.
func New(cfg Config) *Result {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	res := &Result{}
	var out io.Writer = os.Stderr

	if cfg.Output == OutputFile && cfg.File != "" {
		if mkErr := os.MkdirAll(filepath.Dir(cfg.File), 0o750); mkErr != nil {
			res.FallbackUsed = true
			res.FallbackReason = mkErr.Error()
		} else if f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); openErr != nil {
			res.FallbackUsed = true
			res.FallbackReason = openErr.Error()
		} else {
			res.file = f
			res.UsingFile = true
			res.FilePath = cfg.File
			out = f
		}
	}

	if cfg.Format != FormatJSON && !res.UsingFile {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	res.Logger = ctx.Logger()
	return res
}

// ComponentLogger tags every event with the emitting component.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or the global logger when
// none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return &log.Logger
	}
	l := zerolog.Ctx(ctx)
	if l == nil || l.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}
	return l
}

type traceIDKey struct{}

// ContextWithTraceID stores a trace ID in ctx.
func ContextWithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

// TraceIDFromContext returns the trace ID stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// GetOrGenerateTraceID returns the trace ID from ctx, minting a ULID when absent.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// PrintLogPathMessage tells the user where file logs are going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user file logging was not possible.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file (%s), logging to stderr\n", reason)
}
