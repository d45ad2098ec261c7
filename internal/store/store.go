// Package store persists engine state as opaque blobs behind a pluggable
// key/value backend.
//
// Three backends are provided:
//   - FileStore: one JSON file per key in a directory (the default, ~/.ecotrack/data)
//   - SQLiteStore: a single blobs table in a SQLite database
//   - RedisStore: plain string keys with an optional prefix
//
// Snapshots layers the engine's keys and schema versioning on top of any
// backend.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Storage errors.
var (
	ErrInvalidKey         = errors.New("store key cannot be empty")
	ErrUnknownBackend     = errors.New("unknown storage backend")
	ErrStoreClosed        = errors.New("store is closed")
	ErrSnapshotCorrupted  = errors.New("snapshot corrupted")
	ErrIncompatibleSchema = errors.New("incompatible snapshot schema")
)

// BlobStore is a minimal key/value store. Get reports absence with ok=false
// rather than an error.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendFile, BackendSQLite, BackendRedis, BackendMemory}
}

// Options selects and configures a backend.
type Options struct {
	Backend string
	// Path is the data directory for the file backend and the database file
	// for the sqlite backend.
	Path          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Open constructs the backend named by opts.Backend.
func Open(ctx context.Context, opts Options) (BlobStore, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendFile:
		return NewFileStore(opts.Path)
	case BackendSQLite:
		return OpenSQLite(ctx, opts.Path)
	case BackendRedis:
		return OpenRedis(ctx, RedisOptions{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
			Prefix:   opts.RedisPrefix,
		})
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	return nil
}
