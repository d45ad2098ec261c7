package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const blobFileExtension = ".json"

// FileStore keeps one file per key in a directory. Writes go through a
// temp file and rename, guarded by a cross-process lockfile.
type FileStore struct {
	mu        sync.RWMutex
	directory string
}

// NewFileStore creates a FileStore rooted at directory, defaulting to
// ~/.ecotrack/data. The directory is created if missing.
func NewFileStore(directory string) (*FileStore, error) {
	if directory == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determining home directory: %w", err)
		}
		directory = filepath.Join(home, ".ecotrack", "data")
	}
	if err := os.MkdirAll(directory, 0o750); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &FileStore{directory: directory}, nil
}

// Directory returns the data directory.
func (s *FileStore) Directory() string {
	return s.directory
}

// Get reads the blob for key.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.keyToFilePath(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, true, nil
}

// Put writes the blob for key atomically.
func (s *FileStore) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	path := s.keyToFilePath(key)
	unlock, err := acquireFileLock(path + ".lock")
	if err != nil {
		return fmt.Errorf("acquiring file lock: %w", err)
	}
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	tmpPath := path + ".tmp"
	if writeErr := os.WriteFile(tmpPath, value, 0o600); writeErr != nil {
		return fmt.Errorf("writing %s temp file: %w", key, writeErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming %s temp file: %w", key, renameErr)
	}
	return nil
}

// Delete removes the blob for key. Missing keys are not an error.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.keyToFilePath(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) keyToFilePath(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(key)
	return filepath.Join(s.directory, safe+blobFileExtension)
}
