package classify

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Cache TTL bounds.
const (
	DefaultCacheTTL = 24 * time.Hour
	MinCacheTTL     = time.Minute
	MaxCacheTTL     = 30 * 24 * time.Hour
)

const cacheFileExtension = ".json"

// Cache errors.
var (
	ErrCacheNotFound = errors.New("cache entry not found")
	ErrCacheExpired  = errors.New("cache entry expired")
	ErrInvalidTTL    = fmt.Errorf("TTL must be between %s and %s", MinCacheTTL, MaxCacheTTL)
)

// CacheEntry is one cached classification with its expiry.
type CacheEntry struct {
	Key       string    `json:"key"`
	Result    Result    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the entry is past its expiry at now.
func (e CacheEntry) IsExpired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

// FileCache stores classifications as JSON files keyed by a hash of the
// normalized item text. Safe for concurrent use.
type FileCache struct {
	mu        sync.RWMutex
	directory string
	ttl       time.Duration
	now       func() time.Time
}

// NewFileCache creates the cache directory if needed. ttl <= 0 selects
// DefaultCacheTTL.
func NewFileCache(directory string, ttl time.Duration) (*FileCache, error) {
	if directory == "" {
		return nil, errors.New("cache directory cannot be empty")
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if err := os.MkdirAll(directory, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &FileCache{directory: directory, ttl: ttl, now: time.Now}, nil
}

// Get returns the cached result for item.
func (c *FileCache) Get(item string) (Result, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.path(item)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, ErrCacheNotFound
		}
		return Result{}, fmt.Errorf("failed to read cache file: %w", err)
	}

	var entry CacheEntry
	if unmarshalErr := json.Unmarshal(data, &entry); unmarshalErr != nil {
		return Result{}, fmt.Errorf("failed to unmarshal cache entry: %w", unmarshalErr)
	}
	if entry.IsExpired(c.now()) {
		return Result{}, ErrCacheExpired
	}
	return entry.Result, nil
}

// Set stores res for item.
func (c *FileCache) Set(item string, res Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	entry := CacheEntry{
		Key:       cacheKey(item),
		Result:    res,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	path := c.path(item)
	tmpPath := path + ".tmp"
	if writeErr := os.WriteFile(tmpPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("failed to write cache file: %w", writeErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename cache file: %w", renameErr)
	}
	return nil
}

// CleanupExpired removes expired and unreadable entries and returns how many
// were removed.
func (c *FileCache) CleanupExpired() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.directory)
	if err != nil {
		return 0, fmt.Errorf("failed to read cache directory: %w", err)
	}

	now := c.now()
	removed := 0
	for _, dirEntry := range entries {
		if dirEntry.IsDir() || filepath.Ext(dirEntry.Name()) != cacheFileExtension {
			continue
		}
		path := filepath.Join(c.directory, dirEntry.Name())
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			continue
		}
		var entry CacheEntry
		if json.Unmarshal(data, &entry) != nil || entry.IsExpired(now) {
			if os.Remove(path) == nil {
				removed++
			}
		}
	}
	return removed, nil
}

// TTL returns the entry lifetime.
func (c *FileCache) TTL() time.Duration {
	return c.ttl
}

func (c *FileCache) path(item string) string {
	return filepath.Join(c.directory, cacheKey(item)+cacheFileExtension)
}

func cacheKey(item string) string {
	sum := sha256.Sum256([]byte(normalizeItem(item)))
	return hex.EncodeToString(sum[:])
}

func normalizeItem(item string) string {
	return strings.ToLower(strings.Join(strings.Fields(item), " "))
}

// ParseTTL accepts integer seconds ("3600") or a duration ("12h") within
// the allowed range.
func ParseTTL(s string) (time.Duration, error) {
	var d time.Duration
	if seconds, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		d = time.Duration(seconds) * time.Second
	} else {
		parsed, parseErr := time.ParseDuration(strings.TrimSpace(s))
		if parseErr != nil {
			return 0, fmt.Errorf("invalid TTL format: %w", parseErr)
		}
		d = parsed
	}
	if d < MinCacheTTL || d > MaxCacheTTL {
		return 0, fmt.Errorf("%w: got %s", ErrInvalidTTL, d)
	}
	return d, nil
}
