package store

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// Lockfile tuning.
const (
	lockMaxRetries = 10
	lockRetryDelay = 100 * time.Millisecond
	staleLockAge   = 30 * time.Second
)

// acquireFileLock creates path exclusively, recording the PID so stale locks
// left by dead processes can be reclaimed. The returned func releases it.
func acquireFileLock(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	for range lockMaxRetries {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			_, _ = fmt.Fprintf(f, "%d", os.Getpid())
			_ = f.Close()
			return func() { _ = os.Remove(path) }, nil
		}
		if removeStaleLock(path, staleLockAge) {
			continue
		}
		time.Sleep(lockRetryDelay)
	}

	return nil, fmt.Errorf("could not acquire lock on %s after retries", path)
}

// removeStaleLock removes a lock older than maxAge whose owner is gone and
// reports whether it did.
func removeStaleLock(path string, maxAge time.Duration) bool {
	info, err := os.Stat(path)
	if err != nil || time.Since(info.ModTime()) <= maxAge {
		return false
	}
	if lockHeldByLiveProcess(path) {
		return false
	}
	_ = os.Remove(path)
	return true
}

func lockHeldByLiveProcess(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return false
	}
	var pid int
	if _, scanErr := fmt.Sscanf(string(data), "%d", &pid); scanErr != nil || pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal 0 checks for existence without delivering anything.
	return proc.Signal(syscall.Signal(0)) == nil
}
