package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// gitignoreContent keeps per-user state out of version control while the
// project config stays tracked.
const gitignoreContent = `# ecotrack project-local data (auto-generated)
# Config is tracked; user-specific state is not.
data/
cache/
*.db
*.db-wal
*.db-shm
*.lock
*.tmp
*.log
`

// GitignoreContent returns the .gitignore written into project directories.
func GitignoreContent() string {
	return gitignoreContent
}

// EnsureGitignore creates dir/.gitignore unless one exists, and reports
// whether it wrote a new file.
func EnsureGitignore(dir string) (bool, error) {
	path := filepath.Join(dir, ".gitignore")

	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("checking .gitignore at %s: %w", path, err)
	}
	if mkdirErr := os.MkdirAll(dir, 0o750); mkdirErr != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, mkdirErr)
	}
	//nolint:gosec // .gitignore must be world-readable.
	if writeErr := os.WriteFile(path, []byte(gitignoreContent), 0o644); writeErr != nil {
		return false, fmt.Errorf("writing .gitignore at %s: %w", path, writeErr)
	}
	return true, nil
}
