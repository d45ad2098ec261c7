package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rshade/ecotrack/internal/classify"
	"github.com/rshade/ecotrack/internal/cli"
	"github.com/rshade/ecotrack/internal/store"
	"github.com/rshade/ecotrack/internal/streak"
)

// testEnv runs commands against one in-memory store and a config file in a
// temp directory.
type testEnv struct {
	t          *testing.T
	dir        string
	cfgPath    string
	store      *store.MemoryStore
	now        time.Time
	classifier classify.Classifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`storage:
  backend: memory
classifier:
  cache_dir: %s
logging:
  level: error
`, filepath.Join(dir, "cache"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	return &testEnv{
		t:       t,
		dir:     dir,
		cfgPath: cfgPath,
		store:   store.NewMemoryStore(),
		now:     time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC),
	}
}

func (e *testEnv) options() cli.Options {
	return cli.Options{
		Store:      e.store,
		Classifier: e.classifier,
		Clock:      streak.FixedClock(e.now),
		LookupEnv:  func(string) (string, bool) { return "", false },
	}
}

func (e *testEnv) run(args ...string) (string, error) {
	return e.runWithInput("", args...)
}

func (e *testEnv) runWithInput(input string, args ...string) (string, error) {
	root := cli.NewRootCmdWithOptions("1.2.3", e.options())
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(append([]string{"--config", e.cfgPath}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "ecotrack %s", strings.Join(args, " "))
	return out
}

func (e *testEnv) runJSON(v any, args ...string) {
	e.t.Helper()
	out := e.mustRun(append(args, "--output", "json")...)
	require.NoError(e.t, json.Unmarshal([]byte(out), v), out)
}
