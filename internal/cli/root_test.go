package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecotrack/internal/cli"
	"github.com/rshade/ecotrack/internal/config"
	"github.com/rshade/ecotrack/pkg/version"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	root := cli.NewRootCmd("1.2.3")
	assert.Equal(t, "ecotrack", root.Use)
	for _, name := range []string{"debug", "config", "store-dir", "project-dir", "plain"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}

	want := []string{
		"login", "set", "profile", "footprint", "receipt", "score", "solar", "streak", "log",
		"leaderboard", "simulate", "classify", "guide", "challenge", "workspace", "zones",
		"settings", "tips", "reset", "cache", "config", "version",
	}
	var got []string
	for _, c := range root.Commands() {
		got = append(got, c.Name())
	}
	for _, name := range want {
		assert.Contains(t, got, name)
	}
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	assert.Contains(t, env.mustRun("version"), "ecotrack "+version.GetVersion())

	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("version", "--json")), &info))
	assert.Equal(t, version.GetVersion(), info.Version)
}

func TestInvalidConfig(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.cfgPath, []byte("storage:\n  backend: etcd\n"), 0o600))

	_, err := env.run("profile")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = env.run("config", "validate")
	require.ErrorIs(t, err, config.ErrInvalidConfig, "validate reports the load failure")

	_, err = env.run("version")
	require.NoError(t, err, "version runs without a valid config")
}

func TestConfigCommands(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	out := env.mustRun("config", "validate", "--verbose")
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Storage backend: memory")

	shown := env.mustRun("config", "show")
	assert.Contains(t, shown, "backend: memory")

	fresh := filepath.Join(t.TempDir(), "nested", "config.yaml")
	root := cli.NewRootCmdWithOptions("1.2.3", env.options())
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"--config", fresh, "config", "init", "--global"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Configuration initialized at "+fresh)
	assert.FileExists(t, fresh)

	root = cli.NewRootCmdWithOptions("1.2.3", env.options())
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"--config", fresh, "config", "init", "--global"})
	err := root.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "already exists"))
}

func TestConfigInit_Project(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	projectDir := filepath.Join(t.TempDir(), config.ProjectDirName)

	out := env.mustRun("--project-dir", projectDir, "config", "init")
	assert.Contains(t, out, filepath.Join(projectDir, "config.yaml"))
	assert.FileExists(t, filepath.Join(projectDir, "config.yaml"))
	assert.FileExists(t, filepath.Join(projectDir, ".gitignore"))
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		assert.Equal(t, tt.want, cli.Confirm(&out, strings.NewReader(tt.input), "Continue?"), "input %q", tt.input)
		assert.Contains(t, out.String(), "Continue? [y/N]")
	}
}
