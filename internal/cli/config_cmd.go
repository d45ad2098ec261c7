package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ecotrack/internal/config"
)

// newConfigCmd creates the config command group. Its commands run even when
// the current configuration does not load.
func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(a), newConfigValidateCmd(a), newConfigShowCmd(a))
	for _, c := range cmd.Commands() {
		c.Annotations = map[string]string{annotationLenientConfig: "true"}
	}
	return cmd
}

// newConfigInitCmd creates the config init command. Inside a project with a
// .ecotrack directory it writes the project overlay unless --global is set.
func newConfigInitCmd(a *app) *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Inside a project that has a .ecotrack directory, creates the project overlay at
$PROJECT/.ecotrack/config.yaml with a .gitignore that keeps local data out of
version control. Use --global to write ~/.ecotrack/config.yaml instead.`,
		Example: `  ecotrack config init
  ecotrack config init --global --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.projectDir != "" && !global {
				return initProjectConfig(cmd, a.projectDir, force)
			}
			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "write the global configuration even inside a project")
	return cmd
}

func checkWritable(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return errors.New("configuration file already exists, use --force to overwrite")
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}

func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, "config.yaml")
	if err := checkWritable(configPath, force); err != nil {
		return err
	}
	if err := os.MkdirAll(projectDir, 0o750); err != nil {
		return fmt.Errorf("failed to create project config directory: %w", err)
	}

	cfg := config.New()
	cfg.SetConfigPath(configPath)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	created, err := config.EnsureGitignore(projectDir)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", configPath)
	if created {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Created .gitignore to keep local data out of version control")
	}
	return nil
}

func initGlobalConfig(cmd *cobra.Command, force bool) error {
	cfg := config.New()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg.SetConfigPath(path)
	}
	if err := checkWritable(cfg.ConfigPath(), force); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", cfg.ConfigPath())
	return nil
}

func newConfigValidateCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Long: `Loads the global file, the project overlay and ECOTRACK_* environment
variables, and reports the first invalid value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.configErr != nil {
				return fmt.Errorf("configuration validation failed: %w", a.configErr)
			}
			cfg := a.config()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Configuration is valid")
			if verbose {
				_, _ = fmt.Fprintln(out)
				_, _ = fmt.Fprintln(out, "Configuration details:")
				_, _ = fmt.Fprintf(out, "  Config file: %s\n", cfg.ConfigPath())
				if a.projectDir != "" {
					_, _ = fmt.Fprintf(out, "  Project overlay: %s\n", filepath.Join(a.projectDir, "config.yaml"))
				}
				opts := cfg.StoreOptions()
				_, _ = fmt.Fprintf(out, "  Storage backend: %s\n", opts.Backend)
				_, _ = fmt.Fprintf(out, "  Storage path: %s\n", opts.Path)
				_, _ = fmt.Fprintf(out, "  Classifier endpoint: %s\n", valueOr(cfg.Classifier.Endpoint, "(offline)"))
				_, _ = fmt.Fprintf(out, "  Classifier cache: %s (ttl %s)\n", cfg.ClassifierCacheDir(), cfg.Classifier.CacheTTL)
				_, _ = fmt.Fprintf(out, "  Logging level: %s\n", cfg.Logging.Level)
				_, _ = fmt.Fprintf(out, "  Log file: %s\n", valueOr(cfg.Logging.File, "(stderr)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.configErr != nil {
				return a.configErr
			}
			shown := *a.config()
			if shown.Storage.RedisPassword != "" {
				shown.Storage.RedisPassword = "********"
			}
			data, err := yaml.Marshal(shown)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			_, _ = cmd.OutOrStdout().Write(data)
			return nil
		},
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
