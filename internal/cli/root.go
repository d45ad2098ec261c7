package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/ecotrack/internal/config"
)

// annotationLenientConfig marks commands that run with defaults when the
// configuration fails to load.
const annotationLenientConfig = "ecotrack/lenient-config"

// NewRootCmd creates the root Cobra command for the ecotrack CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithOptions(ver, Options{LookupEnv: os.LookupEnv})
}

// NewRootCmdWithOptions creates the root command with injected collaborators
// for testability.
func NewRootCmdWithOptions(ver string, opts Options) *cobra.Command {
	a := newApp(opts)

	cmd := &cobra.Command{
		Use:           "ecotrack",
		Short:         "Personal sustainability tracker",
		Long:          "ecotrack: estimate your daily carbon and water footprint, keep habit streaks and project collective impact",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadConfig(cmd); err != nil {
				if cmd.Annotations[annotationLenientConfig] == "" {
					return err
				}
				a.cfg = config.New()
				a.configErr = err
			}
			a.logResult, a.logger = setupLogging(cmd, a.config())
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.Debug().Ctx(cmd.Context()).Str("command", cmd.Name()).Msg("command finished")
			return a.close()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to the global config file (default ~/.ecotrack/config.yaml)")
	cmd.PersistentFlags().String("store-dir", "", "override the storage path (file directory or sqlite database)")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding a .ecotrack/config.yaml overlay")
	cmd.PersistentFlags().Bool("plain", false, "disable colours and boxes")

	cmd.AddCommand(
		newLoginCmd(a), newSetCmd(a), newProfileCmd(a), newFootprintCmd(a), newReceiptCmd(a),
		newScoreCmd(a), newSolarCmd(a), newStreakCmd(a), newLogCmd(a), newLeaderboardCmd(a),
		newSimulateCmd(a), newClassifyCmd(a), newGuideCmd(a), newChallengeCmd(a), newWorkspaceCmd(a),
		newZonesCmd(a), newSettingsCmd(a), newTipsCmd(a), newResetCmd(a), newCacheCmd(a),
		newConfigCmd(a), newVersionCmd(),
	)
	releaseOnFailure(cmd, a)

	return cmd
}

// releaseOnFailure closes the store and log file when a RunE fails, since
// cobra skips PersistentPostRunE in that case.
func releaseOnFailure(cmd *cobra.Command, a *app) {
	for _, c := range cmd.Commands() {
		releaseOnFailure(c, a)
	}
	if cmd.RunE == nil {
		return
	}
	run := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) error {
		return a.closeOnError(c, run(c, args))
	}
}

// loadConfig resolves the project overlay and loads the layered config.
// --store-dir overrides the storage path from every other layer.
func (a *app) loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	projectFlag, _ := cmd.Flags().GetString("project-dir")

	wd, _ := os.Getwd()
	projectDir := config.ResolveProjectDir(cmd.Context(), projectFlag, wd)

	cfg, err := config.LoadFrom(cmd.Context(), configPath, projectDir)
	if err != nil {
		return err
	}
	if storeDir, _ := cmd.Flags().GetString("store-dir"); storeDir != "" {
		cfg.Storage.Path = storeDir
	}
	a.cfg = cfg
	a.projectDir = projectDir
	return nil
}

const rootCmdExample = `  # Record today's commute and check the footprint
  ecotrack set transport.car_km 12
  ecotrack footprint --range weekly

  # Keep a habit streak going
  ecotrack streak log bikeCommute

  # Archive today's footprint and search the history
  ecotrack log archive
  ecotrack log search cycling

  # See where you stand
  ecotrack leaderboard --interactive

  # Project the impact of 500 people cycling for a year
  ecotrack simulate --people 500 --days 365 --cycle

  # Ask which bin an item goes in
  ecotrack classify "pizza box"`
