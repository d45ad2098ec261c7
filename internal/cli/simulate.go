package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ecotrack/internal/logging"
	"github.com/rshade/ecotrack/internal/simulate"
	"github.com/rshade/ecotrack/internal/tui"
)

func newSimulateCmd(a *app) *cobra.Command {
	cfg := simulate.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project the savings of a group adopting green habits",
		Long: `Projects the carbon and water a group saves by adopting the selected habits
for a number of days. Without habit flags the defaults apply: cycling, short
showers and a 24°C AC setpoint.`,
		Example: `  ecotrack simulate
  ecotrack simulate --people 1000 --days 365 --cycle --solar
  ecotrack simulate --people 50 --days 7 --shower=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			habitFlags := []string{"cycle", "shower", "solar", "ac"}
			explicit := false
			for _, name := range habitFlags {
				explicit = explicit || cmd.Flags().Changed(name)
			}
			if explicit {
				// Any habit flag selects exactly the habits named.
				cfg.Cycle = flagBool(cmd, "cycle")
				cfg.ShortShower = flagBool(cmd, "shower")
				cfg.Solar = flagBool(cmd, "solar")
				cfg.ACSetpoint = flagBool(cmd, "ac")
			}

			res, err := simulate.Run(cfg)
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug().
				Int("population", cfg.Population).
				Int("days", cfg.Days).
				Float64("carbon_kg", res.CarbonKg).
				Msg("simulation run")
			return a.report(cmd, res, func(r tui.Renderer) string { return r.Simulation(res) })
		},
	}

	cmd.Flags().IntVarP(&cfg.Population, "people", "p", cfg.Population, "number of people adopting the habits")
	cmd.Flags().IntVarP(&cfg.Days, "days", "d", cfg.Days, "number of days")
	cmd.Flags().Bool("cycle", false, "cycle to work")
	cmd.Flags().Bool("shower", false, "take 5-minute showers")
	cmd.Flags().Bool("solar", false, "install rooftop solar")
	cmd.Flags().Bool("ac", false, "keep the AC at 24°C")
	addOutputFlag(cmd)
	return cmd
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}
