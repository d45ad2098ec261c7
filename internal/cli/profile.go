package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/ecotrack/internal/greenops"
	"github.com/rshade/ecotrack/internal/logging"
	"github.com/rshade/ecotrack/internal/state"
	"github.com/rshade/ecotrack/internal/tui"
)

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login <name>",
		Short: "Set the local user name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return ErrEmptyName
			}
			d, err := a.mutate(cmd.Context(), func(d state.UserData) state.UserData {
				return state.Login(d, name)
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s. Your EcoScore is %d.\n", d.Profile.Username, d.Score())
			return nil
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set one activity input",
		Long: `Sets one activity input by its dotted name. Values are clamped: negative or
non-numeric input becomes 0. Distance, LPG and cooking water fields accept a
unit suffix (km, m, mi; g, kg, t, lb; l, m3, gal) and store the converted value.

Fields:
  ` + strings.Join(greenops.FieldNames(), "\n  "),
		Example: `  ecotrack set transport.car_km 12
  ecotrack set transport.car_km 8mi
  ecotrack set water.cooking_liters 1.5gal`,
		Args: cobra.ExactArgs(2), //nolint:mnd // Field and value.
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(strings.TrimSpace(args[0]))
			if !greenops.IsField(key) {
				return fmt.Errorf("%w %q (run 'ecotrack set --help' for the list)", ErrUnknownField, args[0])
			}
			if _, unit := greenops.SplitQuantity(args[1]); unit != "" && !greenops.IsRecognizedUnit(key, unit) {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unit %q does not apply to %s, storing 0\n", unit, key)
			}
			value := greenops.ParseFieldQuantity(key, args[1])

			d, err := a.mutate(cmd.Context(), func(d state.UserData) state.UserData {
				next, _ := state.SetField(d, key, value)
				return next
			})
			if err != nil {
				return err
			}
			stored, _ := d.Activity.Get(key)
			logging.FromContext(cmd.Context()).Debug().Str("field", key).Float64("value", stored).Msg("profile field set")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (EcoScore %d)\n",
				key, strconv.FormatFloat(stored, 'f', -1, 64), d.Score())
			return nil
		},
	}
	// Values such as -3 are positional, not shorthand flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the activity profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, d, err := a.loadUserData(cmd.Context())
			if err != nil {
				return err
			}
			return a.report(cmd, d, func(r tui.Renderer) string { return r.Profile(d) })
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "settings", Short: "Change preferences"}

	lowPower := &cobra.Command{
		Use:   "low-power",
		Short: "Toggle low power mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := a.mutate(cmd.Context(), state.ToggleLowPower)
			if err != nil {
				return err
			}
			status := "off"
			if d.Settings.LowPowerMode {
				status = "on"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Low power mode is %s\n", status)
			return nil
		},
	}

	region := &cobra.Command{
		Use:   "region <name>",
		Short: "Set the region used for seasonal tips",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return ErrEmptyName
			}
			d, err := a.mutate(cmd.Context(), func(d state.UserData) state.UserData {
				return state.SetRegion(d, name)
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Region set to %s\n", d.Settings.Region)
			if _, ok := greenops.TipFor(d.Settings.Region); !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No seasonal tips are available for this region yet.")
			}
			return nil
		},
	}

	cmd.AddCommand(lowPower, region)
	return cmd
}

func newTipsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tips",
		Short: "Show seasonal advice for your region and what the footprint leaves out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, d, err := a.loadUserData(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), a.renderer(cmd).Advice(d.Settings.Region))
			return nil
		},
	}
}
