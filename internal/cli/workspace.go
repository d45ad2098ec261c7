package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/ecotrack/internal/campus"
	"github.com/rshade/ecotrack/internal/state"
	"github.com/rshade/ecotrack/internal/tui"
)

func newWorkspaceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Choose the workspace and perspective",
		Long: `The workspace (University, Residential, Municipal) and mode (Individual,
Campus, Policy) are stored separately from the activity profile.`,
	}

	set := &cobra.Command{
		Use:     "set <workspace> <mode>",
		Short:   "Select a workspace and mode",
		Example: "  ecotrack workspace set University Campus",
		Args:    cobra.ExactArgs(2), //nolint:mnd // Workspace and mode.
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := state.ParseWorkspace(args[0])
			if err != nil {
				return err
			}
			mode, err := state.ParseMode(args[1])
			if err != nil {
				return err
			}
			if ws == state.WorkspaceUnset || mode == state.ModeUnset {
				return errors.New("workspace and mode are both required; use 'workspace reset' to clear them")
			}
			snaps, err := a.snapshots(cmd.Context())
			if err != nil {
				return err
			}
			c, err := snaps.LoadContext(cmd.Context())
			if err != nil {
				return err
			}
			c = c.Set(ws, mode)
			snaps.PersistContext(cmd.Context(), c)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Workspace set to %s (%s)\n", c.Workspace, c.Mode)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the selected workspace and mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snaps, err := a.snapshots(cmd.Context())
			if err != nil {
				return err
			}
			c, err := snaps.LoadContext(cmd.Context())
			if err != nil {
				return err
			}
			rep := struct {
				Workspace  state.Workspace `json:"workspace"`
				Mode       state.Mode      `json:"mode"`
				Complete   bool            `json:"complete"`
				PolicyView bool            `json:"policy_view"`
			}{c.Workspace, c.Mode, c.IsComplete(), c.PolicyView()}
			return a.report(cmd, rep, func(r tui.Renderer) string { return r.Context(c) })
		},
	}
	addOutputFlag(show)

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Clear the workspace and mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snaps, err := a.snapshots(cmd.Context())
			if err != nil {
				return err
			}
			if err := snaps.SaveContext(cmd.Context(), state.Context{}.Reset()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Workspace cleared.")
			return nil
		},
	}

	cmd.AddCommand(set, show, reset)
	return cmd
}

func newZonesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Show the read-only zone analysis for policy makers",
		Long: `Lists each zone's energy load and water stress next to its waste
segregation rate. Only available in the Policy mode; figures are aggregate estimates.`,
		Example: `  ecotrack workspace set Municipal Policy
  ecotrack zones`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snaps, err := a.snapshots(cmd.Context())
			if err != nil {
				return err
			}
			c, err := snaps.LoadContext(cmd.Context())
			if err != nil {
				return err
			}
			rep, err := campus.PolicyReport(c, campus.Zones())
			if err != nil {
				return fmt.Errorf("%w; select it with 'ecotrack workspace set <workspace> Policy'", err)
			}
			return a.report(cmd, rep, func(r tui.Renderer) string { return r.Zones(rep) })
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func newResetCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored data and start over",
		Long: `Deletes the activity profile, challenges, streaks, impact log and workspace
selection from the configured store. The configuration file is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes && !Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), "Delete all ecotrack data?") {
				return ErrResetNotConfirmed
			}
			snaps, err := a.snapshots(cmd.Context())
			if err != nil {
				return err
			}
			if err := snaps.ResetAll(cmd.Context()); err != nil {
				return fmt.Errorf("resetting data: %w", err)
			}
			a.logger.Info().Msg("all data reset")
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "All data deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
