package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/ecotrack/internal/greenops"
	"github.com/rshade/ecotrack/internal/impactlog"
	"github.com/rshade/ecotrack/internal/logging"
	"github.com/rshade/ecotrack/internal/state"
	"github.com/rshade/ecotrack/internal/tui"
)

func newLogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Archive and search the impact log",
		Long: fmt.Sprintf(`The impact log keeps up to %d daily snapshots, newest first. Archiving
beyond that evicts the oldest entry.`, impactlog.Capacity),
	}
	cmd.AddCommand(newLogArchiveCmd(a), newLogSearchCmd(a), newLogSummaryCmd(a), newLogClearCmd(a))
	return cmd
}

func newLogArchiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Save today's footprint to the log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := a.opts.Clock.Now()
			var entry impactlog.Entry
			d, err := a.mutate(cmd.Context(), func(d state.UserData) state.UserData {
				next, e := state.ArchiveLog(d, now)
				entry = e
				return next
			})
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug().
				Str("entry_id", entry.ID.String()).
				Int("log_size", len(d.Logs)).
				Msg("footprint archived")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Archived %s: %s kg CO2e, %s (%d of %d entries)\n",
				entry.LongDate(), greenops.FormatFloat(entry.CarbonKg, 2), greenops.FormatLiters(entry.WaterLiters),
				len(d.Logs), impactlog.Capacity)
			return nil
		},
	}
}

func newLogSearchCmd(a *app) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "List log entries matching an activity or date",
		Example: `  ecotrack log search
  ecotrack log search cycling
  ecotrack log search "19 oct"
  ecotrack log search --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			_, d, err := a.loadUserData(cmd.Context())
			if err != nil {
				return err
			}
			if a.outputMode(cmd, interactive) == tui.OutputModeInteractive {
				return runProgram(cmd, tui.NewLogBrowserModel(d.Logs, term))
			}
			matches := impactlog.Search(d.Logs, term)
			return a.report(cmd, matches, func(r tui.Renderer) string { return r.Logs(matches) })
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the log interactively")
	addOutputFlag(cmd)
	return cmd
}

func newLogSummaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show lifetime totals over the log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, d, err := a.loadUserData(cmd.Context())
			if err != nil {
				return err
			}
			s := impactlog.Summarize(d.Logs)
			return a.report(cmd, s, func(r tui.Renderer) string { return r.LogSummary(s) })
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func newLogClearCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every log entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes && !Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), "Delete every impact log entry?") {
				return ErrResetNotConfirmed
			}
			if _, err := a.mutate(cmd.Context(), state.ClearLogs); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Impact log cleared.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// runProgram runs an interactive Bubble Tea model on the command's streams.
func runProgram(cmd *cobra.Command, model tea.Model) error {
	p := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive view: %w", err)
	}
	return nil
}
