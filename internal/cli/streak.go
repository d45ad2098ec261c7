package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/ecotrack/internal/logging"
	"github.com/rshade/ecotrack/internal/state"
	"github.com/rshade/ecotrack/internal/streak"
	"github.com/rshade/ecotrack/internal/tui"
)

// habitStatus is the JSON shape of one habit in streak show.
type habitStatus struct {
	Habit     streak.Habit `json:"habit"`
	Title     string       `json:"title"`
	Displayed int          `json:"displayed_streak"`
	Stored    int          `json:"stored_streak"`
	LastLog   streak.Date  `json:"last_log_date"`
	State     streak.State `json:"state"`
}

type streakReport struct {
	Today  streak.Date   `json:"today"`
	Habits []habitStatus `json:"habits"`
	Points int           `json:"points"`
	Level  string        `json:"level"`
}

func newStreakCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "streak", Short: "Daily habit streaks"}
	cmd.AddCommand(newStreakLogCmd(a), newStreakShowCmd(a))
	return cmd
}

func newStreakLogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "log <habit>",
		Short: "Log a habit for today",
		Long: `Logs a habit for today. Logging twice on the same day has no effect; missing a
day restarts the streak at 1.

Habits: bikeCommute, carFree, shortShower, plasticFree`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			habit, err := streak.ParseHabit(args[0])
			if err != nil {
				return err
			}
			today := a.today()
			d, err := a.mutate(cmd.Context(), func(d state.UserData) state.UserData {
				return state.LogHabit(d, habit, today)
			})
			if err != nil {
				return err
			}
			s := d.Streaks[habit]
			logging.FromContext(cmd.Context()).Debug().
				Str("habit", string(habit)).
				Int("streak", s.Current).
				Str("date", today.String()).
				Msg("habit logged")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d day streak (%d points, %s)\n",
				habit, s.Current, d.Streaks.TotalPoints(), streak.Level(d.Streaks.TotalPoints()))
			return nil
		},
	}
}

func newStreakShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show every habit streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, d, err := a.loadUserData(cmd.Context())
			if err != nil {
				return err
			}
			today := a.today()
			rep := streakReport{Today: today, Points: d.Streaks.TotalPoints()}
			rep.Level = streak.Level(rep.Points)
			for _, h := range streak.Habits() {
				s := d.Streaks[h.Habit]
				rep.Habits = append(rep.Habits, habitStatus{
					Habit:     h.Habit,
					Title:     h.Title,
					Displayed: streak.Displayed(s, today),
					Stored:    s.Current,
					LastLog:   s.LastLogDate,
					State:     streak.StateOf(s, today),
				})
			}
			return a.report(cmd, rep, func(r tui.Renderer) string { return r.Streaks(d.Streaks, today) })
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func newChallengeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Accept or drop habit challenges",
		Long: `Challenges are the tracked habits taken on as commitments. Every active
challenge adds to the EcoScore.`,
	}

	accept := &cobra.Command{
		Use:   "accept <habit>",
		Short: "Accept a challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.changeChallenge(cmd, args[0], state.AcceptChallenge, "accepted")
		},
	}
	drop := &cobra.Command{
		Use:   "drop <habit>",
		Short: "Drop a challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.changeChallenge(cmd, args[0], state.DropChallenge, "dropped")
		},
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List active challenges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, d, err := a.loadUserData(cmd.Context())
			if err != nil {
				return err
			}
			return a.report(cmd, d.Challenges, func(r tui.Renderer) string { return r.Challenges(d.Challenges) })
		},
	}
	addOutputFlag(list)

	cmd.AddCommand(accept, drop, list)
	return cmd
}

func (a *app) changeChallenge(
	cmd *cobra.Command,
	arg string,
	fn func(state.UserData, string) state.UserData,
	verb string,
) error {
	habit, err := streak.ParseHabit(arg)
	if err != nil {
		return err
	}
	d, err := a.mutate(cmd.Context(), func(d state.UserData) state.UserData {
		return fn(d, string(habit))
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Challenge %s %s. %d active, EcoScore %d\n",
		habit, verb, len(d.Challenges), d.Score())
	return nil
}
