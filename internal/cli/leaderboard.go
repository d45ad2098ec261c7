package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ecotrack/internal/leaderboard"
	"github.com/rshade/ecotrack/internal/tui"
)

type leaderboardReport struct {
	UserRank int                 `json:"user_rank"`
	Ranking  leaderboard.Ranking `json:"ranking"`
	Spots    []leaderboard.Spot  `json:"spots,omitempty"`
}

func newLeaderboardCmd(a *app) *cobra.Command {
	var (
		interactive bool
		top         int
		spots       bool
	)

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank your EcoScore against the community",
		Example: `  ecotrack leaderboard
  ecotrack leaderboard --top 5 --spots
  ecotrack leaderboard --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, d, err := a.loadUserData(cmd.Context())
			if err != nil {
				return err
			}
			ranking := leaderboard.Rank(leaderboard.Roster(), d.Score())

			if a.outputMode(cmd, interactive) == tui.OutputModeInteractive {
				return runProgram(cmd, tui.NewLeaderboardModel(ranking, leaderboard.CommunitySpots()))
			}

			shown := ranking
			if top > 0 {
				shown = ranking.Top(top)
			}
			rep := leaderboardReport{UserRank: ranking.UserRank(), Ranking: shown}
			if spots {
				rep.Spots = leaderboard.CommunitySpots()
			}
			return a.report(cmd, rep, func(r tui.Renderer) string {
				out := r.Leaderboard(ranking, top)
				if spots {
					out += "\n\n" + r.Spots(rep.Spots)
				}
				return out
			})
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the leaderboard interactively")
	cmd.Flags().IntVar(&top, "top", 0, "show only the first N entries")
	cmd.Flags().BoolVar(&spots, "spots", false, "also list community eco spots")
	addOutputFlag(cmd)
	return cmd
}
