package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ecotrack/internal/greenops"
	"github.com/rshade/ecotrack/internal/impactlog"
	"github.com/rshade/ecotrack/internal/state"
	"github.com/rshade/ecotrack/internal/streak"
	"github.com/rshade/ecotrack/internal/tui"
)

// footprintReport is the JSON shape of the footprint command.
type footprintReport struct {
	Range       string                     `json:"range"`
	Daily       greenops.Footprint         `json:"daily"`
	Total       greenops.Footprint         `json:"total"`
	Equivalency greenops.EquivalencyOutput `json:"equivalency"`
}

func newFootprintCmd(a *app) *cobra.Command {
	var rangeName string

	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Show the carbon and water footprint",
		Example: `  ecotrack footprint
  ecotrack footprint --range monthly --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rng, err := greenops.ParseRange(rangeName)
			if err != nil {
				return err
			}
			_, d, err := a.loadUserData(cmd.Context())
			if err != nil {
				return err
			}
			daily := d.Footprint()
			total := daily.Scaled(rng)
			rep := footprintReport{
				Range:       rng.String(),
				Daily:       daily,
				Total:       total,
				Equivalency: greenops.CalculateKg(total.CarbonKg),
			}
			return a.report(cmd, rep, func(r tui.Renderer) string { return r.Footprint(daily, rng) })
		},
	}

	cmd.Flags().StringVarP(&rangeName, "range", "r", "daily", "display range: daily, weekly or monthly")
	addOutputFlag(cmd)
	return cmd
}

type scoreReport struct {
	Score      int    `json:"score"`
	Challenges int    `json:"challenges"`
	Points     int    `json:"habit_points"`
	Level      string `json:"level"`
}

func newScoreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Show the EcoScore",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, d, err := a.loadUserData(cmd.Context())
			if err != nil {
				return err
			}
			points := d.Streaks.TotalPoints()
			rep := scoreReport{
				Score:      d.Score(),
				Challenges: len(d.Challenges),
				Points:     points,
				Level:      streak.Level(points),
			}
			return a.report(cmd, rep, func(r tui.Renderer) string {
				return r.Score(rep.Score, rep.Challenges, rep.Points)
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}

type solarReport struct {
	AreaM2     float64        `json:"area_m2"`
	Projection greenops.Solar `json:"projection"`
}

func newSolarCmd(a *app) *cobra.Command {
	var area float64

	cmd := &cobra.Command{
		Use:   "solar",
		Short: "Estimate rooftop solar generation",
		Example: `  # Estimate for a 20 m² roof and remember the area
  ecotrack solar --area 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				d   state.UserData
				err error
			)
			if cmd.Flags().Changed("area") {
				d, err = a.mutate(cmd.Context(), func(d state.UserData) state.UserData {
					return state.SetSolarArea(d, area)
				})
			} else {
				_, d, err = a.loadUserData(cmd.Context())
			}
			if err != nil {
				return err
			}
			rep := solarReport{
				AreaM2:     d.Activity.Solar.AreaM2,
				Projection: greenops.SolarProjection(d.Activity.Solar.AreaM2).Rounded(),
			}
			return a.report(cmd, rep, func(r tui.Renderer) string { return r.Solar(rep.AreaM2, rep.Projection) })
		},
	}

	cmd.Flags().Float64Var(&area, "area", 0, "usable roof area in square metres")
	addOutputFlag(cmd)
	return cmd
}

type receiptReport struct {
	Date   string `json:"date"`
	Region string `json:"region"`
	greenops.Receipt
}

func newReceiptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Print today's planet receipt",
		Long: `Prints the daily footprint as a receipt, with the trees needed to absorb
the carbon and the savings against the city average.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, d, err := a.loadUserData(cmd.Context())
			if err != nil {
				return err
			}
			daily := d.Footprint()
			rep := receiptReport{
				Date:    a.opts.Clock.Now().Format(impactlog.LongDateLayout),
				Region:  d.Settings.Region,
				Receipt: greenops.ReceiptFor(daily.CarbonKg, daily.WaterLiters),
			}
			return a.report(cmd, rep, func(r tui.Renderer) string {
				return r.Receipt(rep.Date, rep.Region, rep.Receipt)
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}
