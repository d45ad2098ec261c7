package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ecotrack/internal/campus"
	"github.com/rshade/ecotrack/internal/classify"
	"github.com/rshade/ecotrack/internal/greenops"
	"github.com/rshade/ecotrack/internal/impactlog"
	"github.com/rshade/ecotrack/internal/leaderboard"
	"github.com/rshade/ecotrack/internal/simulate"
)

func styledTable(columns []table.Column, rows []table.Row, height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(focused),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	return t
}

// renderRows draws rows as a static table. Plain mode emits tab-separated
// text with no escape codes.
func (r Renderer) renderRows(columns []table.Column, rows []table.Row) string {
	if r.plain() {
		var b strings.Builder
		titles := make([]string, len(columns))
		for i, c := range columns {
			titles[i] = c.Title
		}
		b.WriteString(strings.Join(titles, "\t"))
		for _, row := range rows {
			b.WriteString("\n")
			b.WriteString(strings.Join(row, "\t"))
		}
		return b.String()
	}
	t := styledTable(columns, rows, len(rows)+1, false)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t.View()
}

func logColumns() []table.Column {
	return []table.Column{
		{Title: "Date", Width: 18},       //nolint:mnd // Column width.
		{Title: "Carbon", Width: 12},     //nolint:mnd // Column width.
		{Title: "Water", Width: 10},      //nolint:mnd // Column width.
		{Title: "Activities", Width: 36}, //nolint:mnd // Column width.
	}
}

func logRow(e impactlog.Entry) table.Row {
	return table.Row{
		e.LongDate(),
		greenops.FormatFloat(e.CarbonKg, 2) + " kg",
		greenops.FormatLiters(e.WaterLiters),
		strings.Join(e.Activities, ", "),
	}
}

// NewLogTable builds an interactive table over impact log entries.
func NewLogTable(logs []impactlog.Entry, height int) table.Model {
	rows := make([]table.Row, len(logs))
	for i, e := range logs {
		rows[i] = logRow(e)
	}
	return styledTable(logColumns(), rows, height, true)
}

// Logs renders impact log entries newest first.
func (r Renderer) Logs(logs []impactlog.Entry) string {
	if len(logs) == 0 {
		return r.style(InfoStyle, "No archived logs yet. Run 'ecotrack log archive' to save today's footprint.")
	}
	rows := make([]table.Row, len(logs))
	for i, e := range logs {
		rows[i] = logRow(e)
	}
	return r.renderRows(logColumns(), rows)
}

// LogSummary renders lifetime totals.
func (r Renderer) LogSummary(s impactlog.Summary) string {
	var b strings.Builder
	b.WriteString(r.header("Lifetime impact"))
	b.WriteString("\n")
	b.WriteString(r.line("Entries", r.value(fmt.Sprintf("%d of %d", s.Count, impactlog.Capacity))))
	b.WriteString("\n")
	b.WriteString(r.line("Carbon", r.value(greenops.FormatMass(s.CarbonKg))))
	b.WriteString("\n")
	b.WriteString(r.line("Water", r.value(greenops.FormatLiters(s.WaterLiters))))
	return r.box(b.String())
}

func leaderboardColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},        //nolint:mnd // Column width.
		{Title: "", Width: 3},         //nolint:mnd // Column width.
		{Title: "Name", Width: 20},    //nolint:mnd // Column width.
		{Title: "EcoScore", Width: 9}, //nolint:mnd // Column width.
	}
}

func leaderboardRows(r leaderboard.Ranking) []table.Row {
	rows := make([]table.Row, len(r))
	for i, e := range r {
		name := e.Name
		if e.IsUser {
			name += " ◀"
		}
		rows[i] = table.Row{strconv.Itoa(e.Rank), e.Avatar, name, strconv.Itoa(e.Score)}
	}
	return rows
}

// Leaderboard renders a ranking with the user's position underneath. A
// positive top limits the rows; the position line always uses the full ranking.
func (r Renderer) Leaderboard(ranking leaderboard.Ranking, top int) string {
	shown := ranking
	if top > 0 {
		shown = ranking.Top(top)
	}
	var b strings.Builder
	b.WriteString(r.header("Community leaderboard"))
	b.WriteString("\n")
	b.WriteString(r.renderRows(leaderboardColumns(), leaderboardRows(shown)))
	if u, ok := ranking.User(); ok {
		b.WriteString("\n\n")
		b.WriteString(r.style(HighlightStyle, fmt.Sprintf("You are #%d of %d with %d points", u.Rank, len(ranking), u.Score)))
	}
	return b.String()
}

// Spots renders community eco spots.
func (r Renderer) Spots(spots []leaderboard.Spot) string {
	var b strings.Builder
	b.WriteString(r.header("Community eco spots"))
	for _, s := range spots {
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("%s %s ", s.Icon, r.value(s.Action)))
		b.WriteString(r.style(OKStyle, fmt.Sprintf("+%d eco points", s.Impact)))
		b.WriteString("\n")
		b.WriteString(r.style(SubtleStyle, s.Insight))
	}
	return b.String()
}

// Simulation renders a population projection.
func (r Renderer) Simulation(res simulate.Result) string {
	cfg := res.Config
	var habits []string
	if cfg.Cycle {
		habits = append(habits, "cycle to work")
	}
	if cfg.ShortShower {
		habits = append(habits, "short showers")
	}
	if cfg.Solar {
		habits = append(habits, "rooftop solar")
	}
	if cfg.ACSetpoint {
		habits = append(habits, "AC at 24°C")
	}
	adopted := "no habits"
	if len(habits) > 0 {
		adopted = strings.Join(habits, ", ")
	}

	var b strings.Builder
	b.WriteString(r.header("Collective impact"))
	b.WriteString("\n")
	b.WriteString(r.style(SubtleStyle, fmt.Sprintf("%s people · %d days · %s",
		greenops.FormatNumber(int64(cfg.Population)), cfg.Days, adopted)))
	b.WriteString("\n")
	b.WriteString(r.line("Carbon avoided", r.style(OKStyle, res.Carbon())))
	b.WriteString("\n")
	b.WriteString(r.line("Water saved", r.style(InfoStyle, res.Water())))
	b.WriteString("\n")
	b.WriteString(r.line("Tree-years", r.value(res.Trees())))
	return r.box(b.String())
}

// Classification renders a waste classification result.
func (r Renderer) Classification(res classify.Result) string {
	var b strings.Builder
	b.WriteString(r.header(res.Name))
	b.WriteString("\n")
	b.WriteString(r.line("Bin", r.style(categoryStyle(res.Category), string(res.Category))))
	b.WriteString("\n")
	b.WriteString(r.line("Source", r.style(SubtleStyle, string(res.Source))))
	b.WriteString("\n")
	b.WriteString(res.Guide)
	return r.box(b.String())
}

// Guide renders local waste guide entries.
func (r Renderer) Guide(items []classify.Item) string {
	if len(items) == 0 {
		return r.style(InfoStyle, "No guide entries match.")
	}
	rows := make([]table.Row, len(items))
	for i, it := range items {
		rows[i] = table.Row{it.Name, string(it.Category), it.Guide}
	}
	cols := []table.Column{
		{Title: "Item", Width: 18}, //nolint:mnd // Column width.
		{Title: "Bin", Width: 10},  //nolint:mnd // Column width.
		{Title: "How", Width: 44},  //nolint:mnd // Column width.
	}
	return r.renderRows(cols, rows)
}

func zoneColumns() []table.Column {
	return []table.Column{
		{Title: "Zone", Width: 20},         //nolint:mnd // Column width.
		{Title: "Energy", Width: 8},        //nolint:mnd // Column width.
		{Title: "Water stress", Width: 13}, //nolint:mnd // Column width.
		{Title: "Segregation", Width: 12},  //nolint:mnd // Column width.
		{Title: "Population", Width: 11},   //nolint:mnd // Column width.
	}
}

// Zones renders the read-only policy dashboard.
func (r Renderer) Zones(rep campus.Report) string {
	rows := make([]table.Row, len(rep.Zones))
	for i, z := range rep.Zones {
		seg := strconv.Itoa(z.Compliance) + "%"
		if !z.OnTrack() {
			seg += " !"
		}
		rows[i] = table.Row{
			z.Name,
			string(z.Energy),
			string(z.WaterStress),
			seg,
			greenops.FormatNumber(int64(z.Population)),
		}
	}
	var b strings.Builder
	b.WriteString(r.header("Campus policy guidance"))
	b.WriteString(r.style(SubtleStyle, "  admin dashboard (read-only)"))
	b.WriteString("\n")
	b.WriteString(r.renderRows(zoneColumns(), rows))
	b.WriteString("\n\n")
	b.WriteString(r.line("Energy hotspot", r.style(CriticalStyle, rep.EnergyHotspot)))
	b.WriteString("\n")
	b.WriteString(r.line("Avg segregation", r.style(OKStyle, greenops.FormatFloat(rep.AverageCompliance, 1)+"%")))
	b.WriteString("\n")
	b.WriteString(r.line("Population covered", r.value(greenops.FormatNumber(int64(rep.Population)))))
	b.WriteString("\n\n")
	b.WriteString(r.style(SubtleStyle, "Aggregate estimates only. Individual tracking is disabled in this view."))
	return b.String()
}
