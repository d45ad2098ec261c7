// Package tui renders ecotrack reports for the terminal and hosts the
// interactive Bubble Tea views.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ecotrack/internal/greenops"
	"github.com/rshade/ecotrack/internal/state"
)

// Layout constants.
const (
	DefaultWidth  = 72
	borderPadding = 2
	labelWidth    = 22
)

// Renderer produces report text for one output mode.
type Renderer struct {
	Mode  OutputMode
	Width int
}

// NewRenderer returns a renderer for mode. A non-positive width selects
// DefaultWidth.
func NewRenderer(mode OutputMode, width int) Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return Renderer{Mode: mode, Width: width}
}

func (r Renderer) plain() bool {
	return r.Mode == OutputModePlain
}

func (r Renderer) style(s lipgloss.Style, text string) string {
	if r.plain() {
		return text
	}
	return s.Render(text)
}

func (r Renderer) box(content string) string {
	if r.plain() {
		return content
	}
	return BoxStyle.Width(r.Width - borderPadding).Render(content)
}

func (r Renderer) header(title string) string {
	return r.style(HeaderStyle, strings.ToUpper(title))
}

// line renders one "label  value" row.
func (r Renderer) line(label, value string) string {
	return r.style(LabelStyle, fmt.Sprintf("%-*s", labelWidth, label)) + value
}

func (r Renderer) value(v string) string {
	return r.style(ValueStyle, v)
}

// Footprint renders the footprint for rng. Stress levels and the score
// always refer to the daily figures.
func (r Renderer) Footprint(daily greenops.Footprint, rng greenops.Range) string {
	f := daily.Scaled(rng)
	var b strings.Builder
	b.WriteString(r.header(rng.String() + " footprint"))
	b.WriteString("\n")
	b.WriteString(r.line("Carbon", r.value(greenops.FormatFloat(f.CarbonKg, 1)+" kg CO2e")))
	b.WriteString("  " + r.style(StressStyle(daily.CarbonStress), string(daily.CarbonStress)+" stress"))
	b.WriteString("\n")
	b.WriteString(r.line("Water", r.value(greenops.FormatLiters(f.WaterLiters))))
	b.WriteString("  " + r.style(StressStyle(daily.WaterStress), string(daily.WaterStress)+" stress"))
	b.WriteString("\n")
	b.WriteString(r.line("EcoScore", r.style(ScoreStyle(daily.Score), strconv.Itoa(daily.Score)+"/100")))
	b.WriteString("\n")
	b.WriteString(r.line("City benchmark", r.benchmark(daily)))

	if eq := greenops.CalculateKg(f.CarbonKg); !eq.IsEmpty {
		b.WriteString("\n")
		b.WriteString(r.style(SubtleStyle, eq.DisplayText))
	}
	return r.box(b.String())
}

func (r Renderer) benchmark(daily greenops.Footprint) string {
	carbonPct := daily.CarbonKg / greenops.CarbonBenchmarkKg * 100 //nolint:mnd // Percentage.
	waterPct := daily.WaterLiters / greenops.WaterBenchmarkLiters * 100 //nolint:mnd // Percentage.
	return fmt.Sprintf("%.0f%% of city carbon, %.0f%% of city water", carbonPct, waterPct)
}

// Score renders the EcoScore with its tier and habit points.
func (r Renderer) Score(score, challenges, points int) string {
	var b strings.Builder
	b.WriteString(r.header("EcoScore"))
	b.WriteString("\n")
	b.WriteString(r.line("Score", r.style(ScoreStyle(score), strconv.Itoa(score)+"/100")))
	b.WriteString("\n")
	b.WriteString(r.line("Active challenges", r.value(strconv.Itoa(challenges))))
	b.WriteString("\n")
	b.WriteString(r.line("Habit points", r.value(strconv.Itoa(points))))
	return r.box(b.String())
}

// Profile renders every addressable activity field.
func (r Renderer) Profile(d state.UserData) string {
	var b strings.Builder
	name := d.Profile.Username
	if name == "" {
		name = "guest"
	}
	b.WriteString(r.header("Activity profile"))
	b.WriteString(r.style(SubtleStyle, "  "+name+" · "+d.Settings.Region))
	for _, key := range greenops.FieldNames() {
		v, _ := d.Activity.Get(key)
		b.WriteString("\n")
		b.WriteString(r.line(key, r.value(strconv.FormatFloat(v, 'f', -1, 64))))
	}
	if d.Settings.LowPowerMode {
		b.WriteString("\n")
		b.WriteString(r.style(InfoStyle, "Low power mode is on"))
	}
	return r.box(b.String())
}

// Solar renders a rooftop solar estimate.
func (r Renderer) Solar(areaM2 float64, s greenops.Solar) string {
	s = s.Rounded()
	var b strings.Builder
	b.WriteString(r.header("Rooftop solar"))
	b.WriteString("\n")
	b.WriteString(r.line("Roof area", r.value(greenops.FormatFloat(areaM2, 1)+" m²")))
	b.WriteString("\n")
	b.WriteString(r.line("Capacity", r.value(greenops.FormatFloat(s.CapacityKW, 1)+" kW")))
	b.WriteString("\n")
	b.WriteString(r.line("Monthly generation", r.value(greenops.FormatFloat(s.MonthlyGeneration, 0)+" kWh")))
	b.WriteString("\n")
	b.WriteString(r.line("Monthly CO2 offset", r.value(greenops.FormatMass(s.MonthlyCO2SavedKg))))
	return r.box(b.String())
}

// Context renders the workspace selection.
func (r Renderer) Context(c state.Context) string {
	show := func(s string) string {
		if s == "" {
			return r.style(SubtleStyle, "not set")
		}
		return r.value(s)
	}
	var b strings.Builder
	b.WriteString(r.header("Workspace"))
	b.WriteString("\n")
	b.WriteString(r.line("Workspace", show(string(c.Workspace))))
	b.WriteString("\n")
	b.WriteString(r.line("Mode", show(string(c.Mode))))
	if c.PolicyView() {
		b.WriteString("\n")
		b.WriteString(r.style(InfoStyle, "Policy perspective: personal views are replaced by city dashboards"))
	}
	return r.box(b.String())
}

// Advice renders the regional tip, if known, and the model limitations.
func (r Renderer) Advice(region string) string {
	var b strings.Builder
	if tip, ok := greenops.TipFor(region); ok {
		b.WriteString(r.header(tip.Region + " · " + tip.CurrentSeason))
		b.WriteString("\n")
		b.WriteString(tip.SeasonalTip)
		b.WriteString("\n")
		b.WriteString(r.style(SubtleStyle, tip.LocalAdvice))
		b.WriteString("\n\n")
	}
	b.WriteString(r.header("Not included in your footprint"))
	for _, l := range greenops.Limitations() {
		b.WriteString("\n- " + l)
	}
	return r.box(b.String())
}

// Challenges renders accepted challenge ids.
func (r Renderer) Challenges(ids []string) string {
	if len(ids) == 0 {
		return r.style(InfoStyle, "No active challenges.")
	}
	var b strings.Builder
	b.WriteString(r.header("Active challenges"))
	for _, id := range ids {
		b.WriteString("\n- " + r.value(id))
	}
	return b.String()
}

// Receipt renders the planet receipt for one day's footprint.
func (r Renderer) Receipt(date, region string, rc greenops.Receipt) string {
	var b strings.Builder
	b.WriteString(r.header("Planet receipt"))
	b.WriteString("\n")
	b.WriteString(r.style(SubtleStyle, date+" · LOCAL REGION: "+strings.ToUpper(region)))
	b.WriteString("\n\n")
	b.WriteString(r.line("Carbon emitted", r.value(greenops.FormatFloat(rc.CarbonKg, 2)+" kg")))
	b.WriteString("\n")
	b.WriteString(r.line("Water consumed", r.value(greenops.FormatFloat(rc.WaterLiters, 0)+" L")))
	b.WriteString("\n")
	b.WriteString(r.line("Trees to offset", r.value(greenops.FormatFloat(rc.TreesPerDay, 1)+" trees/day")))
	b.WriteString("\n\n")
	b.WriteString(r.header("Savings vs city average"))
	b.WriteString("\n")
	b.WriteString(r.line("Water saved", r.style(InfoStyle, greenops.FormatFloat(rc.WaterSavedLiters, 0)+" L")))
	b.WriteString("\n")
	b.WriteString(r.line("CO2 avoided", r.style(OKStyle, greenops.FormatFloat(rc.CarbonSavedKg, 2)+" kg")))
	b.WriteString("\n\n")
	b.WriteString(r.style(SubtleStyle, "Static rule-based calculation. Nothing leaves this machine."))
	return r.box(b.String())
}
