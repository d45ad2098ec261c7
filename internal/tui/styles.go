package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ecotrack/internal/classify"
	"github.com/rshade/ecotrack/internal/greenops"
)

// Palette.
const (
	ColorPrimary = lipgloss.Color("#10B981")
	ColorAccent  = lipgloss.Color("#0EA5E9")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorDanger  = lipgloss.Color("#EF4444")
	ColorMuted   = lipgloss.Color("#9CA3AF")
	ColorText    = lipgloss.Color("#F9FAFB")
	ColorBorder  = lipgloss.Color("#374151")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	ValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	SubtleStyle = lipgloss.NewStyle().Italic(true).Foreground(ColorMuted)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorAccent)

	OKStyle       = lipgloss.NewStyle().Foreground(ColorPrimary)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorBorder)
	TableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#022C22")).
				Background(ColorPrimary)

	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	HelpStyle      = lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1)
)

// StressStyle colours a stress level.
func StressStyle(s greenops.Stress) lipgloss.Style {
	switch s {
	case greenops.StressLow:
		return OKStyle
	case greenops.StressMedium:
		return WarningStyle
	default:
		return CriticalStyle
	}
}

// ScoreStyle colours an EcoScore by band.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 70: //nolint:mnd // Score band.
		return OKStyle
	case score >= 40: //nolint:mnd // Score band.
		return WarningStyle
	default:
		return CriticalStyle
	}
}

func categoryStyle(c classify.Category) lipgloss.Style {
	switch c {
	case classify.CategoryWet:
		return OKStyle
	case classify.CategoryDry:
		return InfoStyle
	case classify.CategoryEWaste:
		return WarningStyle
	default:
		return CriticalStyle
	}
}
