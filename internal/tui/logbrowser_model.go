package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/ecotrack/internal/greenops"
	"github.com/rshade/ecotrack/internal/impactlog"
	listview "github.com/rshade/ecotrack/internal/tui/list"
)

// LogBrowserModel lists impact log entries with a live search filter.
type LogBrowserModel struct {
	all       []impactlog.Entry
	visible   []impactlog.Entry
	list      *listview.Model[impactlog.Entry]
	input     textinput.Model
	renderer  Renderer
	filtering bool
	detail    bool
	height    int
}

// NewLogBrowserModel browses logs, optionally pre-filtered by query.
func NewLogBrowserModel(logs []impactlog.Entry, query string) *LogBrowserModel {
	ti := textinput.New()
	ti.Placeholder = "Search activities or dates..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	ti.SetValue(query)

	m := &LogBrowserModel{
		all:      logs,
		input:    ti,
		renderer: NewRenderer(OutputModeStyled, defaultWidth),
		height:   defaultHeight,
	}
	m.list = listview.New[impactlog.Entry](nil, m.listHeight(), renderLogLine)
	m.applyFilter()
	return m
}

func renderLogLine(e impactlog.Entry, selected bool) string {
	line := fmt.Sprintf("%-18s %8s kg %10s  %s",
		e.LongDate(),
		greenops.FormatFloat(e.CarbonKg, 2),
		greenops.FormatLiters(e.WaterLiters),
		strings.Join(e.Activities, ", "))
	if selected {
		return TableSelectedStyle.Render("> " + line)
	}
	return "  " + line
}

func (m *LogBrowserModel) listHeight() int {
	return max(m.height-chromeHeight, 1)
}

func (m *LogBrowserModel) applyFilter() {
	m.visible = impactlog.Search(m.all, m.input.Value())
	m.list.SetItems(m.visible)
}

// Visible returns the entries matching the current filter.
func (m *LogBrowserModel) Visible() []impactlog.Entry {
	return m.visible
}

// Filter returns the current search term.
func (m *LogBrowserModel) Filter() string {
	return m.input.Value()
}

// Init implements tea.Model.
func (m *LogBrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *LogBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.height = winMsg.Height
		m.renderer.Width = winMsg.Width
		m.list.SetHeight(m.listHeight())
		return m, nil
	}
	if m.filtering {
		return m.handleFilterInput(msg)
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		return m, tea.Quit
	case keyEnter:
		if len(m.visible) > 0 {
			m.detail = !m.detail
		}
		return m, nil
	case keySlash:
		m.detail = false
		m.filtering = true
		m.input.Focus()
		return m, textinput.Blink
	case keyEsc:
		switch {
		case m.detail:
			m.detail = false
		case m.input.Value() != "":
			m.input.SetValue("")
			m.applyFilter()
		default:
			return m, tea.Quit
		}
		return m, nil
	}
	if !m.detail {
		m.list.Update(keyMsg)
	}
	return m, nil
}

func (m *LogBrowserModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.filtering = false
			m.input.Blur()
			return m, nil
		case keyCtrlC:
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

// View implements tea.Model.
func (m *LogBrowserModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderer.header("Impact log"))
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("  %d of %d entries", len(m.visible), len(m.all))))
	b.WriteString("\n")
	if m.filtering || m.input.Value() != "" {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if e, ok := m.list.SelectedItem(); ok && m.detail {
		b.WriteString(m.renderEntry(e))
	} else if len(m.visible) == 0 {
		b.WriteString(InfoStyle.Render("No entries match."))
	} else {
		b.WriteString(m.list.View())
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓ move · enter details · / search · esc clear · q quit"))
	return b.String()
}

func (m *LogBrowserModel) renderEntry(e impactlog.Entry) string {
	var b strings.Builder
	b.WriteString(m.renderer.header(e.LongDate()))
	b.WriteString("\n")
	b.WriteString(m.renderer.line("Carbon", m.renderer.value(greenops.FormatFloat(e.CarbonKg, 2)+" kg CO2e")))
	b.WriteString("\n")
	b.WriteString(m.renderer.line("Water", m.renderer.value(greenops.FormatLiters(e.WaterLiters))))
	b.WriteString("\n")
	b.WriteString(m.renderer.line("Activities", strings.Join(e.Activities, ", ")))
	b.WriteString("\n")
	b.WriteString(m.renderer.line("ID", m.renderer.style(SubtleStyle, e.ID.String())))
	return m.renderer.box(b.String())
}
