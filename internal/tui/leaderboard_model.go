package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/ecotrack/internal/leaderboard"
)

// LeaderboardModel browses the community ranking.
type LeaderboardModel struct {
	ranking   leaderboard.Ranking
	spots     []leaderboard.Spot
	table     table.Model
	renderer  Renderer
	showSpots bool
	width     int
	height    int
}

// NewLeaderboardModel starts with the cursor on the user's row.
func NewLeaderboardModel(ranking leaderboard.Ranking, spots []leaderboard.Spot) LeaderboardModel {
	m := LeaderboardModel{
		ranking:  ranking,
		spots:    spots,
		renderer: NewRenderer(OutputModeStyled, defaultWidth),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.table = styledTable(leaderboardColumns(), leaderboardRows(ranking), m.tableHeight(), true)
	m.jumpToUser()
	return m
}

func (m LeaderboardModel) tableHeight() int {
	return max(m.height-chromeHeight, 1)
}

func (m *LeaderboardModel) jumpToUser() {
	if rank := m.ranking.UserRank(); rank > 0 {
		m.table.SetCursor(rank - 1)
	}
}

// Cursor is the highlighted row index.
func (m LeaderboardModel) Cursor() int {
	return m.table.Cursor()
}

// ShowingSpots reports whether the eco spots panel is open.
func (m LeaderboardModel) ShowingSpots() bool {
	return m.showSpots
}

// Init implements tea.Model.
func (m LeaderboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.Width = msg.Width
		m.table.SetHeight(m.tableHeight())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case keyQuit, keyCtrlC:
			return m, tea.Quit
		case keyEsc:
			if m.showSpots {
				m.showSpots = false
				return m, nil
			}
			return m, tea.Quit
		case keyUser:
			m.jumpToUser()
			return m, nil
		case keySpots:
			m.showSpots = !m.showSpots
			return m, nil
		}
	}
	if m.showSpots {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m LeaderboardModel) View() string {
	var b strings.Builder
	if m.showSpots {
		b.WriteString(m.renderer.Spots(m.spots))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("s/esc back · q quit"))
		return b.String()
	}
	b.WriteString(m.renderer.header("Community leaderboard"))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	if u, ok := m.ranking.User(); ok {
		b.WriteString("\n")
		b.WriteString(HighlightStyle.Render("Your rank: #" + strconv.Itoa(u.Rank)))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓ move · u jump to you · s eco spots · q quit"))
	return b.String()
}
