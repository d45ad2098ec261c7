package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecotrack/internal/leaderboard"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sendLeaderboard(t *testing.T, m LeaderboardModel, msg tea.Msg) (LeaderboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	lm, ok := next.(LeaderboardModel)
	require.True(t, ok)
	return lm, cmd
}

func TestLeaderboardModel_Navigation(t *testing.T) {
	t.Parallel()

	ranking := leaderboard.Rank(leaderboard.Roster(), 87)
	m := NewLeaderboardModel(ranking, leaderboard.CommunitySpots())
	assert.Equal(t, ranking.UserRank()-1, m.Cursor(), "cursor starts on the user's row")

	m, _ = sendLeaderboard(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, ranking.UserRank(), m.Cursor())

	m, _ = sendLeaderboard(t, m, runeKey("u"))
	assert.Equal(t, ranking.UserRank()-1, m.Cursor())
	assert.Contains(t, m.View(), "Your rank: #")
}

func TestLeaderboardModel_Spots(t *testing.T) {
	t.Parallel()

	spots := leaderboard.CommunitySpots()
	m := NewLeaderboardModel(leaderboard.Rank(leaderboard.Roster(), 50), spots)

	m, _ = sendLeaderboard(t, m, runeKey("s"))
	require.True(t, m.ShowingSpots())
	assert.Contains(t, m.View(), spots[0].Action)

	m, cmd := sendLeaderboard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd, "esc closes the panel before quitting")
	assert.False(t, m.ShowingSpots())
}

func TestLeaderboardModel_Quit(t *testing.T) {
	t.Parallel()

	m := NewLeaderboardModel(leaderboard.Rank(leaderboard.Roster(), 50), nil)
	_, cmd := sendLeaderboard(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLeaderboardModel_Resize(t *testing.T) {
	t.Parallel()

	m := NewLeaderboardModel(leaderboard.Rank(leaderboard.Roster(), 50), nil)
	m, _ = sendLeaderboard(t, m, tea.WindowSizeMsg{Width: 120, Height: 10})
	assert.Equal(t, 120, m.renderer.Width)
	assert.NotEmpty(t, m.View())
}
