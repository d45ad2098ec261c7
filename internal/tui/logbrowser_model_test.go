package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeInto(m *LogBrowserModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestLogBrowserModel_Filter(t *testing.T) {
	t.Parallel()

	m := NewLogBrowserModel(sampleLogs(), "")
	require.Len(t, m.Visible(), 2)

	m.Update(runeKey("/"))
	typeInto(m, "cyc")
	assert.Equal(t, "cyc", m.Filter())
	require.Len(t, m.Visible(), 1)
	assert.Contains(t, m.Visible()[0].Activities, "Cycling")

	// q goes to the input while filtering.
	m.Update(runeKey("q"))
	assert.Equal(t, "cycq", m.Filter())
	assert.Empty(t, m.Visible())
	assert.Contains(t, m.View(), "No entries match.")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.Filter(), "second esc clears the filter")
	assert.Len(t, m.Visible(), 2)
}

func TestLogBrowserModel_InitialQueryMatchesDates(t *testing.T) {
	t.Parallel()

	m := NewLogBrowserModel(sampleLogs(), "18 oct")
	require.Len(t, m.Visible(), 1)
	assert.Equal(t, 18, m.Visible()[0].Date.Day())
}

func TestLogBrowserModel_Detail(t *testing.T) {
	t.Parallel()

	m := NewLogBrowserModel(sampleLogs(), "")
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	assert.Contains(t, view, "OCTOBER 18, 2026")
	assert.Contains(t, view, "Car Travel")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "October 19, 2026")
}

func TestLogBrowserModel_QuitAndEmpty(t *testing.T) {
	t.Parallel()

	m := NewLogBrowserModel(nil, "")
	assert.Contains(t, m.View(), "No entries match.")

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

