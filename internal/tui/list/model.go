package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultBufferSize is the number of extra rows rendered above and below the viewport.
const defaultBufferSize = 2

// RenderFunc renders one item; selected marks the highlighted row.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a keyboard-navigable list of T.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	selected    int
	visibleFrom int
	visibleTo   int

	height     int
	bufferSize int
}

// New creates a list showing height rows at a time.
func New[T any](items []T, height int, renderFunc RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     max(height, 1),
		bufferSize: defaultBufferSize,
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.SetHeight(msg.Height)
	}
	return m, nil
}

//nolint:exhaustive // Only navigation keys are handled.
func (m *Model[T]) handleKey(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}
	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.height)
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.height)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return
		}
		switch msg.Runes[0] {
		case 'j':
			m.SetSelected(m.selected + 1)
		case 'k':
			m.SetSelected(m.selected - 1)
		}
	}
}

// View renders the visible rows plus the buffer.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}
	from := max(m.visibleFrom-m.bufferSize, 0)
	to := min(m.visibleTo+m.bufferSize, len(m.items))

	lines := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		lines = append(lines, m.renderFunc(m.items[i], i == m.selected))
	}
	return strings.Join(lines, "\n")
}

// SetItems replaces the items, clamping the selection.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.SetSelected(m.selected)
}

// SetHeight changes the viewport height.
func (m *Model[T]) SetHeight(height int) {
	m.height = max(height, 1)
	m.updateVisibleRange()
}

// SetSelected selects index, clamped to the item range.
func (m *Model[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0, index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	m.updateVisibleRange()
}

// Selected returns the selected index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SelectedItem returns the selected item, if any.
func (m *Model[T]) SelectedItem() (T, bool) {
	var zero T
	if len(m.items) == 0 {
		return zero, false
	}
	return m.items[m.selected], true
}

// ItemCount returns the number of items.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// VisibleRange returns the viewport rows as [from, to).
func (m *Model[T]) VisibleRange() (int, int) {
	return m.visibleFrom, m.visibleTo
}

// updateVisibleRange keeps the selected row centred where possible.
func (m *Model[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}
	from := m.selected - m.height/2
	from = max(min(from, len(m.items)-m.height), 0)
	m.visibleFrom = from
	m.visibleTo = min(from+m.height, len(m.items))
}
