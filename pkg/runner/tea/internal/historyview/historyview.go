// Package historyview renders the scrollable mood history with a cursor.
package historyview

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/runner/tea/internal/theme"
)

// linesPerEntry is the height of one rendered entry.
const linesPerEntry = 2

// Model keeps the entries, the cursor and the scroll offset.
type Model struct {
	theme    theme.Theme
	viewport viewport.Model
	entries  []*entry.Entry
	cursor   int
	offset   int
	width    int
	height   int
}

// New builds an empty history view.
func New(th theme.Theme, width, height int) *Model {
	m := &Model{
		theme: th,
		viewport: viewport.New(
			viewport.WithWidth(max(width, 1)),
			viewport.WithHeight(max(height, 1)),
		),
	}
	m.SetSize(width, height)
	return m
}

// SetSize resizes the view.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.viewport.SetWidth(m.width)
	m.viewport.SetHeight(m.height)
	m.refresh()
}

// SetEntries replaces the list. The cursor stays on the same entry when it
// still exists, otherwise it is clamped.
func (m *Model) SetEntries(entries []*entry.Entry) {
	var selected string
	if e := m.Selected(); e != nil {
		selected = e.ID
	}
	m.entries = entries
	m.cursor = min(m.cursor, max(len(entries)-1, 0))
	for i, e := range entries {
		if selected != "" && e.ID == selected {
			m.cursor = i
			break
		}
	}
	m.refresh()
}

// Len returns the number of entries.
func (m *Model) Len() int {
	return len(m.entries)
}

// Cursor returns the highlighted index.
func (m *Model) Cursor() int {
	return m.cursor
}

// Selected returns the highlighted entry or nil when the list is empty.
func (m *Model) Selected() *entry.Entry {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return m.entries[m.cursor]
}

// Move shifts the cursor by delta, clamped to the list.
func (m *Model) Move(delta int) {
	if len(m.entries) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.entries)-1)
	m.refresh()
}

// View renders the visible part of the list.
func (m *Model) View() string {
	return m.viewport.View()
}

func (m *Model) refresh() {
	if len(m.entries) == 0 {
		m.offset = 0
		m.viewport.SetContent(m.theme.Faint.Render(printers.EmptyHistory))
		m.viewport.SetYOffset(0)
		return
	}

	lines := make([]string, 0, len(m.entries)*linesPerEntry)
	for i, e := range m.entries {
		lines = append(lines, m.renderEntry(e, i == m.cursor)...)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	top := m.cursor * linesPerEntry
	bottom := top + linesPerEntry
	switch {
	case top < m.offset:
		m.offset = top
	case bottom > m.offset+m.height:
		m.offset = bottom - m.height
	}
	m.offset = max(m.offset, 0)
	m.viewport.SetYOffset(m.offset)
}

func (m *Model) renderEntry(e *entry.Entry, selected bool) []string {
	marker := "  "
	if selected {
		marker = m.theme.Cursor.Render("▸ ")
	}
	head := marker + m.theme.Mood(e.Mood) + "  " + m.theme.Faint.Render(e.Date+" "+e.Timestamp)

	detail := "    " + m.theme.Faint.Render("no activities")
	if len(e.Activities) > 0 {
		detail = "    " + strings.Join(e.Activities, " · ")
	}
	width := uint(max(m.width, 1))
	if lipgloss.Width(detail) > m.width {
		detail = truncate.StringWithTail(detail, width, "…")
	}
	return []string{head, detail}
}
