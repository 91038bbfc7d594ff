// Package theme holds the Lip Gloss styles of the mood picker UI.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/mood/pkg/catalog"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Heading  lipgloss.Style
	Faint    lipgloss.Style
	Key      lipgloss.Style

	Chip         lipgloss.Style
	ChipSelected lipgloss.Style
	Button       lipgloss.Style
	ButtonOff    lipgloss.Style

	Banner  lipgloss.Style
	Warning lipgloss.Style
	Status  lipgloss.Style

	Panel   lipgloss.Style
	Booster lipgloss.Style
	Cursor  lipgloss.Style
	Confirm lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	chip := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("250"))
	button := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("63"))

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),

		Chip: chip,
		ChipSelected: chip.
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("117")),
		Button: button,
		ButtonOff: button.
			Bold(false).
			Foreground(lipgloss.Color("244")).
			Background(lipgloss.Color("236")),

		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("42")).
			Padding(0, 2),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		Booster: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#60a5fa")).
			Padding(0, 1),
		Cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Confirm: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}

// MoodChip renders a mood choice; the selected mood is filled with the
// middle of its accent.
func (t Theme) MoodChip(m catalog.Mood, selected bool) string {
	label := t.Key.Render(m.Key) + " " + m.Icon + " " + m.Label
	if !selected {
		return t.Chip.Render(label)
	}
	style := t.ChipSelected
	if mid := m.Accent.Mid(); mid != "" {
		style = style.Background(lipgloss.Color(mid))
	}
	return style.Render(m.Key + " " + m.Icon + " " + m.Label)
}

// ActivityChip renders an activity toggle.
func (t Theme) ActivityChip(a catalog.Activity, selected bool) string {
	if selected {
		return t.ChipSelected.Render(a.Key + " " + a.Icon + " " + a.Label)
	}
	return t.Chip.Render(t.Key.Render(a.Key) + " " + a.Icon + " " + a.Label)
}

// Mood renders a mood label in its accent colour. Unknown moods are faint.
func (t Theme) Mood(id string) string {
	m, ok := catalog.LookupMood(id)
	if !ok {
		return t.Faint.Render(id)
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.Accent.From)).
		Render(m.Icon + " " + m.Label)
}

// Gradient colours each rune of s along the accent.
func Gradient(s string, a catalog.Accent) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range runes {
		pos := 0.0
		if len(runes) > 1 {
			pos = float64(i) / float64(len(runes)-1)
		}
		c := a.At(pos)
		if c == "" || r == ' ' {
			b.WriteRune(r)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(string(r)))
	}
	return b.String()
}
