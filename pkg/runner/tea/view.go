package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/mood/pkg/booster"
	"tableflip.dev/mood/pkg/catalog"
	"tableflip.dev/mood/pkg/runner/tea/internal/theme"
	"tableflip.dev/mood/pkg/session"
)

const (
	// wideLayout is the terminal width from which history sits beside the picker.
	wideLayout   = 100
	pickerWidth  = 60
	moodsPerRow  = 3
	chipsPerRow  = 3
	pickerHeight = 24
)

func historyWidth(width int) int {
	if width >= wideLayout {
		return max(width-pickerWidth-6, 20)
	}
	return max(width-4, 20)
}

func historyHeight(width, height int) int {
	if width >= wideLayout {
		return max(height-10, 4)
	}
	return max(height-pickerHeight-8, 4)
}

func (m *Model) View() string {
	if m.mode == modeHelp && m.help != nil {
		return m.help.View()
	}

	picker := lipgloss.JoinVertical(lipgloss.Left, m.pickerSections()...)
	history := m.historyPanel()

	var body string
	if m.width >= wideLayout {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(pickerWidth).Render(picker),
			"  ",
			history,
		)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, picker, "", history)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		"",
		body,
		"",
		m.footer(),
	)
}

func (m *Model) header() string {
	accent := catalog.Moods()[0].Accent
	if mood, ok := catalog.LookupMood(m.selection.Mood); ok {
		accent = mood.Accent
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(theme.Gradient("Daily Mood Tracker", accent)),
		m.theme.Subtitle.Render("Track your emotions and activities to understand your daily patterns"),
	)
}

func (m *Model) pickerSections() []string {
	sections := []string{
		m.theme.Heading.Render("How are you feeling today?"),
		m.moodRows(),
		"",
		m.theme.Heading.Render("What are you doing?"),
		m.theme.Faint.Render("Select one or more activities"),
		m.activityRows(),
		"",
		m.saveButton(),
	}
	if m.selection.Submitted {
		sections = append(sections, "", m.theme.Banner.Render("✓ Mood entry saved successfully!"))
	}
	if m.selection.Mood == catalog.Sad {
		sections = append(sections, "", m.boosterPanel())
	}
	return sections
}

func (m *Model) moodRows() string {
	moods := catalog.Moods()
	chips := make([]string, 0, len(moods))
	for _, mood := range moods {
		chips = append(chips, m.theme.MoodChip(mood, mood.ID == m.selection.Mood))
	}
	return rows(chips, moodsPerRow)
}

func (m *Model) activityRows() string {
	acts := catalog.Activities()
	chips := make([]string, 0, len(acts))
	for _, act := range acts {
		chips = append(chips, m.theme.ActivityChip(act, m.selection.HasActivity(act.ID)))
	}
	return rows(chips, chipsPerRow)
}

func rows(chips []string, perRow int) string {
	lines := make([]string, 0, len(chips)/perRow+1)
	for i := 0; i < len(chips); i += perRow {
		end := min(i+perRow, len(chips))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, chips[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) saveButton() string {
	label := "Save Mood Entry (s)"
	if m.selection.HasMood() {
		return m.theme.Button.Render(label)
	}
	return m.theme.ButtonOff.Render(label)
}

func (m *Model) boosterPanel() string {
	width := pickerWidth - m.theme.Booster.GetHorizontalFrameSize()

	jokes, quotes := m.theme.Chip.Render("😄 Jokes"), m.theme.Chip.Render("Quotes")
	if m.booster.Tab() == booster.Quotes {
		quotes = m.theme.ChipSelected.Render("Quotes")
	} else {
		jokes = m.theme.ChipSelected.Render("😄 Jokes")
	}

	shortcuts := make([]string, 0, 3)
	for _, mood := range catalog.BoosterShortcuts() {
		shortcuts = append(shortcuts, m.theme.Key.Render(shortcutKey(mood))+" "+m.theme.Mood(mood.ID))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Mood Booster"),
		m.theme.Faint.Render("Need a lift? Read some jokes and inspiring quotes! 🌟"),
		lipgloss.JoinHorizontal(lipgloss.Top, jokes, " ", quotes, "  ", m.theme.Faint.Render("tab")),
		"",
		wordwrap.String(m.booster.Current(), width),
		"",
		m.theme.Faint.Render(m.booster.Position())+"  "+m.theme.Key.Render("n")+" "+m.booster.NextLabel(),
		"",
		m.theme.Faint.Render("Feeling better? Update your mood! 🚀"),
		strings.Join(shortcuts, "  "),
	)
	return m.theme.Booster.Width(pickerWidth).Render(body)
}

func (m *Model) historyPanel() string {
	title := m.theme.Heading.Render("Mood History")
	if n := m.history.Len(); n > 0 {
		title += m.theme.Faint.Render(fmt.Sprintf(" (%d)", n))
		title += "  " + m.theme.Key.Render("C") + " " + m.theme.Faint.Render("Clear All")
	}
	parts := []string{title, m.history.View()}
	if m.mode == modeConfirmClear {
		parts = append(parts, "", m.theme.Confirm.Render(session.ClearPrompt+" [y/N]"))
	}
	return m.theme.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) footer() string {
	lines := []string{}
	if m.status != "" {
		style := m.theme.Status
		if m.statusWarn {
			style = m.theme.Warning
		}
		lines = append(lines, style.Render(m.status))
	}
	lines = append(lines,
		m.theme.Faint.Render("✨ Understand yourself better, one mood at a time ✨"),
		m.theme.Faint.Render("s save · j/k move · d delete · ? help · q quit"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
