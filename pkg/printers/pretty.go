// Package printers renders mood entries for the command line.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/mood/pkg/catalog"
	"tableflip.dev/mood/pkg/entry"
)

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

var (
	spacing = strings.Repeat(" ", len("1714550000000  "))
)

var moodColors = map[string]color.Attribute{
	catalog.Happy:   color.FgHiYellow,
	catalog.Sad:     color.FgHiBlue,
	catalog.Neutral: color.FgWhite,
	catalog.Loved:   color.FgHiMagenta,
	catalog.Angry:   color.FgHiRed,
	catalog.Tired:   color.FgMagenta,
}

// MoodColor returns the printer used for a mood; unknown moods are faint.
func MoodColor(mood string) *color.Color {
	if a, ok := moodColors[mood]; ok {
		return color.New(a, color.Bold)
	}
	return color.New(color.Faint)
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// EmptyHistory is shown in place of an empty history.
const EmptyHistory = "No mood entries yet. Start tracking your mood!"

// Entries prints one row per entry in the order given.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = fmt.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprintf(pp.out(), " %s\n\n", EmptyHistory)
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, e := range entries {
		title, date, clock, activities := e.Row()
		if title == "" {
			title = e.Mood
		}
		icon := " "
		if m, ok := catalog.LookupMood(e.Mood); ok {
			icon = m.Icon
		}
		mood := MoodColor(e.Mood).Sprintf("%s %s", icon, title)
		if pp.ShowID {
			tbl.AddRow(y.Sprint(e.ID), mood, date, faint.Sprint(clock), activities)
		} else {
			tbl.AddRow(mood, date, faint.Sprint(clock), activities)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out())
}

// Added prints the confirmation for a freshly recorded entry.
func (pp *PrettyPrint) Added(e *entry.Entry) {
	g := color.New(color.FgHiGreen, color.Bold)
	_, _ = g.Fprint(pp.out(), "✓ ")
	_, _ = fmt.Fprintln(pp.out(), "Mood entry saved successfully!")
	pp.Entries(e)
}
