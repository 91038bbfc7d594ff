package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// DayMoods maps each day of then's month to the latest mood logged on it.
// Entries are expected newest first; entries whose id is not a timestamp
// are skipped.
func DayMoods(then time.Time, entries ...*entry.Entry) []string {
	days := DaysIn(then)
	moods := make([]string, days)
	for _, e := range entries {
		created, ok := e.Created()
		if !ok {
			continue
		}
		created = created.Local()
		if created.Year() != then.Year() || created.Month() != then.Month() {
			continue
		}
		if d := created.Day() - 1; moods[d] == "" {
			moods[d] = e.Mood
		}
	}
	return moods
}

// Calendar prints the month of then with each day coloured by its mood.
func (pp *PrettyPrint) Calendar(then time.Time, entries ...*entry.Entry) {
	then = then.Local()
	moods := DayMoods(then, entries...)
	out := pp.out()

	tf := color.New(color.FgWhite, color.Italic)
	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = color.New(color.Faint).Fprintln(out, "Su Mo Tu We Th Fr Sa")

	d := StartDay(then)
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	blank := color.New(color.Faint, color.FgWhite)
	for i, mood := range moods {
		if mood == "" {
			_, _ = blank.Fprintf(out, "%2d ", i+1)
		} else {
			_, _ = MoodColor(mood).Fprintf(out, "%2d ", i+1)
		}
		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
