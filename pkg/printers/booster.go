package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/mood/pkg/booster"
	"tableflip.dev/mood/pkg/catalog"
)

// BoosterWidth is the wrap column for booster text.
const BoosterWidth = 60

// Booster prints the current joke or quote.
func (pp *PrettyPrint) Booster(b *booster.Booster) {
	out := pp.out()
	t := color.New(color.Bold, color.FgHiBlue)
	faint := color.New(color.Faint)

	_, _ = t.Fprintln(out, "Mood Booster")
	_, _ = faint.Fprintln(out, b.Position())
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, wordwrap.String(b.Current(), BoosterWidth))
	_, _ = fmt.Fprintln(out)

	_, _ = faint.Fprint(out, "Feeling better? ")
	for i, m := range catalog.BoosterShortcuts() {
		if i > 0 {
			_, _ = faint.Fprint(out, " · ")
		}
		_, _ = MoodColor(m.ID).Fprintf(out, "mood add %s", m.ID)
	}
	_, _ = fmt.Fprintln(out)
}
