package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/mood/pkg/catalog"
)

// Catalog renders the mood and activity legend with their picker keys.
func (pp *PrettyPrint) Catalog() {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	out := pp.out()

	_, _ = fmt.Fprintln(out)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("   Mood"), bold.Sprint("ID"))
	for _, m := range catalog.Moods() {
		tbl.AddRow(m.Key, MoodColor(m.ID).Sprintf("%s %s", m.Icon, m.Label), faint.Sprint(m.ID))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out)

	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("   Activity"), bold.Sprint("ID"))
	for _, a := range catalog.Activities() {
		tbl.AddRow(a.Key, fmt.Sprintf("%s %s", a.Icon, a.Label), faint.Sprint(a.ID))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out)
}
