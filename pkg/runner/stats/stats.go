// Package stats summarises the moods logged over a window.
package stats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/session"
	"tableflip.dev/mood/pkg/timeutil"
)

type Stats struct {
	Window time.Duration
	JSON   bool
	Now    func() time.Time
	Out    io.Writer

	Controller *session.Controller
}

func (n *Stats) Do(_ context.Context) error {
	if n.Controller == nil {
		return errors.New("can not summarise, no journal")
	}
	now := time.Now()
	if n.Now != nil {
		now = n.Now()
	}
	var since time.Time
	if n.Window > 0 {
		since = now.Add(-n.Window)
	}
	sum := app.Summarize(n.Controller.Entries(), since, now)

	if n.JSON {
		return printers.JSON(n.Out, sum)
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.TitleWithCount(fmt.Sprintf("Moods (%s)", timeutil.FormatWindow(n.Window)), sum.Total)
	if sum.Total == 0 {
		pp.Entries()
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, m := range sum.Moods {
		bar := strings.Repeat("█", m.Count)
		tbl.AddRow(printers.MoodColor(m.Mood).Sprint(m.Label), m.Count, printers.MoodColor(m.Mood).Sprint(bar))
	}
	_, _ = fmt.Fprintln(out, tbl)
	pp.NewLine()

	if len(sum.Activities) > 0 {
		pp.Title("Activities")
		tbl = uitable.New()
		tbl.Separator = "  "
		for _, a := range sum.Activities {
			tbl.AddRow(a.Activity, a.Count)
		}
		_, _ = fmt.Fprintln(out, tbl)
		pp.NewLine()
	}
	return nil
}
