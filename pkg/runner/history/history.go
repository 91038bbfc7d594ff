// Package history lists recorded moods, newest first.
package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/session"
	"tableflip.dev/mood/pkg/timeutil"
)

type History struct {
	Window   time.Duration
	ShowID   bool
	JSON     bool
	Calendar bool
	Now      func() time.Time
	Out      io.Writer

	Controller *session.Controller
}

// Filter keeps the entries created inside the window ending at now. A zero
// window keeps everything, including entries whose creation instant cannot
// be recovered.
func Filter(entries []*entry.Entry, now time.Time, window time.Duration) []*entry.Entry {
	if window <= 0 {
		return entries
	}
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		created, ok := e.Created()
		if ok && timeutil.Within(created, now, window) {
			out = append(out, e)
		}
	}
	return out
}

func (n *History) Do(ctx context.Context) error {
	if n.Controller == nil {
		return errors.New("can not list, no journal")
	}
	now := time.Now()
	if n.Now != nil {
		now = n.Now()
	}

	all := Filter(n.Controller.Entries(), now, n.Window)

	if n.JSON {
		return printers.JSON(n.Out, map[string]any{
			"window":  timeutil.FormatWindow(n.Window),
			"count":   len(all),
			"entries": all,
		})
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	if n.Calendar {
		pp.NewLine()
		pp.Calendar(now, all...)
		return nil
	}

	pp.NewLine()
	title := "Your Mood History"
	if n.Window > 0 {
		title = fmt.Sprintf("%s (last %s)", title, timeutil.FormatWindow(n.Window))
	}
	pp.TitleWithCount(title, len(all))
	pp.Entries(all...)
	return nil
}
