// Package add records a mood entry from the command line.
package add

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"tableflip.dev/mood/pkg/catalog"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/session"
)

type Add struct {
	Mood       string
	Activities []string
	JSON       bool
	Out        io.Writer

	Controller *session.Controller
}

// Resolve maps user input to catalog identifiers, dropping duplicates.
// Input may be an identifier or a label in any case.
func Resolve(mood string, activities []string) (string, []string, error) {
	m, ok := catalog.FindMood(mood)
	if !ok {
		return "", nil, fmt.Errorf("unknown mood %q, expected one of %s", mood, strings.Join(catalog.MoodIDs(), ", "))
	}
	ids := make([]string, 0, len(activities))
	seen := map[string]bool{}
	for _, in := range activities {
		a, ok := catalog.FindActivity(in)
		if !ok {
			return "", nil, fmt.Errorf("unknown activity %q, expected one of %s", in, strings.Join(catalog.ActivityIDs(), ", "))
		}
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		ids = append(ids, a.ID)
	}
	return m.ID, ids, nil
}

// Submit drives the controller through a full selection and submission.
// Activities left selected by an earlier gesture are toggled off first.
func Submit(ctx context.Context, c *session.Controller, mood string, activities []string) (*entry.Entry, error) {
	c.SelectMood(mood)
	for _, a := range c.Selection().Activities {
		if !slices.Contains(activities, a) {
			c.ToggleActivity(a)
		}
	}
	for _, a := range activities {
		if !c.Selection().HasActivity(a) {
			c.ToggleActivity(a)
		}
	}
	return c.SubmitEntry(ctx)
}

func (n *Add) Do(ctx context.Context) error {
	if n.Controller == nil {
		return errors.New("can not add, no journal")
	}
	mood, activities, err := Resolve(n.Mood, n.Activities)
	if err != nil {
		return err
	}

	e, err := Submit(ctx, n.Controller, mood, activities)
	if err != nil {
		return err
	}

	if n.JSON {
		return printers.JSON(n.Out, e)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Added(e)
	return nil
}
