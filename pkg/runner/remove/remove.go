// Package remove deletes a single mood entry.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/session"
)

type Delete struct {
	ID    string
	Quiet bool
	Out   io.Writer

	Controller *session.Controller
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Controller == nil {
		return errors.New("can not delete, no journal")
	}

	ok, err := n.Controller.DeleteEntry(ctx, n.ID)
	if err != nil {
		return err
	}
	if n.Quiet {
		return nil
	}
	if !ok {
		_, _ = fmt.Fprintf(n.Out, "No entry with id %s, nothing deleted.\n", n.ID)
		return nil
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount("Your Mood History", n.Controller.Len())
	pp.Entries(n.Controller.Entries()...)
	return nil
}
