// Package migrate copies the journal between storage backends.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/store"
)

type Migrate struct {
	From store.Config
	To   store.Config
	JSON bool
	Out  io.Writer
}

func (n *Migrate) Do(ctx context.Context) error {
	if n.From == nil || n.To == nil {
		return errors.New("migrate needs a source and a target")
	}
	if n.From.Backend() == n.To.Backend() && n.From.BasePath() == n.To.BasePath() {
		return errors.New("source and target are the same store")
	}

	from, err := store.Open(n.From)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer from.Close()
	to, err := store.Open(n.To)
	if err != nil {
		return fmt.Errorf("open target: %w", err)
	}
	defer to.Close()

	res, err := app.Migrate(ctx, from, to)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, res)
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "Copied %d entries from %s to %s (%d already there, %d total).\n",
		res.Copied, n.From.Backend(), n.To.Backend(), res.Skipped, res.Total)
	return nil
}
