// Package boost prints a joke or a quote from the mood booster.
package boost

import (
	"context"
	"io"
	"time"

	"tableflip.dev/mood/pkg/booster"
	"tableflip.dev/mood/pkg/printers"
)

type Boost struct {
	Quotes bool
	// Number picks an item, 1-based. Zero picks the item of the day.
	Number int
	JSON   bool
	Now    func() time.Time
	Out    io.Writer
}

// Booster positions a booster according to the options.
func (n *Boost) Booster() *booster.Booster {
	b := booster.New()
	if n.Quotes {
		b.SetTab(booster.Quotes)
	}
	steps := n.Number - 1
	if n.Number <= 0 {
		now := time.Now()
		if n.Now != nil {
			now = n.Now()
		}
		steps = now.YearDay() - 1
	}
	steps %= booster.Len(b.Tab())
	for i := 0; i < steps; i++ {
		b.Next()
	}
	return b
}

func (n *Boost) Do(_ context.Context) error {
	b := n.Booster()
	if n.JSON {
		return printers.JSON(n.Out, map[string]any{
			"tab":      b.Tab().String(),
			"position": b.Index() + 1,
			"total":    booster.Len(b.Tab()),
			"text":     b.Current(),
		})
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Booster(b)
	pp.NewLine()
	return nil
}
