// Package info reports where the journal lives.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/repository"
	"tableflip.dev/mood/pkg/store"
)

type Info struct {
	Config     store.Config
	Store      store.Store
	Repository *repository.Repository
	Out        io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if f := store.ConfigFile(n.Config); f != "" {
		_, _ = fmt.Fprintln(out, "Config.file:   ", f)
	}
	_, _ = fmt.Fprintln(out, "Config.path:   ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.backend:", n.Config.Backend())

	switch s := n.Store.(type) {
	case *store.SQLiteStore:
		_, _ = fmt.Fprintln(out, "Database:      ", s.Path())
	case *store.DiskvStore:
		_, _ = fmt.Fprintln(out, "Directory:     ", s.BasePath())
	}

	if n.Repository == nil {
		return fmt.Errorf("failed to open the journal")
	}
	entries, err := n.Repository.Load(ctx)
	_, _ = fmt.Fprintf(out, "Entries:        %d under key %q\n", len(entries), repository.Key)
	if err != nil {
		_, _ = color.New(color.FgYellow).Fprintf(out, "Warning:        %v\n", err)
	}
	return nil
}
