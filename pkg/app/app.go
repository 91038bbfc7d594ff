// Package app wires the store, the entry repository and the session
// controller together so the CLI, the TUI and the MCP server share one
// journal.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/mood/pkg/repository"
	"tableflip.dev/mood/pkg/session"
	"tableflip.dev/mood/pkg/store"
)

// ErrWatchUnsupported is returned by Watch for stores that cannot report
// external changes.
var ErrWatchUnsupported = errors.New("app: store does not support watching")

// Service holds an open journal.
type Service struct {
	Config     store.Config
	Store      store.Store
	Repository *repository.Repository
	Controller *session.Controller

	// Warning is the non-fatal error from restoring the journal, if any.
	Warning error
}

// Open loads configuration when cfg is nil, opens the configured store and
// restores the journal into a new controller.
func Open(ctx context.Context, cfg store.Config, opts ...session.Option) (*Service, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	s, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	svc := New(ctx, s, opts...)
	svc.Config = cfg
	return svc, nil
}

// New restores the journal held by s.
func New(ctx context.Context, s store.Store, opts ...session.Option) *Service {
	repo := repository.New(s)
	ctl := session.New(repo, opts...)
	warn := ctl.Load(ctx)
	return &Service{
		Store:      s,
		Repository: repo,
		Controller: ctl,
		Warning:    warn,
	}
}

// Warn prints the restore warning, if any, to stderr.
func (s *Service) Warn() {
	if s.Warning != nil {
		_, _ = fmt.Fprintf(os.Stderr, "mood: starting with an empty journal: %v\n", s.Warning)
	}
}

// Watch reloads the controller whenever the journal changes outside this
// process, until ctx is done.
func (s *Service) Watch(ctx context.Context) error {
	w, ok := s.Store.(store.Watcher)
	if !ok {
		return ErrWatchUnsupported
	}
	events, err := w.Watch(ctx)
	if err != nil {
		return err
	}
	go func() {
		for ev := range events {
			if ev.Type != store.EventInvalidated && ev.Key != s.Repository.Key {
				continue
			}
			// Reload emits the failure as an EventWarning to subscribers.
			_ = s.Controller.Reload(ctx)
		}
	}()
	return nil
}

// Close stops the controller timer and closes the store.
func (s *Service) Close() error {
	s.Controller.Close()
	return s.Store.Close()
}
