// Package mcp exposes the mood journal over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/catalog"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/runner/add"
	"tableflip.dev/mood/pkg/runner/history"
	"tableflip.dev/mood/pkg/session"
)

// ErrEntryNotFound is returned when no entry has the requested id.
var ErrEntryNotFound = errors.New("entry not found")

// ErrNotConfirmed is returned by ClearEntries without confirmation.
var ErrNotConfirmed = errors.New("clear_entries requires confirm=true")

// Service runs journal operations for MCP handlers. Requests can arrive
// concurrently over HTTP, so each operation holds the service lock for its
// whole read-modify-write sequence.
type Service struct {
	mu         sync.Mutex
	Controller *session.Controller
	Now        func() time.Time
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID         string   `json:"id"`
	Mood       string   `json:"mood"`
	MoodLabel  string   `json:"moodLabel,omitempty"`
	Activities []string `json:"activities"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	CreatedISO string   `json:"created,omitempty"`
}

// NewService wraps the controller.
func NewService(c *session.Controller) *Service {
	return &Service{Controller: c, Now: time.Now}
}

func toDTO(e *entry.Entry) EntryDTO {
	dto := EntryDTO{
		ID:         e.ID,
		Mood:       e.Mood,
		MoodLabel:  catalog.MoodLabel(e.Mood),
		Activities: append([]string{}, e.Activities...),
		Date:       e.Date,
		Time:       e.Timestamp,
	}
	if created, ok := e.Created(); ok {
		dto.CreatedISO = created.Format(time.RFC3339)
	}
	return dto
}

func (s *Service) controller() (*session.Controller, error) {
	if s.Controller == nil {
		return nil, errors.New("journal is not configured")
	}
	return s.Controller, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// LogMood records a new entry. Mood and activities are matched against the
// catalog by id or label.
func (s *Service) LogMood(ctx context.Context, mood string, activities []string) (EntryDTO, error) {
	ctl, err := s.controller()
	if err != nil {
		return EntryDTO{}, err
	}
	moodID, acts, err := add.Resolve(mood, activities)
	if err != nil {
		return EntryDTO{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := add.Submit(ctx, ctl, moodID, acts)
	if err != nil {
		return EntryDTO{}, err
	}
	return toDTO(e), nil
}

// ListEntries returns entries newest first, restricted to window when it
// is non-zero and to at most limit entries when limit is positive.
func (s *Service) ListEntries(_ context.Context, window time.Duration, limit int) ([]EntryDTO, error) {
	ctl, err := s.controller()
	if err != nil {
		return nil, err
	}
	entries := history.Filter(ctl.Entries(), s.now(), window)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out, nil
}

// EntryByID returns a single entry.
func (s *Service) EntryByID(_ context.Context, id string) (EntryDTO, error) {
	ctl, err := s.controller()
	if err != nil {
		return EntryDTO{}, err
	}
	for _, e := range ctl.Entries() {
		if e.ID == id {
			return toDTO(e), nil
		}
	}
	return EntryDTO{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// DeleteEntry removes an entry and returns what was removed. An unknown id
// deletes nothing and reports false without an error.
func (s *Service) DeleteEntry(ctx context.Context, id string) (EntryDTO, bool, error) {
	ctl, err := s.controller()
	if err != nil {
		return EntryDTO{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	dto, err := s.EntryByID(ctx, id)
	if errors.Is(err, ErrEntryNotFound) {
		return EntryDTO{}, false, nil
	}
	if err != nil {
		return EntryDTO{}, false, err
	}
	deleted, err := ctl.DeleteEntry(ctx, id)
	if err != nil {
		return EntryDTO{}, false, err
	}
	if !deleted {
		return EntryDTO{}, false, nil
	}
	return dto, true, nil
}

// ClearEntries wipes the journal when confirm is true and reports how many
// entries were removed.
func (s *Service) ClearEntries(ctx context.Context, confirm bool) (int, error) {
	ctl, err := s.controller()
	if err != nil {
		return 0, err
	}
	if !confirm {
		return 0, ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	n := ctl.Len()
	cleared, err := ctl.ClearAll(ctx, func(string) (bool, error) { return confirm, nil })
	if err != nil {
		return 0, err
	}
	if !cleared {
		return 0, nil
	}
	return n, nil
}

// Summary aggregates entries over window; zero means every entry.
func (s *Service) Summary(window time.Duration) (app.Summary, error) {
	ctl, err := s.controller()
	if err != nil {
		return app.Summary{}, err
	}
	now := s.now()
	var since time.Time
	if window > 0 {
		since = now.Add(-window)
	}
	return app.Summarize(ctl.Entries(), since, now), nil
}
