// Package repository translates between the in-memory entry collection and
// the single serialized value kept in a store.
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/store"
)

const (
	// Key is the store key holding the whole collection.
	Key = "moodEntries"

	// CurrentVersion is the envelope version written by Save.
	CurrentVersion = 1
)

// envelope is the versioned on-disk layout. Version 0 is the legacy bare
// JSON array, which is still accepted on read.
type envelope struct {
	Version int            `json:"version"`
	Entries []*entry.Entry `json:"entries"`
}

// ErrNewerVersion marks a stored collection written by a newer release.
var ErrNewerVersion = errors.New("entries written by a newer version")

// ReadError reports a stored collection that could not be read or parsed.
// It is a warning: Load still returns a usable (empty) collection.
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	if errors.Is(e.Err, ErrNewerVersion) {
		return fmt.Sprintf("repository: stored entries under %q unreadable, starting empty and not saving over them: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("repository: stored entries under %q unreadable, starting empty: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Repository loads and saves the entry collection under one key. Once Load
// finds a newer envelope, Save refuses to overwrite it until a later Load
// sees a value this release can read.
type Repository struct {
	Store store.Store
	Key   string

	mu     sync.Mutex
	frozen error
}

// New returns a repository over s using the default key.
func New(s store.Store) *Repository {
	return &Repository{Store: s, Key: Key}
}

func (r *Repository) key() string {
	if r.Key == "" {
		return Key
	}
	return r.Key
}

// Load returns the stored collection, newest first. It never returns a nil
// slice. A missing value is an empty collection; an unreadable one is an
// empty collection plus a *ReadError.
func (r *Repository) Load(ctx context.Context) ([]*entry.Entry, error) {
	if err := ctx.Err(); err != nil {
		return []*entry.Entry{}, &ReadError{Key: r.key(), Err: err}
	}
	if r.Store == nil {
		return []*entry.Entry{}, &ReadError{Key: r.key(), Err: errors.New("no store configured")}
	}
	data, err := r.Store.Read(r.key())
	if errors.Is(err, store.ErrNotFound) {
		r.freeze(nil)
		return []*entry.Entry{}, nil
	}
	if err != nil {
		return []*entry.Entry{}, &ReadError{Key: r.key(), Err: err}
	}
	entries, err := Decode(data)
	if err != nil {
		if errors.Is(err, ErrNewerVersion) {
			r.freeze(err)
		}
		return []*entry.Entry{}, &ReadError{Key: r.key(), Err: err}
	}
	r.freeze(nil)
	return entries, nil
}

func (r *Repository) freeze(err error) {
	r.mu.Lock()
	r.frozen = err
	r.mu.Unlock()
}

// Save replaces the stored value with the whole collection.
func (r *Repository) Save(ctx context.Context, entries []*entry.Entry) error {
	if err := ctx.Err(); err != nil {
		return &store.WriteError{Key: r.key(), Err: err}
	}
	if r.Store == nil {
		return &store.WriteError{Key: r.key(), Err: errors.New("no store configured")}
	}
	r.mu.Lock()
	frozen := r.frozen
	r.mu.Unlock()
	if frozen != nil {
		return &store.WriteError{Key: r.key(), Err: frozen}
	}
	data, err := Encode(entries)
	if err != nil {
		return &store.WriteError{Key: r.key(), Err: err}
	}
	if err := r.Store.Write(r.key(), data); err != nil {
		var we *store.WriteError
		if errors.As(err, &we) {
			return err
		}
		return &store.WriteError{Key: r.key(), Err: err}
	}
	return nil
}

// Encode serializes entries as the current envelope.
func Encode(entries []*entry.Entry) ([]byte, error) {
	env := envelope{
		Version: CurrentVersion,
		Entries: make([]*entry.Entry, 0, len(entries)),
	}
	for _, e := range entries {
		if e == nil {
			continue
		}
		cp := e.Clone()
		cp.Normalize()
		env.Entries = append(env.Entries, cp)
	}
	return json.Marshal(env)
}

// Decode parses either the versioned envelope or the legacy bare array.
func Decode(data []byte) ([]*entry.Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []*entry.Entry{}, nil
	}

	var list []*entry.Entry
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode legacy entries: %w", err)
		}
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decode entries: %w", err)
		}
		if env.Version > CurrentVersion {
			return nil, fmt.Errorf("%w: version %d, max %d", ErrNewerVersion, env.Version, CurrentVersion)
		}
		list = env.Entries
	default:
		return nil, fmt.Errorf("decode entries: unexpected leading %q", trimmed[0])
	}

	out := make([]*entry.Entry, 0, len(list))
	for _, e := range list {
		if e == nil {
			continue
		}
		e.Normalize()
		out = append(out, e)
	}
	return out, nil
}
