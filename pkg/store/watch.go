package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a store change notification.
type EventType int

const (
	// EventKeyChanged indicates the value under Key was written.
	EventKeyChanged EventType = iota

	// EventKeyRemoved indicates the value under Key was erased or its file
	// removed from outside the process.
	EventKeyRemoved

	// EventInvalidated signals a change that could not be classified;
	// callers should reload everything.
	EventInvalidated
)

// Event is emitted by Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  string
}

// Watcher is implemented by stores that can report external changes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (s *DiskvStore) Watch(ctx context.Context) (<-chan Event, error) {
	if s.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}

	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(s.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", s.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Consumer is behind; the next event triggers a reload anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				key := s.keyForPath(evt.Name)
				if key == "" {
					continue
				}
				if evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
					// diskv writes through a temp file and renames it into
					// place, so confirm the key is really gone.
					if _, err := os.Stat(evt.Name); errors.Is(err, os.ErrNotExist) {
						throttle.Enqueue(Event{Type: EventKeyRemoved, Key: key}, send)
						continue
					}
				}
				throttle.Enqueue(Event{Type: EventKeyChanged, Key: key}, send)
			}
		}
	}()

	return events, nil
}

// keyForPath maps a file path under the base path to its key. Files in
// subdirectories and dot files (such as the diskv temp dir) are ignored.
func (s *DiskvStore) keyForPath(path string) string {
	rel, err := filepath.Rel(s.basePath, path)
	if err != nil || rel == "." {
		return ""
	}
	if filepath.Dir(rel) != "." || strings.HasPrefix(rel, ".") {
		return ""
	}
	return rel
}

// eventThrottle coalesces rapid change notifications so subscribers reload
// once per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]Event
	order   []string
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]Event),
	}
}

// Enqueue records ev; the latest event per key wins.
func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	id := ev.Key
	if _, ok := t.pending[id]; !ok {
		t.order = append(t.order, id)
	}
	t.pending[id] = ev

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	order := t.order
	t.pending = make(map[string]Event)
	t.order = nil
	t.timer = nil
	t.mu.Unlock()

	for _, id := range order {
		send(pending[id])
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
