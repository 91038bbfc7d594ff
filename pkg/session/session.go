// Package session holds the mood picker state and the entry collection, and
// orchestrates submitting, deleting and clearing entries. Views subscribe to
// change events instead of polling.
package session

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"tableflip.dev/mood/pkg/catalog"
	"tableflip.dev/mood/pkg/entry"
)

// SubmittedClearDelay is how long the submitted flag stays up.
const SubmittedClearDelay = 3 * time.Second

// ClearPrompt is the question put to the confirmation gate of ClearAll.
const ClearPrompt = "Are you sure you want to clear all mood entries?"

// Repository persists the whole entry collection.
type Repository interface {
	Load(ctx context.Context) ([]*entry.Entry, error)
	Save(ctx context.Context, entries []*entry.Entry) error
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) (bool, error)

// EventType identifies a controller change notification.
type EventType int

const (
	EventSelectionChanged EventType = iota
	EventEntriesChanged
	EventSubmitted
	EventSubmittedCleared
	EventWarning
)

func (t EventType) String() string {
	switch t {
	case EventSelectionChanged:
		return "selection-changed"
	case EventEntriesChanged:
		return "entries-changed"
	case EventSubmitted:
		return "submitted"
	case EventSubmittedCleared:
		return "submitted-cleared"
	case EventWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after the state change is visible.
type Event struct {
	Type EventType
	Err  error
}

// Selection is a snapshot of the picker state.
type Selection struct {
	Mood       string
	Activities []string // catalog order
	Submitted  bool
}

// HasMood reports whether a mood is selected.
func (s Selection) HasMood() bool {
	return s.Mood != ""
}

// HasActivity reports whether id is selected.
func (s Selection) HasActivity(id string) bool {
	return slices.Contains(s.Activities, id)
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(ctl *Controller) {
		ctl.clock = c
	}
}

// WithSubmittedDelay overrides SubmittedClearDelay.
func WithSubmittedDelay(d time.Duration) Option {
	return func(ctl *Controller) {
		ctl.delay = d
	}
}

// Controller owns the selection and the entry collection. Every mutation of
// the collection is persisted before the operation returns.
//
// writeMu serializes whole load and mutate-then-save sequences so a reload
// never lands between a mutation and its save, and saves reach the
// repository in mutation order. mu guards the fields and is never held
// across repository calls.
type Controller struct {
	writeMu sync.Mutex
	mu      sync.Mutex
	repo    Repository
	clock   Clock
	delay   time.Duration

	entries    []*entry.Entry
	mood       string
	activities []string // toggle order
	submitted  bool

	timer Timer
	gen   uint64

	subs    map[int]func(Event)
	nextSub int
	closed  bool
}

// New returns a controller with an empty collection. Call Load to restore
// persisted entries.
func New(repo Repository, opts ...Option) *Controller {
	c := &Controller{
		repo:    repo,
		clock:   realClock{},
		delay:   SubmittedClearDelay,
		entries: []*entry.Entry{},
		subs:    make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn for change events and returns a cancel func.
// fn runs outside the controller lock and may call back into it.
func (c *Controller) Subscribe(fn func(Event)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

func (c *Controller) emit(events ...Event) {
	if len(events) == 0 {
		return
	}
	c.mu.Lock()
	subs := make([]func(Event), 0, len(c.subs))
	ids := make([]int, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		subs = append(subs, c.subs[id])
	}
	c.mu.Unlock()

	for _, ev := range events {
		for _, fn := range subs {
			fn(ev)
		}
	}
}

// Load restores the collection from the repository. A returned error is a
// warning: the controller is usable and starts from whatever Load produced.
func (c *Controller) Load(ctx context.Context) error {
	c.writeMu.Lock()
	entries, err := c.repo.Load(ctx)
	if entries == nil {
		entries = []*entry.Entry{}
	}

	c.mu.Lock()
	c.entries = entry.CloneAll(entries)
	c.mu.Unlock()
	c.writeMu.Unlock()

	events := []Event{{Type: EventEntriesChanged}}
	if err != nil {
		events = append(events, Event{Type: EventWarning, Err: err})
	}
	c.emit(events...)
	return err
}

// Reload is Load for changes made outside this controller, such as another
// process writing or wiping the store. The selection is kept. A reload
// waits for any in-flight mutation to be saved, so it always reads a store
// that already holds this controller's own writes.
func (c *Controller) Reload(ctx context.Context) error {
	return c.Load(ctx)
}

// Entries returns a copy of the collection, newest first.
func (c *Controller) Entries() []*entry.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return entry.CloneAll(c.entries)
}

// Len returns the number of entries.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Selection returns a snapshot of the picker state.
func (c *Controller) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Selection{
		Mood:       c.mood,
		Activities: catalog.SortActivities(c.activities),
		Submitted:  c.submitted,
	}
}

// Submitted reports whether a submission just completed.
func (c *Controller) Submitted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitted
}

// BoosterVisible reports whether the mood booster should be shown.
func (c *Controller) BoosterVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mood == catalog.Sad
}

// SelectMood sets the selected mood. Any string is accepted; views only
// offer catalog moods.
func (c *Controller) SelectMood(id string) {
	c.mu.Lock()
	c.mood = id
	cleared := c.clearSubmittedLocked()
	c.mu.Unlock()

	events := []Event{{Type: EventSelectionChanged}}
	if cleared {
		events = append(events, Event{Type: EventSubmittedCleared})
	}
	c.emit(events...)
}

// ToggleActivity adds id to the selected activities, or removes it when
// already selected.
func (c *Controller) ToggleActivity(id string) {
	c.mu.Lock()
	if i := slices.Index(c.activities, id); i >= 0 {
		c.activities = slices.Delete(c.activities, i, i+1)
	} else {
		c.activities = append(c.activities, id)
	}
	cleared := c.clearSubmittedLocked()
	c.mu.Unlock()

	events := []Event{{Type: EventSelectionChanged}}
	if cleared {
		events = append(events, Event{Type: EventSubmittedCleared})
	}
	c.emit(events...)
}

// SubmitEntry records the current selection as a new entry at the head of
// the collection, resets the selection and raises the submitted flag for
// the clear delay. Without a mood it returns ErrNoMood and changes nothing.
//
// When persisting fails the entry is kept in memory, the selection is
// still reset, the submitted flag is not raised, and the *store.WriteError
// is returned together with the entry.
func (c *Controller) SubmitEntry(ctx context.Context) (*entry.Entry, error) {
	c.writeMu.Lock()
	c.mu.Lock()
	if c.mood == "" {
		c.mu.Unlock()
		c.writeMu.Unlock()
		return nil, ErrNoMood
	}

	labels := make([]string, 0, len(c.activities))
	for _, id := range c.activities {
		labels = append(labels, catalog.ActivityDisplay(id))
	}
	now := c.clock.Now()
	for c.hasIDLocked(entry.IDFor(now)) {
		now = now.Add(time.Millisecond)
	}
	e := entry.New(now, c.mood, labels)

	c.entries = append([]*entry.Entry{e}, c.entries...)
	c.mood = ""
	c.activities = nil
	snapshot := entry.CloneAll(c.entries)
	c.mu.Unlock()

	saveErr := c.repo.Save(ctx, snapshot)
	c.writeMu.Unlock()

	events := []Event{{Type: EventEntriesChanged}, {Type: EventSelectionChanged}}
	if saveErr != nil {
		c.mu.Lock()
		c.clearSubmittedLocked()
		c.mu.Unlock()
		events = append(events, Event{Type: EventWarning, Err: saveErr})
		c.emit(events...)
		return e.Clone(), saveErr
	}

	c.mu.Lock()
	c.submitted = true
	c.armSubmittedLocked()
	c.mu.Unlock()
	events = append(events, Event{Type: EventSubmitted})
	c.emit(events...)
	return e.Clone(), nil
}

// DeleteEntry removes the entry with id. An unknown id is a no-op and
// reports false without touching the store.
func (c *Controller) DeleteEntry(ctx context.Context, id string) (bool, error) {
	c.writeMu.Lock()
	c.mu.Lock()
	idx := slices.IndexFunc(c.entries, func(e *entry.Entry) bool { return e.ID == id })
	if idx < 0 {
		c.mu.Unlock()
		c.writeMu.Unlock()
		return false, nil
	}
	c.entries = slices.Delete(slices.Clone(c.entries), idx, idx+1)
	snapshot := entry.CloneAll(c.entries)
	c.mu.Unlock()

	err := c.repo.Save(ctx, snapshot)
	c.writeMu.Unlock()
	events := []Event{{Type: EventEntriesChanged}}
	if err != nil {
		events = append(events, Event{Type: EventWarning, Err: err})
	}
	c.emit(events...)
	return true, err
}

// ClearAll empties the collection once confirm approves. A nil confirm, a
// "no" answer or a failing prompt leave everything untouched.
func (c *Controller) ClearAll(ctx context.Context, confirm ConfirmFunc) (bool, error) {
	if confirm == nil {
		return false, nil
	}
	ok, err := confirm(ClearPrompt)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	c.writeMu.Lock()
	c.mu.Lock()
	c.entries = []*entry.Entry{}
	c.mu.Unlock()

	saveErr := c.repo.Save(ctx, []*entry.Entry{})
	c.writeMu.Unlock()
	events := []Event{{Type: EventEntriesChanged}}
	if saveErr != nil {
		events = append(events, Event{Type: EventWarning, Err: saveErr})
	}
	c.emit(events...)
	return true, saveErr
}

// Close cancels the pending submitted timer. Subscribers stay registered
// but the flag will no longer clear on its own.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopTimerLocked()
	c.gen++
}

func (c *Controller) hasIDLocked(id string) bool {
	return slices.ContainsFunc(c.entries, func(e *entry.Entry) bool { return e.ID == id })
}

// armSubmittedLocked replaces any pending clear with a fresh one. The
// generation check keeps a superseded callback that already fired from
// clearing the newer flag.
func (c *Controller) armSubmittedLocked() {
	c.stopTimerLocked()
	c.gen++
	if c.closed {
		return
	}
	gen := c.gen
	c.timer = c.clock.AfterFunc(c.delay, func() {
		c.expireSubmitted(gen)
	})
}

func (c *Controller) expireSubmitted(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.submitted {
		c.mu.Unlock()
		return
	}
	c.submitted = false
	c.timer = nil
	c.mu.Unlock()
	c.emit(Event{Type: EventSubmittedCleared})
}

// clearSubmittedLocked drops the flag and its timer, reporting whether the
// flag was up.
func (c *Controller) clearSubmittedLocked() bool {
	c.stopTimerLocked()
	c.gen++
	was := c.submitted
	c.submitted = false
	return was
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
