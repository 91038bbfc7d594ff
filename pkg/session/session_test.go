package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/repository"
	"tableflip.dev/mood/pkg/store"
)

// fakeClock fires timers synchronously from Advance.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.June, 1, 8, 0, 0, 0, time.Local)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	for _, t := range due {
		t.f()
	}
}

func (c *fakeClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type failingRepo struct {
	entries []*entry.Entry
	saveErr error
	saves   int
}

func (r *failingRepo) Load(context.Context) ([]*entry.Entry, error) {
	return entry.CloneAll(r.entries), nil
}

func (r *failingRepo) Save(_ context.Context, entries []*entry.Entry) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.entries = entry.CloneAll(entries)
	return nil
}

func newController(t *testing.T) (*Controller, *fakeClock, *repository.Repository) {
	t.Helper()
	clock := newFakeClock()
	repo := repository.New(store.NewMemory())
	c := New(repo, WithClock(clock))
	require.NoError(t, c.Load(context.Background()))
	t.Cleanup(c.Close)
	return c, clock, repo
}

func yes(string) (bool, error) { return true, nil }
func no(string) (bool, error)  { return false, nil }

func TestSubmitScenario(t *testing.T) {
	c, _, repo := newController(t)
	ctx := context.Background()

	c.SelectMood("happy")
	c.ToggleActivity("music")
	e, err := c.SubmitEntry(ctx)
	require.NoError(t, err)

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "happy", entries[0].Mood)
	assert.Equal(t, []string{"Music"}, entries[0].Activities)
	assert.Equal(t, e, entries[0])

	sel := c.Selection()
	assert.False(t, sel.HasMood())
	assert.Empty(t, sel.Activities)
	assert.True(t, sel.Submitted)

	persisted, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, persisted)
}

func TestSubmitWithoutMoodChangesNothing(t *testing.T) {
	c, _, _ := newController(t)
	ctx := context.Background()

	c.ToggleActivity("art")
	c.ToggleActivity("work")
	before := c.Selection()

	e, err := c.SubmitEntry(ctx)
	assert.Nil(t, e)
	require.ErrorIs(t, err, ErrNoMood)
	assert.True(t, IsValidation(err))

	assert.Empty(t, c.Entries())
	assert.Equal(t, before, c.Selection())
}

func TestSubmitPrependsNewestFirst(t *testing.T) {
	c, clock, _ := newController(t)
	ctx := context.Background()

	for _, mood := range []string{"sad", "neutral", "loved"} {
		c.SelectMood(mood)
		_, err := c.SubmitEntry(ctx)
		require.NoError(t, err)
		clock.Advance(time.Second)
	}

	entries := c.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "loved", entries[0].Mood)
	assert.Equal(t, "neutral", entries[1].Mood)
	assert.Equal(t, "sad", entries[2].Mood)
}

func TestSubmitKeepsIDsUniqueAtSameInstant(t *testing.T) {
	c, _, _ := newController(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		c.SelectMood("angry")
		_, err := c.SubmitEntry(ctx)
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	for _, e := range c.Entries() {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestActivityLabelsKeepToggleOrder(t *testing.T) {
	c, _, _ := newController(t)

	c.SelectMood("happy")
	c.ToggleActivity("meditation")
	c.ToggleActivity("coffee")
	c.ToggleActivity("unknown-thing")
	assert.Equal(t, []string{"coffee", "meditation", "unknown-thing"}, c.Selection().Activities)

	e, err := c.SubmitEntry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Meditation", "Coffee Break", "unknown-thing"}, e.Activities)
}

func TestToggleParity(t *testing.T) {
	c, _, _ := newController(t)
	calls := []string{"music", "art", "music", "music", "work", "art", "work", "work"}
	counts := map[string]int{}
	for _, id := range calls {
		c.ToggleActivity(id)
		counts[id]++
		for k, n := range counts {
			assert.Equal(t, n%2 == 1, c.Selection().HasActivity(k), "activity %s after %d toggles", k, n)
		}
	}
}

func TestDeleteEntry(t *testing.T) {
	c, clock, repo := newController(t)
	ctx := context.Background()

	c.SelectMood("happy")
	first, err := c.SubmitEntry(ctx)
	require.NoError(t, err)
	clock.Advance(time.Second)
	c.SelectMood("sad")
	_, err = c.SubmitEntry(ctx)
	require.NoError(t, err)

	ok, err := c.DeleteEntry(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "sad", entries[0].Mood)

	persisted, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, persisted)
}

func TestDeleteMissingIsNoop(t *testing.T) {
	clock := newFakeClock()
	repo := &failingRepo{}
	c := New(repo, WithClock(clock))
	defer c.Close()
	ctx := context.Background()

	c.SelectMood("tired")
	_, err := c.SubmitEntry(ctx)
	require.NoError(t, err)
	before := c.Entries()
	saves := repo.saves

	ok, err := c.DeleteEntry(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, c.Entries())
	assert.Equal(t, saves, repo.saves)
}

func TestClearAllNeedsConfirmation(t *testing.T) {
	c, _, repo := newController(t)
	ctx := context.Background()

	c.SelectMood("loved")
	_, err := c.SubmitEntry(ctx)
	require.NoError(t, err)

	cleared, err := c.ClearAll(ctx, no)
	require.NoError(t, err)
	assert.False(t, cleared)
	assert.Len(t, c.Entries(), 1)

	cleared, err = c.ClearAll(ctx, nil)
	require.NoError(t, err)
	assert.False(t, cleared)
	assert.Len(t, c.Entries(), 1)

	boom := errors.New("tty closed")
	cleared, err = c.ClearAll(ctx, func(string) (bool, error) { return true, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, cleared)
	assert.Len(t, c.Entries(), 1)

	var prompt string
	cleared, err = c.ClearAll(ctx, func(p string) (bool, error) {
		prompt = p
		return true, nil
	})
	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Equal(t, ClearPrompt, prompt)
	assert.Empty(t, c.Entries())

	persisted, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestSubmittedFlagClearsAfterDelay(t *testing.T) {
	c, clock, _ := newController(t)

	c.SelectMood("happy")
	_, err := c.SubmitEntry(context.Background())
	require.NoError(t, err)
	assert.True(t, c.Submitted())

	clock.Advance(SubmittedClearDelay - time.Millisecond)
	assert.True(t, c.Submitted())
	clock.Advance(time.Millisecond)
	assert.False(t, c.Submitted())
}

func TestSecondSubmitRestartsTimer(t *testing.T) {
	c, clock, _ := newController(t)
	ctx := context.Background()

	var mu sync.Mutex
	clears := 0
	cancel := c.Subscribe(func(ev Event) {
		if ev.Type == EventSubmittedCleared {
			mu.Lock()
			clears++
			mu.Unlock()
		}
	})
	defer cancel()

	c.SelectMood("happy")
	_, err := c.SubmitEntry(ctx)
	require.NoError(t, err)

	clock.Advance(time.Second)
	c.SelectMood("sad")
	mu.Lock()
	clears = 0 // selecting a mood drops the first flag on its own
	mu.Unlock()
	_, err = c.SubmitEntry(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, clock.pending(), "only one auto-clear may be pending")

	// Three seconds after the first submit: the flag must survive.
	clock.Advance(2 * time.Second)
	assert.True(t, c.Submitted())

	// Three seconds after the second submit.
	clock.Advance(time.Second)
	assert.False(t, c.Submitted())

	clock.Advance(10 * time.Second)
	mu.Lock()
	assert.Equal(t, 1, clears)
	mu.Unlock()
}

func TestBackToBackSubmitsKeepSingleTimer(t *testing.T) {
	clock := newFakeClock()
	repo := &failingRepo{}
	c := New(repo, WithClock(clock))
	defer c.Close()
	ctx := context.Background()

	c.SelectMood("happy")
	_, err := c.SubmitEntry(ctx)
	require.NoError(t, err)
	clock.Advance(time.Second)

	// Set the mood directly so no other operation touches the flag between
	// the two submissions.
	c.mu.Lock()
	c.mood = "sad"
	c.mu.Unlock()
	_, err = c.SubmitEntry(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, clock.pending())
	clock.Advance(2 * time.Second)
	assert.True(t, c.Submitted(), "timer from the first submit must not fire")
	clock.Advance(time.Second)
	assert.False(t, c.Submitted())
}

func TestStaleTimerCallbackIsIgnored(t *testing.T) {
	c, _, _ := newController(t)

	c.mu.Lock()
	c.submitted = true
	c.armSubmittedLocked()
	stale := c.gen
	c.armSubmittedLocked()
	c.mu.Unlock()

	c.expireSubmitted(stale)
	assert.True(t, c.Submitted())
}

func TestSelectMoodClearsSubmitted(t *testing.T) {
	c, clock, _ := newController(t)

	c.SelectMood("happy")
	_, err := c.SubmitEntry(context.Background())
	require.NoError(t, err)
	require.True(t, c.Submitted())

	c.SelectMood("sad")
	assert.False(t, c.Submitted())
	assert.Equal(t, 0, clock.pending())
}

func TestBoosterVisibleOnlyWhenSad(t *testing.T) {
	c, _, _ := newController(t)
	assert.False(t, c.BoosterVisible())
	c.SelectMood("sad")
	assert.True(t, c.BoosterVisible())
	c.SelectMood("happy")
	assert.False(t, c.BoosterVisible())
	assert.Equal(t, "happy", c.Selection().Mood)
}

func TestSaveFailureKeepsEntryInMemory(t *testing.T) {
	boom := &store.WriteError{Key: repository.Key, Err: errors.New("quota exceeded")}
	repo := &failingRepo{saveErr: boom}
	c := New(repo, WithClock(newFakeClock()))
	defer c.Close()

	var warnings []error
	cancel := c.Subscribe(func(ev Event) {
		if ev.Type == EventWarning {
			warnings = append(warnings, ev.Err)
		}
	})
	defer cancel()

	c.SelectMood("angry")
	e, err := c.SubmitEntry(context.Background())
	require.Error(t, err)
	var we *store.WriteError
	assert.ErrorAs(t, err, &we)
	require.NotNil(t, e)

	assert.Len(t, c.Entries(), 1)
	assert.False(t, c.Submitted())
	assert.False(t, c.Selection().HasMood())
	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], boom)
}

func TestLoadCorruptStoreWarns(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Write(repository.Key, []byte("{{{")))
	c := New(repository.New(mem), WithClock(newFakeClock()))
	defer c.Close()

	err := c.Load(context.Background())
	var re *repository.ReadError
	require.ErrorAs(t, err, &re)
	assert.Empty(t, c.Entries())

	// The controller stays usable and overwrites the corrupt value.
	c.SelectMood("neutral")
	_, err = c.SubmitEntry(context.Background())
	require.NoError(t, err)
	loaded, err := repository.New(mem).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestSubscribersSeeUpdatedState(t *testing.T) {
	c, _, _ := newController(t)

	var seen []EventType
	var lens []int
	cancel := c.Subscribe(func(ev Event) {
		seen = append(seen, ev.Type)
		lens = append(lens, c.Len())
	})

	c.SelectMood("happy")
	_, err := c.SubmitEntry(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []EventType{EventSelectionChanged, EventEntriesChanged, EventSelectionChanged, EventSubmitted}, seen)
	assert.Equal(t, []int{0, 1, 1, 1}, lens)

	cancel()
	c.SelectMood("sad")
	assert.Len(t, seen, 4)
}

func TestEntriesAreCopies(t *testing.T) {
	c, _, _ := newController(t)
	c.SelectMood("happy")
	c.ToggleActivity("art")
	_, err := c.SubmitEntry(context.Background())
	require.NoError(t, err)

	got := c.Entries()
	got[0].Activities[0] = "Tampered"
	got[0].Mood = "sad"
	assert.Equal(t, "happy", c.Entries()[0].Mood)
	assert.Equal(t, []string{"Art"}, c.Entries()[0].Activities)
}

func TestReloadPicksUpExternalWipe(t *testing.T) {
	c, _, repo := newController(t)
	ctx := context.Background()

	c.SelectMood("happy")
	_, err := c.SubmitEntry(ctx)
	require.NoError(t, err)
	c.ToggleActivity("music")

	require.NoError(t, repo.Store.Erase(repository.Key))
	require.NoError(t, c.Reload(ctx))

	assert.Empty(t, c.Entries())
	assert.True(t, c.Selection().HasActivity("music"))
}

// heldRepo blocks Load after reading until release is closed.
type heldRepo struct {
	*repository.Repository
	loaded  chan struct{}
	release chan struct{}
}

func (r *heldRepo) Load(ctx context.Context) ([]*entry.Entry, error) {
	entries, err := r.Repository.Load(ctx)
	if r.loaded != nil {
		close(r.loaded)
		<-r.release
		r.loaded = nil
	}
	return entries, err
}

func TestReloadDoesNotDropConcurrentSubmit(t *testing.T) {
	ctx := context.Background()
	repo := &heldRepo{Repository: repository.New(store.NewMemory())}
	c := New(repo, WithClock(newFakeClock()))
	require.NoError(t, c.Load(ctx))
	t.Cleanup(c.Close)

	c.SelectMood("happy")
	_, err := c.SubmitEntry(ctx)
	require.NoError(t, err)

	repo.loaded = make(chan struct{})
	repo.release = make(chan struct{})
	loaded := repo.loaded
	reloaded := make(chan error, 1)
	go func() { reloaded <- c.Reload(ctx) }()
	<-loaded

	c.SelectMood("sad")
	submitted := make(chan error, 1)
	go func() {
		_, err := c.SubmitEntry(ctx)
		submitted <- err
	}()
	assert.Never(t, func() bool { return len(submitted) > 0 }, 50*time.Millisecond, 5*time.Millisecond)

	close(repo.release)
	require.NoError(t, <-reloaded)
	require.NoError(t, <-submitted)
	require.Equal(t, 2, c.Len())

	c.SelectMood("tired")
	_, err = c.SubmitEntry(ctx)
	require.NoError(t, err)

	stored, err := repo.Repository.Load(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, "tired", stored[0].Mood)
	assert.Equal(t, "sad", stored[1].Mood)
	assert.Equal(t, "happy", stored[2].Mood)
}
