package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/store"
)

type failingStore struct {
	*store.Memory
	readErr  error
	writeErr error
}

func (f *failingStore) Read(key string) ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.Memory.Read(key)
}

func (f *failingStore) Write(key string, val []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	return f.Memory.Write(key, val)
}

func sampleEntries() []*entry.Entry {
	base := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.Local)
	return []*entry.Entry{
		entry.New(base.Add(2*time.Minute), "happy", []string{"Music", "Coffee Break"}),
		entry.New(base.Add(time.Minute), "sad", nil),
		entry.New(base, "tired", []string{"Work"}),
	}
}

func TestLoadMissingIsEmpty(t *testing.T) {
	r := New(store.NewMemory())
	entries, err := r.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	r := New(store.NewMemory())
	ctx := context.Background()
	want := sampleEntries()

	require.NoError(t, r.Save(ctx, want))
	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveWritesVersionedEnvelope(t *testing.T) {
	mem := store.NewMemory()
	r := New(mem)
	require.NoError(t, r.Save(context.Background(), nil))

	raw, err := mem.Read(Key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"entries":[]}`, string(raw))
}

func TestLoadLegacyArray(t *testing.T) {
	mem := store.NewMemory()
	legacy := `[{"id":"1714550000000","mood":"happy","activities":["Music"],"timestamp":"09:30 AM","date":"May 1, 2024"},
	            {"id":"1714540000000","mood":"sad","activities":null,"timestamp":"06:40 AM","date":"May 1, 2024"}]`
	require.NoError(t, mem.Write(Key, []byte(legacy)))

	entries, err := New(mem).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "happy", entries[0].Mood)
	assert.Equal(t, []string{"Music"}, entries[0].Activities)
	assert.Equal(t, []string{}, entries[1].Activities)
}

func TestLoadMalformedFailsSoft(t *testing.T) {
	for name, raw := range map[string]string{
		"truncated":      `[{"id":"1","mood":`,
		"garbage":        `not json`,
		"future version": `{"version":99,"entries":[]}`,
		"wrong shape":    `{"version":1,"entries":"nope"}`,
	} {
		t.Run(name, func(t *testing.T) {
			mem := store.NewMemory()
			require.NoError(t, mem.Write(Key, []byte(raw)))

			entries, err := New(mem).Load(context.Background())
			require.NotNil(t, entries)
			assert.Empty(t, entries)

			var re *ReadError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, Key, re.Key)
		})
	}
}

func TestLoadStoreFailureFailsSoft(t *testing.T) {
	boom := errors.New("permission denied")
	r := New(&failingStore{Memory: store.NewMemory(), readErr: boom})

	entries, err := r.Load(context.Background())
	assert.Empty(t, entries)
	assert.ErrorIs(t, err, boom)
}

func TestSaveFailureIsWriteError(t *testing.T) {
	boom := errors.New("quota exceeded")
	r := New(&failingStore{Memory: store.NewMemory(), writeErr: boom})

	err := r.Save(context.Background(), sampleEntries())
	var we *store.WriteError
	require.ErrorAs(t, err, &we)
	assert.ErrorIs(t, err, boom)
}

func TestSaveSkipsNilEntries(t *testing.T) {
	r := New(store.NewMemory())
	ctx := context.Background()
	entries := sampleEntries()
	require.NoError(t, r.Save(ctx, []*entry.Entry{nil, entries[0], nil}))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entry.Entry{entries[0]}, got)
}

func TestCustomKey(t *testing.T) {
	mem := store.NewMemory()
	r := &Repository{Store: mem, Key: "other"}
	require.NoError(t, r.Save(context.Background(), sampleEntries()))

	_, err := mem.Read(Key)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = mem.Read("other")
	assert.NoError(t, err)
}

func TestNewerVersionBlocksSave(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	newer := `{"version":2,"entries":[{"id":"1"}]}`
	require.NoError(t, mem.Write(Key, []byte(newer)))
	r := New(mem)

	entries, err := r.Load(ctx)
	assert.Empty(t, entries)
	require.ErrorIs(t, err, ErrNewerVersion)
	assert.Contains(t, err.Error(), "not saving over them")

	err = r.Save(ctx, sampleEntries())
	var we *store.WriteError
	require.ErrorAs(t, err, &we)
	assert.ErrorIs(t, err, ErrNewerVersion)
	raw, err := mem.Read(Key)
	require.NoError(t, err)
	assert.Equal(t, newer, string(raw))

	require.NoError(t, mem.Erase(Key))
	_, err = r.Load(ctx)
	require.NoError(t, err)
	assert.NoError(t, r.Save(ctx, sampleEntries()))
}
