package historyview

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/runner/tea/internal/theme"
)

func sampleEntries(n int) []*entry.Entry {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	out := make([]*entry.Entry, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, entry.New(base.Add(time.Duration(i)*time.Hour), "happy", []string{fmt.Sprintf("Music %d", i)}))
	}
	return out
}

func TestEmptyHistory(t *testing.T) {
	m := New(theme.Default(), 60, 10)
	if !strings.Contains(m.View(), printers.EmptyHistory) {
		t.Fatalf("expected empty message, got %q", m.View())
	}
	if m.Selected() != nil {
		t.Fatalf("expected no selection")
	}
	m.Move(1)
	if m.Cursor() != 0 {
		t.Fatalf("cursor moved on empty list")
	}
}

func TestMoveClamps(t *testing.T) {
	m := New(theme.Default(), 60, 4)
	m.SetEntries(sampleEntries(5))
	m.Move(-1)
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", m.Cursor())
	}
	m.Move(10)
	if m.Cursor() != 4 {
		t.Fatalf("expected cursor 4, got %d", m.Cursor())
	}
	if !strings.Contains(m.View(), "Music 0") {
		t.Fatalf("expected last entry to be scrolled into view:\n%s", m.View())
	}
}

func TestSetEntriesKeepsSelection(t *testing.T) {
	m := New(theme.Default(), 60, 10)
	entries := sampleEntries(3)
	m.SetEntries(entries)
	m.Move(1)
	want := m.Selected().ID

	newer := entry.New(time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC), "sad", nil)
	m.SetEntries(append([]*entry.Entry{newer}, entries...))
	if got := m.Selected().ID; got != want {
		t.Fatalf("expected cursor to follow %s, got %s", want, got)
	}

	m.SetEntries(entries[:1])
	if m.Cursor() != 0 {
		t.Fatalf("expected clamped cursor, got %d", m.Cursor())
	}
}
