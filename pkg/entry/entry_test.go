package entry

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewFormatsDateAndTime(t *testing.T) {
	now := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.Local)
	e := New(now, "happy", []string{"Music"})

	if e.ID != IDFor(now) {
		t.Fatalf("expected id %s, got %s", IDFor(now), e.ID)
	}
	if e.Date != "Mar 5, 2024" {
		t.Fatalf("unexpected date %q", e.Date)
	}
	if e.Timestamp != "02:07 PM" {
		t.Fatalf("unexpected timestamp %q", e.Timestamp)
	}
	if e.Title() != "Happy" {
		t.Fatalf("unexpected title %q", e.Title())
	}
}

func TestNewCopiesActivities(t *testing.T) {
	labels := []string{"Music"}
	e := New(time.Now(), "sad", labels)
	labels[0] = "Gaming"
	if e.Activities[0] != "Music" {
		t.Fatalf("entry shares activity slice with caller")
	}
}

func TestCreatedRoundTrip(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	e := New(now, "tired", nil)
	got, ok := e.Created()
	if !ok {
		t.Fatalf("expected creation time from id %q", e.ID)
	}
	if !got.Equal(now) {
		t.Fatalf("expected %v, got %v", now, got)
	}
	if _, ok := (&Entry{ID: "abc"}).Created(); ok {
		t.Fatalf("expected non-numeric id to be rejected")
	}
}

func TestMarshalUsesStoredFieldNames(t *testing.T) {
	e := &Entry{ID: "1", Mood: "happy", Activities: []string{}, Timestamp: "09:00 AM", Date: "Jan 1, 2024"}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"id"`, `"mood"`, `"activities":[]`, `"timestamp"`, `"date"`} {
		if !strings.Contains(string(b), field) {
			t.Fatalf("expected %s in %s", field, b)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	e := &Entry{ID: "1", Mood: "happy", Activities: []string{"Art"}}
	cp := e.Clone()
	cp.Activities[0] = "Work"
	if e.Activities[0] != "Art" {
		t.Fatalf("clone shares activities")
	}
	if (*Entry)(nil).Clone() != nil {
		t.Fatalf("expected nil clone of nil entry")
	}
}

func TestStringFallsBackToRawMood(t *testing.T) {
	e := &Entry{Mood: "meh", Date: "Jan 1, 2024", Timestamp: "09:00 AM"}
	if got := e.String(); !strings.HasPrefix(got, "meh") {
		t.Fatalf("unexpected string %q", got)
	}
}
