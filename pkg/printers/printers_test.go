package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/booster"
	"tableflip.dev/mood/pkg/entry"
)

func init() {
	color.NoColor = true
}

func TestEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Entries()
	if !strings.Contains(buf.String(), EmptyHistory) {
		t.Fatalf("expected empty history message, got %q", buf.String())
	}
}

func TestEntriesRows(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.Local)
	e := entry.New(at, "happy", []string{"Music", "Coffee Break"})
	odd := entry.New(at.Add(-time.Hour), "ecstatic", nil)

	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, ShowID: true}
	pp.Entries(e, odd)
	got := buf.String()

	for _, want := range []string{e.ID, "Happy", "Mar 5, 2024", "02:07 PM", "Music, Coffee Break", "ecstatic"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Index(got, "Happy") > strings.Index(got, "ecstatic") {
		t.Fatalf("expected entries in given order:\n%s", got)
	}
}

func TestDayMoodsKeepsLatestPerDay(t *testing.T) {
	month := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.Local)
	newest := entry.New(time.Date(2024, time.March, 5, 20, 0, 0, 0, time.Local), "sad", nil)
	older := entry.New(time.Date(2024, time.March, 5, 8, 0, 0, 0, time.Local), "happy", nil)
	other := entry.New(time.Date(2024, time.April, 1, 8, 0, 0, 0, time.Local), "tired", nil)

	moods := DayMoods(month, newest, older, other)
	if len(moods) != 31 {
		t.Fatalf("expected 31 days, got %d", len(moods))
	}
	if moods[4] != "sad" {
		t.Fatalf("expected latest mood sad on the 5th, got %q", moods[4])
	}
	for i, m := range moods {
		if i != 4 && m != "" {
			t.Fatalf("unexpected mood %q on day %d", m, i+1)
		}
	}
}

func TestCalendarHeader(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Calendar(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.Local))
	got := buf.String()
	if !strings.Contains(got, "February 2024") || !strings.Contains(got, "29") {
		t.Fatalf("unexpected calendar:\n%s", got)
	}
	if strings.Contains(got, "30 ") {
		t.Fatalf("february 2024 has no 30th:\n%s", got)
	}
}

func TestCatalogLegend(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Catalog()
	for _, want := range []string{"Happy", "Tired", "Coffee Break", "meditation"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in legend", want)
		}
	}
}

func TestBoosterShowsPosition(t *testing.T) {
	b := booster.New()
	b.ToggleTab()
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Booster(b)
	if !strings.Contains(buf.String(), "Quote 1 of 10") {
		t.Fatalf("expected quote position, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "mood add happy") {
		t.Fatalf("expected shortcuts, got:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, map[string]int{"count": 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"count": 2`) {
		t.Fatalf("unexpected json %q", buf.String())
	}
}
