package booster

import (
	"strings"
	"testing"
)

func TestNextWrapsAround(t *testing.T) {
	b := New()
	for i := 0; i < Len(Jokes); i++ {
		b.Next()
	}
	if b.Index() != 0 {
		t.Fatalf("expected joke index to wrap to 0, got %d", b.Index())
	}
	if b.Current() != AllJokes()[0] {
		t.Fatalf("expected first joke after wraparound")
	}
}

func TestTabsKeepIndependentPositions(t *testing.T) {
	b := New()
	b.Next()
	b.Next()
	b.ToggleTab()
	if b.Tab() != Quotes {
		t.Fatalf("expected quotes tab")
	}
	if b.Position() != "Quote 1 of 10" {
		t.Fatalf("unexpected position %q", b.Position())
	}
	b.Next()
	b.ToggleTab()
	if b.Position() != "Joke 3 of 15" {
		t.Fatalf("unexpected position %q", b.Position())
	}
}

func TestQuoteFormatting(t *testing.T) {
	b := New()
	b.SetTab(Quotes)
	got := b.Current()
	if !strings.HasPrefix(got, `"The greatest glory`) || !strings.HasSuffix(got, "— Nelson Mandela") {
		t.Fatalf("unexpected quote rendering %q", got)
	}
	if b.NextLabel() != "Next Quote" {
		t.Fatalf("unexpected label %q", b.NextLabel())
	}
}

func TestItemHandlesNegativeIndex(t *testing.T) {
	if got := Item(Jokes, -1); got != AllJokes()[Len(Jokes)-1] {
		t.Fatalf("expected last joke, got %q", got)
	}
}

func TestParseTab(t *testing.T) {
	for in, want := range map[string]Tab{"": Jokes, "Quotes": Quotes, "joke": Jokes} {
		got, err := ParseTab(in)
		if err != nil {
			t.Fatalf("ParseTab(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseTab(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseTab("memes"); err == nil {
		t.Fatalf("expected error for unknown tab")
	}
}
