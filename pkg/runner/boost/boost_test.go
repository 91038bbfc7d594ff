package boost

import (
	"testing"
	"time"

	"tableflip.dev/mood/pkg/booster"
)

func TestBoosterNumber(t *testing.T) {
	n := Boost{Quotes: true, Number: 3}
	b := n.Booster()
	if b.Tab() != booster.Quotes || b.Index() != 2 {
		t.Fatalf("expected third quote, got %s %d", b.Tab(), b.Index())
	}

	n = Boost{Number: 16}
	if got := n.Booster().Index(); got != 0 {
		t.Fatalf("expected joke 16 to wrap to the first, got %d", got)
	}
}

func TestBoosterOfTheDay(t *testing.T) {
	n := Boost{Now: func() time.Time { return time.Date(2024, time.January, 18, 0, 0, 0, 0, time.UTC) }}
	if got := n.Booster().Index(); got != 2 {
		t.Fatalf("expected day 18 to land on joke 3, got %d", got)
	}
}
