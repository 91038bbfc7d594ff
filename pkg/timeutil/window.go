// Package timeutil parses the look-back windows used to filter history.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// All disables the window: every entry is in range.
const All = "all"

const day = 24 * time.Hour

var (
	segment = regexp.MustCompile(`^(\d+)([a-z]+)`)
	units   = map[string]time.Duration{
		"h": time.Hour, "hr": time.Hour, "hour": time.Hour, "hours": time.Hour,
		"d": day, "day": day, "days": day,
		"w": 7 * day, "wk": 7 * day, "week": 7 * day, "weeks": 7 * day,
	}
)

// ParseWindow parses windows such as "1w", "3d" or "1w2d12h". An empty
// string or "all" returns zero, meaning unbounded.
func ParseWindow(input string) (time.Duration, error) {
	s := strings.ToLower(strings.ReplaceAll(input, " ", ""))
	if s == "" || s == All {
		return 0, nil
	}

	var total time.Duration
	for rest := s; rest != ""; {
		m := segment.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("invalid window %q", input)
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("invalid window %q: %w", input, err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported window unit %q", m[2])
		}
		total += time.Duration(n) * unit
		rest = rest[len(m[0]):]
	}
	if total <= 0 {
		return 0, fmt.Errorf("window must be greater than zero")
	}
	return total, nil
}

// FormatWindow renders d with w/d/h tokens, or "all" for zero.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return All
	}
	var b strings.Builder
	for _, u := range []struct {
		label string
		size  time.Duration
	}{{"w", 7 * day}, {"d", day}, {"h", time.Hour}} {
		if n := d / u.size; n > 0 {
			fmt.Fprintf(&b, "%d%s", n, u.label)
			d -= n * u.size
		}
	}
	if b.Len() == 0 {
		return "<1h"
	}
	return b.String()
}

// Within reports whether t falls inside the window ending at now. A zero
// window contains everything.
func Within(t, now time.Time, window time.Duration) bool {
	if window <= 0 {
		return true
	}
	return !t.Before(now.Add(-window))
}
