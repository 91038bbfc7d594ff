package entry

import (
	"strconv"
	"time"
)

const (
	// LayoutDate matches en-US { year: numeric, month: short, day: numeric }.
	LayoutDate = "Jan 2, 2006"
	// LayoutTime matches en-US { hour: 2-digit, minute: 2-digit }.
	LayoutTime = "03:04 PM"
)

// FormatDate renders the local calendar date of t.
func FormatDate(t time.Time) string {
	return t.Local().Format(LayoutDate)
}

// FormatTime renders the local time of day of t.
func FormatTime(t time.Time) string {
	return t.Local().Format(LayoutTime)
}

// IDFor returns the id derived from an instant: Unix milliseconds.
func IDFor(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// ParseID reverses IDFor. Ids that are not millisecond stamps report false.
func ParseID(id string) (time.Time, bool) {
	ms, err := strconv.ParseInt(id, 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
