package entry

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/mood/pkg/catalog"
)

// New creates an entry stamped with the given instant. Activities are
// display labels and are copied.
func New(now time.Time, mood string, activities []string) *Entry {
	labels := make([]string, len(activities))
	copy(labels, activities)
	return &Entry{
		ID:         IDFor(now),
		Mood:       mood,
		Activities: labels,
		Timestamp:  FormatTime(now),
		Date:       FormatDate(now),
	}
}

// Entry is one recorded mood. Entries are never edited after creation.
type Entry struct {
	ID         string   `json:"id"`
	Mood       string   `json:"mood"`
	Activities []string `json:"activities"`
	Timestamp  string   `json:"timestamp"`
	Date       string   `json:"date"`
}

// Clone returns a deep copy.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Activities = make([]string, len(e.Activities))
	copy(cp.Activities, e.Activities)
	return &cp
}

// Normalize repairs fields that older or hand edited data may leave nil.
func (e *Entry) Normalize() {
	if e.Activities == nil {
		e.Activities = []string{}
	}
}

// Title is the mood label, empty when the mood is not in the catalog.
func (e *Entry) Title() string {
	return catalog.MoodLabel(e.Mood)
}

// Created recovers the creation instant from the id.
func (e *Entry) Created() (time.Time, bool) {
	return ParseID(e.ID)
}

// Row returns the columns used by table printers.
func (e *Entry) Row() (string, string, string, string) {
	return e.Title(), e.Date, e.Timestamp, strings.Join(e.Activities, ", ")
}

func (e *Entry) String() string {
	title := e.Title()
	if title == "" {
		title = e.Mood
	}
	if len(e.Activities) == 0 {
		return fmt.Sprintf("%s  %s %s", title, e.Date, e.Timestamp)
	}
	return fmt.Sprintf("%s  %s %s  [%s]", title, e.Date, e.Timestamp, strings.Join(e.Activities, ", "))
}

// CloneAll deep copies a list of entries, dropping nils.
func CloneAll(entries []*Entry) []*Entry {
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		out = append(out, e.Clone())
	}
	return out
}
