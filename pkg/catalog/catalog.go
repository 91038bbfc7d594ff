// Package catalog holds the fixed mood and activity lookup tables.
package catalog

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Mood identifiers.
const (
	Happy   = "happy"
	Sad     = "sad"
	Neutral = "neutral"
	Loved   = "loved"
	Angry   = "angry"
	Tired   = "tired"
)

// Accent is a two stop colour gradient used to highlight a mood.
type Accent struct {
	From string
	To   string
}

// Mid returns the blended midpoint of the accent as a hex colour. Invalid
// stops fall back to whichever stop parses, or to an empty string.
func (a Accent) Mid() string {
	return a.At(0.5)
}

// At returns the accent colour at position t in [0, 1].
func (a Accent) At(t float64) string {
	from, errFrom := colorful.Hex(a.From)
	to, errTo := colorful.Hex(a.To)
	switch {
	case errFrom != nil && errTo != nil:
		return ""
	case errFrom != nil:
		return to.Hex()
	case errTo != nil:
		return from.Hex()
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return from.BlendLab(to, t).Clamped().Hex()
}

// Mood describes one selectable mood.
type Mood struct {
	ID     string
	Label  string
	Icon   string
	Key    string
	Accent Accent
}

func (m Mood) String() string {
	return m.Label
}

// Activity describes one taggable daily activity.
type Activity struct {
	ID    string
	Label string
	Icon  string
	Key   string
}

func (a Activity) String() string {
	return a.Label
}

var moods = []Mood{
	{ID: Happy, Label: "Happy", Icon: "☺", Key: "1", Accent: Accent{From: "#facc15", To: "#fb923c"}},
	{ID: Sad, Label: "Sad", Icon: "☹", Key: "2", Accent: Accent{From: "#60a5fa", To: "#818cf8"}},
	{ID: Neutral, Label: "Neutral", Icon: "≈", Key: "3", Accent: Accent{From: "#9ca3af", To: "#94a3b8"}},
	{ID: Loved, Label: "Loved", Icon: "♥", Key: "4", Accent: Accent{From: "#f87171", To: "#f472b6"}},
	{ID: Angry, Label: "Angry", Icon: "✸", Key: "5", Accent: Accent{From: "#dc2626", To: "#ea580c"}},
	{ID: Tired, Label: "Tired", Icon: "◌", Key: "6", Accent: Accent{From: "#c084fc", To: "#6366f1"}},
}

var activities = []Activity{
	{ID: "exercise", Label: "Exercise", Icon: "⚑", Key: "a"},
	{ID: "reading", Label: "Reading", Icon: "▤", Key: "b"},
	{ID: "music", Label: "Music", Icon: "♪", Key: "c"},
	{ID: "socializing", Label: "Socializing", Icon: "☻", Key: "e"},
	{ID: "eating", Label: "Eating", Icon: "◍", Key: "f"},
	{ID: "art", Label: "Art", Icon: "✎", Key: "g"},
	{ID: "gaming", Label: "Gaming", Icon: "◆", Key: "i"},
	{ID: "work", Label: "Work", Icon: "⚡", Key: "m"},
	{ID: "coffee", Label: "Coffee Break", Icon: "☕", Key: "o"},
	{ID: "outdoor", Label: "Outdoor", Icon: "☀", Key: "p"},
	{ID: "relaxing", Label: "Relaxing", Icon: "☾", Key: "r"},
	{ID: "meditation", Label: "Meditation", Icon: "≋", Key: "t"},
}

// boosterShortcuts are the moods offered by the booster panel.
var boosterShortcuts = []string{Happy, Neutral, Loved}

// Moods returns the mood catalog in display order.
func Moods() []Mood {
	out := make([]Mood, len(moods))
	copy(out, moods)
	return out
}

// Activities returns the activity catalog in display order.
func Activities() []Activity {
	out := make([]Activity, len(activities))
	copy(out, activities)
	return out
}

// BoosterShortcuts returns the quick mood changes offered while sad.
func BoosterShortcuts() []Mood {
	out := make([]Mood, 0, len(boosterShortcuts))
	for _, id := range boosterShortcuts {
		if m, ok := LookupMood(id); ok {
			out = append(out, m)
		}
	}
	return out
}

// LookupMood finds a mood by identifier.
func LookupMood(id string) (Mood, bool) {
	for _, m := range moods {
		if m.ID == id {
			return m, true
		}
	}
	return Mood{}, false
}

// LookupActivity finds an activity by identifier.
func LookupActivity(id string) (Activity, bool) {
	for _, a := range activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// MoodLabel returns the display label of a mood, or "" when unknown.
func MoodLabel(id string) string {
	m, _ := LookupMood(id)
	return m.Label
}

// ActivityLabel returns the display label of an activity, or "" when unknown.
func ActivityLabel(id string) string {
	a, _ := LookupActivity(id)
	return a.Label
}

// ActivityDisplay returns the label stored on entries: the catalog label,
// or the identifier itself when the catalog does not know it.
func ActivityDisplay(id string) string {
	if a, ok := LookupActivity(id); ok {
		return a.Label
	}
	return id
}

// IsMood reports whether id is a catalog mood.
func IsMood(id string) bool {
	_, ok := LookupMood(id)
	return ok
}

// IsActivity reports whether id is a catalog activity.
func IsActivity(id string) bool {
	_, ok := LookupActivity(id)
	return ok
}

// MoodIDs lists mood identifiers in catalog order.
func MoodIDs() []string {
	ids := make([]string, len(moods))
	for i, m := range moods {
		ids[i] = m.ID
	}
	return ids
}

// ActivityIDs lists activity identifiers in catalog order.
func ActivityIDs() []string {
	ids := make([]string, len(activities))
	for i, a := range activities {
		ids[i] = a.ID
	}
	return ids
}

// SortActivities orders ids by catalog position. Unknown ids keep their
// relative order and go last.
func SortActivities(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, a := range activities {
		for _, id := range ids {
			if id == a.ID && !seen[id] {
				out = append(out, id)
				seen[id] = true
			}
		}
	}
	for _, id := range ids {
		if !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out
}

// ActivityForKey resolves a picker key to an activity.
func ActivityForKey(key string) (Activity, bool) {
	for _, a := range activities {
		if a.Key == key {
			return a, true
		}
	}
	return Activity{}, false
}

// MoodForKey resolves a picker key to a mood.
func MoodForKey(key string) (Mood, bool) {
	for _, m := range moods {
		if m.Key == key {
			return m, true
		}
	}
	return Mood{}, false
}

// FindMood resolves user input to a mood by identifier or label, ignoring
// case and surrounding space.
func FindMood(s string) (Mood, bool) {
	s = strings.TrimSpace(s)
	for _, m := range moods {
		if strings.EqualFold(m.ID, s) || strings.EqualFold(m.Label, s) {
			return m, true
		}
	}
	return Mood{}, false
}

// FindActivity resolves user input to an activity by identifier or label,
// ignoring case and surrounding space.
func FindActivity(s string) (Activity, bool) {
	s = strings.TrimSpace(s)
	for _, a := range activities {
		if strings.EqualFold(a.ID, s) || strings.EqualFold(a.Label, s) {
			return a, true
		}
	}
	return Activity{}, false
}
