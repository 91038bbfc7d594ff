package app

import (
	"sort"
	"time"

	"tableflip.dev/mood/pkg/catalog"
	"tableflip.dev/mood/pkg/entry"
)

// MoodCount is the number of entries logged with one mood.
type MoodCount struct {
	Mood  string `json:"mood"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ActivityCount is the number of entries tagged with one activity label.
type ActivityCount struct {
	Activity string `json:"activity"`
	Count    int    `json:"count"`
}

// Summary aggregates the entries logged between Since and Until.
type Summary struct {
	Since      time.Time       `json:"since,omitempty"`
	Until      time.Time       `json:"until"`
	Total      int             `json:"total"`
	Moods      []MoodCount     `json:"moods"`
	Activities []ActivityCount `json:"activities"`
	Latest     *entry.Entry    `json:"latest,omitempty"`
}

// Summarize counts entries whose creation instant falls in [since, until].
// A zero since means no lower bound; entries without a recoverable creation
// instant are only counted then. Moods are reported in catalog order with
// unknown moods after them, activities by descending count.
func Summarize(entries []*entry.Entry, since, until time.Time) Summary {
	if !since.IsZero() && since.After(until) {
		since, until = until, since
	}
	sum := Summary{
		Since:      since,
		Until:      until,
		Moods:      []MoodCount{},
		Activities: []ActivityCount{},
	}

	moods := make(map[string]int)
	acts := make(map[string]int)
	for _, e := range entries {
		if e == nil {
			continue
		}
		created, ok := e.Created()
		switch {
		case !ok && !since.IsZero():
			continue
		case ok && !since.IsZero() && created.Before(since):
			continue
		case ok && created.After(until):
			continue
		}
		if sum.Latest == nil {
			sum.Latest = e.Clone()
		}
		sum.Total++
		moods[e.Mood]++
		for _, a := range e.Activities {
			acts[a]++
		}
	}

	for _, m := range catalog.Moods() {
		if n := moods[m.ID]; n > 0 {
			sum.Moods = append(sum.Moods, MoodCount{Mood: m.ID, Label: m.Label, Count: n})
			delete(moods, m.ID)
		}
	}
	unknown := make([]string, 0, len(moods))
	for id := range moods {
		unknown = append(unknown, id)
	}
	sort.Strings(unknown)
	for _, id := range unknown {
		sum.Moods = append(sum.Moods, MoodCount{Mood: id, Label: id, Count: moods[id]})
	}

	for a, n := range acts {
		sum.Activities = append(sum.Activities, ActivityCount{Activity: a, Count: n})
	}
	sort.Slice(sum.Activities, func(i, j int) bool {
		if sum.Activities[i].Count != sum.Activities[j].Count {
			return sum.Activities[i].Count > sum.Activities[j].Count
		}
		return sum.Activities[i].Activity < sum.Activities[j].Activity
	})
	return sum
}

// Summary aggregates the current journal.
func (s *Service) Summary(since, until time.Time) Summary {
	return Summarize(s.Controller.Entries(), since, until)
}
