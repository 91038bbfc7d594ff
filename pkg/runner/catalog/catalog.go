// Package catalog prints the mood and activity legend.
package catalog

import (
	"context"
	"io"

	"tableflip.dev/mood/pkg/catalog"
	"tableflip.dev/mood/pkg/printers"
)

// Catalog prints the moods and activities with their picker keys.
type Catalog struct {
	JSON bool
	Out  io.Writer
}

type moodJSON struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Key    string `json:"key"`
	Accent string `json:"accent"`
}

type activityJSON struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Key   string `json:"key"`
}

// Listing is the JSON shape of the catalog.
func Listing() map[string]any {
	moods := []moodJSON{}
	for _, m := range catalog.Moods() {
		moods = append(moods, moodJSON{ID: m.ID, Label: m.Label, Key: m.Key, Accent: m.Accent.Mid()})
	}
	activities := []activityJSON{}
	for _, a := range catalog.Activities() {
		activities = append(activities, activityJSON{ID: a.ID, Label: a.Label, Key: a.Key})
	}
	return map[string]any{
		"moods":      moods,
		"activities": activities,
	}
}

func (k *Catalog) Do(_ context.Context) error {
	if k.JSON {
		return printers.JSON(k.Out, Listing())
	}
	pp := printers.PrettyPrint{Out: k.Out}
	pp.Catalog()
	return nil
}
