package app

import (
	"context"
	"sort"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/repository"
	"tableflip.dev/mood/pkg/store"
)

// MigrationResult reports what a migration copied.
type MigrationResult struct {
	Copied  int `json:"copied"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// Migrate copies the journal from one store into another, for example when
// switching backends. Entries already present in the target (by id) are
// skipped. The merged collection is ordered newest first by creation
// instant; entries without one keep their place after the dated ones.
//
// An unreadable source is an error here, unlike Load: migrating an empty
// collection over a good target would lose nothing but hide the problem.
func Migrate(ctx context.Context, from, to store.Store) (MigrationResult, error) {
	src, err := repository.New(from).Load(ctx)
	if err != nil {
		return MigrationResult{}, err
	}
	dstRepo := repository.New(to)
	dst, err := dstRepo.Load(ctx)
	if err != nil {
		return MigrationResult{}, err
	}

	have := make(map[string]bool, len(dst))
	for _, e := range dst {
		have[e.ID] = true
	}

	res := MigrationResult{}
	merged := entry.CloneAll(dst)
	for _, e := range src {
		if have[e.ID] {
			res.Skipped++
			continue
		}
		have[e.ID] = true
		merged = append(merged, e.Clone())
		res.Copied++
	}
	res.Total = len(merged)
	if res.Copied == 0 {
		return res, nil
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, aok := merged[i].Created()
		b, bok := merged[j].Created()
		if aok != bok {
			return aok
		}
		return aok && a.After(b)
	})
	if err := dstRepo.Save(ctx, merged); err != nil {
		return MigrationResult{}, err
	}
	return res, nil
}
