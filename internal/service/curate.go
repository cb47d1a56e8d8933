package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/sakif/repo-showcase/internal/model"
)

// Curate applies the showcase pipeline: ExcludeDotted, then SortByPopularity.
// The input slice is left untouched.
func Curate(repos []model.Repository) []model.Repository {
	return SortByPopularity(ExcludeDotted(repos))
}

// ExcludeDotted returns a new slice without the repositories whose name
// contains a literal ".". Nothing else (fork flag included) is consulted.
// Relative order is preserved, and applying it twice equals applying it once.
func ExcludeDotted(repos []model.Repository) []model.Repository {
	kept := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		if strings.Contains(r.Name, ".") {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// SortByPopularity returns a copy ordered by StarCount, highest first.
// Ties keep their input order.
func SortByPopularity(repos []model.Repository) []model.Repository {
	sorted := slices.Clone(repos)
	if sorted == nil {
		sorted = []model.Repository{}
	}
	slices.SortStableFunc(sorted, func(a, b model.Repository) int {
		return cmp.Compare(b.StarCount, a.StarCount)
	})
	return sorted
}
