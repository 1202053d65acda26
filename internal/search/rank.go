package search

import "sort"

// Result-set bounds observed across the storefront surfaces.
const (
	SuggestProductLimit  = 8
	SuggestCategoryLimit = 3
	PopularLimit         = 5
	CatalogPageSize      = 12
)

// Scored pairs a candidate with its relevance score for one evaluation.
// Never persisted; recomputed per query.
type Scored[T any] struct {
	Item  T
	Score int
}

// Rank sorts candidates by score descending. The sort is stable, so ties
// keep the snapshot order and a fixed input always yields the same output.
func Rank[T any](candidates []Scored[T]) []Scored[T] {
	out := make([]Scored[T], len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// TopK truncates ranked candidates to at most k entries.
func TopK[T any](candidates []Scored[T], k int) []Scored[T] {
	if k < 0 {
		k = 0
	}
	if len(candidates) <= k {
		return candidates
	}
	return candidates[:k]
}
