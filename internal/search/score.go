package search

import "strings"

// Weights parameterizes the tier ladder. A zero weight disables its tier.
type Weights struct {
	Exact            int
	Prefix           int
	Primary          int
	Secondary        int
	SynonymPrimary   int
	SynonymSecondary int
	Fuzzy            int
}

// SuggestWeights drives the instant-suggestions widget.
var SuggestWeights = Weights{
	Exact:            1000,
	Prefix:           500,
	Primary:          100,
	Secondary:        50,
	SynonymPrimary:   80,
	SynonymSecondary: 40,
	Fuzzy:            30,
}

// CatalogWeights drives the full catalog filter page.
var CatalogWeights = Weights{
	Exact:            1000,
	Prefix:           500,
	Primary:          100,
	Secondary:        50,
	SynonymPrimary:   50,
	SynonymSecondary: 50,
	Fuzzy:            25,
}

// minFuzzyTokenLen gates which query tokens enter the fuzzy tier.
const minFuzzyTokenLen = 3

// Score evaluates the tier ladder for one candidate and returns a
// non-negative score; the first matching tier wins and later tiers are
// never checked. A result of 0 means the candidate does not match and
// must be excluded from results. Inputs are normalized internally, so
// diacritics never affect the outcome.
func Score(query, primary, secondary string, w Weights) int {
	q := strings.TrimSpace(Normalize(query))
	if q == "" {
		return 0
	}
	p := Normalize(primary)
	s := Normalize(secondary)

	if p == q {
		return w.Exact
	}
	if strings.HasPrefix(p, q) {
		return w.Prefix
	}
	if strings.Contains(p, q) {
		return w.Primary
	}
	if w.Secondary > 0 && s != "" && strings.Contains(s, q) {
		return w.Secondary
	}

	for _, syn := range ExpandSynonyms(q) {
		if strings.Contains(p, syn) {
			return w.SynonymPrimary
		}
		if w.SynonymSecondary > 0 && s != "" && strings.Contains(s, syn) {
			return w.SynonymSecondary
		}
	}

	return fuzzyScore(q, p, w.Fuzzy)
}

// fuzzyScore is the last-resort tier: a query token of length >= 3 matches
// when any candidate token contains the first ceil(0.7*len) characters of
// it as a substring.
func fuzzyScore(query, primary string, weight int) int {
	if weight == 0 {
		return 0
	}
	queryTokens := strings.Fields(query)
	primaryTokens := strings.Fields(primary)
	if len(queryTokens) == 0 || len(primaryTokens) == 0 {
		return 0
	}

	for _, qt := range queryTokens {
		runes := []rune(qt)
		if len(runes) < minFuzzyTokenLen {
			continue
		}
		prefixLen := (7*len(runes) + 9) / 10 // ceil(0.7 * len)
		prefix := string(runes[:prefixLen])
		for _, pt := range primaryTokens {
			if strings.Contains(pt, prefix) {
				return weight
			}
		}
	}
	return 0
}
