// Package geo resolves free-text destinations against a static
// gazetteer and powers autocomplete suggestions. Everything here is a
// pure function over the tables in gazetteer.go.
package geo

import (
	"sort"
	"strings"
)

// Resolve maps a free-text destination to a country code and the city
// name to pass through to the supplier query.
//
// An exact city hit returns its code with the original (untouched)
// input as the city name. A country-name hit returns the code with an
// empty city name, signalling a country-wide search. Failing both, a
// substring containment scan over the city table returns the first
// declared match. No match at all returns ("", input): the caller
// falls back to a raw city-name search.
func Resolve(destination string) (countryCode, cityName string) {
	normalized := strings.ToLower(strings.TrimSpace(destination))
	if normalized == "" {
		return "", ""
	}

	if code, ok := cityIndex[normalized]; ok {
		return code, destination
	}
	if code, ok := countryCodes[normalized]; ok {
		return code, ""
	}
	for _, e := range cityCountries {
		if strings.Contains(e.name, normalized) || strings.Contains(normalized, e.name) {
			return e.code, destination
		}
	}
	return "", destination
}

// DefaultSuggestionLimit caps autocomplete results when the caller
// passes a non-positive limit.
const DefaultSuggestionLimit = 8

// noMatch is the sentinel score for excluded candidates.
const noMatch = 100

// SearchCities returns up to limit city names ranked for autocomplete.
// Prefix matches score 0, substring matches 1, fuzzy matches 2 plus
// their edit distance. Ties keep gazetteer order.
func SearchCities(query string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	if len(query) < 2 {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(query))

	type scored struct {
		city  string
		score int
	}
	candidates := make([]scored, 0, len(Cities))
	for _, city := range Cities {
		s := scoreCity(normalized, city)
		if s < noMatch {
			candidates = append(candidates, scored{city, s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.city
	}
	return out
}

func scoreCity(normalized, city string) int {
	lower := strings.ToLower(city)

	if strings.HasPrefix(lower, normalized) {
		return 0
	}
	if strings.Contains(lower, normalized) {
		return 1
	}

	// Compare against a prefix slightly longer than the query so a typo
	// near the end still scores.
	prefix := lower
	if n := len(normalized) + 2; len(prefix) > n {
		prefix = prefix[:n]
	}
	maxDistance := 3
	if len(normalized) <= 4 {
		maxDistance = 2
	}
	if d := levenshtein(normalized, prefix); d <= maxDistance {
		return 2 + d
	}
	return noMatch
}

// levenshtein computes the classic edit distance: unit-cost insertions,
// deletions and substitutions, no transposition.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(rb); i++ {
		curr[0] = i
		for j := 1; j <= len(ra); j++ {
			cost := 1
			if rb[i-1] == ra[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j-1]+cost, curr[j-1]+1, prev[j]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
