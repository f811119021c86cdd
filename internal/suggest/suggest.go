// internal/suggest/suggest.go
//
// Best-effort autocomplete over the static place tables. Suggestions are a
// typing aid only — the evaluator never consults them, and an empty result
// is always a valid answer to a query.

package suggest

import (
	"strings"

	"github.com/egoscicki/Untitled-Location-Game/internal/game"
	"github.com/egoscicki/Untitled-Location-Game/internal/places"
)

// DefaultLimit caps the suggestion list when the caller doesn't.
const DefaultLimit = 8

// Suggest returns candidate completions of q for a stage. The country
// context, when known (i.e. the country stage has been solved), narrows
// region and city candidates to that country. Matching is case-insensitive:
// prefix matches rank first, substring matches fill the remainder.
func Suggest(stage game.Stage, q, country string, limit int) []string {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var pool []string
	switch stage {
	case game.StageContinent:
		pool = places.ContinentList()
	case game.StageCountry:
		pool = places.CountryList()
	case game.StageRegion:
		pool = places.RegionList(country)
	case game.StageCity:
		pool = places.CityList(country)
	default:
		return nil
	}

	nq := strings.ToLower(q)
	var prefix, substr []string
	seen := make(map[string]bool, len(pool))
	for _, cand := range pool {
		if seen[cand] {
			continue
		}
		seen[cand] = true
		lc := strings.ToLower(cand)
		switch {
		case strings.HasPrefix(lc, nq):
			prefix = append(prefix, cand)
		case strings.Contains(lc, nq):
			substr = append(substr, cand)
		}
	}

	out := append(prefix, substr...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
