// internal/game/hints.go
//
// Hint generation: a small multiple-choice set (decoys + the correct answer)
// for the current stage, scoped to what the player already knows. Decoy pools
// come from a DecoySource (implemented by the places catalog) so the engine
// stays free of geographic data.

package game

// hintDecoys is how many wrong options accompany the correct answer,
// for 4 options total.
const hintDecoys = 3

// DecoySource supplies candidate wrong answers scoped to a context.
// Implementations must return enough distinct names for a full option set
// even when the answer is among them (topping up from a fixed default pool
// when a scoped list runs short) and must not include duplicates.
type DecoySource interface {
	// Continents returns the fixed world continent list.
	Continents() []string
	// Countries returns countries on the given continent.
	Countries(continent string) []string
	// Regions returns regions of the given country.
	Regions(country string) []string
	// Cities returns cities of the given country.
	Cities(country string) []string
}

// Hint produces a shuffled option list for the current stage and spends one
// hint from the budget. Returns ErrNoHints (a no-op) once HintsUsed reaches
// MaxHints, and ErrFinished on a terminal round. Selecting an option does not
// validate anything — the choice goes back through SubmitGuess like any
// typed guess.
func (g *Game) Hint(pool DecoySource) ([]string, error) {
	if g.Finished {
		return nil, ErrFinished
	}
	if g.HintsUsed >= MaxHints {
		return nil, ErrNoHints
	}

	answer := g.Location.Answer(g.Stage)

	var candidates []string
	switch g.Stage {
	case StageContinent:
		candidates = pool.Continents()
	case StageCountry:
		candidates = pool.Countries(g.Location.Continent)
	case StageRegion:
		candidates = pool.Regions(g.Location.Country)
	case StageCity:
		candidates = pool.Cities(g.Location.Country)
	}

	// Drop the answer from the decoy pool. Pool entries share canonical
	// casing with catalog answers, so plain equality is enough.
	decoys := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != answer {
			decoys = append(decoys, c)
		}
	}

	g.rng.Shuffle(len(decoys), func(i, j int) { decoys[i], decoys[j] = decoys[j], decoys[i] })
	if len(decoys) > hintDecoys {
		decoys = decoys[:hintDecoys]
	}

	options := append(decoys, answer)
	g.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	g.HintsUsed++
	return options, nil
}
