// internal/game/evaluate.go
//
// Guess evaluation: a pure comparison of a raw guess against the stage's
// canonical answer. Normalization is trim + case-fold only — no accent
// folding, no fuzzy matching. The function never mutates game state; the
// round controller applies the returned points itself.

package game

import (
	"fmt"
	"strings"
)

// normalize prepares a string for comparison: trimmed, case-folded.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Evaluate scores one guess for a stage.
//
//   - guess matches answer after normalization → correct.
//   - Region stage only: if the location's region and city share a name,
//     guessing the city name is also accepted (city-state rule).
//   - Points come from the Scoring table: First when previous is empty,
//     Subsequent otherwise, zero when incorrect.
//
// The incorrect message echoes the guess, never the answer.
func Evaluate(stage Stage, guess, answer string, previous []string, loc Location) GuessResult {
	ng := normalize(guess)
	na := normalize(answer)

	correct := ng == na
	if !correct && stage == StageRegion && normalize(loc.City) == na {
		correct = ng == normalize(loc.City)
	}

	if !correct {
		return GuessResult{
			Message: fmt.Sprintf("Incorrect. The %s is not %q. Try again!", stage, strings.TrimSpace(guess)),
		}
	}

	score := Scoring[stage]
	if len(previous) == 0 {
		return GuessResult{
			IsCorrect: true,
			Points:    score.First,
			Message:   fmt.Sprintf("Perfect! +%d points for getting the %s on the first try!", score.First, stage),
		}
	}
	return GuessResult{
		IsCorrect: true,
		Points:    score.Subsequent,
		Message:   fmt.Sprintf("Correct! +%d points for the %s (took %d tries)", score.Subsequent, stage, len(previous)+1),
	}
}
