// internal/game/stages.go
//
// Stage sequencing for both game modes.
// World mode walks continent → country → region → city; US mode starts at
// region. NextStage is the single authority on stage order, including the
// city-state special case (region name equals city name).

package game

import "strings"

var (
	worldStages = []Stage{StageContinent, StageCountry, StageRegion, StageCity}
	usStages    = []Stage{StageRegion, StageCity}
)

// Stages returns the fixed, ordered stage ladder for a mode.
// The returned slice is a copy; callers may not mutate the ladder.
func Stages(mode Mode) []Stage {
	src := worldStages
	if mode == ModeUS {
		src = usStages
	}
	out := make([]Stage, len(src))
	copy(out, src)
	return out
}

// FirstStage returns the opening stage for a mode.
func FirstStage(mode Mode) Stage {
	if mode == ModeUS {
		return StageRegion
	}
	return StageContinent
}

// NextStage returns the stage following current in the given mode, and
// whether one exists. Once the final stage is reached it keeps returning
// ("", false); calling it repeatedly on the terminal stage is not an error.
//
// City-state rule: when the current stage is region and the location's
// region equals its city (case-insensitive, trimmed), the next stage is
// city — same position in the ladder, but stated explicitly so a
// one-administrative-level place like Singapore never strands the player.
func NextStage(mode Mode, current Stage, loc Location) (Stage, bool) {
	if current == StageRegion && sameName(loc.Region, loc.City) {
		return StageCity, true
	}
	ladder := worldStages
	if mode == ModeUS {
		ladder = usStages
	}
	for i, s := range ladder {
		if s == current {
			if i+1 < len(ladder) {
				return ladder[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// sameName compares two place names after trimming and case-folding.
func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
