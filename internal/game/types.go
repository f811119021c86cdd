// internal/game/types.go
//
// Core type definitions for the location-guessing game engine.
// Defines:
//   - Stage: one progressively narrowing guess category (continent → city).
//   - Mode: catalog/stage scope ("us" starts at region, "world" at continent).
//   - Location: ground truth for one round, owned by the Game that drew it.
//   - GuessResult: outcome of evaluating a single guess.
//   - StageScore / Scoring: static point table per stage.

package game

// Stage identifies which field of the Location the player is currently
// guessing. Stages are ordered from broadest to narrowest.
type Stage string

const (
	StageContinent Stage = "continent"
	StageCountry   Stage = "country"
	StageRegion    Stage = "region"
	StageCity      Stage = "city"
)

// Mode selects the catalog scope and the stage ladder.
// Possible values:
//   - "world": full game, continent through city, whole catalog.
//   - "us":    domestic game, region through city, United States only.
type Mode string

const (
	ModeWorld Mode = "world"
	ModeUS    Mode = "us"
)

// Valid reports whether m is a known game mode.
func (m Mode) Valid() bool { return m == ModeWorld || m == ModeUS }

// Coordinates is a lat/lng pair in floating-point degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is the ground truth for one round: one guessable place plus the
// imagery shown to the player. Region, country, and continent are internally
// consistent (the catalog enforces this at load time); the evaluator trusts
// them blindly. Immutable for the lifetime of a round.
type Location struct {
	Coordinates Coordinates `json:"coordinates"`
	City        string      `json:"city"`
	Region      string      `json:"region"`
	Country     string      `json:"country"`
	Continent   string      `json:"continent"`
	ImageURLs   []string    `json:"imageUrls"` // ordered, never empty
}

// Answer returns the canonical answer for the given stage.
func (l Location) Answer(s Stage) string {
	switch s {
	case StageContinent:
		return l.Continent
	case StageCountry:
		return l.Country
	case StageRegion:
		return l.Region
	case StageCity:
		return l.City
	}
	return ""
}

// GuessResult is the outcome of evaluating a single guess.
// Points is zero on an incorrect guess; Message is human-readable feedback
// and never reveals the answer on a miss.
type GuessResult struct {
	IsCorrect bool   `json:"isCorrect"`
	Points    int    `json:"points"`
	Message   string `json:"message"`
}

// StageScore holds the point values awarded for solving a stage.
type StageScore struct {
	First      int // correct on the first guess for the stage
	Subsequent int // correct after at least one miss
}

// Scoring is the static stage → points table.
var Scoring = map[Stage]StageScore{
	StageContinent: {First: 10, Subsequent: 5},
	StageCountry:   {First: 20, Subsequent: 10},
	StageRegion:    {First: 30, Subsequent: 15},
	StageCity:      {First: 50, Subsequent: 25},
}

const (
	// MaxGuesses is the total guess budget for a round. An incorrect guess
	// that brings the total to MaxGuesses loses; solving the city with the
	// total still within MaxGuesses wins.
	MaxGuesses = 10

	// MaxHints is the hint budget for a round.
	MaxHints = 3
)
