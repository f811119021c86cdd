// internal/game/engine.go
//
// Round controller for a single location-guessing session.
// Responsibilities:
//   - Create new rounds from a sampled Location and game mode.
//   - Validate and apply guesses through the evaluator and stage sequencer.
//   - Track score, per-stage guess history, total guess count, hint budget.
//   - Track state transitions: playing → won/lost (terminal).
//
// Notes:
//   - Locations are produced by the places package; the engine trusts them.
//   - Commands on a finished round return ErrFinished without mutation.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	mrand "math/rand"
	"strings"
	"time"
)

var (
	// ErrFinished is returned for any command on a won or lost round.
	ErrFinished = errors.New("game finished")

	// ErrEmptyGuess is returned for empty or whitespace-only guesses.
	// The round state is not mutated.
	ErrEmptyGuess = errors.New("empty guess")

	// ErrNoHints is returned when the hint budget is exhausted.
	// It signals a no-op, not a failure: nothing was generated or counted.
	ErrNoHints = errors.New("no hints left")
)

// Game holds the state of a single round session.
type Game struct {
	ID           string             // unique round identifier (random hex)
	Mode         Mode               // "world" or "us"
	Location     Location           // ground truth, immutable for the round
	Stage        Stage              // stage currently being guessed
	Guesses      map[Stage][]string // per-stage guess history, append-only
	TotalGuesses int                // every submitted guess, right or wrong
	Score        int                // never decreases within a round
	HintsUsed    int                // 0..MaxHints
	Finished     bool               // true once the round is over
	Won          bool               // true if the round finished with a win

	rng *mrand.Rand // hint shuffles; per-instance so rounds don't share state
}

// New constructs a new round for the given mode and ground-truth location.
// The round starts at the mode's first stage with empty counters. The caller
// (normally the HTTP layer) obtains the Location from a places.Sampler first;
// a round never exists without one.
func New(mode Mode, loc Location) *Game {
	return &Game{
		ID:       randomID(),
		Mode:     mode,
		Location: loc,
		Stage:    FirstStage(mode),
		Guesses:  make(map[Stage][]string),
		rng:      mrand.New(mrand.NewSource(time.Now().UnixNano())),
	}
}

// SubmitGuess validates and applies one guess, mutating the round state.
//
// Rules:
//   - Rejected with ErrFinished once the round is won or lost.
//   - Rejected with ErrEmptyGuess for blank input (no counters touched).
//   - The guess is always appended to the stage history and counted,
//     and any points are added, before win/loss is decided.
//
// Transitions:
//   - Correct, next stage exists → advance, stay playing.
//   - Correct on the final stage → won if TotalGuesses <= MaxGuesses,
//     lost otherwise (the winning guess itself can bust the budget).
//   - Incorrect → lost once TotalGuesses reaches MaxGuesses, else retry.
func (g *Game) SubmitGuess(guess string) (GuessResult, error) {
	if g.Finished {
		return GuessResult{}, ErrFinished
	}
	if strings.TrimSpace(guess) == "" {
		return GuessResult{}, ErrEmptyGuess
	}

	stage := g.Stage
	res := Evaluate(stage, guess, g.Location.Answer(stage), g.Guesses[stage], g.Location)

	g.Guesses[stage] = append(g.Guesses[stage], guess)
	g.TotalGuesses++
	g.Score += res.Points

	if res.IsCorrect {
		if next, ok := NextStage(g.Mode, stage, g.Location); ok {
			g.Stage = next
		} else {
			g.Finished = true
			g.Won = g.TotalGuesses <= MaxGuesses
		}
	} else if g.TotalGuesses >= MaxGuesses {
		g.Finished = true
	}
	return res, nil
}

// Status reports the coarse round state: "playing", "won", or "lost".
func (g *Game) Status() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// HintsLeft returns the remaining hint budget.
func (g *Game) HintsLeft() int { return MaxHints - g.HintsUsed }

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
