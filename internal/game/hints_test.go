package game

import (
	"errors"
	"testing"
)

// fakePool is a fixed DecoySource for engine tests; the real tables live in
// the places package.
type fakePool struct{}

func (fakePool) Continents() []string {
	return []string{"Africa", "Antarctica", "Asia", "Europe", "North America", "Oceania", "South America"}
}
func (fakePool) Countries(string) []string {
	return []string{"France", "Germany", "Italy", "Spain", "Portugal"}
}
func (fakePool) Regions(string) []string {
	return []string{"Île-de-France", "Occitanie", "Normandie", "Corse", "Grand Est"}
}
func (fakePool) Cities(string) []string {
	return []string{"Paris", "Lyon", "Marseille", "Nice", "Bordeaux"}
}

func countOf(options []string, s string) int {
	n := 0
	for _, o := range options {
		if o == s {
			n++
		}
	}
	return n
}

func TestHintContainsAnswerOnce(t *testing.T) {
	// Shuffles are random; run enough rounds to catch a duplicate answer
	// or a missing one.
	for i := 0; i < 50; i++ {
		g := New(ModeWorld, testLocation())
		options, err := g.Hint(fakePool{})
		if err != nil {
			t.Fatal(err)
		}
		if len(options) != 4 {
			t.Fatalf("expected 4 options, got %d", len(options))
		}
		if n := countOf(options, "Europe"); n != 1 {
			t.Fatalf("answer should appear exactly once, got %d in %v", n, options)
		}
	}
}

func TestHintScopesToStage(t *testing.T) {
	g := New(ModeWorld, testLocation())
	mustGuess(t, g, "Europe")
	mustGuess(t, g, "France")
	// Region stage: options come from the region pool plus the answer.
	options, err := g.Hint(fakePool{})
	if err != nil {
		t.Fatal(err)
	}
	if countOf(options, "Île-de-France") != 1 {
		t.Fatalf("region answer missing from %v", options)
	}
	valid := map[string]bool{"Île-de-France": true, "Occitanie": true, "Normandie": true, "Corse": true, "Grand Est": true}
	for _, o := range options {
		if !valid[o] {
			t.Fatalf("unexpected option %q for region stage", o)
		}
	}
}

func TestHintBudget(t *testing.T) {
	g := New(ModeWorld, testLocation())
	for i := 0; i < MaxHints; i++ {
		if _, err := g.Hint(fakePool{}); err != nil {
			t.Fatalf("hint %d: %v", i+1, err)
		}
		if g.HintsUsed != i+1 {
			t.Fatalf("expected HintsUsed=%d, got %d", i+1, g.HintsUsed)
		}
	}

	// Budget exhausted: a no-op, not a crash, and no counter movement.
	options, err := g.Hint(fakePool{})
	if !errors.Is(err, ErrNoHints) {
		t.Fatalf("expected ErrNoHints, got %v", err)
	}
	if options != nil {
		t.Errorf("exhausted hint should return no options, got %v", options)
	}
	if g.HintsUsed != MaxHints {
		t.Errorf("HintsUsed moved past the budget: %d", g.HintsUsed)
	}
}

func TestHintOnFinishedRound(t *testing.T) {
	g := New(ModeUS, Location{
		City: "Austin", Region: "Texas", Country: "United States",
		Continent: "North America", ImageURLs: []string{"x"},
	})
	mustGuess(t, g, "Texas")
	mustGuess(t, g, "Austin")
	if _, err := g.Hint(fakePool{}); !errors.Is(err, ErrFinished) {
		t.Fatalf("expected ErrFinished, got %v", err)
	}
}

func TestHintDoesNotValidate(t *testing.T) {
	g := New(ModeWorld, testLocation())
	if _, err := g.Hint(fakePool{}); err != nil {
		t.Fatal(err)
	}
	// Taking a hint changes nothing but the budget; the guess still goes
	// through the normal path.
	if g.TotalGuesses != 0 || g.Score != 0 || g.Stage != StageContinent {
		t.Error("hint must not touch guess state")
	}
	res := mustGuess(t, g, "Europe")
	if !res.IsCorrect || res.Points != Scoring[StageContinent].First {
		t.Error("first-try scoring should be unaffected by hints")
	}
}
