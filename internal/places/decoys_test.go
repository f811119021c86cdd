package places

import (
	"testing"

	"github.com/egoscicki/Untitled-Location-Game/internal/game"
)

func occurrences(options []string, s string) int {
	n := 0
	for _, o := range options {
		if o == s {
			n++
		}
	}
	return n
}

// Every pool a catalog entry can reach must hold a full option set with no
// duplicates, even for single-region countries.
func TestDecoyPoolMinimumSize(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatal(err)
	}
	var pool DecoyPool
	for _, e := range Entries() {
		pools := map[string][]string{
			"Countries": pool.Countries(e.Continent),
			"Regions":   pool.Regions(e.Country),
			"Cities":    pool.Cities(e.Country),
		}
		for label, got := range pools {
			if len(got) < minPool {
				t.Errorf("%s for %s/%s: %d entries, want at least %d", label, e.Continent, e.Country, len(got), minPool)
			}
			seen := make(map[string]bool, len(got))
			for _, name := range got {
				if seen[name] {
					t.Errorf("%s for %s/%s: duplicate %q", label, e.Continent, e.Country, name)
				}
				seen[name] = true
			}
		}
	}
}

func TestCityStatePoolsToppedUp(t *testing.T) {
	var pool DecoyPool

	regions := pool.Regions("Singapore")
	if len(regions) < minPool {
		t.Fatalf("Singapore region pool too small: %v", regions)
	}
	if occurrences(regions, "Singapore") != 1 {
		t.Errorf("answer should appear exactly once in %v", regions)
	}

	cities := pool.Cities("Singapore")
	if len(cities) < minPool {
		t.Fatalf("Singapore city pool too small: %v", cities)
	}
	if occurrences(cities, "Singapore") != 1 {
		t.Errorf("answer should appear exactly once in %v", cities)
	}
}

// A city-state round must still get real decoys at the region and city
// stages: a hint that hands over only the answer is a free solve.
func TestCityStateRoundHints(t *testing.T) {
	g := game.New(game.ModeWorld, game.Location{
		City: "Singapore", Region: "Singapore", Country: "Singapore",
		Continent: "Asia", ImageURLs: []string{"x"},
	})
	for _, guess := range []string{"Asia", "Singapore"} {
		if _, err := g.SubmitGuess(guess); err != nil {
			t.Fatalf("guess %q: %v", guess, err)
		}
	}

	if g.Stage != game.StageRegion {
		t.Fatalf("expected region stage, got %s", g.Stage)
	}
	options, err := g.Hint(DecoyPool{})
	if err != nil {
		t.Fatal(err)
	}
	if len(options) != 4 {
		t.Fatalf("region hint: expected 4 options, got %v", options)
	}
	if occurrences(options, "Singapore") != 1 {
		t.Fatalf("region hint: answer should appear exactly once in %v", options)
	}

	if _, err := g.SubmitGuess("Singapore"); err != nil {
		t.Fatal(err)
	}
	if g.Stage != game.StageCity {
		t.Fatalf("expected city stage, got %s", g.Stage)
	}
	options, err = g.Hint(DecoyPool{})
	if err != nil {
		t.Fatal(err)
	}
	if len(options) != 4 {
		t.Fatalf("city hint: expected 4 options, got %v", options)
	}
	if occurrences(options, "Singapore") != 1 {
		t.Fatalf("city hint: answer should appear exactly once in %v", options)
	}
}
