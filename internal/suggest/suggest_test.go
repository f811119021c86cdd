package suggest

import (
	"strings"
	"testing"

	"github.com/egoscicki/Untitled-Location-Game/internal/game"
)

func TestSuggestContinents(t *testing.T) {
	got := Suggest(game.StageContinent, "a", "", 0)
	if len(got) == 0 {
		t.Fatal("expected continent suggestions for \"a\"")
	}
	// Prefix matches come before substring matches.
	if !strings.HasPrefix(strings.ToLower(got[0]), "a") {
		t.Errorf("first suggestion %q should be a prefix match", got[0])
	}
	for _, s := range got {
		if !strings.Contains(strings.ToLower(s), "a") {
			t.Errorf("suggestion %q does not contain the query", s)
		}
	}
}

func TestSuggestCaseInsensitive(t *testing.T) {
	lower := Suggest(game.StageCountry, "fra", "", 0)
	upper := Suggest(game.StageCountry, "FRA", "", 0)
	if len(lower) == 0 || len(upper) != len(lower) {
		t.Fatalf("case should not matter: %v vs %v", lower, upper)
	}
	found := false
	for _, s := range lower {
		if s == "France" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected France in %v", lower)
	}
}

func TestSuggestCountryScoping(t *testing.T) {
	// With the country known, region candidates narrow to it.
	got := Suggest(game.StageRegion, "te", "United States", 0)
	found := false
	for _, s := range got {
		if s == "Texas" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Texas in %v", got)
	}

	french := Suggest(game.StageCity, "par", "France", 0)
	foundParis := false
	for _, s := range french {
		if s == "Paris" {
			foundParis = true
		}
	}
	if !foundParis {
		t.Errorf("expected Paris in %v", french)
	}
}

func TestSuggestLimit(t *testing.T) {
	if got := Suggest(game.StageCountry, "a", "", 3); len(got) > 3 {
		t.Errorf("limit 3 returned %d results", len(got))
	}
	if got := Suggest(game.StageCountry, "a", "", 0); len(got) > DefaultLimit {
		t.Errorf("default limit exceeded: %d", len(got))
	}
}

func TestSuggestEmptyAndMiss(t *testing.T) {
	if got := Suggest(game.StageCity, "", "France", 0); got != nil {
		t.Errorf("empty query should return nil, got %v", got)
	}
	if got := Suggest(game.StageCity, "   ", "France", 0); got != nil {
		t.Errorf("blank query should return nil, got %v", got)
	}
	if got := Suggest(game.StageCity, "zzzzqqq", "France", 0); len(got) != 0 {
		t.Errorf("no-match query should return empty, got %v", got)
	}
	if got := Suggest(game.Stage("street"), "a", "", 0); got != nil {
		t.Errorf("unknown stage should return nil, got %v", got)
	}
}

func TestSuggestNoDuplicates(t *testing.T) {
	got := Suggest(game.StageRegion, "a", "", 50)
	seen := make(map[string]bool)
	for _, s := range got {
		if seen[s] {
			t.Fatalf("duplicate suggestion %q", s)
		}
		seen[s] = true
	}
}
