package places

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/egoscicki/Untitled-Location-Game/internal/game"
)

// stubFetcher is a canned ImageFetcher for sampler tests.
type stubFetcher struct {
	err   error
	calls int
}

func (f *stubFetcher) FetchImage(_ context.Context, lat, lng float64) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("https://img.test/%f,%f", lat, lng), nil
}

func testSampler(t *testing.T, f ImageFetcher, seed int64) *Sampler {
	t.Helper()
	if err := Init(); err != nil {
		t.Fatal(err)
	}
	return newSampler(f, rand.NewSource(seed))
}

func TestSampleReturnsCompleteLocation(t *testing.T) {
	s := testSampler(t, &stubFetcher{}, 1)
	loc, err := s.Sample(context.Background(), game.ModeWorld)
	if err != nil {
		t.Fatal(err)
	}
	if loc.City == "" || loc.Region == "" || loc.Country == "" || loc.Continent == "" {
		t.Errorf("location has empty fields: %+v", loc)
	}
	if n := len(loc.ImageURLs); n < 1 || n > maxImages {
		t.Errorf("expected 1..%d images, got %d", maxImages, n)
	}
}

func TestSampleNoImmediateRepeat(t *testing.T) {
	s := testSampler(t, &stubFetcher{}, 42)
	prev := ""
	for i := 0; i < 3*Size(); i++ {
		loc, err := s.Sample(context.Background(), game.ModeWorld)
		if err != nil {
			t.Fatal(err)
		}
		if loc.City == prev {
			t.Fatalf("draw %d repeated %q immediately", i, loc.City)
		}
		prev = loc.City
	}
}

func TestSampleDomesticMode(t *testing.T) {
	s := testSampler(t, &stubFetcher{}, 7)
	for i := 0; i < 20; i++ {
		loc, err := s.Sample(context.Background(), game.ModeUS)
		if err != nil {
			t.Fatal(err)
		}
		if loc.Country != HomeCountry {
			t.Fatalf("domestic draw returned %q", loc.Country)
		}
	}
}

func TestSampleJitterStaysInBounds(t *testing.T) {
	s := testSampler(t, &stubFetcher{}, 3)
	for i := 0; i < 50; i++ {
		loc, err := s.Sample(context.Background(), game.ModeWorld)
		if err != nil {
			t.Fatal(err)
		}
		base := findEntry(t, loc.City)
		if d := math.Abs(loc.Coordinates.Lat - base.Lat); d > coordJitter {
			t.Fatalf("%s: latitude jitter %v exceeds %v", loc.City, d, coordJitter)
		}
		if d := math.Abs(loc.Coordinates.Lng - base.Lng); d > coordJitter {
			t.Fatalf("%s: longitude jitter %v exceeds %v", loc.City, d, coordJitter)
		}
	}
}

func findEntry(t *testing.T, city string) Entry {
	t.Helper()
	for _, e := range catalog {
		if e.City == city {
			return e
		}
	}
	t.Fatalf("no catalog entry for %q", city)
	return Entry{}
}

func TestSampleProviderFailure(t *testing.T) {
	boom := errors.New("street view down")
	s := testSampler(t, &stubFetcher{err: boom}, 1)
	if _, err := s.Sample(context.Background(), game.ModeWorld); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestByIndex(t *testing.T) {
	s := testSampler(t, &stubFetcher{}, 1)

	loc, err := s.ByIndex(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if loc.City != catalog[0].City {
		t.Errorf("expected %q, got %q", catalog[0].City, loc.City)
	}

	// Deterministic selection must bypass anti-repetition entirely.
	again, err := s.ByIndex(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if again.City != loc.City {
		t.Error("ByIndex should be stable for a fixed index")
	}

	for _, idx := range []int{-1, Size(), Size() + 10} {
		if _, err := s.ByIndex(context.Background(), idx); err == nil {
			t.Errorf("index %d should be rejected", idx)
		}
	}
}
