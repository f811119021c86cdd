// internal/places/sampler.go
//
// Location sampling with anti-repetition.
//
// A Sampler draws one catalog entry per round, jitters its coordinates so
// imagery varies between plays of the same place, and fetches 1–3 image
// URLs from the imagery provider. All sampling state (randomness, the
// used-entry window, the call counter) lives on the Sampler instance, so
// independent games and tests never contaminate each other.

package places

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/egoscicki/Untitled-Location-Game/internal/game"
)

const (
	// coordJitter is the max offset applied to each axis, in degrees.
	coordJitter = 0.005

	// usedResetFraction controls when the used-entry window resets: once
	// this fraction of the eligible catalog has been seen.
	usedResetFraction = 0.75

	// maxImages is the most image URLs fetched per location.
	maxImages = 3
)

// ImageFetcher supplies one image URL for a coordinate pair.
// Implemented by the imagery package.
type ImageFetcher interface {
	FetchImage(ctx context.Context, lat, lng float64) (string, error)
}

// Sampler selects catalog entries for new rounds.
type Sampler struct {
	provider ImageFetcher

	mu   sync.Mutex
	rng  *rand.Rand
	used map[int]bool // catalog indices seen since the last reset
	last int          // catalog index of the previous sample, -1 initially
}

// NewSampler constructs a Sampler over the loaded catalog.
// places.Init must have succeeded first.
func NewSampler(provider ImageFetcher) *Sampler {
	return newSampler(provider, rand.NewSource(time.Now().UnixNano()))
}

func newSampler(provider ImageFetcher, src rand.Source) *Sampler {
	return &Sampler{
		provider: provider,
		rng:      rand.New(src),
		used:     make(map[int]bool),
		last:     -1,
	}
}

// Sample draws one Location for the given mode.
//
// Entry choice avoids the immediately previous entry and anything in the
// used window whenever the eligible set allows it; the window resets once
// most of the eligible catalog has been seen. Coordinates are jittered
// within ±coordJitter per axis. The first image fetch must succeed — a
// Location is never returned without imagery — and up to two more fetches
// are attempted best-effort at freshly jittered points.
func (s *Sampler) Sample(ctx context.Context, mode game.Mode) (game.Location, error) {
	idx, err := s.pick(mode)
	if err != nil {
		return game.Location{}, err
	}
	return s.build(ctx, catalog[idx])
}

// ByIndex builds the Location for a specific catalog entry. Used by the
// daily challenge, where the entry is chosen deterministically.
func (s *Sampler) ByIndex(ctx context.Context, idx int) (game.Location, error) {
	if idx < 0 || idx >= len(catalog) {
		return game.Location{}, fmt.Errorf("catalog index %d out of range", idx)
	}
	return s.build(ctx, catalog[idx])
}

// pick chooses a catalog index for the mode and records it.
func (s *Sampler) pick(mode game.Mode) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eligible := s.eligible(mode)
	if len(eligible) == 0 {
		return 0, fmt.Errorf("no catalog entries for mode %q", mode)
	}

	// Reset the used window once most eligible entries have been seen.
	seen := 0
	for _, i := range eligible {
		if s.used[i] {
			seen++
		}
	}
	if float64(seen) >= usedResetFraction*float64(len(eligible)) {
		s.used = make(map[int]bool)
	}

	candidates := make([]int, 0, len(eligible))
	for _, i := range eligible {
		if s.used[i] || (i == s.last && len(eligible) > 1) {
			continue
		}
		candidates = append(candidates, i)
	}
	if len(candidates) == 0 {
		// Used window just held everything fresh; fall back to anything
		// except an immediate repeat.
		for _, i := range eligible {
			if i != s.last || len(eligible) == 1 {
				candidates = append(candidates, i)
			}
		}
	}

	idx := candidates[s.rng.Intn(len(candidates))]
	s.used[idx] = true
	s.last = idx
	return idx, nil
}

// eligible returns the catalog indices allowed for a mode.
func (s *Sampler) eligible(mode game.Mode) []int {
	out := make([]int, 0, len(catalog))
	for i, e := range catalog {
		if mode == game.ModeUS && e.Country != HomeCountry {
			continue
		}
		out = append(out, i)
	}
	return out
}

// build assembles a Location from a catalog entry: jittered coordinates
// plus freshly fetched imagery.
func (s *Sampler) build(ctx context.Context, e Entry) (game.Location, error) {
	lat, lng := s.jitter(e.Lat, e.Lng)

	first, err := s.provider.FetchImage(ctx, lat, lng)
	if err != nil {
		return game.Location{}, fmt.Errorf("fetch imagery for %s: %w", e.City, err)
	}
	urls := []string{first}

	s.mu.Lock()
	extra := s.rng.Intn(maxImages) // 0..2 additional views
	s.mu.Unlock()
	for i := 0; i < extra; i++ {
		alat, alng := s.jitter(e.Lat, e.Lng)
		if u, err := s.provider.FetchImage(ctx, alat, alng); err == nil {
			urls = append(urls, u)
		}
	}

	return game.Location{
		Coordinates: game.Coordinates{Lat: lat, Lng: lng},
		City:        e.City,
		Region:      e.Region,
		Country:     e.Country,
		Continent:   e.Continent,
		ImageURLs:   urls,
	}, nil
}

// jitter offsets base coordinates by up to ±coordJitter per axis.
func (s *Sampler) jitter(lat, lng float64) (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lat + (s.rng.Float64()*2-1)*coordJitter,
		lng + (s.rng.Float64()*2-1)*coordJitter
}
