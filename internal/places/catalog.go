// internal/places/catalog.go
//
// Catalog management for the location sampler.
//
// Responsibilities:
//   - Load the location catalog from an environment-provided file or fall
//     back to the embedded default catalog.
//   - Validate each entry at load time: six pipe-separated fields, a known
//     continent, parseable coordinates. The game engine trusts catalog
//     consistency blindly, so this is the one place it is enforced.
//   - Expose the parsed entries for the Sampler and the daily challenge.
//
// Entry format (one per line, # comments and blank lines skipped):
//   continent|country|region|city|lat|lng
//
// Environment variables:
//   LOCATIONS_FILE=/path/to/locations.txt
//
// Initialization is run once (sync.Once), mirroring how word lists load.

package places

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/egoscicki/Untitled-Location-Game/assets"
)

// HomeCountry is the catalog filter applied in domestic ("us") mode.
const HomeCountry = "United States"

// Entry is one guessable catalog location: canonical place names plus the
// base coordinates imagery is sampled around.
type Entry struct {
	Continent string
	Country   string
	Region    string
	City      string
	Lat       float64
	Lng       float64
}

var (
	initOnce   sync.Once
	catalog    []Entry
	initialErr error
)

// Init loads and validates the catalog exactly once.
// Returns an error if the catalog ends up empty or any line is malformed.
func Init() error {
	initOnce.Do(func() {
		var lines []string

		if path := os.Getenv("LOCATIONS_FILE"); path != "" {
			var err error
			lines, err = readCatalogFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			var err error
			lines, err = assets.LocationLines()
			if err != nil {
				initialErr = err
				return
			}
		}

		entries := make([]Entry, 0, len(lines))
		for i, line := range lines {
			e, err := parseEntry(line)
			if err != nil {
				initialErr = fmt.Errorf("catalog line %d: %w", i+1, err)
				return
			}
			entries = append(entries, e)
		}
		if len(entries) == 0 {
			initialErr = errors.New("places: catalog is empty")
			return
		}
		catalog = entries
	})
	return initialErr
}

// readCatalogFile loads catalog lines from a file, skipping blanks and
// # comments.
func readCatalogFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// parseEntry parses and validates one catalog line.
func parseEntry(line string) (Entry, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 6 {
		return Entry{}, fmt.Errorf("want 6 fields, got %d", len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return Entry{}, fmt.Errorf("field %d is empty", i+1)
		}
	}
	if !isContinent(parts[0]) {
		return Entry{}, fmt.Errorf("unknown continent %q", parts[0])
	}
	lat, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("bad latitude %q", parts[4])
	}
	lng, err := strconv.ParseFloat(parts[5], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("bad longitude %q", parts[5])
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Entry{}, fmt.Errorf("coordinates out of range: %v,%v", lat, lng)
	}
	return Entry{
		Continent: parts[0],
		Country:   parts[1],
		Region:    parts[2],
		City:      parts[3],
		Lat:       lat,
		Lng:       lng,
	}, nil
}

// Entries returns the loaded catalog. Callers must not mutate it.
func Entries() []Entry {
	return catalog
}

// Size returns the number of catalog entries.
func Size() int { return len(catalog) }

// Stats returns catalog counts: (total entries, domestic entries).
func Stats() (total int, domestic int) {
	for _, e := range catalog {
		if e.Country == HomeCountry {
			domestic++
		}
	}
	return len(catalog), domestic
}
