package daily

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	// Local time just past midnight UTC must still key to the UTC date.
	loc := time.FixedZone("UTC+9", 9*3600)
	at := time.Date(2025, 6, 2, 7, 30, 0, 0, loc) // 2025-06-01 22:30 UTC
	if got := DateKey(at); got != "2025-06-01" {
		t.Errorf("DateKey = %q, want 2025-06-01", got)
	}
	if got := DateKey(time.Date(2025, 6, 2, 0, 0, 1, 0, time.UTC)); got != "2025-06-02" {
		t.Errorf("DateKey = %q, want 2025-06-02", got)
	}
}

func TestLocationIndexDeterministic(t *testing.T) {
	day := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	a := LocationIndex(day, "salt", 28)
	b := LocationIndex(day, "salt", 28)
	if a != b {
		t.Fatalf("same date and salt should select the same index: %d vs %d", a, b)
	}
	if a < 0 || a >= 28 {
		t.Fatalf("index %d out of range", a)
	}

	// Any clock time during the day selects the same entry.
	evening := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)
	if LocationIndex(evening, "salt", 28) != a {
		t.Error("index should depend on the date only, not the time of day")
	}
}

func TestLocationIndexVaries(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	if LocationIndex(day, "salt-a", 1000) == LocationIndex(day, "salt-b", 1000) {
		t.Error("different salts should (almost surely) select different indices")
	}

	// Across a month of days the selection should not be constant.
	first := LocationIndex(day, "salt", 1000)
	varied := false
	for i := 1; i < 30; i++ {
		if LocationIndex(day.AddDate(0, 0, i), "salt", 1000) != first {
			varied = true
			break
		}
	}
	if !varied {
		t.Error("index never changed over 30 days")
	}
}

func TestLocationIndexEmptyCatalog(t *testing.T) {
	day := time.Now()
	if got := LocationIndex(day, "salt", 0); got != 0 {
		t.Errorf("empty catalog should yield 0, got %d", got)
	}
	if got := LocationIndex(day, "salt", -3); got != 0 {
		t.Errorf("negative catalog length should yield 0, got %d", got)
	}
}
