package daily

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(`CREATE TABLE daily_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		location_index INTEGER NOT NULL,
		score INTEGER NOT NULL,
		guesses INTEGER NOT NULL,
		won INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
		UNIQUE(user_id, date)
	)`)
	if err != nil {
		t.Fatal(err)
	}
	return NewStore(db)
}

func TestInsertAndAlreadyPlayed(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	played, err := s.AlreadyPlayed(ctx, "u1", "2025-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if played {
		t.Fatal("fresh user should not have played")
	}

	res := Result{UserID: "u1", Date: "2025-06-01", LocationIndex: 3, Score: 90, Guesses: 6, Won: true, ElapsedMs: 42000}
	if err := s.InsertResult(ctx, res); err != nil {
		t.Fatal(err)
	}
	played, err = s.AlreadyPlayed(ctx, "u1", "2025-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if !played {
		t.Fatal("result should be recorded")
	}

	// One result per user per day: the second insert is silently ignored.
	res.Score = 999
	if err := s.InsertResult(ctx, res); err != nil {
		t.Fatal(err)
	}
	rows, err := s.Leaderboard(ctx, "2025-06-01", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Score != 90 {
		t.Fatalf("expected one row with the original score, got %+v", rows)
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	date := "2025-06-01"

	for _, r := range []Result{
		{UserID: "slow-high", Date: date, Score: 100, Guesses: 5, Won: true, ElapsedMs: 90000},
		{UserID: "fast-high", Date: date, Score: 100, Guesses: 5, Won: true, ElapsedMs: 30000},
		{UserID: "low", Date: date, Score: 40, Guesses: 10, Won: false, ElapsedMs: 10000},
		{UserID: "other-day", Date: "2025-06-02", Score: 500, Guesses: 4, Won: true, ElapsedMs: 1000},
	} {
		if err := s.InsertResult(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := s.Leaderboard(ctx, date, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows for the date, got %d", len(rows))
	}
	want := []string{"fast-high", "slow-high", "low"}
	for i, u := range want {
		if rows[i].UserID != u {
			t.Errorf("row %d: expected %s, got %s", i, u, rows[i].UserID)
		}
	}

	// Limit applies.
	rows, err = s.Leaderboard(ctx, date, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("limit 2 returned %d rows", len(rows))
	}
}
