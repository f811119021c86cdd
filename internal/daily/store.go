package daily

import (
	"context"
	"database/sql"
)

// Result is one finished daily round for one user.
type Result struct {
	UserID        string `json:"userId"`
	Date          string `json:"date"`
	LocationIndex int    `json:"locationIndex"`
	Score         int    `json:"score"`
	Guesses       int    `json:"guesses"`
	Won           bool   `json:"won"`
	ElapsedMs     int    `json:"elapsedMs"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether the user has a persisted result for the date.
func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?",
		userID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult persists a finished daily round. Respects UNIQUE(user_id, date);
// a second insert for the same day is ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	won := 0
	if r.Won {
		won = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(user_id, date, location_index, score, guesses, won, elapsed_ms)
		 VALUES(?,?,?,?,?,?,?)`,
		r.UserID, r.Date, r.LocationIndex, r.Score, r.Guesses, won, r.ElapsedMs,
	)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	UserID    string `json:"userId"`
	Score     int    `json:"score"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Leaderboard returns the top results for a date: highest score first, ties
// broken by elapsed time, then guess count, then insertion order.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, score, guesses, elapsed_ms
		 FROM daily_results
		 WHERE date=?
		 ORDER BY score DESC, elapsed_ms ASC, guesses ASC, created_at ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LBRow
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Score, &r.Guesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
