// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes four endpoints under /daily:
//   - POST /daily/new         → start today's round (creates or reuses session)
//   - POST /daily/guess       → submit a guess for today's round
//   - POST /daily/hint        → spend a hint on today's round
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each user can play once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB when the
// round finishes. Deterministic location selection is based on date + salt,
// so every player guesses the same place on the same day.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/egoscicki/Untitled-Location-Game/internal/daily"
	"github.com/egoscicki/Untitled-Location-Game/internal/game"
	"github.com/egoscicki/Untitled-Location-Game/internal/places"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession holds transient in-memory state for an in-progress daily round.
type dailySession struct {
	Game          *game.Game
	UserID        string
	Date          string
	LocationIndex int
	Start         time.Time
	Persisted     bool
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Post("/hint", dd.handleHint)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// dateKeyNow returns today's date key and deterministic catalog index.
func (d *dailyServer) dateKeyNow() (date string, idx int) {
	now := time.Now().UTC()
	return daily.DateKey(now), daily.LocationIndex(now, d.salt, places.Size())
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) (string, bool) {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID, true
	}
	return d.srv.ensureAnonID(w, r), true
}

// session returns the caller's active session for today, if any. Sessions
// left over from previous dates are evicted on the way.
func (d *dailyServer) session(uid, date string) *dailySession {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pruneStale(date)
	return d.sessions[uid+"|"+date]
}

// pruneStale drops sessions for any date other than today, so finished
// rounds don't accumulate for the life of the process. Caller holds d.mu.
func (d *dailyServer) pruneStale(today string) {
	for k, sess := range d.sessions {
		if sess.Date != today {
			delete(d.sessions, k)
		}
	}
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID    string     `json:"gameId"`
	Date      string     `json:"date"`
	Played    bool       `json:"played"`
	Stage     game.Stage `json:"stage,omitempty"`
	ImageURLs []string   `json:"imageUrls,omitempty"`
	HintsLeft int        `json:"hintsLeft,omitempty"`
}

// handleNew creates or reuses a daily session for the current date.
// - If user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return the round.
// The daily round is always world mode, continent through city.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	date, idx := d.dateKeyNow()

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: "", Date: date, Played: true})
		return
	}

	// Reuse or create session in memory.
	key := uid + "|" + date
	d.mu.Lock()
	d.pruneStale(date)
	if sess, ok := d.sessions[key]; ok {
		d.mu.Unlock()
		_ = json.NewEncoder(w).Encode(dailyNewRes{
			GameID:    sess.Game.ID,
			Date:      date,
			Stage:     sess.Game.Stage,
			ImageURLs: sess.Game.Location.ImageURLs,
			HintsLeft: sess.Game.HintsLeft(),
		})
		return
	}
	d.mu.Unlock()

	// Sampled outside the lock: imagery fetch can block.
	loc, err := d.srv.sampler.ByIndex(r.Context(), idx)
	if err != nil {
		http.Error(w, `{"error":"provider_unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	g := game.New(game.ModeWorld, loc)

	d.mu.Lock()
	if sess, ok := d.sessions[key]; ok {
		// Raced with another request; keep the first session.
		g = sess.Game
	} else {
		d.sessions[key] = &dailySession{
			Game:          g,
			UserID:        uid,
			Date:          date,
			LocationIndex: idx,
			Start:         time.Now(),
		}
	}
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{
		GameID:    g.ID,
		Date:      date,
		Stage:     g.Stage,
		ImageURLs: g.Location.ImageURLs,
		HintsLeft: g.HintsLeft(),
	})
}

// -----------------------------------------------------------------------------
// /daily/guess

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// dailyGuessRes is the response payload for /daily/guess.
type dailyGuessRes struct {
	Result       game.GuessResult `json:"result"`
	State        string           `json:"state"` // playing | won | lost | locked
	Stage        game.Stage       `json:"stage"`
	Score        int              `json:"score"`
	TotalGuesses int              `json:"totalGuesses"`
}

// handleGuess validates and applies a guess for today's daily session.
// - Ensures valid GameID and a live session.
// - Applies the guess through the regular round controller.
// - Persists the result to DB once the round finishes (won or lost).
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if p.GameID == "" {
		http.Error(w, "invalid", http.StatusBadRequest)
		return
	}

	date, _ := d.dateKeyNow()
	sess := d.session(uid, date)
	if sess == nil || sess.Game.ID != p.GameID {
		http.Error(w, "no session", http.StatusConflict)
		return
	}

	g := sess.Game
	if g.Finished {
		_ = json.NewEncoder(w).Encode(dailyGuessRes{
			State: "locked", Stage: g.Stage, Score: g.Score, TotalGuesses: g.TotalGuesses,
		})
		return
	}

	result, err := g.SubmitGuess(p.Guess)
	if errors.Is(err, game.ErrEmptyGuess) {
		http.Error(w, "empty guess", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "invalid", http.StatusBadRequest)
		return
	}

	// Persist once on the finishing guess.
	if g.Finished && !sess.Persisted {
		sess.Persisted = true
		elapsed := int(time.Since(sess.Start).Milliseconds())
		_ = d.store.InsertResult(r.Context(), daily.Result{
			UserID:        uid,
			Date:          date,
			LocationIndex: sess.LocationIndex,
			Score:         g.Score,
			Guesses:       g.TotalGuesses,
			Won:           g.Won,
			ElapsedMs:     elapsed,
		})
	}

	_ = json.NewEncoder(w).Encode(dailyGuessRes{
		Result:       result,
		State:        g.Status(),
		Stage:        g.Stage,
		Score:        g.Score,
		TotalGuesses: g.TotalGuesses,
	})
}

// -----------------------------------------------------------------------------
// /daily/hint

// dailyHintReq is the request payload for /daily/hint.
type dailyHintReq struct {
	GameID string `json:"gameId"`
}

// handleHint spends one hint on today's session. Same no-op semantics as
// /game/hint once the budget runs out.
func (d *dailyServer) handleHint(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var p dailyHintReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	date, _ := d.dateKeyNow()
	sess := d.session(uid, date)
	if sess == nil || sess.Game.ID != p.GameID {
		http.Error(w, "no session", http.StatusConflict)
		return
	}

	options, err := sess.Game.Hint(d.srv.pool)
	if errors.Is(err, game.ErrNoHints) {
		_ = json.NewEncoder(w).Encode(hintRes{Options: []string{}, HintsLeft: 0})
		return
	}
	if err != nil {
		http.Error(w, "invalid", http.StatusConflict)
		return
	}
	_ = json.NewEncoder(w).Encode(hintRes{Options: options, HintsLeft: sess.Game.HintsLeft()})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _ = d.dateKeyNow()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
