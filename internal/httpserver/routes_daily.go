// internal/httpserver/routes_daily.go
//
// Routes for the daily challenge.
//   - POST /daily/new         → start (or resume) today's game
//   - POST /daily/guess       → submit a guess for today's word
//   - GET  /daily/leaderboard → top results for today (or ?date=)
//
// Everyone gets the same word on a given date (internal/daily). Each
// player may record one result per date; active sessions are held in
// memory and the result is persisted on a win.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mpatters/wordgrid/internal/board"
	"github.com/mpatters/wordgrid/internal/daily"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	mu       sync.Mutex
	sessions map[string]*dailySession // keyed by ownerID|date
}

// dailySession is transient state for an in-progress daily game.
type dailySession struct {
	OwnerID   string
	Date      string
	WordIndex int
	Game      *board.Game
	Start     time.Time
	Guesses   int
	Finished  bool
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db.SQL()),
		salt:     s.cfg.DailySalt,
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// ownerID identifies the player: user ID when signed in, anon cookie otherwise.
func (d *dailyServer) ownerID(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	owner := d.ownerID(w, r)
	date := daily.DateKey(time.Now())

	played, err := d.store.AlreadyPlayed(r.Context(), owner, date)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	if played {
		http.Error(w, `{"error":"already_played"}`, http.StatusConflict)
		return
	}

	answers := d.srv.bank.Answers()
	idx := daily.WordIndex(time.Now(), d.salt, len(answers))

	d.mu.Lock()
	defer d.mu.Unlock()
	key := owner + "|" + date
	sess, ok := d.sessions[key]
	if !ok {
		g, err := board.NewWithAnswer(d.srv.bank, answers[idx])
		if err != nil {
			http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
			return
		}
		sess = &dailySession{
			OwnerID:   owner,
			Date:      date,
			WordIndex: idx,
			Game:      g,
			Start:     time.Now(),
		}
		d.sessions[key] = sess
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"date":    sess.Date,
		"guesses": sess.Guesses,
	})
}

type dailyGuessReq struct {
	Guess string `json:"guess"`
}

func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	owner := d.ownerID(w, r)
	date := daily.DateKey(time.Now())

	d.mu.Lock()
	sess, ok := d.sessions[owner+"|"+date]
	d.mu.Unlock()
	if !ok {
		http.Error(w, `{"error":"no_active_daily"}`, http.StatusNotFound)
		return
	}
	if sess.Finished {
		http.Error(w, `{"error":"game finished"}`, http.StatusBadRequest)
		return
	}

	marks, err := applyWord(sess.Game, req.Guess)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	sess.Guesses++

	outcome := sess.Game.Outcome()
	if outcome != board.Playing {
		sess.Finished = true
	}
	if outcome == board.Won {
		err := d.store.InsertResult(r.Context(), daily.Result{
			UserID:    owner,
			Date:      sess.Date,
			WordIndex: sess.WordIndex,
			Guesses:   sess.Guesses,
			ElapsedMs: int(time.Since(sess.Start).Milliseconds()),
		})
		if err != nil {
			log.Warn().Err(err).Str("owner", owner).Msg("insert daily result")
		}
	}

	_ = json.NewEncoder(w).Encode(guessRes{Marks: marks, State: outcome.String()})
}

func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(time.Now())
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []daily.LeaderboardRow{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"date": date, "rows": rows})
}
