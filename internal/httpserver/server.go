// internal/httpserver/server.go
//
// HTTP wiring for the API server.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery,
//     request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints (optional auth): POST /game/new, POST /game/guess.
//   - Daily challenge endpoints: mounted under /daily (routes_daily.go).
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /games/mine
//     (auth.go).
//
// The server drives the same board engine as the terminal frontend: a
// guess word is fed into the engine letter by letter and submitted, and
// the per-letter marks are read back from the finalized row's cells.

package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/mpatters/wordgrid/internal/board"
	"github.com/mpatters/wordgrid/internal/config"
	"github.com/mpatters/wordgrid/internal/storage"
	"github.com/mpatters/wordgrid/internal/store"
	"github.com/mpatters/wordgrid/internal/words"
)

// Server bundles router, session store, word bank, and DB handle.
type Server struct {
	r     *chi.Mux
	store store.Store
	db    *storage.DB
	bank  *words.Bank
	cfg   config.ServerConfig
}

// New constructs a Server, installs middleware, and registers routes.
func New(bank *words.Bank, st store.Store, db *storage.DB, cfg config.ServerConfig) *Server {
	s := &Server{r: chi.NewRouter(), store: st, db: db, bank: bank, cfg: cfg}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(requestLogger)
	s.r.Use(jsonContentType)
	s.r.Use(corsFor(cfg.ClientOrigin))

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordgrid","endpoints":["/health","POST /game/new","POST /game/guess","/daily/*","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.bank.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	// Game endpoints: guests can play.
	s.r.With(s.withOptionalAuth()).Post("/game/new", s.handleNewGame)
	s.r.With(s.withOptionalAuth()).Post("/game/guess", s.handleGuess)

	s.mountDaily(s.r.With(s.withOptionalAuth()))
	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

/* ------------------------------ middleware ------------------------------- */

// requestLogger emits one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFor enables credentialed CORS for a single origin.
func corsFor(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

/* --------------------------------- game ---------------------------------- */

type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID string `json:"gameId"`
}

// handleNewGame creates an in-memory game session and persists an owner
// row (user or anonymous) for history/stats.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	var (
		g   *board.Game
		err error
	)
	if req.Answer != "" {
		g, err = board.NewWithAnswer(s.bank, req.Answer)
		if err != nil {
			http.Error(w, `{"error":"bad_answer"}`, http.StatusBadRequest)
			return
		}
	} else {
		g = board.New(s.bank)
	}

	sess := &store.Session{ID: store.NewSessionID(), Game: g}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	userID, anonID := s.owner(w, r)
	if err := s.db.InsertGame(r.Context(), sess.ID, userID, anonID); err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("insert game row")
	}

	_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Marks []string `json:"marks"`
	State string   `json:"state"` // "playing" | "won" | "lost"
}

// handleGuess applies a guess to a session's board, persists progress,
// and updates user stats when the game finishes.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	marks, err := applyWord(sess.Game, req.Guess)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	// History and stats are best effort; the guess result stands anyway.
	if err := s.db.RecordGuess(r.Context(), sess.ID); err != nil {
		log.Warn().Err(err).Msg("record guess")
	}
	outcome := sess.Game.Outcome()
	if outcome != board.Playing {
		if err := s.db.FinishGame(r.Context(), sess.ID, outcome.String()); err != nil {
			log.Warn().Err(err).Msg("finish game")
		}
		if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
			if err := s.db.BumpStats(r.Context(), me.ID, outcome == board.Won); err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
			}
		}
	}

	_ = json.NewEncoder(w).Encode(guessRes{Marks: marks, State: outcome.String()})
}

// owner resolves the request to a (userID, anonID) pair; exactly one is set.
func (s *Server) owner(w http.ResponseWriter, r *http.Request) (userID, anonID string) {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID, ""
	}
	return "", s.ensureAnonID(w, r)
}

/* ---------------------------- engine adapter ----------------------------- */

var (
	errGameFinished  = errors.New("game finished")
	errInvalidGuess  = errors.New("invalid guess")
	errNotInWordList = errors.New("not in word list")
)

// applyWord drives the keystroke engine with a whole word: type each
// letter, submit, and read the marks back from the finalized row. A
// dictionary rejection un-types the letters so the row is left empty.
func applyWord(g *board.Game, guess string) ([]string, error) {
	if g.Outcome() != board.Playing {
		return nil, errGameFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != board.Cols {
		return nil, errInvalidGuess
	}

	typed := 0
	for _, r := range guess {
		if !g.AcceptLetter(r) {
			retract(g, typed)
			return nil, errInvalidGuess
		}
		typed++
	}

	row := g.ActiveRow()
	if !g.SubmitGuess() {
		retract(g, typed)
		return nil, errInvalidGuess
	}
	if g.Message() != "" {
		// Not in the dictionary: the engine kept the row pending.
		retract(g, typed)
		return nil, errNotInWordList
	}

	cells := g.Row(row).Cells()
	marks := make([]string, board.Cols)
	for i, c := range cells {
		marks[i] = mark(c.State)
	}
	return marks, nil
}

// retract deletes n typed letters, restoring the row for the next attempt.
func retract(g *board.Game, n int) {
	for i := 0; i < n; i++ {
		g.DeleteLetter()
	}
}

// mark maps a finalized cell state to its wire spelling.
func mark(st board.CellState) string {
	switch st {
	case board.CellCorrect:
		return "correct"
	case board.CellPresent:
		return "present"
	case board.CellAbsent:
		return "absent"
	default:
		panic(fmt.Sprintf("httpserver: mark of unfinalized cell state %d", st))
	}
}
