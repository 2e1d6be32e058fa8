// internal/storage/storage.go
//
// SQLite persistence for the API server.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout,
//     foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - User accounts and per-user play statistics.
//   - Game history rows for both signed-in and anonymous players.

package storage

import (
	"context"
	"crypto/rand"
	"database/sql"
	"embed"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("storage: not found")

// DB wraps the SQL handle with the application's queries.
type DB struct {
	sql *sql.DB
}

// Open opens (and creates if missing) the SQLite database at path and
// applies pending migrations.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	d := &DB{sql: db}
	if err := d.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying handle.
func (d *DB) Close() error { return d.sql.Close() }

// migrate applies embedded SQL migrations in lexical order, tracking
// applied files in a _migrations table.
func (d *DB) migrate() error {
	if _, err := d.sql.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	entries, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(entries)

	for _, name := range entries {
		var done int
		err := d.sql.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, name).Scan(&done)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		text, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		tx, err := d.sql.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(text)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", name, err)
		}
		log.Debug().Str("migration", name).Msg("applied")
	}
	return nil
}

// SQL exposes the raw handle for collaborators with their own queries
// (the daily leaderboard store).
func (d *DB) SQL() *sql.DB { return d.sql }

/* -------------------------------- users --------------------------------- */

// User matches the users table shape.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	GamesPlayed  int
	Wins         int
	Streak       int
}

// ErrUsernameTaken is returned by CreateUser on a duplicate username.
var ErrUsernameTaken = errors.New("storage: username taken")

// CreateUser inserts a new user with an already-hashed password.
func (d *DB) CreateUser(ctx context.Context, username, passwordHash string) (*User, error) {
	var exists int
	err := d.sql.QueryRowContext(ctx,
		`SELECT 1 FROM users WHERE lower(username)=lower(?)`, username).Scan(&exists)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	now := time.Now().UTC()
	u := &User{
		ID:           GenID(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}
	_, err = d.sql.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		u.ID, u.Username, u.PasswordHash, now.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UserByName loads a user by username (case-insensitive).
func (d *DB) UserByName(ctx context.Context, username string) (*User, error) {
	row := d.sql.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at, games_played, wins, streak
		 FROM users WHERE lower(username)=lower(?)`, username)
	return scanUser(row)
}

// UserByID loads a user by ID.
func (d *DB) UserByID(ctx context.Context, id string) (*User, error) {
	row := d.sql.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at, games_played, wins, streak
		 FROM users WHERE id=?`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	var created string
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &created,
		&u.GamesPlayed, &u.Wins, &u.Streak)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &u, nil
}

// BumpStats increments games played and updates wins and streak based
// on the result.
func (d *DB) BumpStats(ctx context.Context, userID string, won bool) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var gp, wins, streak int
	row := tx.QueryRowContext(ctx, `SELECT games_played, wins, streak FROM users WHERE id=?`, userID)
	if err := row.Scan(&gp, &wins, &streak); err != nil {
		return err
	}
	gp++
	if won {
		wins++
		streak++
	} else {
		streak = 0
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET games_played=?, wins=?, streak=? WHERE id=?`,
		gp, wins, streak, userID); err != nil {
		return err
	}
	return tx.Commit()
}

/* -------------------------------- games --------------------------------- */

// GameRecord is a row of play history. Exactly one of UserID or
// AnonymousID is set.
type GameRecord struct {
	ID          string
	UserID      string
	AnonymousID string
	Status      string
	Guesses     int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// InsertGame records the start of a game owned by a user or an
// anonymous visitor.
func (d *DB) InsertGame(ctx context.Context, id, userID, anonID string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	var err error
	if userID != "" {
		_, err = d.sql.ExecContext(ctx,
			`INSERT INTO games (id, user_id, started_at, status) VALUES (?,?,?,'playing')`,
			id, userID, now)
	} else {
		_, err = d.sql.ExecContext(ctx,
			`INSERT INTO games (id, anonymous_id, started_at, status) VALUES (?,?,?,'playing')`,
			id, anonID, now)
	}
	return err
}

// RecordGuess increments the guess counter of a game.
func (d *DB) RecordGuess(ctx context.Context, id string) error {
	_, err := d.sql.ExecContext(ctx,
		`UPDATE games SET guesses = guesses + 1 WHERE id=?`, id)
	return err
}

// FinishGame marks a game won or lost.
func (d *DB) FinishGame(ctx context.Context, id, status string) error {
	_, err := d.sql.ExecContext(ctx,
		`UPDATE games SET status=?, finished_at=? WHERE id=?`,
		status, time.Now().UTC().Format(time.RFC3339), id)
	return err
}

// RecentGames returns a user's most recent games, newest first.
func (d *DB) RecentGames(ctx context.Context, userID string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, status, guesses, started_at, COALESCE(finished_at,'')
		 FROM games WHERE user_id=? ORDER BY started_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GameRecord
	for rows.Next() {
		var g GameRecord
		var started, finished string
		if err := rows.Scan(&g.ID, &g.Status, &g.Guesses, &started, &finished); err != nil {
			return nil, err
		}
		g.UserID = userID
		g.StartedAt, _ = time.Parse(time.RFC3339, started)
		if finished != "" {
			g.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// ClaimAnonGames transfers anonymous games to a user account after
// signup or login.
func (d *DB) ClaimAnonGames(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := d.sql.ExecContext(ctx,
		`UPDATE games SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID)
	return err
}

// GenID creates a 22-char URL-safe, crypto-random identifier (no padding).
func GenID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
