// internal/store/memory.go
//
// In-memory implementation of the session Store.
// Active games live here while they are being played; finished results
// are persisted separately (see internal/storage).
//
// Characteristics:
//   - Sessions keyed by ID in a map, concurrency-safe via RWMutex.
//   - State is lost when the process restarts.
//   - ErrNotFound is returned for missing session IDs on Get().

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"

	"github.com/mpatters/wordgrid/internal/board"
)

// ErrNotFound is returned by Get for an unknown session ID.
var ErrNotFound = errors.New("store: session not found")

// Session is one in-flight game owned by a player.
type Session struct {
	ID   string
	Game *board.Game
}

// Store defines the persistence interface for game sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID. Returns ErrNotFound if missing.
	Get(ctx context.Context, id string) (*Session, error)
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemory constructs an in-memory Store.
func NewMemory() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

// NewSessionID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func NewSessionID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
