package server

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"

	"github.com/sweeplab/minefield/game"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is one hosted game. Sessions own their engine exclusively; the
// mutex exists only because a session may be touched from more than one
// connection goroutine, never because engines share state.
type Session struct {
	ID string

	mu   sync.Mutex
	game *game.Game
}

// With runs fn with exclusive access to the session's game.
func (session *Session) With(fn func(*game.Game) error) error {
	session.mu.Lock()
	defer session.mu.Unlock()
	return fn(session.game)
}

// Reset replaces the session's game with a fresh one.
func (session *Session) Reset(config game.Config) error {
	fresh, err := game.New(config)
	if err != nil {
		return err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.game = fresh
	return nil
}

// Manager tracks the sessions hosted by one server process. Each session
// is independent; the manager's lock guards only the registry itself.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create starts a new session around a fresh game.
func (manager *Manager) Create(config game.Config) (*Session, error) {
	g, err := game.New(config)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:   generateSessionID(),
		game: g,
	}

	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.sessions[session.ID] = session
	return session, nil
}

// Get looks up a session by ID.
func (manager *Manager) Get(id string) (*Session, error) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	session, ok := manager.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete drops a session from the registry.
func (manager *Manager) Delete(id string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	delete(manager.sessions, id)
}

// Len returns the number of live sessions.
func (manager *Manager) Len() int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.sessions)
}

func generateSessionID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)
}
