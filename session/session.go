// Package session tracks per-session usage counts and user-supplied
// API keys. Session state is an explicit value handed to the pipeline,
// never ambient globals, and is discarded with the session.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"newsrec/config"
)

// Session is the per-user interaction context.
type Session struct {
	ID        string    `json:"id"`
	Uses      int       `json:"uses"`
	ModelKey  string    `json:"-"`
	VideoKey  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// NeedsOwnKey reports whether the session has exhausted its free uses
// without supplying its own model key.
func (s *Session) NeedsOwnKey() bool {
	return s.Uses >= config.FreeUses && s.ModelKey == ""
}

// Manager owns all live sessions behind a mutex.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// GetOrCreate resolves a session id to a snapshot of its session,
// creating a fresh one when the id is empty or unknown.
func (m *Manager) GetOrCreate(id string) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return *s
	}
	s := &Session{ID: uuid.NewString(), CreatedAt: time.Now()}
	m.sessions[s.ID] = s
	return *s
}

// RecordUse increments the usage counter and returns the new count.
// Unknown ids are a no-op returning zero.
func (m *Manager) RecordUse(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return 0
	}
	s.Uses++
	return s.Uses
}

// SetKeys stores user-supplied API keys on the session. Empty values
// leave the existing keys untouched.
func (m *Manager) SetKeys(id, modelKey, videoKey string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return false
	}
	if modelKey != "" {
		s.ModelKey = modelKey
	}
	if videoKey != "" {
		s.VideoKey = videoKey
	}
	return true
}
