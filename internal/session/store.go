package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps live sessions in memory keyed by token.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a fresh session at the entry step and returns it.
func (s *Store) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		Token: uuid.NewString(),
		Step:  StepLoginOrRegister,
	}
	s.sessions[sess.Token] = sess
	return sess
}

// Get returns the session for a token, or nil when the token is unknown.
func (s *Store) Get(token string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[token]
}

// Delete removes a session. Deleting an unknown token is a no-op.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
