package session

import (
	"sync"

	"github.com/gou177/vezdecod-API-50/internal/model"
)

// Store is the shared token -> session mapping. Its lock covers only map
// mutation and lookup; it is never held during reveal processing, so
// store traffic on unrelated sessions cannot block gameplay.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Put registers a session under its token. Tokens are never reused, so
// an insert cannot collide with a live session.
func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.Token] = s
}

// Get looks up a session by token
func (st *Store) Get(token string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[token]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return s, nil
}

// Remove evicts a session by token. Removing an absent token is a no-op,
// which keeps eviction idempotent between the win and expiry paths.
func (st *Store) Remove(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, token)
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
