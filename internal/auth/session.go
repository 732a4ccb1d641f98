package auth

import (
	"sync"

	"github.com/google/uuid"

	"hostel-booking-backend/internal/model"
)

// Session is the resolved identity behind a bearer token.
type Session struct {
	UserID int64
	Role   model.Role
}

// SessionStore maps opaque tokens to sessions. It is held only in memory;
// restarting the process invalidates every token.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]Session)}
}

// Create issues a fresh token for the given account.
func (s *SessionStore) Create(userID int64, role model.Role) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = Session{UserID: userID, Role: role}
	s.mu.Unlock()
	return token
}

// Resolve looks up the session behind a token.
func (s *SessionStore) Resolve(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	return sess, ok
}

// Destroy removes a token. Unknown tokens are ignored.
func (s *SessionStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
