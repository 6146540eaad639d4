// Package store holds the client-side state containers. Each store is a
// single-writer, mutex-guarded struct; reads return snapshots and every action
// follows the loading/error/data contract: loading set at entry, cleared at
// exit, failures record the message and leave the held state untouched.
package store

import (
	"sync"

	"campusgig/internal/logger"
	"campusgig/internal/models"
	"campusgig/internal/storage"
)

// SessionStore is the single source of truth for who is signed in.
type SessionStore struct {
	mu      sync.RWMutex
	session models.Session
	repo    *storage.SessionRepository
}

// NewSessionStore builds a store. repo may be nil, in which case the session
// lives only for the process lifetime.
func NewSessionStore(repo *storage.SessionRepository) *SessionStore {
	return &SessionStore{repo: repo}
}

// SetAuth unconditionally replaces the session fields. The token is trusted as
// is; authentication already succeeded server-side by the time this runs.
func (s *SessionStore) SetAuth(token, userID string, userType models.UserType) {
	s.mu.Lock()
	s.session = models.Session{
		Token:           token,
		UserID:          userID,
		UserType:        userType,
		IsAuthenticated: true,
	}
	session := s.session
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Save(session); err != nil {
			logger.WithError(err).Warn("session not persisted")
		}
	}
}

// Logout clears every session field and the durable copy, so a later restart
// does not resurrect the session.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Clear(); err != nil {
			logger.WithError(err).Warn("persisted session not cleared")
		}
	}
}

// Restore loads the persisted session, if any, into the store.
func (s *SessionStore) Restore() error {
	if s.repo == nil {
		return nil
	}
	session, found, err := s.repo.Load()
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	return nil
}

// Session returns a snapshot of the current session.
func (s *SessionStore) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Token implements api.TokenSource.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// IsAuthenticated reports whether a user is signed in.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAuthenticated
}
