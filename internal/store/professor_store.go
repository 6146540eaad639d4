package store

import (
	"context"
	"sync"

	"campusgig/internal/api"
	"campusgig/internal/models"
)

// ProfessorStore caches the signed-in professor's profile.
type ProfessorStore struct {
	mu     sync.RWMutex
	client *api.Client

	professor *models.Professor
	loading   bool
	lastErr   string
}

func NewProfessorStore(client *api.Client) *ProfessorStore {
	return &ProfessorStore{client: client}
}

// FetchProfile replaces the cached profile.
func (s *ProfessorStore) FetchProfile(ctx context.Context, professorID string) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	professor, err := s.client.GetProfessor(ctx, professorID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.professor = professor
	return nil
}

// UpdateProfile applies a partial update and replaces the cache from the
// response.
func (s *ProfessorStore) UpdateProfile(ctx context.Context, professorID string, req models.ProfessorUpdate) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	updated, err := s.client.UpdateProfessor(ctx, professorID, req)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.professor = updated
	return nil
}

// Clear drops the cached profile, for logout.
func (s *ProfessorStore) Clear() {
	s.mu.Lock()
	s.professor = nil
	s.lastErr = ""
	s.mu.Unlock()
}

// Profile returns the cached profile, or nil when not fetched.
func (s *ProfessorStore) Profile() *models.Professor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.professor == nil {
		return nil
	}
	p := *s.professor
	return &p
}

func (s *ProfessorStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *ProfessorStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *ProfessorStore) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}
