package store

import (
	"context"
	"sync"

	"campusgig/internal/api"
	"campusgig/internal/models"
)

// StudentStore caches the signed-in student's profile and submitted
// applications.
type StudentStore struct {
	mu     sync.RWMutex
	client *api.Client

	student      *models.Student
	applications []models.Application
	loading      bool
	lastErr      string
}

func NewStudentStore(client *api.Client) *StudentStore {
	return &StudentStore{client: client}
}

// FetchProfile replaces the cached profile.
func (s *StudentStore) FetchProfile(ctx context.Context, studentID string) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	student, err := s.client.GetStudent(ctx, studentID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.student = student
	return nil
}

// UpdateProfile applies a partial update and replaces the cache from the
// response.
func (s *StudentStore) UpdateProfile(ctx context.Context, studentID string, req models.StudentUpdate) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	updated, err := s.client.UpdateStudent(ctx, studentID, req)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.student = updated
	return nil
}

// FetchApplications replaces the cached list of the student's submissions.
func (s *StudentStore) FetchApplications(ctx context.Context, studentID string) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	applications, err := s.client.StudentApplications(ctx, studentID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.applications = applications
	return nil
}

// Clear drops every cached value, for logout.
func (s *StudentStore) Clear() {
	s.mu.Lock()
	s.student = nil
	s.applications = nil
	s.lastErr = ""
	s.mu.Unlock()
}

// Profile returns the cached profile, or nil when not fetched.
func (s *StudentStore) Profile() *models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.student == nil {
		return nil
	}
	student := *s.student
	return &student
}

// Applications returns a copy of the cached submissions.
func (s *StudentStore) Applications() []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Application, len(s.applications))
	copy(out, s.applications)
	return out
}

func (s *StudentStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *StudentStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *StudentStore) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}
