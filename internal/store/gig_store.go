package store

import (
	"context"
	"sync"

	"campusgig/internal/api"
	"campusgig/internal/models"
	"campusgig/internal/validator"
)

// GigStore owns a professor's gig collection and the lifecycle transitions.
// Order of gigs is the server-returned order; the store never re-sorts.
type GigStore struct {
	mu       sync.RWMutex
	client   *api.Client
	validate *validator.Validator

	gigs    []models.Gig
	current *models.Gig
	loading bool
	lastErr string
}

func NewGigStore(client *api.Client, validate *validator.Validator) *GigStore {
	return &GigStore{client: client, validate: validate}
}

func (s *GigStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

// fail records the failure message without touching the held data.
func (s *GigStore) fail(err error) error {
	s.mu.Lock()
	s.loading = false
	s.lastErr = err.Error()
	s.mu.Unlock()
	return err
}

// FetchGigs replaces the collection with the professor's full list.
func (s *GigStore) FetchGigs(ctx context.Context, professorID string) error {
	s.begin()
	gigs, err := s.client.ProfessorGigs(ctx, professorID)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.gigs = gigs
	s.loading = false
	s.mu.Unlock()
	return nil
}

// BrowseGigs replaces the collection with the public listing.
func (s *GigStore) BrowseGigs(ctx context.Context, filter models.GigFilter) error {
	s.begin()
	gigs, err := s.client.ListGigs(ctx, filter)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.gigs = gigs
	s.loading = false
	s.mu.Unlock()
	return nil
}

// FetchGig replaces the currently viewed gig.
func (s *GigStore) FetchGig(ctx context.Context, gigID string) error {
	s.begin()
	gig, err := s.client.GetGig(ctx, gigID)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.current = gig
	s.loading = false
	s.mu.Unlock()
	return nil
}

// CreateGig validates the payload locally, posts it and appends the
// server-returned record.
func (s *GigStore) CreateGig(ctx context.Context, req models.GigCreate) (*models.Gig, error) {
	if err := s.validate.Validate(req); err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return nil, err
	}
	s.begin()
	created, err := s.client.CreateGig(ctx, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	s.gigs = append(s.gigs, *created)
	s.loading = false
	s.mu.Unlock()
	return created, nil
}

// UpdateGig replaces the matching collection entry and, when it is the
// currently viewed gig, that copy too.
func (s *GigStore) UpdateGig(ctx context.Context, gigID string, req models.GigUpdate) (*models.Gig, error) {
	s.begin()
	updated, err := s.client.UpdateGig(ctx, gigID, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	s.replaceLocked(updated)
	if s.current != nil && s.current.ID == gigID {
		s.current = updated
	}
	s.loading = false
	s.mu.Unlock()
	return updated, nil
}

// CloseGig transitions an open gig to closed. The open precondition is the
// caller's responsibility; the backend is the arbiter and a rejection comes
// back as an error with the collection untouched.
func (s *GigStore) CloseGig(ctx context.Context, gigID string, req models.GigClose) (*models.Gig, error) {
	s.begin()
	updated, err := s.client.CloseGig(ctx, gigID, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	s.replaceLocked(updated)
	s.loading = false
	s.mu.Unlock()
	return updated, nil
}

// HoldGig transitions an open gig to on-hold. A reason is mandatory.
func (s *GigStore) HoldGig(ctx context.Context, gigID string, req models.GigHold) (*models.Gig, error) {
	if err := s.validate.Validate(req); err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return nil, err
	}
	s.begin()
	updated, err := s.client.HoldGig(ctx, gigID, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	s.replaceLocked(updated)
	s.loading = false
	s.mu.Unlock()
	return updated, nil
}

// ActivateGig reopens an on-hold gig; the returned record has the hold reason
// cleared.
func (s *GigStore) ActivateGig(ctx context.Context, gigID string) (*models.Gig, error) {
	s.begin()
	updated, err := s.client.ActivateGig(ctx, gigID)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	s.replaceLocked(updated)
	s.loading = false
	s.mu.Unlock()
	return updated, nil
}

// DeleteGig removes the entry only after the backend confirms deletion.
func (s *GigStore) DeleteGig(ctx context.Context, gigID string) error {
	s.begin()
	if err := s.client.DeleteGig(ctx, gigID); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	kept := s.gigs[:0]
	for _, g := range s.gigs {
		if g.ID != gigID {
			kept = append(kept, g)
		}
	}
	s.gigs = kept
	s.loading = false
	s.mu.Unlock()
	return nil
}

// replaceLocked swaps the matching collection entry in place. Caller holds mu.
func (s *GigStore) replaceLocked(updated *models.Gig) {
	for i := range s.gigs {
		if s.gigs[i].ID == updated.ID {
			s.gigs[i] = *updated
			return
		}
	}
}

// Gigs returns a copy of the collection in server order.
func (s *GigStore) Gigs() []models.Gig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Gig, len(s.gigs))
	copy(out, s.gigs)
	return out
}

// CurrentGig returns the currently viewed gig, or nil.
func (s *GigStore) CurrentGig() *models.Gig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	gig := *s.current
	return &gig
}

// Loading reports whether an operation is in flight.
func (s *GigStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Error returns the last failure message, empty when the last action succeeded.
func (s *GigStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearError drops the recorded failure message.
func (s *GigStore) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}
