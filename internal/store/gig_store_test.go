package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusgig/internal/api"
	"campusgig/internal/apitest"
	"campusgig/internal/models"
	"campusgig/internal/store"
	"campusgig/internal/validator"
	"campusgig/pkg/apperrors"
)

func newGigStore(t *testing.T) (*store.GigStore, *apitest.Server, models.Professor) {
	t.Helper()
	server := apitest.New(t)
	professor := server.SeedProfessor(t, "Ada Lovelace", "ada@uni.edu", "pw")
	client := api.NewClient(server.URL(), nil, nil)
	return store.NewGigStore(client, validator.New()), server, professor
}

func createOpenGig(t *testing.T, s *store.GigStore, professorID string) *models.Gig {
	t.Helper()
	created, err := s.CreateGig(context.Background(), models.GigCreate{
		ProfessorID: professorID,
		Title:       "X",
		Description: "Y",
		AreaOfStudy: "ML",
	})
	require.NoError(t, err)
	return created
}

func TestGigStore_CreateStartsOpen(t *testing.T) {
	t.Parallel()
	s, _, professor := newGigStore(t)

	created := createOpenGig(t, s, professor.ID)
	assert.Equal(t, models.GigStatusOpen, created.Status)
	assert.NotEmpty(t, created.ID)

	gigs := s.Gigs()
	require.Len(t, gigs, 1)
	assert.Equal(t, created.ID, gigs[0].ID)
	assert.Empty(t, s.Error())
	assert.False(t, s.Loading())
}

func TestGigStore_CreateValidation(t *testing.T) {
	t.Parallel()
	s, _, professor := newGigStore(t)

	_, err := s.CreateGig(context.Background(), models.GigCreate{
		ProfessorID: professor.ID,
		Title:       "X",
		// description and area_of_study missing
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description")
	assert.Empty(t, s.Gigs(), "nothing may be appended on a validation failure")
}

func TestGigStore_CloseAttachesPublication(t *testing.T) {
	t.Parallel()
	s, _, professor := newGigStore(t)
	created := createOpenGig(t, s, professor.ID)

	closed, err := s.CloseGig(context.Background(), created.ID, models.GigClose{
		PublicationVenue: "ICML",
	})
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusClosed, closed.Status)

	// The publication record persists in the store's cached copy.
	gigs := s.Gigs()
	require.Len(t, gigs, 1)
	assert.Equal(t, models.GigStatusClosed, gigs[0].Status)
	assert.Equal(t, "ICML", gigs[0].PublicationVenue)
}

func TestGigStore_ClosedIsTerminal(t *testing.T) {
	t.Parallel()
	s, _, professor := newGigStore(t)
	created := createOpenGig(t, s, professor.ID)

	_, err := s.CloseGig(context.Background(), created.ID, models.GigClose{})
	require.NoError(t, err)

	_, err = s.HoldGig(context.Background(), created.ID, models.GigHold{PausedReason: "why not"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))

	_, err = s.ActivateGig(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))

	// The failed transitions left the cached copy closed.
	gigs := s.Gigs()
	require.Len(t, gigs, 1)
	assert.Equal(t, models.GigStatusClosed, gigs[0].Status)
}

func TestGigStore_HoldActivateRoundTrip(t *testing.T) {
	t.Parallel()
	s, _, professor := newGigStore(t)
	created := createOpenGig(t, s, professor.ID)

	held, err := s.HoldGig(context.Background(), created.ID, models.GigHold{
		PausedReason: "Waiting on funding",
	})
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusOnHold, held.Status)
	assert.Equal(t, "Waiting on funding", held.PausedReason)

	reopened, err := s.ActivateGig(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusOpen, reopened.Status)
	assert.Empty(t, reopened.PausedReason, "reactivation clears the hold reason")

	gigs := s.Gigs()
	require.Len(t, gigs, 1)
	assert.Equal(t, models.GigStatusOpen, gigs[0].Status)
	assert.Empty(t, gigs[0].PausedReason)
}

func TestGigStore_HoldRequiresReason(t *testing.T) {
	t.Parallel()
	s, _, professor := newGigStore(t)
	created := createOpenGig(t, s, professor.ID)

	_, err := s.HoldGig(context.Background(), created.ID, models.GigHold{})
	require.Error(t, err)

	gigs := s.Gigs()
	require.Len(t, gigs, 1)
	assert.Equal(t, models.GigStatusOpen, gigs[0].Status)
}

func TestGigStore_UpdateReplacesCollectionAndCurrent(t *testing.T) {
	t.Parallel()
	s, _, professor := newGigStore(t)
	created := createOpenGig(t, s, professor.ID)

	require.NoError(t, s.FetchGig(context.Background(), created.ID))
	require.NotNil(t, s.CurrentGig())

	title := "Deep Learning RA"
	_, err := s.UpdateGig(context.Background(), created.ID, models.GigUpdate{Title: &title})
	require.NoError(t, err)

	gigs := s.Gigs()
	require.Len(t, gigs, 1)
	assert.Equal(t, title, gigs[0].Title)
	assert.Equal(t, title, s.CurrentGig().Title)
}

func TestGigStore_DeleteRemovesAfterConfirm(t *testing.T) {
	t.Parallel()
	s, server, professor := newGigStore(t)
	created := createOpenGig(t, s, professor.ID)

	require.NoError(t, s.DeleteGig(context.Background(), created.ID))
	assert.Empty(t, s.Gigs())
	_, exists := server.Gig(created.ID)
	assert.False(t, exists)
}

func TestGigStore_FailureIsNonDestructive(t *testing.T) {
	t.Parallel()
	s, _, professor := newGigStore(t)
	created := createOpenGig(t, s, professor.ID)

	_, err := s.CloseGig(context.Background(), "missing-id", models.GigClose{})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	assert.NotEmpty(t, s.Error())
	assert.False(t, s.Loading())

	// Prior state stays intact.
	gigs := s.Gigs()
	require.Len(t, gigs, 1)
	assert.Equal(t, created.ID, gigs[0].ID)
	assert.Equal(t, models.GigStatusOpen, gigs[0].Status)

	s.ClearError()
	assert.Empty(t, s.Error())
}

func TestGigStore_FetchGigsServerOrder(t *testing.T) {
	t.Parallel()
	s, _, professor := newGigStore(t)

	first := createOpenGig(t, s, professor.ID)
	second, err := s.CreateGig(context.Background(), models.GigCreate{
		ProfessorID: professor.ID,
		Title:       "Another",
		Description: "Study",
		AreaOfStudy: "NLP",
	})
	require.NoError(t, err)

	require.NoError(t, s.FetchGigs(context.Background(), professor.ID))
	gigs := s.Gigs()
	require.Len(t, gigs, 2)
	assert.Equal(t, first.ID, gigs[0].ID)
	assert.Equal(t, second.ID, gigs[1].ID)
}

func TestGigStore_BrowseFilters(t *testing.T) {
	t.Parallel()
	s, _, professor := newGigStore(t)
	created := createOpenGig(t, s, professor.ID)
	_, err := s.CloseGig(context.Background(), created.ID, models.GigClose{})
	require.NoError(t, err)
	createOpenGig(t, s, professor.ID)

	require.NoError(t, s.BrowseGigs(context.Background(), models.GigFilter{Status: models.GigStatusOpen}))
	gigs := s.Gigs()
	require.Len(t, gigs, 1)
	assert.Equal(t, models.GigStatusOpen, gigs[0].Status)
}
