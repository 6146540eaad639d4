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
)

func TestProfessorStore_FetchAndUpdate(t *testing.T) {
	t.Parallel()
	server := apitest.New(t)
	prof := server.SeedProfessor(t, "Ada Lovelace", "ada@uni.edu", "pw")
	client := api.NewClient(server.URL(), nil, nil)
	s := store.NewProfessorStore(client)
	ctx := context.Background()

	require.Nil(t, s.Profile())
	require.NoError(t, s.FetchProfile(ctx, prof.ID))
	require.NotNil(t, s.Profile())
	assert.Equal(t, "Ada Lovelace", s.Profile().Name)

	dept := "Mathematics"
	require.NoError(t, s.UpdateProfile(ctx, prof.ID, models.ProfessorUpdate{Department: &dept}))
	assert.Equal(t, "Mathematics", s.Profile().Department)
	// Untouched fields survive the partial update.
	assert.Equal(t, "Ada Lovelace", s.Profile().Name)
}

func TestProfessorStore_FailureKeepsProfile(t *testing.T) {
	t.Parallel()
	server := apitest.New(t)
	prof := server.SeedProfessor(t, "Ada Lovelace", "ada@uni.edu", "pw")
	client := api.NewClient(server.URL(), nil, nil)
	s := store.NewProfessorStore(client)
	ctx := context.Background()

	require.NoError(t, s.FetchProfile(ctx, prof.ID))
	require.Error(t, s.FetchProfile(ctx, "no-such-professor"))

	assert.NotEmpty(t, s.Error())
	require.NotNil(t, s.Profile())
	assert.Equal(t, prof.ID, s.Profile().ID)
	assert.False(t, s.Loading())

	s.ClearError()
	assert.Empty(t, s.Error())
}

func TestStudentStore_ApplicationsAndClear(t *testing.T) {
	t.Parallel()
	server := apitest.New(t)
	prof := server.SeedProfessor(t, "Ada Lovelace", "ada@uni.edu", "pw")
	student := server.SeedStudent(t, "Grace Hopper", "grace@uni.edu", "pw")
	client := api.NewClient(server.URL(), nil, nil)
	ctx := context.Background()

	gig, err := client.CreateGig(ctx, models.GigCreate{
		ProfessorID: prof.ID,
		Title:       "RA position",
		Description: "Research assistant",
		AreaOfStudy: "ML",
	})
	require.NoError(t, err)
	_, err = client.CreateApplication(ctx, models.ApplicationCreate{
		GigID:        gig.ID,
		StudentID:    student.ID,
		StudentName:  student.Name,
		StudentEmail: student.Email,
		ResumeLink:   "https://example.com/resume.pdf",
	})
	require.NoError(t, err)

	s := store.NewStudentStore(client)
	require.NoError(t, s.FetchProfile(ctx, student.ID))
	require.NoError(t, s.FetchApplications(ctx, student.ID))

	apps := s.Applications()
	require.Len(t, apps, 1)
	assert.Equal(t, gig.ID, apps[0].GigID)
	assert.Equal(t, models.ApplicationStatusPending, apps[0].Status)

	s.Clear()
	assert.Nil(t, s.Profile())
	assert.Empty(t, s.Applications())
	assert.Empty(t, s.Error())
}
