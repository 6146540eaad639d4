package api_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusgig/internal/api"
	"campusgig/internal/apitest"
	"campusgig/internal/models"
	"campusgig/pkg/apperrors"
)

func TestClient_ProfessorAuthFlow(t *testing.T) {
	t.Parallel()
	server := apitest.New(t)
	client := api.NewClient(server.URL(), nil, nil)
	ctx := context.Background()

	prof, err := client.Register(ctx, models.RegisterRequest{
		Name:          "Ada Lovelace",
		Email:         "ada@uni.edu",
		Password:      "pw",
		Department:    "CS",
		Qualification: "PhD",
	})
	require.NoError(t, err)
	require.NotEmpty(t, prof.ID)

	auth, err := client.Login(ctx, models.LoginRequest{Email: "ada@uni.edu", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", auth.TokenType)
	assert.Equal(t, prof.ID, auth.ProfessorID)
	assert.Equal(t, prof.ID, auth.UserID())
	assert.Nil(t, auth.Student)

	me, err := client.Me(ctx, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, prof.Email, me.Email)
}

func TestClient_StudentLoginEmbedsProfile(t *testing.T) {
	t.Parallel()
	server := apitest.New(t)
	client := api.NewClient(server.URL(), nil, nil)
	ctx := context.Background()

	student := server.SeedStudent(t, "Grace Hopper", "grace@uni.edu", "pw")

	auth, err := client.StudentLogin(ctx, models.LoginRequest{Email: "grace@uni.edu", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, student.ID, auth.StudentID)
	require.NotNil(t, auth.Student)
	assert.Equal(t, student.Name, auth.Student.Name)
}

func TestClient_StudentRegisterThenLogin(t *testing.T) {
	t.Parallel()
	server := apitest.New(t)
	client := api.NewClient(server.URL(), nil, nil)
	ctx := context.Background()

	created, err := client.StudentRegister(ctx, models.StudentRegisterRequest{
		Name:       "Grace Hopper",
		Email:      "grace@uni.edu",
		Password:   "pw",
		RegNo:      "21BCE1001",
		Department: "CS",
		Year:       3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "21BCE1001", created.RegNo)

	auth, err := client.StudentLogin(ctx, models.LoginRequest{Email: "grace@uni.edu", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, auth.StudentID)

	// The same registration number may not be claimed twice.
	_, err = client.StudentRegister(ctx, models.StudentRegisterRequest{
		Name:       "Other Student",
		Email:      "other@uni.edu",
		Password:   "pw",
		RegNo:      "21BCE1001",
		Department: "CS",
		Year:       2,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidationFailed, apperrors.CodeOf(err))
}

func TestClient_UnreadCount(t *testing.T) {
	t.Parallel()
	server := apitest.New(t)
	client := api.NewClient(server.URL(), nil, nil)
	ctx := context.Background()

	student := server.SeedStudent(t, "Grace Hopper", "grace@uni.edu", "pw")
	first := server.SeedNotification(student.ID, models.UserTypeStudent, "a", "a")
	server.SeedNotification(student.ID, models.UserTypeStudent, "b", "b")

	count, err := client.UnreadCount(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, client.MarkNotificationRead(ctx, first.ID))
	count, err = client.UnreadCount(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestClient_ProfessorDirectory(t *testing.T) {
	t.Parallel()
	server := apitest.New(t)
	client := api.NewClient(server.URL(), nil, nil)
	ctx := context.Background()

	seeded := server.SeedProfessor(t, "Ada Lovelace", "ada@uni.edu", "pw")

	created, err := client.CreateProfessor(ctx, models.Professor{
		Name:       "Alan Turing",
		Email:      "alan@uni.edu",
		Department: "CS",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	all, err := client.ListProfessors(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	ids := []string{all[0].ID, all[1].ID}
	assert.Contains(t, ids, seeded.ID)
	assert.Contains(t, ids, created.ID)
}

func TestClient_ErrorCodeMapping(t *testing.T) {
	t.Parallel()
	server := apitest.New(t)
	client := api.NewClient(server.URL(), nil, nil)
	ctx := context.Background()

	_, err := client.GetGig(ctx, "no-such-gig")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))

	_, err = client.Login(ctx, models.LoginRequest{Email: "ghost@uni.edu", Password: "pw"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeUnauthorized, apperrors.CodeOf(err))
	// The backend's detail string is surfaced verbatim.
	assert.Contains(t, err.Error(), "Incorrect email or password")
}

func TestClient_NetworkErrorsAreDistinct(t *testing.T) {
	t.Parallel()
	server := apitest.New(t)
	base := server.URL()
	server.Close()

	client := api.NewClient(base, nil, nil)
	_, err := client.GetGig(context.Background(), "any")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNetworkError, apperrors.CodeOf(err))
}

func TestClient_BearerTokenAttached(t *testing.T) {
	t.Parallel()
	server := apitest.New(t)
	prof := server.SeedProfessor(t, "Ada Lovelace", "ada@uni.edu", "pw")

	anon := api.NewClient(server.URL(), nil, nil)
	auth, err := anon.Login(context.Background(), models.LoginRequest{Email: "ada@uni.edu", Password: "pw"})
	require.NoError(t, err)

	client := api.NewClient(server.URL(), staticToken(auth.AccessToken), nil)
	got, err := client.GetProfessor(context.Background(), prof.ID)
	require.NoError(t, err)
	assert.Equal(t, prof.ID, got.ID)
}

type staticToken string

func (s staticToken) Token() string { return string(s) }
