package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusgig/internal/models"
)

func studentSession() models.Session {
	return models.Session{
		Token:           "t",
		UserID:          "s1",
		UserType:        models.UserTypeStudent,
		IsAuthenticated: true,
	}
}

func professorSession() models.Session {
	return models.Session{
		Token:           "t",
		UserID:          "p1",
		UserType:        models.UserTypeProfessor,
		IsAuthenticated: true,
	}
}

func TestEvaluate_Unauthenticated(t *testing.T) {
	t.Parallel()

	empty := models.Session{}

	d := Evaluate(empty, "/student/dashboard")
	assert.False(t, d.Allow)
	assert.Equal(t, StudentLoginPath, d.RedirectTo)

	d = Evaluate(empty, "/professor/dashboard")
	assert.False(t, d.Allow)
	assert.Equal(t, ProfessorLoginPath, d.RedirectTo)

	// Anything outside the student subtree routes to the professor login.
	d = Evaluate(empty, "/somewhere/else")
	assert.Equal(t, ProfessorLoginPath, d.RedirectTo)
}

func TestEvaluate_RoleMismatch(t *testing.T) {
	t.Parallel()

	d := Evaluate(studentSession(), "/professor/gigs")
	assert.False(t, d.Allow)
	assert.Equal(t, StudentDashboardPath, d.RedirectTo)

	d = Evaluate(professorSession(), "/student/gigs/apply")
	assert.False(t, d.Allow)
	assert.Equal(t, ProfessorDashboardPath, d.RedirectTo)
}

func TestEvaluate_Allowed(t *testing.T) {
	t.Parallel()

	assert.True(t, Evaluate(studentSession(), "/student/dashboard").Allow)
	assert.True(t, Evaluate(professorSession(), "/professor/gigs").Allow)
	// Subtree match is on the path segment, not a raw prefix.
	assert.True(t, Evaluate(professorSession(), "/studentships").Allow)
}

func TestEvaluate_AfterLogout(t *testing.T) {
	t.Parallel()

	session := studentSession()
	d := Evaluate(session, "/student/dashboard")
	assert.True(t, d.Allow)

	// Logout clears the session; the very next evaluation must redirect.
	session = models.Session{}
	d = Evaluate(session, "/student/dashboard")
	assert.False(t, d.Allow)
	assert.Equal(t, StudentLoginPath, d.RedirectTo)
}
