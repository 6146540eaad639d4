// Package guard decides whether a session may enter a route subtree. It is a
// UX convenience only; the backend enforces the real authorization.
package guard

import (
	"strings"

	"campusgig/internal/models"
)

const (
	ProfessorLoginPath     = "/login"
	StudentLoginPath       = "/student/login"
	ProfessorDashboardPath = "/professor/dashboard"
	StudentDashboardPath   = "/student/dashboard"
)

// Decision is the outcome of evaluating one navigation.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Evaluate applies the routing policy to the requested path. It is a pure
// function of session and path and must be re-run on every navigation.
//
// Policy, in order: unauthenticated goes to the login matching the path's
// top-level segment; a role mismatch goes to the other role's dashboard;
// otherwise the subtree renders.
func Evaluate(session models.Session, path string) Decision {
	if !session.IsAuthenticated {
		if isSubtree(path, "/student") {
			return Decision{RedirectTo: StudentLoginPath}
		}
		return Decision{RedirectTo: ProfessorLoginPath}
	}

	if isSubtree(path, "/student") && session.UserType != models.UserTypeStudent {
		return Decision{RedirectTo: ProfessorDashboardPath}
	}
	if isSubtree(path, "/professor") && session.UserType != models.UserTypeProfessor {
		return Decision{RedirectTo: StudentDashboardPath}
	}

	return Decision{Allow: true}
}

// isSubtree reports whether path sits under the given top-level segment.
func isSubtree(path, segment string) bool {
	return path == segment || strings.HasPrefix(path, segment+"/")
}
