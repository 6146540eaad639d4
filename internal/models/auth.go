package models

// LoginRequest is shared by the professor and student login endpoints.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest registers a professor through POST /auth/register.
type RegisterRequest struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required"`
	Department           string `json:"department" validate:"required"`
	CollegeName          string `json:"college_name,omitempty"`
	Qualification        string `json:"qualification" validate:"required"`
	ResearchAreas        string `json:"research_areas,omitempty"`
	ExperienceYears      int    `json:"experience_years,omitempty"`
	PreviousPublications string `json:"previous_publications,omitempty"`
}

// StudentRegisterRequest registers a student through POST /students/register.
type StudentRegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	RegNo       string `json:"reg_no" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Year        int    `json:"year" validate:"required"`
	CollegeName string `json:"college_name,omitempty"`
}

// AuthResponse is the token envelope returned by the login endpoints. The
// backend includes the id of the signed-in principal under a role-specific key.
type AuthResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ProfessorID string   `json:"professor_id,omitempty"`
	StudentID   string   `json:"student_id,omitempty"`
	Student     *Student `json:"student,omitempty"`
}

// UserID returns whichever principal id the backend filled in.
func (r *AuthResponse) UserID() string {
	if r.ProfessorID != "" {
		return r.ProfessorID
	}
	return r.StudentID
}
