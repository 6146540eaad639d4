package models

// Professor is the professor-side profile record.
type Professor struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Department           string `json:"department"`
	CollegeName          string `json:"college_name,omitempty"`
	Qualification        string `json:"qualification,omitempty"`
	ResearchAreas        string `json:"research_areas,omitempty"`
	ExperienceYears      int    `json:"experience_years,omitempty"`
	PreviousPublications string `json:"previous_publications,omitempty"`
}

// ProfessorUpdate is a partial profile update.
type ProfessorUpdate struct {
	Name                 *string `json:"name,omitempty"`
	Department           *string `json:"department,omitempty"`
	CollegeName          *string `json:"college_name,omitempty"`
	Qualification        *string `json:"qualification,omitempty"`
	ResearchAreas        *string `json:"research_areas,omitempty"`
	ExperienceYears      *int    `json:"experience_years,omitempty"`
	PreviousPublications *string `json:"previous_publications,omitempty"`
}

// Student is the student-side profile record.
type Student struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	RegNo       string   `json:"reg_no"`
	Department  string   `json:"department"`
	Year        int      `json:"year"`
	CollegeName string   `json:"college_name,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	ResumeURL   string   `json:"resume_url,omitempty"`
	Bio         string   `json:"bio,omitempty"`
}

// StudentUpdate is a partial profile update.
type StudentUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Department  *string   `json:"department,omitempty"`
	Year        *int      `json:"year,omitempty"`
	CollegeName *string   `json:"college_name,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
	ResumeURL   *string   `json:"resume_url,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
}
