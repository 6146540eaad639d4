package models

// Gig is a research opportunity posted by a professor.
//
// PublicationLink and PublicationVenue are authoritative only while the gig is
// closed; PausedReason only while it is on-hold.
type Gig struct {
	ID               string    `json:"id"`
	ProfessorID      string    `json:"professor_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	AreaOfStudy      string    `json:"area_of_study"`
	Technologies     string    `json:"technologies,omitempty"`
	TargetType       string    `json:"target_type,omitempty"`
	PaperType        string    `json:"paper_type,omitempty"`
	Timeline         string    `json:"timeline,omitempty"`
	YearRequirement  string    `json:"year_requirement,omitempty"`
	CGPARequirement  string    `json:"cgpa_requirement,omitempty"`
	Funded           bool      `json:"funded"`
	CandidateCount   int       `json:"candidate_count,omitempty"`
	Status           GigStatus `json:"status"`
	PublicationLink  string    `json:"publication_link,omitempty"`
	PublicationVenue string    `json:"publication_venue,omitempty"`
	PausedReason     string    `json:"paused_reason,omitempty"`
}

// GigCreate is the payload for posting a new gig.
type GigCreate struct {
	ProfessorID     string `json:"professor_id" validate:"required"`
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	AreaOfStudy     string `json:"area_of_study" validate:"required"`
	Technologies    string `json:"technologies,omitempty"`
	TargetType      string `json:"target_type,omitempty"`
	PaperType       string `json:"paper_type,omitempty"`
	Timeline        string `json:"timeline,omitempty"`
	YearRequirement string `json:"year_requirement,omitempty"`
	CGPARequirement string `json:"cgpa_requirement,omitempty"`
	Funded          bool   `json:"funded,omitempty"`
	CandidateCount  int    `json:"candidate_count,omitempty"`
}

// GigUpdate is a partial update of descriptive fields. Nil means "leave as is";
// lifecycle fields are never touched through this payload.
type GigUpdate struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	AreaOfStudy     *string `json:"area_of_study,omitempty"`
	Technologies    *string `json:"technologies,omitempty"`
	TargetType      *string `json:"target_type,omitempty"`
	PaperType       *string `json:"paper_type,omitempty"`
	Timeline        *string `json:"timeline,omitempty"`
	YearRequirement *string `json:"year_requirement,omitempty"`
	CGPARequirement *string `json:"cgpa_requirement,omitempty"`
	Funded          *bool   `json:"funded,omitempty"`
	CandidateCount  *int    `json:"candidate_count,omitempty"`
}

// GigClose carries the optional publication record attached when closing.
type GigClose struct {
	PublicationLink  string `json:"publication_link,omitempty"`
	PublicationVenue string `json:"publication_venue,omitempty"`
}

// GigHold carries the mandatory reason for pausing a gig.
type GigHold struct {
	PausedReason string `json:"paused_reason" validate:"required"`
}

// GigFilter narrows the public gig listing.
type GigFilter struct {
	Status      GigStatus
	ProfessorID string
}
