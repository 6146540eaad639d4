package models

import "time"

// Application is a student's submission against a gig. Student fields are a
// snapshot taken at submission time; later profile edits do not flow back into
// an already-submitted application.
type Application struct {
	ID           string            `json:"id"`
	GigID        string            `json:"gig_id"`
	StudentID    string            `json:"student_id"`
	StudentName  string            `json:"student_name"`
	StudentEmail string            `json:"student_email"`
	StudentYear  string            `json:"student_year,omitempty"`
	StudentCGPA  string            `json:"student_cgpa,omitempty"`
	ResumeLink   string            `json:"resume_link"`
	CoverLetter  string            `json:"cover_letter,omitempty"`
	Status       ApplicationStatus `json:"status"`
	AppliedAt    time.Time         `json:"applied_at"`
}

// ApplicationCreate is the payload for submitting an application.
type ApplicationCreate struct {
	GigID        string `json:"gig_id" validate:"required"`
	StudentID    string `json:"student_id" validate:"required"`
	StudentName  string `json:"student_name" validate:"required"`
	StudentEmail string `json:"student_email" validate:"required,email"`
	StudentYear  string `json:"student_year,omitempty"`
	StudentCGPA  string `json:"student_cgpa,omitempty"`
	ResumeLink   string `json:"resume_link" validate:"required"`
	CoverLetter  string `json:"cover_letter,omitempty"`
}

// ApplicationCheck is the existence-check result for a (gig, student) pair.
type ApplicationCheck struct {
	HasApplied  bool         `json:"has_applied"`
	Application *Application `json:"application,omitempty"`
}
