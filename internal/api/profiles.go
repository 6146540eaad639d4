package api

import (
	"context"
	"net/http"
	"net/url"

	"campusgig/internal/models"
)

// GetProfessor fetches a professor profile.
func (c *Client) GetProfessor(ctx context.Context, professorID string) (*models.Professor, error) {
	var out models.Professor
	if err := c.do(ctx, http.MethodGet, "/professors/"+url.PathEscape(professorID), "professors", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfessor applies a partial profile update.
func (c *Client) UpdateProfessor(ctx context.Context, professorID string, req models.ProfessorUpdate) (*models.Professor, error) {
	var out models.Professor
	if err := c.do(ctx, http.MethodPut, "/professors/"+url.PathEscape(professorID), "professors", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProfessor creates a profile record outside the register flow.
func (c *Client) CreateProfessor(ctx context.Context, req models.Professor) (*models.Professor, error) {
	var out models.Professor
	if err := c.do(ctx, http.MethodPost, "/professors", "professors", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProfessors returns all professor profiles.
func (c *Client) ListProfessors(ctx context.Context) ([]models.Professor, error) {
	var out []models.Professor
	if err := c.do(ctx, http.MethodGet, "/professors", "professors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStudent fetches a student profile.
func (c *Client) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	var out models.Student
	if err := c.do(ctx, http.MethodGet, "/students/"+url.PathEscape(studentID), "students", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStudent applies a partial profile update.
func (c *Client) UpdateStudent(ctx context.Context, studentID string, req models.StudentUpdate) (*models.Student, error) {
	var out models.Student
	if err := c.do(ctx, http.MethodPut, "/students/"+url.PathEscape(studentID), "students", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudentApplications lists every application the student has submitted.
func (c *Client) StudentApplications(ctx context.Context, studentID string) ([]models.Application, error) {
	var out []models.Application
	if err := c.do(ctx, http.MethodGet, "/students/"+url.PathEscape(studentID)+"/applications", "students", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
