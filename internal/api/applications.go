package api

import (
	"context"
	"net/http"
	"net/url"

	"campusgig/internal/models"
)

// CreateApplication submits an application; the backend stamps status=pending
// and applied_at.
func (c *Client) CreateApplication(ctx context.Context, req models.ApplicationCreate) (*models.Application, error) {
	var out models.Application
	if err := c.do(ctx, http.MethodPost, "/applications", "applications", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GigApplications lists every application against a gig.
func (c *Client) GigApplications(ctx context.Context, gigID string) ([]models.Application, error) {
	var out []models.Application
	if err := c.do(ctx, http.MethodGet, "/applications/gig/"+url.PathEscape(gigID), "applications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateApplicationStatus decides a pending application. Already-decided
// records are rejected by the backend.
func (c *Client) UpdateApplicationStatus(ctx context.Context, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	var out models.Application
	path := "/applications/" + url.PathEscape(applicationID) + "/status?status=" + url.QueryEscape(string(status))
	if err := c.do(ctx, http.MethodPut, path, "applications", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckApplication reports whether the student already applied to the gig,
// returning the existing record when there is one.
func (c *Client) CheckApplication(ctx context.Context, gigID, studentID string) (*models.ApplicationCheck, error) {
	var out models.ApplicationCheck
	path := "/applications/check/" + url.PathEscape(gigID) + "/" + url.PathEscape(studentID)
	if err := c.do(ctx, http.MethodGet, path, "applications", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
