package api

import (
	"context"
	"net/http"
	"net/url"

	"campusgig/internal/models"
)

// CreateGig posts a new gig; the backend assigns id and the initial open status.
func (c *Client) CreateGig(ctx context.Context, req models.GigCreate) (*models.Gig, error) {
	var out models.Gig
	if err := c.do(ctx, http.MethodPost, "/gigs", "gigs", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListGigs returns the public gig listing, optionally filtered.
func (c *Client) ListGigs(ctx context.Context, filter models.GigFilter) ([]models.Gig, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.ProfessorID != "" {
		query.Set("professor_id", filter.ProfessorID)
	}
	path := "/gigs"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var out []models.Gig
	if err := c.do(ctx, http.MethodGet, path, "gigs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProfessorGigs returns every gig owned by the professor, in server order.
func (c *Client) ProfessorGigs(ctx context.Context, professorID string) ([]models.Gig, error) {
	var out []models.Gig
	if err := c.do(ctx, http.MethodGet, "/gigs/professor/"+url.PathEscape(professorID), "gigs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetGig fetches a single gig.
func (c *Client) GetGig(ctx context.Context, gigID string) (*models.Gig, error) {
	var out models.Gig
	if err := c.do(ctx, http.MethodGet, "/gigs/"+url.PathEscape(gigID), "gigs", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateGig applies a partial update of descriptive fields.
func (c *Client) UpdateGig(ctx context.Context, gigID string, req models.GigUpdate) (*models.Gig, error) {
	var out models.Gig
	if err := c.do(ctx, http.MethodPut, "/gigs/"+url.PathEscape(gigID), "gigs", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CloseGig transitions the gig to closed, attaching the publication record.
func (c *Client) CloseGig(ctx context.Context, gigID string, req models.GigClose) (*models.Gig, error) {
	var out models.Gig
	if err := c.do(ctx, http.MethodPut, "/gigs/"+url.PathEscape(gigID)+"/close", "gigs", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HoldGig transitions the gig to on-hold with a reason.
func (c *Client) HoldGig(ctx context.Context, gigID string, req models.GigHold) (*models.Gig, error) {
	var out models.Gig
	if err := c.do(ctx, http.MethodPut, "/gigs/"+url.PathEscape(gigID)+"/hold", "gigs", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivateGig reopens an on-hold gig; the backend clears the hold reason.
func (c *Client) ActivateGig(ctx context.Context, gigID string) (*models.Gig, error) {
	var out models.Gig
	if err := c.do(ctx, http.MethodPut, "/gigs/"+url.PathEscape(gigID)+"/activate", "gigs", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteGig removes the gig.
func (c *Client) DeleteGig(ctx context.Context, gigID string) error {
	return c.do(ctx, http.MethodDelete, "/gigs/"+url.PathEscape(gigID), "gigs", nil, nil)
}
