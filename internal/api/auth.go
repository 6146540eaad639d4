package api

import (
	"context"
	"net/http"
	"net/url"

	"campusgig/internal/models"
)

// Login signs a professor in and returns the token envelope.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "auth", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a professor account.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.Professor, error) {
	var out models.Professor
	if err := c.do(ctx, http.MethodPost, "/auth/register", "auth", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me resolves a token to the professor it belongs to.
func (c *Client) Me(ctx context.Context, token string) (*models.Professor, error) {
	var out models.Professor
	path := "/auth/me?token=" + url.QueryEscape(token)
	if err := c.do(ctx, http.MethodGet, path, "auth", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudentLogin signs a student in.
func (c *Client) StudentLogin(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/students/login", "auth", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudentRegister creates a student account.
func (c *Client) StudentRegister(ctx context.Context, req models.StudentRegisterRequest) (*models.Student, error) {
	var out models.Student
	if err := c.do(ctx, http.MethodPost, "/students/register", "auth", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
