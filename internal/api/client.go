// Package api wraps the marketplace REST boundary. Every mutating call returns
// the full updated resource; callers replace their local copies wholesale.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"campusgig/internal/logger"
	"campusgig/pkg/apperrors"
)

// TokenSource supplies the bearer token attached to every request. The session
// store implements this; an empty token sends the request unauthenticated.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// NewClient builds a client for the given base URL (including the /api
// prefix). httpClient may be nil; no client-side timeout is configured, a hung
// request stays in flight until the backend answers.
func NewClient(baseURL string, tokens TokenSource, httpClient *http.Client) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    trimmed,
		tokens:     tokens,
		httpClient: httpClient,
	}
}

// errorResponse is the backend's failure envelope.
type errorResponse struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// do performs one JSON request. A non-nil out receives the decoded response
// body. Failures come back as *apperrors.AppError tagged with domain.
func (c *Client) do(ctx context.Context, method, path, domain string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.CodeInternalError, domain, "encode request", 0)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternalError, domain, "create request", 0)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NetworkError(fmt.Errorf("%s %s: %w", method, path, err))
	}
	defer resp.Body.Close()
	logger.HTTPLog(method, path, resp.StatusCode, time.Since(start))

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NetworkError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.FromResponse(domain, resp.StatusCode, decodeErrorMessage(payload))
	}

	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return apperrors.Wrap(err, apperrors.CodeExternalServiceError, domain, "decode response", resp.StatusCode)
		}
	}
	return nil
}

func decodeErrorMessage(payload []byte) string {
	var parsed errorResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return strings.TrimSpace(string(payload))
	}
	if parsed.Detail != "" {
		return parsed.Detail
	}
	return parsed.Message
}
