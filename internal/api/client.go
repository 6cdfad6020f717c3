// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package api wraps outgoing HTTP calls to the content backend. It attaches
// bearer credentials, serializes bodies (JSON, or multipart for file-bearing
// requests), turns non-2xx responses into typed errors, and performs a
// one-time token refresh and retry on authentication failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lingopress/internal/models"
)

// TokenSource supplies the current credential pair and persists a refreshed
// one. It is the session's view into the transport layer; the client never
// stores tokens itself.
type TokenSource interface {
	AccessToken() string
	RefreshToken() string
	// Store persists a refreshed token pair so later requests use it.
	Store(ctx context.Context, pair models.TokenPair) error
}

type ctxKey struct{}

// WithTokenSource returns a context whose requests authenticate with ts.
// Requests without a token source (login, refresh) go out unauthenticated.
func WithTokenSource(ctx context.Context, ts TokenSource) context.Context {
	return context.WithValue(ctx, ctxKey{}, ts)
}

func tokenSourceFrom(ctx context.Context) TokenSource {
	ts, _ := ctx.Value(ctxKey{}).(TokenSource)
	return ts
}

// Client is the transport client for the content backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL (e.g. "https://api.example.com/api/v1").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

// Delete performs a DELETE request. The backend returns an empty body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// PostForm performs a POST request with a multipart body. Used whenever the
// payload carries a file.
func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return fmt.Errorf("encode multipart: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

// PutForm performs a PUT request with a multipart body.
func (c *Client) PutForm(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return fmt.Errorf("encode multipart: %w", err)
	}
	return c.do(ctx, http.MethodPut, path, body, contentType, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	contentType := ""
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		contentType = "application/json"
	}
	return c.do(ctx, method, path, payload, contentType, out)
}

// do executes one request, retrying exactly once after a token refresh when
// the backend answers 401/403 and a token source is available. The body is
// held as bytes so the retry can resend it.
func (c *Client) do(ctx context.Context, method, path string, body []byte, contentType string, out any) error {
	ts := tokenSourceFrom(ctx)

	resp, err := c.send(ctx, method, path, body, contentType, ts)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		resp.Body.Close()
		if ts == nil {
			return ErrUnauthenticated
		}
		if err := c.refresh(ctx, ts); err != nil {
			slog.Warn("token refresh failed", "error", err)
			return ErrUnauthenticated
		}
		resp, err = c.send(ctx, method, path, body, contentType, ts)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			resp.Body.Close()
			return ErrUnauthenticated
		}
	}

	return decode(resp, out)
}

// send builds and executes a single HTTP request.
func (c *Client) send(ctx context.Context, method, path string, body []byte, contentType string, ts TokenSource) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if ts != nil {
		if access := ts.AccessToken(); access != "" {
			req.Header.Set("Authorization", "Bearer "+access)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// refresh exchanges the refresh token for a new pair and stores it.
// Runs unauthenticated: the expired access token must not ride along.
func (c *Client) refresh(ctx context.Context, ts TokenSource) error {
	payload, err := json.Marshal(models.RefreshRequest{RefreshToken: ts.RefreshToken()})
	if err != nil {
		return fmt.Errorf("marshal refresh request: %w", err)
	}

	resp, err := c.send(ctx, http.MethodPost, "/auth/refresh", payload, "application/json", nil)
	if err != nil {
		return err
	}

	var pair models.TokenPair
	if err := decode(resp, &pair); err != nil {
		return err
	}
	if err := ts.Store(ctx, pair); err != nil {
		return fmt.Errorf("store refreshed tokens: %w", err)
	}

	slog.Debug("access token refreshed")
	return nil
}

// decode reads the response, mapping non-2xx statuses to *APIError.
func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Body: data}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &envelope) == nil {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
