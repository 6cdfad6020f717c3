// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthenticated is returned when a request failed with 401/403 and the
// one-time token refresh also failed. Callers must destroy the session and
// redirect to the login screen.
var ErrUnauthenticated = errors.New("authentication required")

// APIError is any non-2xx backend response. Message carries the backend's
// {"message": ...} payload verbatim: form controllers match substrings of it
// ("already exists", "Parent category not found") to target specific fields,
// so it must never be rewritten.
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

// AsAPIError unwraps an *APIError from err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusNotFound
}

// Message extracts a user-presentable message from err. Transport-level
// failures have no backend message and fall back to the generic text the
// views show for unknown errors.
func Message(err error) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Bilinmeyen hata"
}
