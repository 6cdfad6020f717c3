// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package services

import (
	"context"

	"lingopress/internal/api"
	"lingopress/internal/models"
)

// Auth builds requests for the backend's session endpoints.
type Auth struct {
	client *api.Client
}

// NewAuth creates the auth service.
func NewAuth(client *api.Client) *Auth {
	return &Auth{client: client}
}

// Login exchanges credentials for a token pair. Runs unauthenticated.
func (s *Auth) Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error) {
	var pair models.TokenPair
	err := s.client.Post(ctx, "/auth/login", req, &pair)
	return pair, err
}

// Logout invalidates the backend session for the current credentials.
func (s *Auth) Logout(ctx context.Context) error {
	return s.client.Post(ctx, "/auth/logout", nil, nil)
}
