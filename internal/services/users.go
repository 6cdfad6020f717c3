// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package services

import (
	"context"
	"fmt"

	"lingopress/internal/api"
	"lingopress/internal/models"
)

// Users builds requests for the user resource. Create and update are sent
// as multipart because the payload may carry a profile image.
type Users struct {
	client *api.Client
}

// NewUsers creates the user service.
func NewUsers(client *api.Client) *Users {
	return &Users{client: client}
}

func (s *Users) List(ctx context.Context, p models.ListParams) (models.Page[models.User], error) {
	var page models.Page[models.User]
	err := s.client.Get(ctx, "/admin/users?"+p.Encode(), &page)
	return page, err
}

func (s *Users) Get(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := s.client.Get(ctx, fmt.Sprintf("/admin/users/%d", id), &u)
	return u, err
}

func (s *Users) Create(ctx context.Context, req models.UserRequest) (models.User, error) {
	var u models.User
	err := s.client.PostForm(ctx, "/admin/users", userForm(req), &u)
	return u, err
}

func (s *Users) Update(ctx context.Context, id int64, req models.UserRequest) (models.User, error) {
	var u models.User
	err := s.client.PutForm(ctx, fmt.Sprintf("/admin/users/%d", id), userForm(req), &u)
	return u, err
}

func (s *Users) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/admin/users/%d", id))
}

// Me fetches the current session identity.
func (s *Users) Me(ctx context.Context) (models.User, error) {
	var u models.User
	err := s.client.Get(ctx, "/users/me", &u)
	return u, err
}

// userForm flattens a user payload into multipart fields. Password and the
// optional fields are omitted when empty so the backend keeps current values.
func userForm(req models.UserRequest) *api.Form {
	form := api.NewForm().
		Set("username", req.Username).
		Set("email", req.Email).
		Set("firstName", req.FirstName).
		Set("lastName", req.LastName).
		SetBool("isActive", req.IsActive)

	if req.Password != "" {
		form.Set("password", req.Password)
	}
	if req.Role != "" {
		form.Set("role", req.Role)
	}
	if req.Bio != "" {
		form.Set("bio", req.Bio)
	}
	form.AddFile("profileImage", req.ProfileImage)
	return form
}
