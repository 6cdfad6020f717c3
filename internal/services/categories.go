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

// Categories builds requests for the category resource. Reads use the
// /translated variants so every translation sub-record comes back embedded.
type Categories struct {
	client *api.Client
}

// NewCategories creates the category service.
func NewCategories(client *api.Client) *Categories {
	return &Categories{client: client}
}

func (s *Categories) List(ctx context.Context, p models.ListParams) (models.Page[models.Category], error) {
	var page models.Page[models.Category]
	err := s.client.Get(ctx, "/admin/categories/translated?"+p.Encode(), &page)
	return page, err
}

func (s *Categories) Get(ctx context.Context, id int64) (models.Category, error) {
	var c models.Category
	err := s.client.Get(ctx, fmt.Sprintf("/admin/categories/%d/translated", id), &c)
	return c, err
}

func (s *Categories) Create(ctx context.Context, req models.CategoryRequest) (models.Category, error) {
	var c models.Category
	err := s.client.Post(ctx, "/admin/categories", req, &c)
	return c, err
}

func (s *Categories) Update(ctx context.Context, id int64, req models.CategoryRequest) (models.Category, error) {
	var c models.Category
	err := s.client.Put(ctx, fmt.Sprintf("/admin/categories/%d", id), req, &c)
	return c, err
}

func (s *Categories) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/admin/categories/%d", id))
}
