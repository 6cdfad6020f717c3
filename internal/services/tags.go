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

// Tags builds requests for the tag resource.
type Tags struct {
	client *api.Client
}

// NewTags creates the tag service.
func NewTags(client *api.Client) *Tags {
	return &Tags{client: client}
}

func (s *Tags) List(ctx context.Context, p models.ListParams) (models.Page[models.Tag], error) {
	var page models.Page[models.Tag]
	err := s.client.Get(ctx, "/admin/tags/translated?"+p.Encode(), &page)
	return page, err
}

func (s *Tags) Get(ctx context.Context, id int64) (models.Tag, error) {
	var t models.Tag
	err := s.client.Get(ctx, fmt.Sprintf("/admin/tags/%d/translated", id), &t)
	return t, err
}

func (s *Tags) Create(ctx context.Context, req models.TagRequest) (models.Tag, error) {
	var t models.Tag
	err := s.client.Post(ctx, "/admin/tags", req, &t)
	return t, err
}

func (s *Tags) Update(ctx context.Context, id int64, req models.TagRequest) (models.Tag, error) {
	var t models.Tag
	err := s.client.Put(ctx, fmt.Sprintf("/admin/tags/%d", id), req, &t)
	return t, err
}

func (s *Tags) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/admin/tags/%d", id))
}
