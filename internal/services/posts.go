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

// Posts builds requests for the post resource. Reads are JSON; create and
// update go out as multipart because the payload may carry the featured image.
type Posts struct {
	client *api.Client
}

// NewPosts creates the post service.
func NewPosts(client *api.Client) *Posts {
	return &Posts{client: client}
}

func (s *Posts) List(ctx context.Context, p models.ListParams) (models.Page[models.Post], error) {
	var page models.Page[models.Post]
	err := s.client.Get(ctx, "/posts?"+p.Encode(), &page)
	return page, err
}

func (s *Posts) Get(ctx context.Context, id int64) (models.Post, error) {
	var p models.Post
	err := s.client.Get(ctx, fmt.Sprintf("/posts/%d", id), &p)
	return p, err
}

func (s *Posts) Create(ctx context.Context, req models.PostRequest) (models.Post, error) {
	var p models.Post
	err := s.client.PostForm(ctx, "/posts", postForm(req), &p)
	return p, err
}

func (s *Posts) Update(ctx context.Context, id int64, req models.PostRequest) (models.Post, error) {
	var p models.Post
	err := s.client.PutForm(ctx, fmt.Sprintf("/posts/%d", id), postForm(req), &p)
	return p, err
}

func (s *Posts) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/posts/%d", id))
}

// postForm flattens a post payload into multipart fields: scalars, tag ids,
// indexed translation fields and the optional featured image.
func postForm(req models.PostRequest) *api.Form {
	form := api.NewForm().
		Set("slug", req.Slug).
		SetInt("categoryId", req.CategoryID).
		Set("status", string(req.Status))

	for i, tag := range req.Tags {
		form.SetIndexed("tags", i, "id", fmt.Sprintf("%d", tag.ID))
	}
	for i, tr := range req.Translations {
		form.SetIndexed("translations", i, "languageCode", tr.LanguageCode)
		form.SetIndexed("translations", i, "title", tr.Title)
		form.SetIndexed("translations", i, "expert", tr.Expert)
		form.SetIndexed("translations", i, "content", tr.Content)
	}
	form.AddFile("image", req.Image)
	return form
}
