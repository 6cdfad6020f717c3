// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// PostStatus is the publishing state of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
)

// PostTranslation is the per-language variant of a post.
// "Expert" is the backend's (misspelled) name for the excerpt field and is
// kept as-is for wire parity.
type PostTranslation struct {
	LanguageCode string `json:"languageCode"`
	Title        string `json:"title"`
	Expert       string `json:"expert"`
	Content      string `json:"content"`
}

// Post is a blog post. It has exactly one category and zero or more tags;
// tag summaries are embedded on read. Title/Content/Expert are the legacy
// flat fields for pre-translation records.
type Post struct {
	ID             int64             `json:"id"`
	Title          string            `json:"title,omitempty"`
	Slug           string            `json:"slug"`
	Content        string            `json:"content,omitempty"`
	Expert         string            `json:"expert,omitempty"`
	FeaturedImage  string            `json:"featuredImage,omitempty"`
	PublishedAt    string            `json:"publishedAt,omitempty"`
	Status         PostStatus        `json:"status"`
	Translations   []PostTranslation `json:"translations"`
	Category       *Category         `json:"category,omitempty"`
	AuthorUsername string            `json:"authorUsername,omitempty"`
	Tags           []Tag             `json:"tags"`
}

// PostRequest is the create/update payload for a post. Image holds the
// optional featured image; when present the request is sent as multipart.
type PostRequest struct {
	Slug         string            `json:"slug"`
	CategoryID   int64             `json:"categoryId"`
	Tags         []Tag             `json:"tags"`
	Status       PostStatus        `json:"status"`
	Translations []PostTranslation `json:"translations"`
	Image        *Upload           `json:"-"`
}
