// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// CategoryTranslation is the per-language variant of a category.
type CategoryTranslation struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

// Category is a hierarchical content category. ParentID is nil for root
// categories. Name and Description are legacy flat fields kept by the
// backend for records created before translations existed.
type Category struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name,omitempty"`
	Slug          string                `json:"slug"`
	Description   string                `json:"description,omitempty"`
	IsActive      bool                  `json:"isActive"`
	ParentID      *int64                `json:"parentId"`
	Translations  []CategoryTranslation `json:"translations"`
	Subcategories []Category            `json:"subcategories,omitempty"`
}

// CategoryRequest is the create/update payload for a category.
type CategoryRequest struct {
	Slug         string                `json:"slug"`
	ParentID     *int64                `json:"parentId"`
	Translations []CategoryTranslation `json:"translations"`
}
