// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// TagTranslation is the per-language variant of a tag.
type TagTranslation struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
}

// Tag labels posts. Color is a "#RRGGBB" hex value rendered as a swatch.
// Name is the legacy flat field for pre-translation records.
type Tag struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name,omitempty"`
	Slug         string           `json:"slug"`
	Color        string           `json:"color"`
	Translations []TagTranslation `json:"translations"`
}

// TagRequest is the create/update payload for a tag.
type TagRequest struct {
	Slug         string           `json:"slug"`
	Color        string           `json:"color"`
	Translations []TagTranslation `json:"translations"`
}
