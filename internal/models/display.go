// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Display-name resolution for translated records.
//
// Older backend records predate translations and carry only flat name/title
// fields; newer ones may lack the active language. Every view resolves the
// label the same way: translation matching the active language, else the
// first translation, else the legacy flat field. This is the single home of
// that fallback — views must not reimplement it.

// resolve picks from translations by language with first-entry fallback.
func resolve[T any](translations []T, lang string, code func(T) string, value func(T) string) (string, bool) {
	for _, tr := range translations {
		if code(tr) == lang && value(tr) != "" {
			return value(tr), true
		}
	}
	for _, tr := range translations {
		if value(tr) != "" {
			return value(tr), true
		}
	}
	return "", false
}

// DisplayName resolves the category label for the given active language.
func (c Category) DisplayName(lang string) string {
	if name, ok := resolve(c.Translations, lang,
		func(t CategoryTranslation) string { return t.LanguageCode },
		func(t CategoryTranslation) string { return t.Name },
	); ok {
		return name
	}
	return c.Name
}

// DisplayDescription resolves the category description for the given language.
func (c Category) DisplayDescription(lang string) string {
	if desc, ok := resolve(c.Translations, lang,
		func(t CategoryTranslation) string { return t.LanguageCode },
		func(t CategoryTranslation) string { return t.Description },
	); ok {
		return desc
	}
	return c.Description
}

// DisplayName resolves the tag label for the given active language.
func (t Tag) DisplayName(lang string) string {
	if name, ok := resolve(t.Translations, lang,
		func(tr TagTranslation) string { return tr.LanguageCode },
		func(tr TagTranslation) string { return tr.Name },
	); ok {
		return name
	}
	return t.Name
}

// DisplayTitle resolves the post title for the given active language.
func (p Post) DisplayTitle(lang string) string {
	if title, ok := resolve(p.Translations, lang,
		func(tr PostTranslation) string { return tr.LanguageCode },
		func(tr PostTranslation) string { return tr.Title },
	); ok {
		return title
	}
	return p.Title
}

// DisplayExpert resolves the post excerpt for the given active language.
func (p Post) DisplayExpert(lang string) string {
	if expert, ok := resolve(p.Translations, lang,
		func(tr PostTranslation) string { return tr.LanguageCode },
		func(tr PostTranslation) string { return tr.Expert },
	); ok {
		return expert
	}
	return p.Expert
}

// DisplayContent resolves the post body for the given active language.
func (p Post) DisplayContent(lang string) string {
	if content, ok := resolve(p.Translations, lang,
		func(tr PostTranslation) string { return tr.LanguageCode },
		func(tr PostTranslation) string { return tr.Content },
	); ok {
		return content
	}
	return p.Content
}
