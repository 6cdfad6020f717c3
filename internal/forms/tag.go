// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package forms

import (
	"net/url"
	"strings"

	"lingopress/internal/i18n"
	"lingopress/internal/models"
)

// TagForm drives the tag create/edit screens.
type TagForm struct {
	Slug         string
	Color        string
	Translations []models.TagTranslation
}

// defaultTagColor matches the color input's initial swatch.
const defaultTagColor = "#3B82F6"

// NewTagForm starts a blank form with one translation in the default language.
func NewTagForm() *TagForm {
	return &TagForm{
		Color:        defaultTagColor,
		Translations: []models.TagTranslation{{LanguageCode: i18n.DefaultCode}},
	}
}

// TagFormFrom pre-fills the form from an existing record.
func TagFormFrom(t models.Tag) *TagForm {
	f := &TagForm{
		Slug:         t.Slug,
		Color:        t.Color,
		Translations: append([]models.TagTranslation(nil), t.Translations...),
	}
	if f.Color == "" {
		f.Color = defaultTagColor
	}
	if len(f.Translations) == 0 {
		f.Translations = append(f.Translations, models.TagTranslation{
			LanguageCode: i18n.DefaultCode,
			Name:         t.Name,
		})
	}
	return f
}

// Bind reads posted values into the form. Rows are kept as posted; duplicate
// or unknown languages surface as Validate errors on the row.
func (f *TagForm) Bind(v url.Values) {
	f.Slug = strings.TrimSpace(v.Get("slug"))
	f.Color = strings.TrimSpace(v.Get("color"))

	f.Translations = nil
	for i := 0; v.Has(translationField(i, "languageCode")); i++ {
		f.Translations = append(f.Translations, models.TagTranslation{
			LanguageCode: strings.TrimSpace(v.Get(translationField(i, "languageCode"))),
			Name:         strings.TrimSpace(v.Get(translationField(i, "name"))),
		})
	}
	if len(f.Translations) == 0 {
		f.Translations = append(f.Translations, models.TagTranslation{LanguageCode: i18n.DefaultCode})
	}
}

// AddTranslation appends an empty row for the first unused language.
func (f *TagForm) AddTranslation() {
	lang, ok := firstUnusedLanguage(f.usedLanguages())
	if !ok {
		return
	}
	f.Translations = append(f.Translations, models.TagTranslation{LanguageCode: lang})
}

// RemoveTranslation deletes the row at index, keeping at least one row.
func (f *TagForm) RemoveTranslation(index int) {
	if len(f.Translations) <= 1 || index < 0 || index >= len(f.Translations) {
		return
	}
	f.Translations = append(f.Translations[:index], f.Translations[index+1:]...)
}

// SetTranslationLanguage switches the row at index to a new language,
// refusing duplicates.
func (f *TagForm) SetTranslationLanguage(index int, code string) {
	if index < 0 || index >= len(f.Translations) {
		return
	}
	if !languageUsable(f.usedLanguages(), index, code) {
		return
	}
	f.Translations[index].LanguageCode = code
}

// LanguageChoices lists the languages the row at index may select.
func (f *TagForm) LanguageChoices(index int) []i18n.Language {
	return languageChoices(f.usedLanguages(), index)
}

func (f *TagForm) usedLanguages() []string {
	codes := make([]string, len(f.Translations))
	for i, tr := range f.Translations {
		codes[i] = tr.LanguageCode
	}
	return codes
}

// Validate checks the form and returns field-level errors.
func (f *TagForm) Validate() Errors {
	errs := Errors{}

	validSlug(errs, f.Slug)

	if strings.TrimSpace(f.Color) == "" {
		errs["color"] = "Renk gereklidir"
	} else if !colorPattern.MatchString(f.Color) {
		errs["color"] = "Geçerli bir hex renk kodu giriniz (#RRGGBB)"
	}

	if len(f.Translations) == 0 {
		errs["translations"] = "En az bir dil çevirisi gereklidir"
	}
	validateLanguages(errs, f.usedLanguages())
	for i, tr := range f.Translations {
		if strings.TrimSpace(tr.Name) == "" {
			errs[translationField(i, "name")] = "Tag adı gereklidir"
		}
	}

	return errs
}

// Request converts the validated form into the backend payload.
func (f *TagForm) Request() models.TagRequest {
	return models.TagRequest{
		Slug:         f.Slug,
		Color:        f.Color,
		Translations: append([]models.TagTranslation(nil), f.Translations...),
	}
}

// MapServerError routes a backend rejection onto form fields.
func (f *TagForm) MapServerError(err error) Errors {
	if strings.Contains(serverMessage(err), "already exists") {
		return Errors{"slug": "Bu slug zaten kullanılıyor. Lütfen farklı bir slug deneyin."}
	}
	return submitError(err)
}
