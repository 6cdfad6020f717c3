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

// CategoryForm drives the category create/edit screens.
type CategoryForm struct {
	Slug         string
	ParentID     *int64
	Translations []models.CategoryTranslation
}

// NewCategoryForm starts a blank form with one translation in the default
// language.
func NewCategoryForm() *CategoryForm {
	return &CategoryForm{
		Translations: []models.CategoryTranslation{defaultCategoryTranslation()},
	}
}

// CategoryFormFrom pre-fills the form from an existing record. Records from
// before translations existed get their flat fields lifted into a default-
// language translation row.
func CategoryFormFrom(c models.Category) *CategoryForm {
	f := &CategoryForm{
		Slug:         c.Slug,
		ParentID:     c.ParentID,
		Translations: append([]models.CategoryTranslation(nil), c.Translations...),
	}
	if len(f.Translations) == 0 {
		tr := defaultCategoryTranslation()
		tr.Name = c.Name
		tr.Description = c.Description
		f.Translations = append(f.Translations, tr)
	}
	return f
}

func defaultCategoryTranslation() models.CategoryTranslation {
	return models.CategoryTranslation{LanguageCode: i18n.DefaultCode}
}

// Bind reads posted values into the form. Translation rows are read from
// indexed fields (translations.0.languageCode, ...) until a gap. Every row
// is kept as posted — a duplicate or unknown language is a Validate error on
// the row, never a reason to discard what the operator typed.
func (f *CategoryForm) Bind(v url.Values) {
	f.Slug = strings.TrimSpace(v.Get("slug"))
	f.ParentID = parseOptionalID(v.Get("parentId"))

	f.Translations = nil
	for i := 0; v.Has(translationField(i, "languageCode")); i++ {
		f.Translations = append(f.Translations, models.CategoryTranslation{
			LanguageCode: strings.TrimSpace(v.Get(translationField(i, "languageCode"))),
			Name:         strings.TrimSpace(v.Get(translationField(i, "name"))),
			Description:  strings.TrimSpace(v.Get(translationField(i, "description"))),
		})
	}
	if len(f.Translations) == 0 {
		f.Translations = append(f.Translations, defaultCategoryTranslation())
	}
}

// AddTranslation appends an empty row for the first unused language. When
// every configured language already has a row, nothing changes.
func (f *CategoryForm) AddTranslation() {
	lang, ok := firstUnusedLanguage(f.usedLanguages())
	if !ok {
		return
	}
	f.Translations = append(f.Translations, models.CategoryTranslation{LanguageCode: lang})
}

// RemoveTranslation deletes the row at index. The last remaining row cannot
// be removed.
func (f *CategoryForm) RemoveTranslation(index int) {
	if len(f.Translations) <= 1 || index < 0 || index >= len(f.Translations) {
		return
	}
	f.Translations = append(f.Translations[:index], f.Translations[index+1:]...)
}

// SetTranslationLanguage switches the row at index to a new language. A
// language already held by another row is refused.
func (f *CategoryForm) SetTranslationLanguage(index int, code string) {
	if index < 0 || index >= len(f.Translations) {
		return
	}
	if !languageUsable(f.usedLanguages(), index, code) {
		return
	}
	f.Translations[index].LanguageCode = code
}

// LanguageChoices lists the languages the row at index may select.
func (f *CategoryForm) LanguageChoices(index int) []i18n.Language {
	return languageChoices(f.usedLanguages(), index)
}

func (f *CategoryForm) usedLanguages() []string {
	codes := make([]string, len(f.Translations))
	for i, tr := range f.Translations {
		codes[i] = tr.LanguageCode
	}
	return codes
}

// Validate checks the form and returns field-level errors. An empty map
// means the form may be submitted.
func (f *CategoryForm) Validate() Errors {
	errs := Errors{}

	validSlug(errs, f.Slug)

	if f.ParentID != nil && *f.ParentID < 0 {
		errs["parentId"] = "Üst kategori ID 0 veya pozitif olmalıdır"
	}

	if len(f.Translations) == 0 {
		errs["translations"] = "En az bir dil çevirisi gereklidir"
	}
	validateLanguages(errs, f.usedLanguages())
	for i, tr := range f.Translations {
		if strings.TrimSpace(tr.Name) == "" {
			errs[translationField(i, "name")] = "Kategori adı gereklidir"
		}
	}

	return errs
}

// Request converts the validated form into the backend payload.
func (f *CategoryForm) Request() models.CategoryRequest {
	return models.CategoryRequest{
		Slug:         f.Slug,
		ParentID:     f.ParentID,
		Translations: append([]models.CategoryTranslation(nil), f.Translations...),
	}
}

// MapServerError routes a backend rejection onto form fields. A duplicate
// slug and a missing parent reference land on their fields; anything else
// goes to the submit slot.
func (f *CategoryForm) MapServerError(err error) Errors {
	msg := serverMessage(err)
	switch {
	case strings.Contains(msg, "already exists"):
		return Errors{"slug": "Bu slug zaten kullanılıyor. Lütfen farklı bir slug deneyin."}
	case strings.Contains(msg, "Parent category not found"):
		return Errors{"parentId": msg}
	}
	return submitError(err)
}
