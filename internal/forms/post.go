// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package forms

import (
	"net/url"
	"strconv"
	"strings"

	"lingopress/internal/i18n"
	"lingopress/internal/models"
)

// PostForm drives the post create/edit screens. Image is attached by the
// handler from the multipart upload, not bound from values.
type PostForm struct {
	Slug         string
	CategoryID   int64
	Status       models.PostStatus
	TagIDs       []int64
	Translations []models.PostTranslation
	Image        *models.Upload
}

// NewPostForm starts a blank draft with one translation in the default
// language.
func NewPostForm() *PostForm {
	return &PostForm{
		Status:       models.PostStatusDraft,
		Translations: []models.PostTranslation{{LanguageCode: i18n.DefaultCode}},
	}
}

// PostFormFrom pre-fills the form from an existing record.
func PostFormFrom(p models.Post) *PostForm {
	f := &PostForm{
		Slug:         p.Slug,
		Status:       p.Status,
		Translations: append([]models.PostTranslation(nil), p.Translations...),
	}
	if p.Category != nil {
		f.CategoryID = p.Category.ID
	}
	for _, t := range p.Tags {
		f.TagIDs = append(f.TagIDs, t.ID)
	}
	if f.Status == "" {
		f.Status = models.PostStatusDraft
	}
	if len(f.Translations) == 0 {
		f.Translations = append(f.Translations, models.PostTranslation{
			LanguageCode: i18n.DefaultCode,
			Title:        p.Title,
			Expert:       p.Expert,
			Content:      p.Content,
		})
	}
	return f
}

// Bind reads posted values into the form. Tags arrive as a multi-valued
// "tags" field of ids; unknown statuses fall back to draft. Translation rows
// are kept as posted; duplicate or unknown languages surface as Validate
// errors on the row.
func (f *PostForm) Bind(v url.Values) {
	f.Slug = strings.TrimSpace(v.Get("slug"))

	f.CategoryID = 0
	if id, err := strconv.ParseInt(v.Get("categoryId"), 10, 64); err == nil {
		f.CategoryID = id
	}

	switch models.PostStatus(v.Get("status")) {
	case models.PostStatusPublished:
		f.Status = models.PostStatusPublished
	default:
		f.Status = models.PostStatusDraft
	}

	f.TagIDs = nil
	for _, raw := range v["tags"] {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.TagIDs = append(f.TagIDs, id)
		}
	}

	f.Translations = nil
	for i := 0; v.Has(translationField(i, "languageCode")); i++ {
		f.Translations = append(f.Translations, models.PostTranslation{
			LanguageCode: strings.TrimSpace(v.Get(translationField(i, "languageCode"))),
			Title:        strings.TrimSpace(v.Get(translationField(i, "title"))),
			Expert:       strings.TrimSpace(v.Get(translationField(i, "expert"))),
			Content:      v.Get(translationField(i, "content")),
		})
	}
	if len(f.Translations) == 0 {
		f.Translations = append(f.Translations, models.PostTranslation{LanguageCode: i18n.DefaultCode})
	}
}

// AddTranslation appends an empty row for the first unused language.
func (f *PostForm) AddTranslation() {
	lang, ok := firstUnusedLanguage(f.usedLanguages())
	if !ok {
		return
	}
	f.Translations = append(f.Translations, models.PostTranslation{LanguageCode: lang})
}

// RemoveTranslation deletes the row at index, keeping at least one row.
func (f *PostForm) RemoveTranslation(index int) {
	if len(f.Translations) <= 1 || index < 0 || index >= len(f.Translations) {
		return
	}
	f.Translations = append(f.Translations[:index], f.Translations[index+1:]...)
}

// SetTranslationLanguage switches the row at index to a new language,
// refusing duplicates.
func (f *PostForm) SetTranslationLanguage(index int, code string) {
	if index < 0 || index >= len(f.Translations) {
		return
	}
	if !languageUsable(f.usedLanguages(), index, code) {
		return
	}
	f.Translations[index].LanguageCode = code
}

// HasTag reports whether a tag id is selected. Used by the edit screen to
// check the tag boxes.
func (f *PostForm) HasTag(id int64) bool {
	for _, t := range f.TagIDs {
		if t == id {
			return true
		}
	}
	return false
}

// LanguageChoices lists the languages the row at index may select.
func (f *PostForm) LanguageChoices(index int) []i18n.Language {
	return languageChoices(f.usedLanguages(), index)
}

func (f *PostForm) usedLanguages() []string {
	codes := make([]string, len(f.Translations))
	for i, tr := range f.Translations {
		codes[i] = tr.LanguageCode
	}
	return codes
}

// Validate checks the form and returns field-level errors.
func (f *PostForm) Validate() Errors {
	errs := Errors{}

	validSlug(errs, f.Slug)

	if f.CategoryID < 1 {
		errs["categoryId"] = "Kategori seçimi gereklidir"
	}

	if len(f.Translations) == 0 {
		errs["translations"] = "En az bir dil çevirisi gereklidir"
	}
	validateLanguages(errs, f.usedLanguages())
	for i, tr := range f.Translations {
		if strings.TrimSpace(tr.Title) == "" {
			errs[translationField(i, "title")] = "Post başlığı gereklidir"
		}
		if strings.TrimSpace(tr.Expert) == "" {
			errs[translationField(i, "expert")] = "Özet gereklidir"
		}
		if strings.TrimSpace(tr.Content) == "" {
			errs[translationField(i, "content")] = "İçerik gereklidir"
		}
	}

	return errs
}

// Request converts the validated form into the backend payload.
func (f *PostForm) Request() models.PostRequest {
	tags := make([]models.Tag, 0, len(f.TagIDs))
	for _, id := range f.TagIDs {
		tags = append(tags, models.Tag{ID: id})
	}
	return models.PostRequest{
		Slug:         f.Slug,
		CategoryID:   f.CategoryID,
		Tags:         tags,
		Status:       f.Status,
		Translations: append([]models.PostTranslation(nil), f.Translations...),
		Image:        f.Image,
	}
}

// MapServerError routes a backend rejection onto form fields.
func (f *PostForm) MapServerError(err error) Errors {
	if strings.Contains(serverMessage(err), "already exists") {
		return Errors{"slug": "Bu slug zaten kullanılıyor. Lütfen farklı bir slug deneyin."}
	}
	return submitError(err)
}
