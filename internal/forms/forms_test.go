// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package forms

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingopress/internal/api"
	"lingopress/internal/models"
)

func TestCategoryForm_AddTranslationPicksFirstUnusedLanguage(t *testing.T) {
	f := NewCategoryForm()
	require.Len(t, f.Translations, 1)
	assert.Equal(t, "tr", f.Translations[0].LanguageCode)

	f.AddTranslation()
	require.Len(t, f.Translations, 2)
	assert.Equal(t, "en", f.Translations[1].LanguageCode)

	f.AddTranslation()
	require.Len(t, f.Translations, 3)
	assert.Equal(t, "de", f.Translations[2].LanguageCode)

	// All configured languages used: adding again changes nothing.
	f.AddTranslation()
	assert.Len(t, f.Translations, 3)
}

func TestCategoryForm_RemoveTranslationKeepsLastRow(t *testing.T) {
	f := NewCategoryForm()
	f.AddTranslation()
	require.Len(t, f.Translations, 2)

	f.RemoveTranslation(1)
	assert.Len(t, f.Translations, 1)

	// The last remaining row cannot be removed.
	f.RemoveTranslation(0)
	assert.Len(t, f.Translations, 1)

	// Out-of-range indexes are ignored.
	f.AddTranslation()
	f.RemoveTranslation(5)
	f.RemoveTranslation(-1)
	assert.Len(t, f.Translations, 2)
}

func TestCategoryForm_SetTranslationLanguageRefusesDuplicates(t *testing.T) {
	f := NewCategoryForm()
	f.AddTranslation() // tr, en

	f.SetTranslationLanguage(1, "tr")
	assert.Equal(t, "en", f.Translations[1].LanguageCode, "duplicate language must be refused")

	f.SetTranslationLanguage(1, "fr")
	assert.Equal(t, "en", f.Translations[1].LanguageCode, "unknown language must be refused")

	f.SetTranslationLanguage(1, "de")
	assert.Equal(t, "de", f.Translations[1].LanguageCode)
}

func TestCategoryForm_ValidateEmptyForm(t *testing.T) {
	f := NewCategoryForm()
	errs := f.Validate()

	assert.Equal(t, "Slug gereklidir", errs.Get("slug"))
	assert.Equal(t, "Kategori adı gereklidir", errs.Get("translations.0.name"))
	assert.Empty(t, errs.Get("submit"))
}

func TestCategoryForm_ValidateSlugCharset(t *testing.T) {
	f := NewCategoryForm()
	f.Slug = "Haberler!"
	f.Translations[0].Name = "Haberler"

	errs := f.Validate()
	assert.Equal(t, "Slug sadece küçük harf, rakam ve tire içerebilir", errs.Get("slug"))

	f.Slug = "haberler-2026"
	assert.False(t, f.Validate().Any())
}

func TestCategoryForm_ValidateNegativeParent(t *testing.T) {
	f := NewCategoryForm()
	f.Slug = "alt"
	f.Translations[0].Name = "Alt"
	parent := int64(-1)
	f.ParentID = &parent

	errs := f.Validate()
	assert.Equal(t, "Üst kategori ID 0 veya pozitif olmalıdır", errs.Get("parentId"))
}

func TestCategoryForm_BindIndexedTranslations(t *testing.T) {
	f := NewCategoryForm()
	f.Bind(url.Values{
		"slug":                         {"gundem"},
		"parentId":                     {"4"},
		"translations.0.languageCode":  {"tr"},
		"translations.0.name":          {"Gündem"},
		"translations.0.description":   {"Günün haberleri"},
		"translations.1.languageCode":  {"en"},
		"translations.1.name":          {"Agenda"},
		"translations.1.description":   {""},
	})

	assert.Equal(t, "gundem", f.Slug)
	require.NotNil(t, f.ParentID)
	assert.EqualValues(t, 4, *f.ParentID)
	require.Len(t, f.Translations, 2)
	assert.Equal(t, "Gündem", f.Translations[0].Name)
	assert.Equal(t, "Agenda", f.Translations[1].Name)
}

func TestCategoryForm_BindKeepsDuplicateLanguageRows(t *testing.T) {
	f := NewCategoryForm()
	f.Bind(url.Values{
		"slug":                        {"spor"},
		"translations.0.languageCode": {"tr"},
		"translations.0.name":         {"Spor"},
		"translations.1.languageCode": {"tr"},
		"translations.1.name":         {"Özenle yazılmış içerik"},
	})

	// The duplicate row survives binding with everything the operator typed.
	require.Len(t, f.Translations, 2)
	assert.Equal(t, "Spor", f.Translations[0].Name)
	assert.Equal(t, "Özenle yazılmış içerik", f.Translations[1].Name)

	// The duplicate is reported on its own row, not silently resolved.
	errs := f.Validate()
	assert.Equal(t, "Bu dil için zaten bir çeviri var", errs.Get("translations.1.languageCode"))
	assert.Empty(t, errs.Get("translations.0.languageCode"))
}

func TestCategoryForm_LanguageChoicesExcludeOtherRows(t *testing.T) {
	f := NewCategoryForm()
	f.Translations[0].Name = "Haber"
	f.AddTranslation() // adds "en"

	// Row 0 holds tr: it may keep tr or switch to de, but en is taken.
	var codes []string
	for _, l := range f.LanguageChoices(0) {
		codes = append(codes, l.Code)
	}
	assert.Equal(t, []string{"tr", "de"}, codes)

	codes = nil
	for _, l := range f.LanguageChoices(1) {
		codes = append(codes, l.Code)
	}
	assert.Equal(t, []string{"en", "de"}, codes)
}

func TestCategoryForm_MapServerError(t *testing.T) {
	f := NewCategoryForm()

	errs := f.MapServerError(&api.APIError{Status: 409, Message: "Category with slug already exists"})
	assert.Equal(t, "Bu slug zaten kullanılıyor. Lütfen farklı bir slug deneyin.", errs.Get("slug"))
	assert.Empty(t, errs.Get("submit"), "recognized conflicts must not hit the submit slot")

	errs = f.MapServerError(&api.APIError{Status: 400, Message: "Parent category not found"})
	assert.Equal(t, "Parent category not found", errs.Get("parentId"))

	errs = f.MapServerError(&api.APIError{Status: 500, Message: "internal error"})
	assert.Equal(t, "internal error", errs.Get("submit"))

	errs = f.MapServerError(errors.New("connection refused"))
	assert.Equal(t, "Bilinmeyen hata", errs.Get("submit"))
}

func TestTagForm_ValidateColor(t *testing.T) {
	f := NewTagForm()
	f.Slug = "haber"
	f.Translations[0].Name = "Haber"

	f.Color = ""
	assert.Equal(t, "Renk gereklidir", f.Validate().Get("color"))

	f.Color = "3B82F6"
	assert.Equal(t, "Geçerli bir hex renk kodu giriniz (#RRGGBB)", f.Validate().Get("color"))

	f.Color = "#3B82F"
	assert.Equal(t, "Geçerli bir hex renk kodu giriniz (#RRGGBB)", f.Validate().Get("color"))

	f.Color = "#3b82f6"
	assert.False(t, f.Validate().Any(), "lowercase hex digits are valid")
}

func TestTagForm_ValidateTranslationName(t *testing.T) {
	f := NewTagForm()
	f.Slug = "etiket"

	errs := f.Validate()
	assert.Equal(t, "Tag adı gereklidir", errs.Get("translations.0.name"))
}

func TestTagForm_FromRecordLiftsLegacyName(t *testing.T) {
	f := TagFormFrom(models.Tag{ID: 3, Slug: "eski", Name: "Eski Etiket", Color: "#FF0000"})

	require.Len(t, f.Translations, 1)
	assert.Equal(t, "tr", f.Translations[0].LanguageCode)
	assert.Equal(t, "Eski Etiket", f.Translations[0].Name)
}

func TestPostForm_Validate(t *testing.T) {
	f := NewPostForm()
	errs := f.Validate()

	assert.Equal(t, "Slug gereklidir", errs.Get("slug"))
	assert.Equal(t, "Kategori seçimi gereklidir", errs.Get("categoryId"))
	assert.Equal(t, "Post başlığı gereklidir", errs.Get("translations.0.title"))
	assert.Equal(t, "Özet gereklidir", errs.Get("translations.0.expert"))
	assert.Equal(t, "İçerik gereklidir", errs.Get("translations.0.content"))
}

func TestPostForm_BindNormalizesStatusAndTags(t *testing.T) {
	f := NewPostForm()
	f.Bind(url.Values{
		"slug":                        {"ilk-yazi"},
		"categoryId":                  {"2"},
		"status":                      {"ARCHIVED"},
		"tags":                        {"1", "7", "x"},
		"translations.0.languageCode": {"tr"},
		"translations.0.title":        {"İlk Yazı"},
		"translations.0.expert":       {"Özet"},
		"translations.0.content":      {"İçerik"},
	})

	assert.Equal(t, models.PostStatusDraft, f.Status, "unknown status falls back to draft")
	assert.Equal(t, []int64{1, 7}, f.TagIDs)
	assert.True(t, f.HasTag(7))
	assert.False(t, f.HasTag(2))
	assert.False(t, f.Validate().Any())
}

func TestPostForm_BindKeepsDuplicateLanguageRows(t *testing.T) {
	f := NewPostForm()
	f.Bind(url.Values{
		"slug":                        {"ilk-yazi"},
		"categoryId":                  {"2"},
		"translations.0.languageCode": {"tr"},
		"translations.0.title":        {"Haber"},
		"translations.0.expert":       {"Özet"},
		"translations.0.content":      {"İçerik"},
		"translations.1.languageCode": {"tr"},
		"translations.1.title":        {"Uzun uğraşılmış başlık"},
		"translations.1.expert":       {"Uzun özet"},
		"translations.1.content":      {"Uzun içerik"},
	})

	require.Len(t, f.Translations, 2)
	assert.Equal(t, "Uzun uğraşılmış başlık", f.Translations[1].Title)
	assert.Equal(t, "Uzun içerik", f.Translations[1].Content)

	errs := f.Validate()
	assert.Equal(t, "Bu dil için zaten bir çeviri var", errs.Get("translations.1.languageCode"))
}

func TestPostForm_RequestCarriesTagsAndImage(t *testing.T) {
	f := NewPostForm()
	f.Slug = "yazi"
	f.CategoryID = 1
	f.TagIDs = []int64{4, 9}
	f.Image = &models.Upload{Filename: "cover.jpg", ContentType: "image/jpeg", Data: []byte("jpg")}

	req := f.Request()
	require.Len(t, req.Tags, 2)
	assert.EqualValues(t, 4, req.Tags[0].ID)
	assert.Equal(t, models.PostStatusDraft, req.Status)
	require.NotNil(t, req.Image)
	assert.Equal(t, "cover.jpg", req.Image.Filename)
}

func TestUserForm_ValidateCreate(t *testing.T) {
	f := NewUserForm()
	errs := f.Validate()

	assert.Equal(t, "Kullanıcı adı gereklidir", errs.Get("username"))
	assert.Equal(t, "Email gereklidir", errs.Get("email"))
	assert.Equal(t, "Şifre gereklidir", errs.Get("password"))
	assert.Equal(t, "Ad gereklidir", errs.Get("firstName"))
	assert.Equal(t, "Soyad gereklidir", errs.Get("lastName"))

	f.Username = "ab"
	f.Email = "not-an-email"
	f.Password = "12345"
	f.FirstName = "A"
	f.LastName = "B"
	errs = f.Validate()

	assert.Equal(t, "Kullanıcı adı en az 3 karakter olmalıdır", errs.Get("username"))
	assert.Equal(t, "Geçerli bir email adresi giriniz", errs.Get("email"))
	assert.Equal(t, "Şifre en az 6 karakter olmalıdır", errs.Get("password"))
	assert.Equal(t, "Ad en az 2 karakter olmalıdır", errs.Get("firstName"))
	assert.Equal(t, "Soyad en az 2 karakter olmalıdır", errs.Get("lastName"))
}

func TestUserForm_EditPasswordOptional(t *testing.T) {
	f := UserFormFrom(models.User{
		Username: "editor", Email: "editor@example.com",
		FirstName: "Ed", LastName: "İtör", Role: "MODERATOR", IsActive: true,
	})

	assert.False(t, f.Validate().Any(), "empty password is fine on edit")

	f.Password = "123"
	assert.Equal(t, "Şifre en az 6 karakter olmalıdır", f.Validate().Get("password"))
}

func TestUserForm_BindDropsUnknownRole(t *testing.T) {
	f := NewUserForm()
	f.Bind(url.Values{
		"username":  {"yeni"},
		"email":     {"yeni@example.com"},
		"password":  {"gizli-sifre"},
		"firstName": {"Yeni"},
		"lastName":  {"Üye"},
		"role":      {"SUPERADMIN"},
		"isActive":  {"on"},
	})

	assert.Empty(t, f.Role)
	assert.True(t, f.IsActive)

	f.Bind(url.Values{"role": {"MODERATOR"}})
	assert.Equal(t, "MODERATOR", f.Role)
}

func TestUserForm_MapServerErrorDiscriminatesField(t *testing.T) {
	f := NewUserForm()

	errs := f.MapServerError(&api.APIError{Status: 409, Message: "User with email already exists"})
	assert.Equal(t, "Bu email adresi zaten kullanılıyor", errs.Get("email"))

	errs = f.MapServerError(&api.APIError{Status: 409, Message: "duplicate username"})
	assert.Equal(t, "Bu kullanıcı adı zaten kullanılıyor", errs.Get("username"))

	errs = f.MapServerError(&api.APIError{Status: 409, Message: "record already exists"})
	assert.Equal(t, "record already exists", errs.Get("submit"))
}

func TestLoginForm_Validate(t *testing.T) {
	f := &LoginForm{}
	errs := f.Validate()
	assert.Equal(t, "Email gereklidir", errs.Get("email"))
	assert.Equal(t, "Şifre gereklidir", errs.Get("password"))

	f.Bind(url.Values{"email": {"admin@example.com"}, "password": {"123456"}})
	assert.False(t, f.Validate().Any())
}
