package render

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lingopress/internal/forms"
	"lingopress/internal/middleware"
	"lingopress/internal/models"
	"lingopress/internal/session"
)

// helperRequest builds a request whose context carries a session, matching
// the state after LoadSession has run.
func helperRequest(target string, sess *session.Data) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if sess != nil {
		ctx := context.WithValue(req.Context(), middleware.SessionKey, sess)
		req = req.WithContext(ctx)
	}
	return req
}

func adminSession() *session.Data {
	return &session.Data{UserID: 1, Email: "admin@example.com", Username: "admin", Role: "ADMIN"}
}

func TestNew(t *testing.T) {
	for _, devMode := range []bool{true, false} {
		rn, err := New(devMode)
		if err != nil {
			t.Fatalf("New(%v): %v", devMode, err)
		}

		for _, name := range []string{
			"login", "dashboard",
			"categories", "category_form", "category_detail",
			"tags", "tag_form", "tag_detail",
			"posts", "post_form", "post_detail",
			"users", "user_form", "user_detail",
		} {
			if _, ok := rn.templates[name]; !ok {
				t.Errorf("template %q not parsed", name)
			}
		}

		if _, ok := rn.templates["base"]; ok {
			t.Error("base.html registered as a page template")
		}
	}
}

func TestPage_LoginStandalone(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w := httptest.NewRecorder()
	rn.Page(w, helperRequest("/login", nil), "login", &PageData{
		Title: "Giriş",
		Data:  map[string]any{"email": ""},
		Errors: forms.Errors{
			"email": "Email gereklidir",
		},
	})

	body := w.Body.String()
	if !strings.Contains(body, "<html") {
		t.Error("standalone login page missing <html> root")
	}
	if !strings.Contains(body, "Email gereklidir") {
		t.Error("field error not rendered")
	}
	if strings.Contains(body, "Dashboard") {
		t.Error("login page rendered inside the admin layout")
	}
}

func TestPage_ListWithSessionAndPagination(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	page := models.Page[models.Tag]{
		Content: []models.Tag{
			{ID: 1, Slug: "haber", Color: "#FF0000", Translations: []models.TagTranslation{
				{LanguageCode: "tr", Name: "Haber"},
			}},
		},
		Page: models.PageInfo{Size: 10, Number: 0, TotalElements: 35, TotalPages: 4},
	}

	w := httptest.NewRecorder()
	rn.Page(w, helperRequest("/admin/tags", adminSession()), "tags", &PageData{
		Title:   "Taglar",
		Section: "tags",
		Data: map[string]any{
			"page":     page,
			"params":   models.DefaultListParams(),
			"listPath": "/admin/tags",
		},
	})

	body := w.Body.String()
	if !strings.Contains(body, "Haber") {
		t.Error("tag display name missing")
	}
	if !strings.Contains(body, "35 tag") {
		t.Error("total element count missing")
	}
	if !strings.Contains(body, "Sonraki") {
		t.Error("next page link missing on a multi-page list")
	}
	if !strings.Contains(body, "admin") {
		t.Error("session username missing from layout")
	}
}

func TestPage_HTMXRendersFragmentOnly(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := helperRequest("/admin/tags", adminSession())
	req.Header.Set("HX-Request", "true")

	w := httptest.NewRecorder()
	rn.Page(w, req, "tags", &PageData{
		Title:   "Taglar",
		Section: "tags",
		Data: map[string]any{
			"page":     models.Page[models.Tag]{},
			"params":   models.DefaultListParams(),
			"listPath": "/admin/tags",
		},
	})

	body := w.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("HTMX response included the full layout")
	}
	if !strings.Contains(body, "Tag bulunamadı") {
		t.Error("HTMX fragment missing list content")
	}
}

func TestPage_UnknownTemplate(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w := httptest.NewRecorder()
	rn.Page(w, helperRequest("/", nil), "nope", &PageData{})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestPage_PostDetailRendersMarkdown(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	post := models.Post{
		ID: 3, Slug: "ilk-yazi", Status: models.PostStatusPublished,
		Translations: []models.PostTranslation{
			{LanguageCode: "tr", Title: "İlk Yazı", Expert: "Özet", Content: "# Merhaba"},
		},
	}

	w := httptest.NewRecorder()
	rn.Page(w, helperRequest("/admin/posts/3", adminSession()), "post_detail", &PageData{
		Title:   "İlk Yazı",
		Section: "posts",
		Data:    map[string]any{"post": post},
	})

	body := w.Body.String()
	if !strings.Contains(body, "Yayında") {
		t.Error("status label missing")
	}
	if !strings.Contains(body, "<h1 id=\"merhaba\">Merhaba</h1>") {
		t.Error("markdown content not rendered to HTML")
	}
}
