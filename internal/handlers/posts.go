// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"lingopress/internal/api"
	"lingopress/internal/forms"
	"lingopress/internal/i18n"
	"lingopress/internal/models"
	"lingopress/internal/render"
)

// PostsList renders the post table.
func (a *Admin) PostsList(w http.ResponseWriter, r *http.Request) {
	p := parseListParams(r)

	page, err := a.posts.List(a.ctx(r), p)
	if a.fail(w, r, err) {
		return
	}

	data := map[string]any{
		"page":     page,
		"params":   p,
		"listPath": "/admin/posts",
	}
	if err != nil {
		slog.Error("list posts failed", "error", err)
		data["loadError"] = api.Message(err)
	}

	a.renderer.Page(w, r, "posts", &render.PageData{
		Title:   "Postlar",
		Section: "posts",
		Data:    data,
		Flashes: a.popFlashes(r),
	})
}

// PostDetail renders one post with its rendered translations.
func (a *Admin) PostDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := a.posts.Get(a.ctx(r), id)
	if a.fail(w, r, err) {
		return
	}
	if err != nil {
		if api.IsNotFound(err) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Page(w, r, "post_detail", &render.PageData{
		Title:   post.DisplayTitle(i18n.DefaultCode),
		Section: "posts",
		Data:    map[string]any{"post": post},
		Flashes: a.popFlashes(r),
	})
}

// PostNew renders the empty create form with category and tag choices.
func (a *Admin) PostNew(w http.ResponseWriter, r *http.Request) {
	a.renderPostForm(w, r, "Yeni Post", "/admin/posts", forms.NewPostForm(), nil, http.StatusOK)
}

// PostCreate processes the create form. The body is multipart because it
// may carry a featured image.
func (a *Admin) PostCreate(w http.ResponseWriter, r *http.Request) {
	form := forms.NewPostForm()
	form.Bind(parseBody(r))
	form.Image = readUpload(r, "image")

	if a.postFormAction(w, r, "Yeni Post", "/admin/posts", form) {
		return
	}

	if errs := form.Validate(); errs.Any() {
		a.renderPostForm(w, r, "Yeni Post", "/admin/posts", form, errs, http.StatusUnprocessableEntity)
		return
	}

	_, err := a.posts.Create(a.ctx(r), a.notifier(r), form.Request())
	if err != nil {
		if a.fail(w, r, err) {
			return
		}
		a.renderPostForm(w, r, "Yeni Post", "/admin/posts", form, form.MapServerError(err), http.StatusUnprocessableEntity)
		return
	}

	http.Redirect(w, r, "/admin/posts", http.StatusSeeOther)
}

// PostEdit renders the edit form pre-filled from the record.
func (a *Admin) PostEdit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := a.posts.Get(a.ctx(r), id)
	if a.fail(w, r, err) {
		return
	}
	if err != nil {
		if api.IsNotFound(err) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	action := postPath(id)
	a.renderPostForm(w, r, "Postu Düzenle", action, forms.PostFormFrom(post), nil, http.StatusOK)
}

// PostUpdate processes the edit form.
func (a *Admin) PostUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	action := postPath(id)

	form := forms.NewPostForm()
	form.Bind(parseBody(r))
	form.Image = readUpload(r, "image")

	if a.postFormAction(w, r, "Postu Düzenle", action, form) {
		return
	}

	if errs := form.Validate(); errs.Any() {
		a.renderPostForm(w, r, "Postu Düzenle", action, form, errs, http.StatusUnprocessableEntity)
		return
	}

	_, err = a.posts.Update(a.ctx(r), a.notifier(r), id, form.Request())
	if err != nil {
		if a.fail(w, r, err) {
			return
		}
		a.renderPostForm(w, r, "Postu Düzenle", action, form, form.MapServerError(err), http.StatusUnprocessableEntity)
		return
	}

	http.Redirect(w, r, "/admin/posts", http.StatusSeeOther)
}

// PostDelete removes a post after the client-side confirmation.
func (a *Admin) PostDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := a.posts.Delete(a.ctx(r), a.notifier(r), id); err != nil {
		if a.fail(w, r, err) {
			return
		}
		slog.Error("delete post failed", "id", id, "error", err)
	}

	deleteResponse(w, r, "/admin/posts")
}

func (a *Admin) postFormAction(w http.ResponseWriter, r *http.Request, title, action string, form *forms.PostForm) bool {
	op, index := translationAction(r.PostForm)
	switch op {
	case "add":
		form.AddTranslation()
	case "remove":
		form.RemoveTranslation(index)
	default:
		return false
	}
	a.renderPostForm(w, r, title, action, form, nil, http.StatusOK)
	return true
}

// renderPostForm loads the category and tag choices for the selects; a
// failure there degrades to empty choices rather than blocking the form.
func (a *Admin) renderPostForm(w http.ResponseWriter, r *http.Request, title, action string, form *forms.PostForm, errs forms.Errors, status int) {
	ctx := a.ctx(r)
	choices := models.ListParams{Page: 0, Size: 100, Sort: "id,asc"}

	var categories []models.Category
	if page, err := a.categories.List(ctx, choices); err == nil {
		categories = page.Content
	}
	var tags []models.Tag
	if page, err := a.tags.List(ctx, choices); err == nil {
		tags = page.Content
	}

	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	a.renderer.Page(w, r, "post_form", &render.PageData{
		Title:   title,
		Section: "posts",
		Data: map[string]any{
			"form":       form,
			"action":     action,
			"categories": categories,
			"tags":       tags,
		},
		Errors: errs,
	})
}

func postPath(id int64) string {
	return fmt.Sprintf("/admin/posts/%d", id)
}
