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
	"lingopress/internal/render"
)

// TagsList renders the tag table.
func (a *Admin) TagsList(w http.ResponseWriter, r *http.Request) {
	p := parseListParams(r)

	page, err := a.tags.List(a.ctx(r), p)
	if a.fail(w, r, err) {
		return
	}

	data := map[string]any{
		"page":     page,
		"params":   p,
		"listPath": "/admin/tags",
	}
	if err != nil {
		slog.Error("list tags failed", "error", err)
		data["loadError"] = api.Message(err)
	}

	a.renderer.Page(w, r, "tags", &render.PageData{
		Title:   "Taglar",
		Section: "tags",
		Data:    data,
		Flashes: a.popFlashes(r),
	})
}

// TagDetail renders one tag with its translations.
func (a *Admin) TagDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	tag, err := a.tags.Get(a.ctx(r), id)
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

	a.renderer.Page(w, r, "tag_detail", &render.PageData{
		Title:   tag.DisplayName(i18n.DefaultCode),
		Section: "tags",
		Data:    map[string]any{"tag": tag},
		Flashes: a.popFlashes(r),
	})
}

// TagNew renders the empty create form.
func (a *Admin) TagNew(w http.ResponseWriter, r *http.Request) {
	a.renderTagForm(w, r, "Yeni Tag", "/admin/tags", forms.NewTagForm(), nil, http.StatusOK)
}

// TagCreate processes the create form.
func (a *Admin) TagCreate(w http.ResponseWriter, r *http.Request) {
	form := forms.NewTagForm()
	form.Bind(parseBody(r))

	if a.tagFormAction(w, r, "Yeni Tag", "/admin/tags", form) {
		return
	}

	if errs := form.Validate(); errs.Any() {
		a.renderTagForm(w, r, "Yeni Tag", "/admin/tags", form, errs, http.StatusUnprocessableEntity)
		return
	}

	_, err := a.tags.Create(a.ctx(r), a.notifier(r), form.Request())
	if err != nil {
		if a.fail(w, r, err) {
			return
		}
		a.renderTagForm(w, r, "Yeni Tag", "/admin/tags", form, form.MapServerError(err), http.StatusUnprocessableEntity)
		return
	}

	http.Redirect(w, r, "/admin/tags", http.StatusSeeOther)
}

// TagEdit renders the edit form pre-filled from the record.
func (a *Admin) TagEdit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	tag, err := a.tags.Get(a.ctx(r), id)
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

	action := tagPath(id)
	a.renderTagForm(w, r, "Tagı Düzenle", action, forms.TagFormFrom(tag), nil, http.StatusOK)
}

// TagUpdate processes the edit form.
func (a *Admin) TagUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	action := tagPath(id)

	form := forms.NewTagForm()
	form.Bind(parseBody(r))

	if a.tagFormAction(w, r, "Tagı Düzenle", action, form) {
		return
	}

	if errs := form.Validate(); errs.Any() {
		a.renderTagForm(w, r, "Tagı Düzenle", action, form, errs, http.StatusUnprocessableEntity)
		return
	}

	_, err = a.tags.Update(a.ctx(r), a.notifier(r), id, form.Request())
	if err != nil {
		if a.fail(w, r, err) {
			return
		}
		a.renderTagForm(w, r, "Tagı Düzenle", action, form, form.MapServerError(err), http.StatusUnprocessableEntity)
		return
	}

	http.Redirect(w, r, "/admin/tags", http.StatusSeeOther)
}

// TagDelete removes a tag after the client-side confirmation.
func (a *Admin) TagDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := a.tags.Delete(a.ctx(r), a.notifier(r), id); err != nil {
		if a.fail(w, r, err) {
			return
		}
		slog.Error("delete tag failed", "id", id, "error", err)
	}

	deleteResponse(w, r, "/admin/tags")
}

func (a *Admin) tagFormAction(w http.ResponseWriter, r *http.Request, title, action string, form *forms.TagForm) bool {
	op, index := translationAction(r.PostForm)
	switch op {
	case "add":
		form.AddTranslation()
	case "remove":
		form.RemoveTranslation(index)
	default:
		return false
	}
	a.renderTagForm(w, r, title, action, form, nil, http.StatusOK)
	return true
}

func (a *Admin) renderTagForm(w http.ResponseWriter, r *http.Request, title, action string, form *forms.TagForm, errs forms.Errors, status int) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	a.renderer.Page(w, r, "tag_form", &render.PageData{
		Title:   title,
		Section: "tags",
		Data: map[string]any{
			"form":   form,
			"action": action,
		},
		Errors: errs,
	})
}

func tagPath(id int64) string {
	return fmt.Sprintf("/admin/tags/%d", id)
}
