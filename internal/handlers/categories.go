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

// CategoriesList renders the category table.
func (a *Admin) CategoriesList(w http.ResponseWriter, r *http.Request) {
	p := parseListParams(r)

	page, err := a.categories.List(a.ctx(r), p)
	if a.fail(w, r, err) {
		return
	}

	data := map[string]any{
		"page":     page,
		"params":   p,
		"listPath": "/admin/categories",
	}
	if err != nil {
		slog.Error("list categories failed", "error", err)
		data["loadError"] = api.Message(err)
	}

	a.renderer.Page(w, r, "categories", &render.PageData{
		Title:   "Kategoriler",
		Section: "categories",
		Data:    data,
		Flashes: a.popFlashes(r),
	})
}

// CategoryDetail renders one category with its translations and children.
func (a *Admin) CategoryDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	category, err := a.categories.Get(a.ctx(r), id)
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

	a.renderer.Page(w, r, "category_detail", &render.PageData{
		Title:   category.DisplayName(i18n.DefaultCode),
		Section: "categories",
		Data:    map[string]any{"category": category},
		Flashes: a.popFlashes(r),
	})
}

// CategoryNew renders the empty create form.
func (a *Admin) CategoryNew(w http.ResponseWriter, r *http.Request) {
	a.renderCategoryForm(w, r, "Yeni Kategori", "/admin/categories", forms.NewCategoryForm(), nil, http.StatusOK)
}

// CategoryCreate processes the create form: translation row actions re-render
// without submitting, validation failures re-render with field errors, and a
// backend rejection is mapped back onto the fields.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	form := forms.NewCategoryForm()
	form.Bind(parseBody(r))

	if a.categoryFormAction(w, r, "Yeni Kategori", "/admin/categories", form) {
		return
	}

	if errs := form.Validate(); errs.Any() {
		a.renderCategoryForm(w, r, "Yeni Kategori", "/admin/categories", form, errs, http.StatusUnprocessableEntity)
		return
	}

	_, err := a.categories.Create(a.ctx(r), a.notifier(r), form.Request())
	if err != nil {
		if a.fail(w, r, err) {
			return
		}
		a.renderCategoryForm(w, r, "Yeni Kategori", "/admin/categories", form, form.MapServerError(err), http.StatusUnprocessableEntity)
		return
	}

	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// CategoryEdit renders the edit form pre-filled from the record.
func (a *Admin) CategoryEdit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	category, err := a.categories.Get(a.ctx(r), id)
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

	action := categoryPath(id)
	a.renderCategoryForm(w, r, "Kategoriyi Düzenle", action, forms.CategoryFormFrom(category), nil, http.StatusOK)
}

// CategoryUpdate processes the edit form.
func (a *Admin) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	action := categoryPath(id)

	form := forms.NewCategoryForm()
	form.Bind(parseBody(r))

	if a.categoryFormAction(w, r, "Kategoriyi Düzenle", action, form) {
		return
	}

	if errs := form.Validate(); errs.Any() {
		a.renderCategoryForm(w, r, "Kategoriyi Düzenle", action, form, errs, http.StatusUnprocessableEntity)
		return
	}

	_, err = a.categories.Update(a.ctx(r), a.notifier(r), id, form.Request())
	if err != nil {
		if a.fail(w, r, err) {
			return
		}
		a.renderCategoryForm(w, r, "Kategoriyi Düzenle", action, form, form.MapServerError(err), http.StatusUnprocessableEntity)
		return
	}

	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// CategoryDelete removes a category after the client-side confirmation.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := a.categories.Delete(a.ctx(r), a.notifier(r), id); err != nil {
		if a.fail(w, r, err) {
			return
		}
		slog.Error("delete category failed", "id", id, "error", err)
	}

	deleteResponse(w, r, "/admin/categories")
}

// categoryFormAction applies the add/remove translation buttons, re-rendering
// the form without a backend call. Reports whether it handled the request.
func (a *Admin) categoryFormAction(w http.ResponseWriter, r *http.Request, title, action string, form *forms.CategoryForm) bool {
	op, index := translationAction(r.PostForm)
	switch op {
	case "add":
		form.AddTranslation()
	case "remove":
		form.RemoveTranslation(index)
	default:
		return false
	}
	a.renderCategoryForm(w, r, title, action, form, nil, http.StatusOK)
	return true
}

func (a *Admin) renderCategoryForm(w http.ResponseWriter, r *http.Request, title, action string, form *forms.CategoryForm, errs forms.Errors, status int) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	a.renderer.Page(w, r, "category_form", &render.PageData{
		Title:   title,
		Section: "categories",
		Data: map[string]any{
			"form":   form,
			"action": action,
		},
		Errors: errs,
	})
}

func categoryPath(id int64) string {
	return fmt.Sprintf("/admin/categories/%d", id)
}
