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
	"lingopress/internal/middleware"
	"lingopress/internal/render"
)

// UsersList renders the account table.
func (a *Admin) UsersList(w http.ResponseWriter, r *http.Request) {
	p := parseListParams(r)

	page, err := a.users.List(a.ctx(r), p)
	if a.fail(w, r, err) {
		return
	}

	data := map[string]any{
		"page":     page,
		"params":   p,
		"listPath": "/admin/users",
	}
	if err != nil {
		slog.Error("list users failed", "error", err)
		data["loadError"] = api.Message(err)
	}

	a.renderer.Page(w, r, "users", &render.PageData{
		Title:   "Kullanıcılar",
		Section: "users",
		Data:    data,
		Flashes: a.popFlashes(r),
	})
}

// UserDetail renders one account.
func (a *Admin) UserDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user, err := a.users.Get(a.ctx(r), id)
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

	a.renderer.Page(w, r, "user_detail", &render.PageData{
		Title:   user.FullName(),
		Section: "users",
		Data:    map[string]any{"user": user},
		Flashes: a.popFlashes(r),
	})
}

// UserNew renders the empty create form.
func (a *Admin) UserNew(w http.ResponseWriter, r *http.Request) {
	a.renderUserForm(w, r, "Yeni Kullanıcı", "/admin/users", forms.NewUserForm(), nil, http.StatusOK)
}

// UserCreate processes the create form.
func (a *Admin) UserCreate(w http.ResponseWriter, r *http.Request) {
	form := forms.NewUserForm()
	form.Bind(parseBody(r))
	form.ProfileImage = readUpload(r, "profileImage")

	if errs := form.Validate(); errs.Any() {
		a.renderUserForm(w, r, "Yeni Kullanıcı", "/admin/users", form, errs, http.StatusUnprocessableEntity)
		return
	}

	_, err := a.users.Create(a.ctx(r), a.notifier(r), form.Request())
	if err != nil {
		if a.fail(w, r, err) {
			return
		}
		a.renderUserForm(w, r, "Yeni Kullanıcı", "/admin/users", form, form.MapServerError(err), http.StatusUnprocessableEntity)
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// UserEdit renders the edit form pre-filled from the record.
func (a *Admin) UserEdit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user, err := a.users.Get(a.ctx(r), id)
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

	action := userPath(id)
	a.renderUserForm(w, r, "Kullanıcıyı Düzenle", action, forms.UserFormFrom(user), nil, http.StatusOK)
}

// UserUpdate processes the edit form. Editing your own account also drops
// the cached profile so the dashboard reflects the change.
func (a *Admin) UserUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	action := userPath(id)

	form := forms.NewUserForm()
	form.IsNew = false
	form.Bind(parseBody(r))
	form.ProfileImage = readUpload(r, "profileImage")

	if errs := form.Validate(); errs.Any() {
		a.renderUserForm(w, r, "Kullanıcıyı Düzenle", action, form, errs, http.StatusUnprocessableEntity)
		return
	}

	_, err = a.users.Update(a.ctx(r), a.notifier(r), id, form.Request())
	if err != nil {
		if a.fail(w, r, err) {
			return
		}
		a.renderUserForm(w, r, "Kullanıcıyı Düzenle", action, form, form.MapServerError(err), http.StatusUnprocessableEntity)
		return
	}

	if sess := middleware.SessionFromCtx(r.Context()); sess != nil && sess.UserID == id && a.cache != nil {
		a.cache.Invalidate(r.Context(), fmt.Sprintf("me:%d", id))
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// UserDelete removes an account after the client-side confirmation.
func (a *Admin) UserDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := a.users.Delete(a.ctx(r), a.notifier(r), id); err != nil {
		if a.fail(w, r, err) {
			return
		}
		slog.Error("delete user failed", "id", id, "error", err)
	}

	deleteResponse(w, r, "/admin/users")
}

func (a *Admin) renderUserForm(w http.ResponseWriter, r *http.Request, title, action string, form *forms.UserForm, errs forms.Errors, status int) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	a.renderer.Page(w, r, "user_form", &render.PageData{
		Title:   title,
		Section: "users",
		Data: map[string]any{
			"form":   form,
			"action": action,
			"roles":  forms.UserRoles,
		},
		Errors: errs,
	})
}

func userPath(id int64) string {
	return fmt.Sprintf("/admin/users/%d", id)
}
