// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the admin console.
// Handlers are grouped by concern (admin, auth) and receive their
// dependencies through the handler struct. Every backend call goes through
// the cached resource layer; handlers never talk to the transport directly.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"lingopress/internal/api"
	"lingopress/internal/middleware"
	"lingopress/internal/models"
	"lingopress/internal/notify"
	"lingopress/internal/query"
	"lingopress/internal/render"
	"lingopress/internal/services"
	"lingopress/internal/session"
)

// maxUploadSize bounds in-memory multipart parsing for image uploads.
const maxUploadSize = 32 << 20

// Admin groups the resource management handlers and their dependencies.
type Admin struct {
	renderer   *render.Renderer
	sessions   *session.Store
	flashes    *notify.Store
	cache      *query.Cache
	profile    *services.Users
	categories *query.Resource[models.Category, models.CategoryRequest]
	tags       *query.Resource[models.Tag, models.TagRequest]
	posts      *query.Resource[models.Post, models.PostRequest]
	users      *query.Resource[models.User, models.UserRequest]
}

// NewAdmin creates the Admin handler group with the given dependencies.
func NewAdmin(
	renderer *render.Renderer,
	sessions *session.Store,
	flashes *notify.Store,
	cache *query.Cache,
	profile *services.Users,
	categories *query.Resource[models.Category, models.CategoryRequest],
	tags *query.Resource[models.Tag, models.TagRequest],
	posts *query.Resource[models.Post, models.PostRequest],
	users *query.Resource[models.User, models.UserRequest],
) *Admin {
	return &Admin{
		renderer:   renderer,
		sessions:   sessions,
		flashes:    flashes,
		cache:      cache,
		profile:    profile,
		categories: categories,
		tags:       tags,
		posts:      posts,
		users:      users,
	}
}

// ctx attaches the session's token pair to the request context so the
// transport client can authenticate and persist refreshed tokens.
func (a *Admin) ctx(r *http.Request) context.Context {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil || a.sessions == nil {
		return r.Context()
	}
	return api.WithTokenSource(r.Context(), a.sessions.TokenSource(r, sess))
}

// fail handles terminal authentication failures: the refresh was already
// attempted and rejected, so the local session is dead.
func (a *Admin) fail(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, api.ErrUnauthenticated) {
		return false
	}
	if a.sessions != nil {
		a.sessions.Destroy(r.Context(), w, r)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}

// notifier binds the mutation notification sink to the request's session.
func (a *Admin) notifier(r *http.Request) query.Notifier {
	if a.flashes == nil {
		return noopNotifier{}
	}
	return a.flashes.For(r)
}

// popFlashes drains pending notifications for display.
func (a *Admin) popFlashes(r *http.Request) []notify.Flash {
	if a.flashes == nil {
		return nil
	}
	return a.flashes.Pop(r.Context(), r)
}

type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Error(string)   {}

// Dashboard renders the landing page: per-resource totals and the current
// operator's profile.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := a.ctx(r)

	// A one-element page is the cheapest way to read totalElements.
	probe := models.ListParams{Page: 0, Size: 1, Sort: "id,asc"}

	data := map[string]any{
		"categoryCount": int64(0),
		"tagCount":      int64(0),
		"postCount":     int64(0),
		"userCount":     int64(0),
	}

	if page, err := a.categories.List(ctx, probe); err == nil {
		data["categoryCount"] = page.Page.TotalElements
	} else if a.fail(w, r, err) {
		return
	}
	if page, err := a.tags.List(ctx, probe); err == nil {
		data["tagCount"] = page.Page.TotalElements
	}
	if page, err := a.posts.List(ctx, probe); err == nil {
		data["postCount"] = page.Page.TotalElements
	}
	if page, err := a.users.List(ctx, probe); err == nil {
		data["userCount"] = page.Page.TotalElements
	}

	if sess := middleware.SessionFromCtx(r.Context()); sess != nil && a.cache != nil {
		me, err := query.Fetch(ctx, a.cache, fmt.Sprintf("me:%d", sess.UserID), query.ProfileTTL,
			func(ctx context.Context) (models.User, error) {
				return a.profile.Me(ctx)
			})
		if err == nil {
			data["me"] = me
		}
	}

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data:    data,
		Flashes: a.popFlashes(r),
	})
}

// parseListParams reads the list controls from the query string, falling
// back to the defaults for anything absent or malformed.
func parseListParams(r *http.Request) models.ListParams {
	p := models.DefaultListParams()
	q := r.URL.Query()

	p.Search = strings.TrimSpace(q.Get("search"))
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n >= 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(q.Get("size")); err == nil && n > 0 && n <= 100 {
		p.Size = n
	}
	if s := q.Get("sort"); s != "" {
		p.Sort = s
	}
	return p
}

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// parseBody parses the request body for form handlers. Create/edit screens
// post multipart (they may carry a file); everything else is urlencoded.
func parseBody(r *http.Request) url.Values {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		r.ParseForm()
	}
	return r.PostForm
}

// translationAction decodes the _action field of a form post: the add/remove
// translation buttons submit the form without running validation.
func translationAction(v url.Values) (op string, index int) {
	action := v.Get("_action")
	switch {
	case action == "add-translation":
		return "add", 0
	case strings.HasPrefix(action, "remove-translation-"):
		i, err := strconv.Atoi(strings.TrimPrefix(action, "remove-translation-"))
		if err != nil {
			return "", 0
		}
		return "remove", i
	}
	return "", 0
}

// readUpload reads an optional multipart file field into memory.
func readUpload(r *http.Request, field string) *models.Upload {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		return nil
	}

	return &models.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
}

// deleteResponse finishes a delete: HTMX callers get a client-side redirect
// header, plain forms a standard 303.
func deleteResponse(w http.ResponseWriter, r *http.Request, listPath string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", listPath)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, listPath, http.StatusSeeOther)
}
