// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains for the
// admin console. Routes split into a public group (login, health, static
// assets) and the authenticated /admin group.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"lingopress/internal/handlers"
	"lingopress/internal/middleware"
	"lingopress/internal/session"
	"lingopress/web"
)

// loginRateLimit caps credential attempts per client IP.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// New creates the configured Chi router with all middleware and route
// groups wired up.
func New(sessions *session.Store, admin *handlers.Admin, auth *handlers.Auth) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessions))

	// Health check: no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Embedded static assets.
	static, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	}

	loginLimiter := middleware.NewRateLimiter(loginRateLimit, loginRateWindow)

	// Sign-in and sign-out. The login endpoints are rate limited per IP.
	r.Group(func(r chi.Router) {
		r.Use(middleware.CSRF)

		r.With(loginLimiter.Middleware).Get("/login", auth.LoginPage)
		r.With(loginLimiter.Middleware).Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)
	})

	// Authenticated admin area.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.CSRF)
		r.Use(middleware.RequireAuth)

		r.Get("/", admin.Dashboard)

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", admin.CategoriesList)
			r.Get("/new", admin.CategoryNew)
			r.Post("/", admin.CategoryCreate)
			r.Get("/{id}", admin.CategoryDetail)
			r.Get("/{id}/edit", admin.CategoryEdit)
			r.Post("/{id}", admin.CategoryUpdate)
			r.Delete("/{id}", admin.CategoryDelete)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", admin.TagsList)
			r.Get("/new", admin.TagNew)
			r.Post("/", admin.TagCreate)
			r.Get("/{id}", admin.TagDetail)
			r.Get("/{id}/edit", admin.TagEdit)
			r.Post("/{id}", admin.TagUpdate)
			r.Delete("/{id}", admin.TagDelete)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", admin.PostsList)
			r.Get("/new", admin.PostNew)
			r.Post("/", admin.PostCreate)
			r.Get("/{id}", admin.PostDetail)
			r.Get("/{id}/edit", admin.PostEdit)
			r.Post("/{id}", admin.PostUpdate)
			r.Delete("/{id}", admin.PostDelete)
		})

		// Account management is restricted to administrators.
		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/", admin.UsersList)
			r.Get("/new", admin.UserNew)
			r.Post("/", admin.UserCreate)
			r.Get("/{id}", admin.UserDetail)
			r.Get("/{id}/edit", admin.UserEdit)
			r.Post("/{id}", admin.UserUpdate)
			r.Delete("/{id}", admin.UserDelete)
		})
	})

	// Everything else goes to the sign-in screen.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		http.NotFound(w, r)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
