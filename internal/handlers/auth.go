// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"lingopress/internal/api"
	"lingopress/internal/forms"
	"lingopress/internal/middleware"
	"lingopress/internal/models"
	"lingopress/internal/render"
	"lingopress/internal/services"
	"lingopress/internal/session"
)

// Auth groups the sign-in and sign-out handlers.
type Auth struct {
	renderer *render.Renderer
	sessions *session.Store
	auth     *services.Auth
	users    *services.Users
}

// NewAuth creates the Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, auth *services.Auth, users *services.Users) *Auth {
	return &Auth{renderer: renderer, sessions: sessions, auth: auth, users: users}
}

// loginTokens serves the freshly issued pair during sign-in, before a
// session exists to persist rotations.
type loginTokens struct {
	pair models.TokenPair
}

func (t loginTokens) AccessToken() string  { return t.pair.AccessToken }
func (t loginTokens) RefreshToken() string { return t.pair.RefreshToken }

func (t loginTokens) Store(context.Context, models.TokenPair) error { return nil }

// LoginPage renders the sign-in form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromCtx(r.Context()) != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.renderLogin(w, r, &forms.LoginForm{}, nil, http.StatusOK)
}

// LoginSubmit validates the credentials locally, exchanges them with the
// backend, resolves the operator identity and opens the session.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	form := &forms.LoginForm{}
	r.ParseForm()
	form.Bind(r.PostForm)

	if errs := form.Validate(); errs.Any() {
		a.renderLogin(w, r, form, errs, http.StatusUnprocessableEntity)
		return
	}

	pair, err := a.auth.Login(r.Context(), form.Request())
	if err != nil {
		a.renderLogin(w, r, form, forms.Errors{"submit": api.Message(err)}, http.StatusUnauthorized)
		return
	}

	ctx := api.WithTokenSource(r.Context(), loginTokens{pair: pair})
	me, err := a.users.Me(ctx)
	if err != nil {
		slog.Error("identity lookup after login failed", "error", err)
		a.renderLogin(w, r, form, forms.Errors{"submit": api.Message(err)}, http.StatusBadGateway)
		return
	}

	_, err = a.sessions.Create(ctx, w, &session.Data{
		UserID:       me.ID,
		Email:        me.Email,
		Username:     me.Username,
		Role:         me.Role,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout revokes the backend session when possible, always destroys the
// local one, and returns to the sign-in screen.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		ctx := api.WithTokenSource(r.Context(), a.sessions.TokenSource(r, sess))
		if err := a.auth.Logout(ctx); err != nil {
			slog.Warn("backend logout failed", "error", err)
		}
	}

	a.sessions.Destroy(r.Context(), w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (a *Auth) renderLogin(w http.ResponseWriter, r *http.Request, form *forms.LoginForm, errs forms.Errors, status int) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	a.renderer.Page(w, r, "login", &render.PageData{
		Title:  "Giriş",
		Data:   map[string]any{"email": form.Email},
		Errors: errs,
	})
}
