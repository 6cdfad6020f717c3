// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package forms

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"lingopress/internal/models"
)

// LoginForm drives the sign-in screen.
type LoginForm struct {
	Email    string
	Password string
}

// Bind reads posted values into the form.
func (f *LoginForm) Bind(v url.Values) {
	f.Email = strings.TrimSpace(v.Get("email"))
	f.Password = v.Get("password")
}

// Validate checks the credentials before they are sent to the backend.
func (f *LoginForm) Validate() Errors {
	errs := Errors{}

	switch {
	case f.Email == "":
		errs["email"] = "Email gereklidir"
	case !emailPattern.MatchString(f.Email):
		errs["email"] = "Geçerli bir email adresi giriniz"
	}

	switch {
	case f.Password == "":
		errs["password"] = "Şifre gereklidir"
	case utf8.RuneCountInString(f.Password) < 6:
		errs["password"] = "Şifre en az 6 karakter olmalıdır"
	}

	return errs
}

// Request converts the form into the backend payload.
func (f *LoginForm) Request() models.LoginRequest {
	return models.LoginRequest{Email: f.Email, Password: f.Password}
}
