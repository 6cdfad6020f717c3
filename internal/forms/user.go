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

// Roles a user account can hold, in presentation order.
var UserRoles = []string{"USER", "ADMIN", "MODERATOR"}

// UserForm drives the user create/edit screens. On edit (IsNew false) an
// empty password means "keep the current one". ProfileImage is attached by
// the handler from the multipart upload.
type UserForm struct {
	IsNew        bool
	Username     string
	Email        string
	Password     string
	FirstName    string
	LastName     string
	Role         string
	Bio          string
	IsActive     bool
	ProfileImage *models.Upload
}

// NewUserForm starts a blank form for creating an account.
func NewUserForm() *UserForm {
	return &UserForm{IsNew: true, Role: "USER", IsActive: true}
}

// UserFormFrom pre-fills the form from an existing account.
func UserFormFrom(u models.User) *UserForm {
	return &UserForm{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Bio:       u.Bio,
		IsActive:  u.IsActive || u.Active,
	}
}

// Bind reads posted values into the form. Unknown roles are dropped rather
// than forwarded to the backend.
func (f *UserForm) Bind(v url.Values) {
	f.Username = strings.TrimSpace(v.Get("username"))
	f.Email = strings.TrimSpace(v.Get("email"))
	f.Password = v.Get("password")
	f.FirstName = strings.TrimSpace(v.Get("firstName"))
	f.LastName = strings.TrimSpace(v.Get("lastName"))
	f.Bio = strings.TrimSpace(v.Get("bio"))
	f.IsActive = v.Get("isActive") == "on" || v.Get("isActive") == "true"

	f.Role = ""
	for _, role := range UserRoles {
		if v.Get("role") == role {
			f.Role = role
		}
	}
}

// Validate checks the form and returns field-level errors.
func (f *UserForm) Validate() Errors {
	errs := Errors{}

	switch {
	case f.Username == "":
		errs["username"] = "Kullanıcı adı gereklidir"
	case utf8.RuneCountInString(f.Username) < 3:
		errs["username"] = "Kullanıcı adı en az 3 karakter olmalıdır"
	}

	switch {
	case f.Email == "":
		errs["email"] = "Email gereklidir"
	case !emailPattern.MatchString(f.Email):
		errs["email"] = "Geçerli bir email adresi giriniz"
	}

	switch {
	case f.IsNew && f.Password == "":
		errs["password"] = "Şifre gereklidir"
	case f.Password != "" && utf8.RuneCountInString(f.Password) < 6:
		errs["password"] = "Şifre en az 6 karakter olmalıdır"
	}

	switch {
	case f.FirstName == "":
		errs["firstName"] = "Ad gereklidir"
	case utf8.RuneCountInString(f.FirstName) < 2:
		errs["firstName"] = "Ad en az 2 karakter olmalıdır"
	}

	switch {
	case f.LastName == "":
		errs["lastName"] = "Soyad gereklidir"
	case utf8.RuneCountInString(f.LastName) < 2:
		errs["lastName"] = "Soyad en az 2 karakter olmalıdır"
	}

	return errs
}

// Request converts the validated form into the backend payload.
func (f *UserForm) Request() models.UserRequest {
	return models.UserRequest{
		Username:     f.Username,
		Email:        f.Email,
		Password:     f.Password,
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		IsActive:     f.IsActive,
		Role:         f.Role,
		Bio:          f.Bio,
		ProfileImage: f.ProfileImage,
	}
}

// MapServerError routes a backend rejection onto form fields. Duplicate
// rejections discriminate between the email and username fields by
// substring; the match runs on the raw backend message.
func (f *UserForm) MapServerError(err error) Errors {
	msg := serverMessage(err)
	if strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate") {
		switch {
		case strings.Contains(msg, "email"):
			return Errors{"email": "Bu email adresi zaten kullanılıyor"}
		case strings.Contains(msg, "username"):
			return Errors{"username": "Bu kullanıcı adı zaten kullanılıyor"}
		}
		return Errors{"submit": msg}
	}
	return submitError(err)
}
