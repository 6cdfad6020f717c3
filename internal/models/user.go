// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// User is a backend account. The backend reports the active flag under two
// names ("active" and "isActive"); both are decoded for compatibility.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Active       bool   `json:"active"`
	IsActive     bool   `json:"isActive"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
	Bio          string `json:"bio,omitempty"`
	Role         string `json:"role"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserRequest is the create/update payload for a user. Password is empty on
// update unless the operator is changing it. ProfileImage, when present,
// forces multipart encoding.
type UserRequest struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Password     string  `json:"password,omitempty"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	IsActive     bool    `json:"isActive"`
	Role         string  `json:"role,omitempty"`
	Bio          string  `json:"bio,omitempty"`
	ProfileImage *Upload `json:"-"`
}

// Upload is an in-memory file attached to a multipart request.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}
