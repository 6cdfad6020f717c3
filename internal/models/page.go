// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the wire types exchanged with the content backend.
// Field names and JSON tags mirror the backend's camelCase payloads exactly;
// the shapes are a compatibility contract, not a local design choice.
package models

import (
	"net/url"
	"strconv"
)

// PageInfo is the pagination block of every list response.
// Number is zero-based.
type PageInfo struct {
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// HasNext reports whether a page after this one exists.
func (p PageInfo) HasNext() bool {
	return p.Number < p.TotalPages-1
}

// HasPrevious reports whether a page before this one exists.
func (p PageInfo) HasPrevious() bool {
	return p.Number > 0
}

// Page is the uniform paginated envelope every list endpoint returns.
type Page[T any] struct {
	Content []T      `json:"content"`
	Page    PageInfo `json:"page"`
}

// ListParams are the query parameters accepted by every list endpoint.
// Sort is passed through verbatim as "field,direction" (e.g. "id,asc").
type ListParams struct {
	Search string
	Page   int
	Size   int
	Sort   string
}

// DefaultListParams returns the parameters the list screens start with.
func DefaultListParams() ListParams {
	return ListParams{Page: 0, Size: 10, Sort: "id,asc"}
}

// Encode renders the parameters as a URL query string.
func (p ListParams) Encode() string {
	v := url.Values{}
	v.Set("search", p.Search)
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("size", strconv.Itoa(p.Size))
	v.Set("sort", p.Sort)
	return v.Encode()
}
