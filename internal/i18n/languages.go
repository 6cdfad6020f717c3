// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package i18n defines the fixed set of content languages the backend
// supports. Every translation sub-record carries one of these codes.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is one entry of the configured language set.
type Language struct {
	Code string // ISO 639-1 code used on the wire ("tr", "en", "de")
	Name string // Self-described display name ("Türkçe", "English", "Deutsch")
}

// DefaultCode is the language preselected for the first translation of a
// new record and preferred when resolving display names.
const DefaultCode = "tr"

// tags lists the supported languages in presentation order. The order
// matters: AddTranslation picks the first unused entry.
var tags = []language.Tag{
	language.Turkish,
	language.English,
	language.German,
}

// Languages returns the configured language set in presentation order.
func Languages() []Language {
	out := make([]Language, 0, len(tags))
	for _, t := range tags {
		out = append(out, Language{
			Code: t.String(),
			Name: display.Self.Name(t),
		})
	}
	return out
}

// Codes returns just the language codes in presentation order.
func Codes() []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}
	return out
}

// Valid reports whether code is one of the configured languages.
func Valid(code string) bool {
	for _, t := range tags {
		if t.String() == code {
			return true
		}
	}
	return false
}

// Name returns the display name for a language code, or the code itself
// if it is not in the configured set.
func Name(code string) string {
	for _, t := range tags {
		if t.String() == code {
			return display.Self.Name(t)
		}
	}
	return code
}
