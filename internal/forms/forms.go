// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package forms holds the admin form controllers: binding posted values,
// managing translation rows, validation, and mapping backend rejection
// messages onto individual fields.
//
// Validation and mapping messages are shown to operators in Turkish. The
// backend's error messages are matched by substring ("already exists",
// "Parent category not found") — a textual contract with the backend that
// must not be rewritten.
package forms

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"lingopress/internal/api"
	"lingopress/internal/i18n"
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
	colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Errors maps field paths ("slug", "parentId", "translations.0.name") to
// messages. The "submit" key holds errors not attributable to a field.
type Errors map[string]string

// Any reports whether at least one error is present.
func (e Errors) Any() bool { return len(e) > 0 }

// Get returns the message for a field path, or "".
func (e Errors) Get(field string) string { return e[field] }

// translationField builds the field path for one translation row.
func translationField(index int, name string) string {
	return fmt.Sprintf("translations.%d.%s", index, name)
}

// firstUnusedLanguage returns the first configured language not in used.
func firstUnusedLanguage(used []string) (string, bool) {
	taken := make(map[string]bool, len(used))
	for _, code := range used {
		taken[code] = true
	}
	for _, code := range i18n.Codes() {
		if !taken[code] {
			return code, true
		}
	}
	return "", false
}

// languageUsable reports whether the translation row at self may switch to
// code: the code must be configured and not held by another row.
func languageUsable(used []string, self int, code string) bool {
	if !i18n.Valid(code) {
		return false
	}
	for i, c := range used {
		if i != self && c == code {
			return false
		}
	}
	return true
}

// languageChoices lists the languages the row at self may select: every
// configured language not held by another row. Drives the per-row dropdowns
// so the screens cannot offer a duplicate in the first place.
func languageChoices(used []string, self int) []i18n.Language {
	choices := make([]i18n.Language, 0, len(used))
	for _, l := range i18n.Languages() {
		if languageUsable(used, self, l.Code) {
			choices = append(choices, l)
		}
	}
	return choices
}

// validateLanguages flags empty, unknown and duplicate language codes on
// their rows. Bound rows are never dropped — a duplicate that slips past the
// dropdowns comes back as a field error with the typed content intact.
func validateLanguages(errs Errors, used []string) {
	seen := make(map[string]bool, len(used))
	for i, code := range used {
		switch {
		case strings.TrimSpace(code) == "":
			errs[translationField(i, "languageCode")] = "Dil kodu gereklidir"
		case !i18n.Valid(code):
			errs[translationField(i, "languageCode")] = "Geçersiz dil kodu"
		case seen[code]:
			errs[translationField(i, "languageCode")] = "Bu dil için zaten bir çeviri var"
		default:
			seen[code] = true
		}
	}
}

func validSlug(e Errors, slug string) {
	if strings.TrimSpace(slug) == "" {
		e["slug"] = "Slug gereklidir"
	} else if !slugPattern.MatchString(slug) {
		e["slug"] = "Slug sadece küçük harf, rakam ve tire içerebilir"
	}
}

// parseOptionalID parses a nullable numeric reference. Empty means null.
func parseOptionalID(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// serverMessage extracts the backend's error message from err, or "" when
// the failure never reached the backend.
func serverMessage(err error) string {
	if apiErr, ok := api.AsAPIError(err); ok {
		return apiErr.Message
	}
	return ""
}

// submitError is the catch-all mapping for unrecognized failures.
func submitError(err error) Errors {
	return Errors{"submit": api.Message(err)}
}
