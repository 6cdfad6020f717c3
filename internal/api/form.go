// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"

	"lingopress/internal/models"
)

// Form builds a multipart request body. Scalar fields are plain parts;
// nested translation arrays are flattened field-by-field into indexed keys
// ("translations[0].languageCode"), which is the encoding the backend's
// form binder expects.
type Form struct {
	fields [][2]string
	files  []filePart
}

type filePart struct {
	key    string
	upload *models.Upload
}

// NewForm creates an empty multipart form builder.
func NewForm() *Form {
	return &Form{}
}

// Set adds a scalar field. Order is preserved.
func (f *Form) Set(key, value string) *Form {
	f.fields = append(f.fields, [2]string{key, value})
	return f
}

// SetInt adds an integer field.
func (f *Form) SetInt(key string, v int64) *Form {
	return f.Set(key, strconv.FormatInt(v, 10))
}

// SetBool adds a boolean field.
func (f *Form) SetBool(key string, v bool) *Form {
	return f.Set(key, strconv.FormatBool(v))
}

// SetIndexed adds one field of an array element, e.g.
// SetIndexed("translations", 0, "languageCode", "tr").
func (f *Form) SetIndexed(array string, index int, field, value string) *Form {
	return f.Set(fmt.Sprintf("%s[%d].%s", array, index, field), value)
}

// AddFile attaches an upload under the given part name. Nil uploads are
// ignored so callers can pass the optional file through unconditionally.
func (f *Form) AddFile(key string, u *models.Upload) *Form {
	if u == nil {
		return f
	}
	f.files = append(f.files, filePart{key: key, upload: u})
	return f
}

// Encode renders the form as a multipart body and returns it with its
// Content-Type (including the boundary).
func (f *Form) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field[0], err)
		}
	}

	for _, fp := range f.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
			fp.key, escapeQuotes(fp.upload.Filename)))
		contentType := fp.upload.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %s: %w", fp.key, err)
		}
		if _, err := part.Write(fp.upload.Data); err != nil {
			return nil, "", fmt.Errorf("write file part %s: %w", fp.key, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
