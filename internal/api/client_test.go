package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingopress/internal/models"
)

// stubTokens is an in-memory TokenSource for tests.
type stubTokens struct {
	access  string
	refresh string
	stored  []models.TokenPair
}

func (s *stubTokens) AccessToken() string  { return s.access }
func (s *stubTokens) RefreshToken() string { return s.refresh }
func (s *stubTokens) Store(_ context.Context, pair models.TokenPair) error {
	s.stored = append(s.stored, pair)
	s.access = pair.AccessToken
	s.refresh = pair.RefreshToken
	return nil
}

func TestGet_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"id": 1})
	}))
	defer srv.Close()

	ts := &stubTokens{access: "token-a", refresh: "token-r"}
	ctx := WithTokenSource(context.Background(), ts)

	var out struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, New(srv.URL).Get(ctx, "/admin/tags/1/translated", &out))
	assert.Equal(t, "Bearer token-a", gotAuth)
	assert.Equal(t, int64(1), out.ID)
}

func TestDo_RefreshesOnceAndRetries(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path+" "+r.Header.Get("Authorization"))
		switch {
		case r.URL.Path == "/auth/refresh":
			// Refresh must run without the expired bearer token.
			if r.Header.Get("Authorization") != "" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			var req models.RefreshRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.RefreshToken != "token-r" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(models.TokenPair{AccessToken: "token-b", RefreshToken: "token-r2"})
		case r.Header.Get("Authorization") == "Bearer token-b":
			json.NewEncoder(w).Encode(map[string]any{"id": 7})
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	tokens := &stubTokens{access: "expired", refresh: "token-r"}
	ctx := WithTokenSource(context.Background(), tokens)

	var out struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, New(srv.URL).Get(ctx, "/admin/users/7", &out))

	assert.Equal(t, int64(7), out.ID)
	require.Len(t, tokens.stored, 1)
	assert.Equal(t, "token-b", tokens.stored[0].AccessToken)
	// Original call, refresh, retried call — nothing more.
	assert.Len(t, calls, 3)
}

func TestDo_FailedRefreshYieldsErrUnauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	ctx := WithTokenSource(context.Background(), &stubTokens{access: "x", refresh: "y"})
	err := New(srv.URL).Get(ctx, "/admin/users", nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestDo_WithoutTokenSource401IsUnauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := New(srv.URL).Get(context.Background(), "/users/me", nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestDo_Non2xxCarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Category with slug already exists"})
	}))
	defer srv.Close()

	err := New(srv.URL).Post(context.Background(), "/admin/categories", models.CategoryRequest{}, nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "want *APIError, got %T", err)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Category with slug already exists", apiErr.Message)
}

func TestMessage_FallsBackForTransportErrors(t *testing.T) {
	// Closed server → connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := New(srv.URL).Get(context.Background(), "/posts", nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnauthenticated))
	assert.Equal(t, "Bilinmeyen hata", Message(err))
}

func TestForm_FlattensTranslationsAndStreamsFile(t *testing.T) {
	var seen struct {
		lang, name, slug, filename, fileBody string
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		seen.slug = r.FormValue("slug")
		seen.lang = r.FormValue("translations[0].languageCode")
		seen.name = r.FormValue("translations[0].name")

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		seen.filename = header.Filename
		var sb strings.Builder
		buf := make([]byte, 64)
		for {
			n, readErr := file.Read(buf)
			sb.Write(buf[:n])
			if readErr != nil {
				break
			}
		}
		seen.fileBody = sb.String()
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 3})
	}))
	defer srv.Close()

	form := NewForm().
		Set("slug", "hello-world").
		SetIndexed("translations", 0, "languageCode", "tr").
		SetIndexed("translations", 0, "name", "Merhaba").
		AddFile("image", &models.Upload{Filename: "cover.png", ContentType: "image/png", Data: []byte("png-bytes")})

	require.NoError(t, New(srv.URL).PostForm(context.Background(), "/posts", form, nil))
	assert.Equal(t, "hello-world", seen.slug)
	assert.Equal(t, "tr", seen.lang)
	assert.Equal(t, "Merhaba", seen.name)
	assert.Equal(t, "cover.png", seen.filename)
	assert.Equal(t, "png-bytes", seen.fileBody)
}

func TestForm_NilUploadIgnored(t *testing.T) {
	form := NewForm().Set("slug", "x").AddFile("image", nil)
	body, contentType, err := form.Encode()
	require.NoError(t, err)
	assert.Contains(t, contentType, "multipart/form-data")
	assert.NotContains(t, string(body), "image")
}
