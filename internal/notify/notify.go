// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package notify stores one-time flash notifications in Valkey, keyed by the
// session cookie. Mutations push a flash; the next rendered page pops and
// displays it. The toast texts themselves live with the resources.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"lingopress/internal/session"
)

const (
	keyPrefix = "flash:"

	// flashTTL bounds how long an undelivered flash survives.
	flashTTL = 10 * time.Minute
)

// Flash is a one-time notification message displayed to the user.
type Flash struct {
	Type    string `json:"type"` // "success" or "error"
	Message string `json:"message"`
}

// Store manages flash queues in Valkey.
type Store struct {
	client *redis.Client
}

// NewStore creates a flash store backed by the given Valkey client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// For binds a flash queue to the request's session. Requests without a
// session get a no-op queue.
func (s *Store) For(r *http.Request) *Queue {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return &Queue{}
	}
	return &Queue{store: s, ctx: r.Context(), key: keyPrefix + cookie.Value}
}

// Pop returns and clears the pending flashes for the request's session.
func (s *Store) Pop(ctx context.Context, r *http.Request) []Flash {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return nil
	}
	key := keyPrefix + cookie.Value

	raw, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil && err != redis.Nil {
		slog.Warn("flash pop error", "error", err)
		return nil
	}
	s.client.Del(ctx, key)

	flashes := make([]Flash, 0, len(raw))
	for _, item := range raw {
		var f Flash
		if json.Unmarshal([]byte(item), &f) == nil {
			flashes = append(flashes, f)
		}
	}
	return flashes
}

// Queue emits notifications for one request. It satisfies the mutation
// layer's Notifier interface.
type Queue struct {
	store *Store
	ctx   context.Context
	key   string
}

// Success queues a success toast.
func (q *Queue) Success(message string) {
	q.push(Flash{Type: "success", Message: message})
}

// Error queues an error toast.
func (q *Queue) Error(message string) {
	q.push(Flash{Type: "error", Message: message})
}

func (q *Queue) push(f Flash) {
	if q.store == nil {
		return
	}
	payload, err := json.Marshal(f)
	if err != nil {
		return
	}
	pipe := q.store.client.Pipeline()
	pipe.RPush(q.ctx, q.key, payload)
	pipe.Expire(q.ctx, q.key, flashTTL)
	if _, err := pipe.Exec(q.ctx); err != nil {
		slog.Warn("flash push error", "error", err)
	}
}
