// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package query

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"lingopress/internal/models"
)

// Staleness windows. The profile window is longer because the current
// session identity changes far less often than resource lists.
const (
	ListTTL    = 30 * time.Second
	ProfileTTL = 5 * time.Minute
)

// Cache stores query results under explicit keys with a staleness window.
// It is the single owner of cached state; nothing else reaches into the
// backend directly.
type Cache struct {
	backend Backend
	group   singleflight.Group
}

// NewCache creates a Cache over the given backend.
func NewCache(backend Backend) *Cache {
	return &Cache{backend: backend}
}

// ListKey derives the cache key for a resource list: the resource name plus
// every parameter, so distinct parameter tuples are independent entries.
func ListKey(resource string, p models.ListParams) string {
	return resource + ":" + p.Encode()
}

// EntityKey derives the cache key for a single record.
func EntityKey(entity string, id int64) string {
	return fmt.Sprintf("%s:%d", entity, id)
}

// Fetch returns the cached value under key if it is younger than ttl,
// otherwise runs fn, caches its result and returns it. Concurrent calls for
// the same key share one fetch; different keys never interfere. Errors are
// returned, never cached.
func Fetch[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	if data, ok := c.backend.Get(ctx, key); ok {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			return v, nil
		}
		// Undecodable entry: drop it and refetch.
		c.backend.Delete(ctx, key)
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		v, err := fn(ctx)
		if err != nil {
			return zero, err
		}
		if data, marshalErr := json.Marshal(v); marshalErr == nil {
			c.backend.Set(ctx, key, data, ttl)
		}
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

// Invalidate drops a single entry.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	c.backend.Delete(ctx, key)
}

// InvalidateResource drops every cached list of a resource plus, when id is
// known, the single-entity entry. Called after each successful mutation so
// no view can mix a stale list with a freshly mutated entity.
func (c *Cache) InvalidateResource(ctx context.Context, resource, entity string, id int64) {
	c.backend.DeletePrefix(ctx, resource+":")
	if id != 0 {
		c.backend.Delete(ctx, EntityKey(entity, id))
	}
}
