// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package query

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces query-cache keys in Valkey so sessions and flashes
// sharing the instance never collide with cached responses.
const keyPrefix = "query:"

// ConnectValkey creates a Valkey client and verifies the connection with a ping.
func ConnectValkey(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", addr)
	return client, nil
}

// Valkey is the Backend used in deployments. Errors degrade to cache
// misses: the console must keep working when Valkey hiccups.
type Valkey struct {
	client *redis.Client
}

// NewValkey creates a Valkey cache backend over an existing client.
func NewValkey(client *redis.Client) *Valkey {
	return &Valkey{client: client}
}

func (v *Valkey) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := v.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("query cache get error", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

func (v *Valkey) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := v.client.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		slog.Warn("query cache set error", "key", key, "error", err)
	}
}

func (v *Valkey) Delete(ctx context.Context, key string) {
	if err := v.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		slog.Warn("query cache delete error", "key", key, "error", err)
	}
}

// DeletePrefix removes every key under the prefix by scanning. Used on
// mutation success to drop all cached parameter tuples of a resource.
func (v *Valkey) DeletePrefix(ctx context.Context, prefix string) {
	var cursor uint64
	for {
		keys, nextCursor, err := v.client.Scan(ctx, cursor, keyPrefix+prefix+"*", 100).Result()
		if err != nil {
			slog.Warn("query cache scan error", "prefix", prefix, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := v.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("query cache bulk delete error", "error", err)
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			return
		}
	}
}
