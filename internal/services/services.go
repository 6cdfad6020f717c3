// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package services holds the per-resource request builders. Each service is
// a thin, stateless translation from a domain call to an HTTP call: it knows
// the resource's URL shapes and body encoding and nothing else. Caching and
// notifications live a layer up, in internal/query.
package services

import (
	"context"

	"lingopress/internal/models"
)

// CRUD is the uniform surface every resource service exposes: exactly
// list, get, create, update and delete.
type CRUD[T any, Req any] interface {
	List(ctx context.Context, p models.ListParams) (models.Page[T], error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, req Req) (T, error)
	Update(ctx context.Context, id int64, req Req) (T, error)
	Delete(ctx context.Context, id int64) error
}
