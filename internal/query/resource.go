// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package query

import (
	"context"

	"lingopress/internal/models"
	"lingopress/internal/services"
)

// Notifier receives the user-facing outcome of a mutation. Handlers bind it
// to the request's flash queue; tests bind it to a recorder.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Messages holds the resource-specific notification texts.
type Messages struct {
	Created      string
	CreateFailed string
	Updated      string
	UpdateFailed string
	Deleted      string
	DeleteFailed string
}

// Resource couples one service's CRUD calls to the cache and notifications:
// reads go through the cache, mutations invalidate it and notify. This is
// the layer every screen talks to.
type Resource[T any, Req any] struct {
	name   string // list key prefix, e.g. "categories"
	entity string // entity key prefix, e.g. "category"
	svc    services.CRUD[T, Req]
	cache  *Cache
	msgs   Messages
}

// NewResource wires a resource's service into the cache layer.
func NewResource[T any, Req any](name, entity string, svc services.CRUD[T, Req], cache *Cache, msgs Messages) *Resource[T, Req] {
	return &Resource[T, Req]{name: name, entity: entity, svc: svc, cache: cache, msgs: msgs}
}

// List returns one page of the resource, served from cache when fresh.
func (r *Resource[T, Req]) List(ctx context.Context, p models.ListParams) (models.Page[T], error) {
	return Fetch(ctx, r.cache, ListKey(r.name, p), ListTTL, func(ctx context.Context) (models.Page[T], error) {
		return r.svc.List(ctx, p)
	})
}

// Get returns a single record, served from cache when fresh.
func (r *Resource[T, Req]) Get(ctx context.Context, id int64) (T, error) {
	return Fetch(ctx, r.cache, EntityKey(r.entity, id), ListTTL, func(ctx context.Context) (T, error) {
		return r.svc.Get(ctx, id)
	})
}

// Create posts a new record. On success every cached list of the resource is
// invalidated and a success notification emitted; on failure an error
// notification is emitted and the error returned for field mapping.
func (r *Resource[T, Req]) Create(ctx context.Context, n Notifier, req Req) (T, error) {
	created, err := r.svc.Create(ctx, req)
	if err != nil {
		n.Error(r.msgs.CreateFailed)
		return created, err
	}
	r.cache.InvalidateResource(ctx, r.name, r.entity, 0)
	n.Success(r.msgs.Created)
	return created, nil
}

// Update replaces a record. Invalidates the entity entry and all lists.
func (r *Resource[T, Req]) Update(ctx context.Context, n Notifier, id int64, req Req) (T, error) {
	updated, err := r.svc.Update(ctx, id, req)
	if err != nil {
		n.Error(r.msgs.UpdateFailed)
		return updated, err
	}
	r.cache.InvalidateResource(ctx, r.name, r.entity, id)
	n.Success(r.msgs.Updated)
	return updated, nil
}

// Delete removes a record. Invalidates the entity entry and all lists.
func (r *Resource[T, Req]) Delete(ctx context.Context, n Notifier, id int64) error {
	if err := r.svc.Delete(ctx, id); err != nil {
		n.Error(r.msgs.DeleteFailed)
		return err
	}
	r.cache.InvalidateResource(ctx, r.name, r.entity, id)
	n.Success(r.msgs.Deleted)
	return nil
}
