// Package registry resolves scraped item names to durable registry ids
// and cached average ratings.
//
// Each distinct normalized name is looked up in the persistent store once
// per run and the answer is cached for the rest of the run, including the
// degraded "no registry available" answer after a store failure, so one
// flaky lookup is not retried per item.
package registry

import (
	"context"
	"errors"
	"strings"

	"github.com/ucsc-menus/menu-sync/internal/store"
)

type cacheEntry struct {
	id     *int64
	rating float64
}

// Registry is a run-scoped name resolver over the items store. The cache
// is never invalidated within a run; a rating that changes mid-run is not
// observed until the next run.
type Registry struct {
	items store.Items
	cache map[string]cacheEntry
}

// New creates a registry backed by items.
func New(items store.Items) *Registry {
	return &Registry{
		items: items,
		cache: make(map[string]cacheEntry),
	}
}

// GetOrCreate returns the durable id and average rating for name, creating
// the registry row on first sight. Store failures degrade to an absent id
// and zero rating rather than aborting the build.
func (r *Registry) GetOrCreate(ctx context.Context, name string) (*int64, float64) {
	name = strings.TrimSpace(name)
	if ent, ok := r.cache[name]; ok {
		return ent.id, ent.rating
	}

	ent := r.resolve(ctx, name)
	r.cache[name] = ent
	return ent.id, ent.rating
}

func (r *Registry) resolve(ctx context.Context, name string) cacheEntry {
	rec, err := r.items.GetByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		rec, err = r.items.Create(ctx, name)
	}
	if err != nil {
		store.Degrade("items.get_or_create", err)
		return cacheEntry{}
	}

	id := rec.ID
	ent := cacheEntry{id: &id}
	if rec.AvgScore != nil {
		ent.rating = *rec.AvgScore
	}
	return ent
}
