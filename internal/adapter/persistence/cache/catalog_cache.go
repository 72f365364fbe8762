// Package cache decorates repositories with a process-local read cache.
package cache

import (
	"context"
	"time"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/usecase/interfaces"

	goCache "github.com/patrickmn/go-cache"
)

const catalogListKey = "catalog:list"

// CatalogCache caches the full catalog listing served by the catalog
// endpoints. Writes through this decorator flush the cache; writes made by
// other processes become visible after ttl, so it is only wired for a single
// replica and never in front of invoice pricing.
type CatalogCache struct {
	inner interfaces.ICatalogRepository
	cache *goCache.Cache
	ttl   time.Duration
}

var _ interfaces.ICatalogRepository = (*CatalogCache)(nil)

// NewCatalogCache wraps inner. A non-positive ttl disables caching.
func NewCatalogCache(inner interfaces.ICatalogRepository, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		inner: inner,
		cache: goCache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (c *CatalogCache) List(ctx context.Context) ([]entities.CatalogEntry, error) {
	if c.ttl > 0 {
		if v, ok := c.cache.Get(catalogListKey); ok {
			return cloneEntries(v.([]entities.CatalogEntry)), nil
		}
	}
	entries, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	if c.ttl > 0 {
		c.cache.Set(catalogListKey, cloneEntries(entries), c.ttl)
	}
	return entries, nil
}

func (c *CatalogCache) FindByName(ctx context.Context, name string) (entities.CatalogEntry, error) {
	return c.inner.FindByName(ctx, name)
}

func (c *CatalogCache) GetByID(ctx context.Context, id string) (entities.CatalogEntry, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *CatalogCache) Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	created, err := c.inner.Create(ctx, e)
	if err == nil {
		c.cache.Delete(catalogListKey)
	}
	return created, err
}

func (c *CatalogCache) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := c.inner.Delete(ctx, id)
	if deleted {
		c.cache.Delete(catalogListKey)
	}
	return deleted, err
}

func cloneEntries(in []entities.CatalogEntry) []entities.CatalogEntry {
	return append([]entities.CatalogEntry(nil), in...)
}
