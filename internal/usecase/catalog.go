package usecase

import (
	"context"

	"github.com/airgourmethellas/catering-api/internal/logging"
	"github.com/airgourmethellas/catering-api/internal/pricing"
)

// Catalog serves the menu read path cache-aside: Redis first, MySQL on miss.
type Catalog struct {
	repo  CatalogRepo
	cache CatalogCache
}

func NewCatalog(repo CatalogRepo, cache CatalogCache) *Catalog {
	return &Catalog{repo: repo, cache: cache}
}

func (c *Catalog) List(ctx context.Context) ([]pricing.MenuItem, error) {
	if c.cache != nil {
		items, hit, err := c.cache.Get(ctx)
		if err == nil && hit {
			return items, nil
		}
		if err != nil {
			logging.FromCtx(ctx).Warn("catalog cache read failed", "err", err)
		}
	}

	items, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		if err := c.cache.Set(ctx, items); err != nil {
			logging.FromCtx(ctx).Warn("catalog cache write failed", "err", err)
		}
	}
	return items, nil
}

// Upsert writes through to the repo and drops the cached menu so the next
// read sees the new prices. In-flight sessions keep their resolved prices.
func (c *Catalog) Upsert(ctx context.Context, item pricing.MenuItem) error {
	if err := c.repo.Upsert(ctx, item); err != nil {
		return err
	}
	if c.cache != nil {
		if err := c.cache.Invalidate(ctx); err != nil {
			logging.FromCtx(ctx).Warn("catalog cache invalidate failed", "err", err)
		}
	}
	return nil
}
