package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
	"github.com/zatekoja/nursecare/backend/internal/domain/repositories"
)

// CachedCatalogAdapter wraps a CatalogRepository with read-through caching
type CachedCatalogAdapter struct {
	adapter repositories.CatalogRepository
	cache   providers.CacheProvider
	async   bool
}

// NewCachedCatalogAdapter creates a new cached catalog adapter
func NewCachedCatalogAdapter(adapter repositories.CatalogRepository, cache providers.CacheProvider) repositories.CatalogRepository {
	return &CachedCatalogAdapter{
		adapter: adapter,
		cache:   cache,
		async:   true,
	}
}

// Cache TTLs
const (
	categoryTTL     = 10 * time.Minute
	categoryListTTL = 10 * time.Minute
	nurseListTTL    = time.Minute
)

func categoryCacheKey(id string) string {
	return fmt.Sprintf("catalog:category:%s", id)
}

const (
	categoryListCacheKey = "catalog:categories"
	nurseListCacheKey    = "catalog:nurses"
)

// ListCategories returns every category, served from cache when possible
func (a *CachedCatalogAdapter) ListCategories(ctx context.Context) ([]*entities.ServiceCategory, error) {
	var categories []*entities.ServiceCategory
	if a.load(ctx, categoryListCacheKey, &categories) {
		return categories, nil
	}

	categories, err := a.adapter.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	a.store(categoryListCacheKey, categories, categoryListTTL)
	return categories, nil
}

// GetCategory retrieves a category by ID with caching. Lookup failures are not cached.
func (a *CachedCatalogAdapter) GetCategory(ctx context.Context, id string) (*entities.ServiceCategory, error) {
	cacheKey := categoryCacheKey(id)

	var category entities.ServiceCategory
	if a.load(ctx, cacheKey, &category) {
		return &category, nil
	}

	found, err := a.adapter.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	a.store(cacheKey, found, categoryTTL)
	return found, nil
}

// ListNurses returns the nurse pool with a short-lived cache
func (a *CachedCatalogAdapter) ListNurses(ctx context.Context) ([]*entities.NurseRecord, error) {
	var nurses []*entities.NurseRecord
	if a.load(ctx, nurseListCacheKey, &nurses) {
		return nurses, nil
	}

	nurses, err := a.adapter.ListNurses(ctx)
	if err != nil {
		return nil, err
	}

	a.store(nurseListCacheKey, nurses, nurseListTTL)
	return nurses, nil
}

func (a *CachedCatalogAdapter) load(ctx context.Context, key string, dst interface{}) bool {
	cached, err := a.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(cached, dst); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to unmarshal cached catalog entry")
		return false
	}
	return true
}

// store updates the cache in the background so reads never wait on it
func (a *CachedCatalogAdapter) store(key string, value interface{}, ttl time.Duration) {
	write := func() {
		data, err := json.Marshal(value)
		if err != nil {
			return
		}
		if err := a.cache.Set(context.Background(), key, data, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to cache catalog entry")
		}
	}

	if a.async {
		go write()
		return
	}
	write()
}
