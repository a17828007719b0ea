package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/providers"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
)

// CachedProviderAdapter wraps a ProviderRepository with read-through caching.
// Rating writes invalidate the cached entry so admission always prices
// against fresh provider data after an aggregate update.
type CachedProviderAdapter struct {
	adapter repositories.ProviderRepository
	cache   providers.CacheProvider
}

// NewCachedProviderAdapter creates a new cached provider adapter
func NewCachedProviderAdapter(adapter repositories.ProviderRepository, cache providers.CacheProvider) repositories.ProviderRepository {
	return &CachedProviderAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	providerByIDTTL = 300 // 5 minutes for single provider
	providerListTTL = 120 // 2 minutes for lists
)

func providerCacheKey(id int64) string {
	return fmt.Sprintf("provider:%d", id)
}

func providerListCacheKey(filter repositories.ProviderFilter) string {
	return fmt.Sprintf("providers:list:%s:%s", filter.ServiceType, filter.Location)
}

// Create creates a provider and invalidates list caches lazily (lists expire
// within their TTL; a new provider appearing a couple of minutes late is fine)
func (a *CachedProviderAdapter) Create(ctx context.Context, provider *entities.ServiceProvider) (*entities.ServiceProvider, error) {
	return a.adapter.Create(ctx, provider)
}

// GetByID retrieves a provider by ID with caching
func (a *CachedProviderAdapter) GetByID(ctx context.Context, id int64) (*entities.ServiceProvider, error) {
	cacheKey := providerCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var provider entities.ServiceProvider
		if err := json.Unmarshal(cached, &provider); err == nil {
			return &provider, nil
		}
		log.Warn().Int64("provider_id", id).Err(err).Msg("failed to unmarshal cached provider")
	}

	provider, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(provider); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, providerByIDTTL); err != nil {
			log.Warn().Int64("provider_id", id).Err(err).Msg("failed to cache provider")
		}
	}

	return provider, nil
}

// List retrieves providers with caching
func (a *CachedProviderAdapter) List(ctx context.Context, filter repositories.ProviderFilter) ([]*entities.ServiceProvider, error) {
	cacheKey := providerListCacheKey(filter)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var result []*entities.ServiceProvider
		if err := json.Unmarshal(cached, &result); err == nil {
			return result, nil
		}
	}

	result, err := a.adapter.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, providerListTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache provider list")
		}
	}

	return result, nil
}

// UpdateRating writes the derived rating fields and drops the cached entry
func (a *CachedProviderAdapter) UpdateRating(ctx context.Context, id int64, rating float64, totalReviews int) error {
	if err := a.adapter.UpdateRating(ctx, id, rating, totalReviews); err != nil {
		return err
	}

	if err := a.cache.Delete(ctx, providerCacheKey(id)); err != nil {
		log.Warn().Int64("provider_id", id).Err(err).Msg("failed to invalidate provider cache")
	}

	return nil
}
