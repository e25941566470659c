package repositories

import (
	"context"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/pkg/cache"
	"realestate-backoffice/pkg/logger"
)

// cachedReferenceRepository reads deal and property types through Redis.
// Cache failures are logged and answered from the database.
type cachedReferenceRepository struct {
	ReferenceRepository
	cache cache.CacheOperations
}

func NewCachedReferenceRepository(next ReferenceRepository, c cache.CacheOperations) ReferenceRepository {
	return &cachedReferenceRepository{ReferenceRepository: next, cache: c}
}

func (r *cachedReferenceRepository) FindAllDealTypes(ctx context.Context) ([]models.DealType, error) {
	return readThrough(ctx, r.cache, cache.DealTypeListKey(), func() ([]models.DealType, error) {
		return r.ReferenceRepository.FindAllDealTypes(ctx)
	})
}

func (r *cachedReferenceRepository) FindDealTypeByID(ctx context.Context, id int64) (*models.DealType, error) {
	return readThrough(ctx, r.cache, cache.DealTypeKey(id), func() (*models.DealType, error) {
		return r.ReferenceRepository.FindDealTypeByID(ctx, id)
	})
}

func (r *cachedReferenceRepository) FindAllPropertyTypes(ctx context.Context) ([]models.PropertyType, error) {
	return readThrough(ctx, r.cache, cache.PropertyTypeListKey(), func() ([]models.PropertyType, error) {
		return r.ReferenceRepository.FindAllPropertyTypes(ctx)
	})
}

func (r *cachedReferenceRepository) FindPropertyTypeByID(ctx context.Context, id int64) (*models.PropertyType, error) {
	return readThrough(ctx, r.cache, cache.PropertyTypeKey(id), func() (*models.PropertyType, error) {
		return r.ReferenceRepository.FindPropertyTypeByID(ctx, id)
	})
}

// cachedGeographyRepository caches the country list and single countries.
type cachedGeographyRepository struct {
	GeographyRepository
	cache cache.CacheOperations
}

func NewCachedGeographyRepository(next GeographyRepository, c cache.CacheOperations) GeographyRepository {
	return &cachedGeographyRepository{GeographyRepository: next, cache: c}
}

func (r *cachedGeographyRepository) FindAllCountries(ctx context.Context) ([]models.Country, error) {
	return readThrough(ctx, r.cache, cache.CountryListKey(), func() ([]models.Country, error) {
		return r.GeographyRepository.FindAllCountries(ctx)
	})
}

func (r *cachedGeographyRepository) FindCountryByID(ctx context.Context, id int64) (*models.Country, error) {
	return readThrough(ctx, r.cache, cache.CountryKey(id), func() (*models.Country, error) {
		return r.GeographyRepository.FindCountryByID(ctx, id)
	})
}

func readThrough[T any](ctx context.Context, c cache.CacheOperations, key string, load func() (T, error)) (T, error) {
	var cached T
	err := c.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !cache.IsMiss(err) {
		logger.GlobalLogger.Warnf("reference cache unavailable for %s, reading database: %v", key, err)
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	if err := c.Set(ctx, key, value); err != nil {
		logger.GlobalLogger.Warnf("failed to cache %s: %v", key, err)
	}
	return value, nil
}
