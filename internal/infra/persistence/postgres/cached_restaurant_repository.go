package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"smartdine/internal/domain/entity"
	"smartdine/internal/domain/repository"
	"smartdine/internal/domain/service"
	"smartdine/internal/errors"
)

// DefaultRestaurantCacheTTL applies when no TTL is configured.
const DefaultRestaurantCacheTTL = 5 * time.Minute

// cachedRestaurantRepository caches catalog reads in front of another RestaurantRepository.
// The catalog does not change while the service runs, so entries simply expire.
// Cache failures fall through to the wrapped repository.
type cachedRestaurantRepository struct {
	repository.RestaurantRepository

	cache  service.CacheProvider
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRestaurantRepository wraps next with a read-through cache.
func NewCachedRestaurantRepository(next repository.RestaurantRepository, cache service.CacheProvider, ttl time.Duration, logger *slog.Logger) repository.RestaurantRepository {
	if ttl <= 0 {
		ttl = DefaultRestaurantCacheTTL
	}

	return &cachedRestaurantRepository{
		RestaurantRepository: next,
		cache:                cache,
		ttl:                  ttl,
		logger:               logger,
	}
}

func restaurantCacheKey(id int64) string {
	return fmt.Sprintf("restaurant:%d", id)
}

func restaurantListCacheKey(filter repository.RestaurantFilter) string {
	return fmt.Sprintf("restaurants:list:%s|%s|%s",
		strings.ToLower(strings.TrimSpace(filter.City)),
		strings.ToLower(strings.TrimSpace(filter.Cuisine)),
		strings.TrimSpace(filter.Price),
	)
}

// FindRestaurants lists restaurants, serving repeated filters from cache.
func (repo *cachedRestaurantRepository) FindRestaurants(ctx context.Context, filter repository.RestaurantFilter) ([]*entity.Restaurant, error) {
	key := restaurantListCacheKey(filter)

	var restaurants []*entity.Restaurant
	if repo.load(ctx, key, &restaurants) {
		return restaurants, nil
	}

	restaurants, err := repo.RestaurantRepository.FindRestaurants(ctx, filter)
	if err != nil {
		return nil, err
	}

	repo.store(ctx, key, restaurants)

	return restaurants, nil
}

// FindRestaurantByID retrieves a restaurant, serving repeated lookups from cache.
func (repo *cachedRestaurantRepository) FindRestaurantByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	key := restaurantCacheKey(id)

	var restaurant entity.Restaurant
	if repo.load(ctx, key, &restaurant) {
		return &restaurant, nil
	}

	found, err := repo.RestaurantRepository.FindRestaurantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	repo.store(ctx, key, found)

	return found, nil
}

func (repo *cachedRestaurantRepository) load(ctx context.Context, key string, target any) bool {
	data, err := repo.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			repo.logger.WarnContext(ctx, "Restaurant cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return false
	}

	if err := json.Unmarshal(data, target); err != nil {
		repo.logger.WarnContext(ctx, "Restaurant cache entry is corrupt", slog.String("key", key), slog.Any("error", err))

		return false
	}

	return true
}

func (repo *cachedRestaurantRepository) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := repo.cache.Set(ctx, key, data, repo.ttl); err != nil {
		repo.logger.WarnContext(ctx, "Restaurant cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
