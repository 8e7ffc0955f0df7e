package postgres

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"smartdine/internal/domain/entity"
	"smartdine/internal/domain/repository"
	"smartdine/internal/domain/service"
	"smartdine/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failGet {
		return nil, errors.New("connection refused")
	}

	value, ok := c.entries[key]
	if !ok {
		return nil, service.ErrCacheMiss
	}

	return value, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value

	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key)
	}

	return nil
}

// countingRestaurantRepository serves a fixed catalog and counts reads.
type countingRestaurantRepository struct {
	repository.RestaurantRepository

	restaurants map[int64]*entity.Restaurant
	byIDCalls   int
	listCalls   int
}

func (r *countingRestaurantRepository) FindRestaurantByID(_ context.Context, id int64) (*entity.Restaurant, error) {
	r.byIDCalls++

	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, repository.ErrRestaurantNotFound
	}

	return restaurant, nil
}

func (r *countingRestaurantRepository) FindRestaurants(_ context.Context, _ repository.RestaurantFilter) ([]*entity.Restaurant, error) {
	r.listCalls++

	return []*entity.Restaurant{r.restaurants[1]}, nil
}

func newCountingRepository() *countingRestaurantRepository {
	return &countingRestaurantRepository{
		restaurants: map[int64]*entity.Restaurant{
			1: {
				ID:      1,
				Name:    "Aldo's",
				City:    "Baltimore",
				Cuisine: "Italian",
				Tables:  12,
				Hours:   entity.WeeklyHours{"fri": {{"17:00", "23:00"}}},
			},
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCachedRestaurantRepository_ServesRepeatedReadsFromCache(t *testing.T) {
	next := newCountingRepository()
	repo := NewCachedRestaurantRepository(next, newMemoryCache(), time.Minute, discardLogger())

	first, err := repo.FindRestaurantByID(context.Background(), 1)
	require.NoError(t, err)

	second, err := repo.FindRestaurantByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.byIDCalls)

	_, err = repo.FindRestaurants(context.Background(), repository.RestaurantFilter{City: "Baltimore"})
	require.NoError(t, err)
	list, err := repo.FindRestaurants(context.Background(), repository.RestaurantFilter{City: " baltimore"})
	require.NoError(t, err)

	assert.Equal(t, 1, next.listCalls)
	require.Len(t, list, 1)
	assert.Equal(t, "Aldo's", list[0].Name)
}

func TestCachedRestaurantRepository_FallsThroughOnCacheErrors(t *testing.T) {
	next := newCountingRepository()
	cache := newMemoryCache()
	cache.failGet = true
	repo := NewCachedRestaurantRepository(next, cache, 0, discardLogger())

	for range 3 {
		restaurant, err := repo.FindRestaurantByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Aldo's", restaurant.Name)
	}

	assert.Equal(t, 3, next.byIDCalls)
}

func TestCachedRestaurantRepository_DoesNotCacheMisses(t *testing.T) {
	next := newCountingRepository()
	repo := NewCachedRestaurantRepository(next, newMemoryCache(), time.Minute, discardLogger())

	for range 2 {
		_, err := repo.FindRestaurantByID(context.Background(), 404)
		assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
	}

	assert.Equal(t, 2, next.byIDCalls)
}

func TestCachedRestaurantRepository_IgnoresCorruptEntries(t *testing.T) {
	next := newCountingRepository()
	cache := newMemoryCache()
	cache.entries[restaurantCacheKey(1)] = []byte("{not json")
	repo := NewCachedRestaurantRepository(next, cache, time.Minute, discardLogger())

	restaurant, err := repo.FindRestaurantByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), restaurant.ID)
	assert.Equal(t, 1, next.byIDCalls)
}
