package impl

import (
	"context"
	"testing"
	"time"

	"smartdine/config"
	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/repository"
	"smartdine/internal/domain/schedule"
	"smartdine/internal/errors"
	mockRepo "smartdine/internal/mocks/repository"
	"smartdine/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday 2025-03-12 12:00 UTC.
var fixedNoon = time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)

func createTestRestaurantService(t *testing.T) (usecase.RestaurantUsecase, *mockRepo.MockRestaurantRepository) {
	repo := mockRepo.NewMockRestaurantRepository(t)
	clock, err := schedule.NewClock("UTC", func() time.Time { return fixedNoon })
	require.NoError(t, err)

	svc := NewRestaurantService(RestaurantServiceParams{
		RestaurantRepo: repo,
		Clock:          clock,
		Logger:         discardLogger(),
	})

	return svc, repo
}

func lunchOnly() entity.WeeklyHours {
	return entity.WeeklyHours{"wed": {{"11:00", "14:00"}}}
}

func dinnerOnly() entity.WeeklyHours {
	return entity.WeeklyHours{"wed": {{"17:00", "23:00"}}}
}

func TestRestaurantService_Search_AnnotatesOpenNow(t *testing.T) {
	svc, repo := createTestRestaurantService(t)
	ctx := context.Background()

	filter := repository.RestaurantFilter{City: "balt", Cuisine: "ital", Price: "$$"}
	repo.EXPECT().FindRestaurants(ctx, filter).Return([]*entity.Restaurant{
		{ID: 1, Name: "Lunch", Hours: lunchOnly()},
		{ID: 2, Name: "Dinner", Hours: dinnerOnly()},
		{ID: 3, Name: "Unknown"},
	}, nil)

	views, err := svc.Search(ctx, usecase.SearchRestaurantsInput{City: "balt", Cuisine: "ital", Price: "$$"})

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.True(t, views[0].OpenNow)
	assert.False(t, views[1].OpenNow)
	assert.False(t, views[2].OpenNow)
}

func TestRestaurantService_Search_OpenNowFilter(t *testing.T) {
	svc, repo := createTestRestaurantService(t)
	ctx := context.Background()

	repo.EXPECT().FindRestaurants(ctx, repository.RestaurantFilter{}).Return([]*entity.Restaurant{
		{ID: 1, Hours: lunchOnly()},
		{ID: 2, Hours: dinnerOnly()},
	}, nil)

	views, err := svc.Search(ctx, usecase.SearchRestaurantsInput{OpenNow: true})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(1), views[0].Restaurant.ID)
}

func TestRestaurantService_Search_RepositoryError(t *testing.T) {
	svc, repo := createTestRestaurantService(t)
	ctx := context.Background()

	repo.EXPECT().FindRestaurants(ctx, repository.RestaurantFilter{}).Return(nil, errors.New("db error"))

	views, err := svc.Search(ctx, usecase.SearchRestaurantsInput{})

	assert.Nil(t, views)
	assert.ErrorContains(t, err, "failed to find restaurants")
}

func TestRestaurantService_Get(t *testing.T) {
	svc, repo := createTestRestaurantService(t)
	ctx := context.Background()

	repo.EXPECT().FindRestaurantByID(ctx, int64(1)).Return(&entity.Restaurant{ID: 1, Hours: lunchOnly()}, nil)

	view, err := svc.Get(ctx, 1)

	require.NoError(t, err)
	assert.True(t, view.OpenNow)
}

func TestRestaurantService_Get_NotFound(t *testing.T) {
	svc, repo := createTestRestaurantService(t)
	ctx := context.Background()

	repo.EXPECT().FindRestaurantByID(ctx, int64(99)).Return(nil, repository.ErrRestaurantNotFound)

	_, err := svc.Get(ctx, 99)

	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestNewRestaurantClock(t *testing.T) {
	cfg := &config.Config{Restaurants: &config.RestaurantsConfig{Timezone: "America/New_York"}}
	clock, err := NewRestaurantClock(cfg)
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", clock.Now().Location().String())

	cfg.Restaurants.Timezone = "Mars/Olympus"
	_, err = NewRestaurantClock(cfg)
	assert.Error(t, err)
}
