package impl

import (
	"context"
	"testing"

	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/repository"
	"smartdine/internal/errors"
	mockRepo "smartdine/internal/mocks/repository"
	"smartdine/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service        usecase.FavoriteUsecase
	favoriteRepo   *mockRepo.MockFavoriteRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	f := favoriteServiceFixtures{
		favoriteRepo:   mockRepo.NewMockFavoriteRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
	}
	f.service = NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo:   f.favoriteRepo,
		RestaurantRepo: f.restaurantRepo,
		Logger:         discardLogger(),
	})

	return f
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	f := createTestFavoriteService(t)
	ctx := context.Background()

	f.restaurantRepo.EXPECT().FindRestaurantByID(ctx, int64(2)).Return(&entity.Restaurant{ID: 2}, nil)
	f.favoriteRepo.EXPECT().AddFavorite(ctx, &entity.Favorite{UserID: 1, RestaurantID: 2}).Return(nil)

	require.NoError(t, f.service.AddFavorite(ctx, 1, 2))
}

func TestFavoriteService_AddFavorite_Duplicate(t *testing.T) {
	f := createTestFavoriteService(t)
	ctx := context.Background()

	f.restaurantRepo.EXPECT().FindRestaurantByID(ctx, int64(2)).Return(&entity.Restaurant{ID: 2}, nil)
	f.favoriteRepo.EXPECT().AddFavorite(ctx, &entity.Favorite{UserID: 1, RestaurantID: 2}).Return(repository.ErrDuplicateFavorite)

	err := f.service.AddFavorite(ctx, 1, 2)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Equal(t, "Already in favorites", appErr.Message())
}

func TestFavoriteService_AddFavorite_UnknownRestaurant(t *testing.T) {
	f := createTestFavoriteService(t)
	ctx := context.Background()

	f.restaurantRepo.EXPECT().FindRestaurantByID(ctx, int64(404)).Return(nil, repository.ErrRestaurantNotFound)

	err := f.service.AddFavorite(ctx, 1, 404)

	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestFavoriteService_AddFavorite_MissingRestaurantID(t *testing.T) {
	f := createTestFavoriteService(t)

	err := f.service.AddFavorite(context.Background(), 1, 0)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestFavoriteService_RemoveFavorite(t *testing.T) {
	f := createTestFavoriteService(t)
	ctx := context.Background()

	f.favoriteRepo.EXPECT().RemoveFavorite(ctx, int64(1), int64(2)).Return(nil).Twice()

	require.NoError(t, f.service.RemoveFavorite(ctx, 1, 2))
	require.NoError(t, f.service.RemoveFavorite(ctx, 1, 2))
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	f := createTestFavoriteService(t)
	ctx := context.Background()

	restaurants := []*entity.Restaurant{{ID: 3}, {ID: 1}}
	f.favoriteRepo.EXPECT().FindFavoriteRestaurants(ctx, int64(1)).Return(restaurants, nil)

	got, err := f.service.ListFavorites(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, restaurants, got)
}
