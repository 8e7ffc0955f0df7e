package impl

import (
	"context"
	"testing"

	"smartdine/config"
	"smartdine/internal/domain/constants"
	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/recommend"
	"smartdine/internal/domain/repository"
	"smartdine/internal/errors"
	mockRepo "smartdine/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationService_Recommend(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)

	userRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(&entity.User{ID: 1, PreferredCuisine: "Thai"}, nil)
	favoriteRepo.EXPECT().FindFavoriteRestaurantIDs(ctx, int64(1)).Return([]int64{10}, nil)
	reviewRepo.EXPECT().FindReviewsByUser(ctx, int64(1)).Return([]*entity.Review{
		{RestaurantID: 20, Rating: 5},
	}, nil)
	restaurantRepo.EXPECT().FindRestaurants(ctx, repository.RestaurantFilter{}).Return([]*entity.Restaurant{
		{ID: 10, Name: "Fav Italian", Cuisine: "Italian"},
		{ID: 20, Name: "Loved Mexican", Cuisine: "Mexican"},
		{ID: 11, Name: "Bella", Cuisine: "Italian"},
		{ID: 12, Name: "Aroma", Cuisine: "Italian"},
		{ID: 21, Name: "Taqueria", Cuisine: "Mexican"},
		{ID: 30, Name: "Siam", Cuisine: "Thai"},
		{ID: 40, Name: "Burger Barn", Cuisine: "American"},
	}, nil)
	reviewRepo.EXPECT().AverageRatingsByRestaurant(ctx).Return(map[int64]float64{11: 4.5, 12: 3.0}, nil)

	svc := NewRecommendationService(RecommendationServiceParams{
		UserRepo:       userRepo,
		FavoriteRepo:   favoriteRepo,
		ReviewRepo:     reviewRepo,
		RestaurantRepo: restaurantRepo,
		TieBreaker:     recommend.StableTieBreaker{},
		Logger:         discardLogger(),
	})

	got, err := svc.Recommend(ctx, 1)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int64(30), got[0].Restaurant.ID)
	assert.Equal(t, int64(11), got[1].Restaurant.ID)
	assert.Equal(t, int64(21), got[2].Restaurant.ID)
}

func TestRecommendationService_Recommend_UnknownUser(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(ctx, int64(5)).Return(nil, repository.ErrUserNotFound)

	svc := NewRecommendationService(RecommendationServiceParams{UserRepo: userRepo, Logger: discardLogger()})

	_, err := svc.Recommend(ctx, 5)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestNewTieBreaker(t *testing.T) {
	cfg := &config.Config{Recommendation: &config.RecommendationConfig{TieBreak: constants.TieBreakStable}}
	tb, err := NewTieBreaker(cfg)
	require.NoError(t, err)
	assert.IsType(t, recommend.StableTieBreaker{}, tb)

	cfg.Recommendation.TieBreak = constants.TieBreakRandom
	cfg.Recommendation.Seed = 7
	tb, err = NewTieBreaker(cfg)
	require.NoError(t, err)
	assert.IsType(t, &recommend.RandomTieBreaker{}, tb)

	cfg.Recommendation.TieBreak = "alphabetical"
	_, err = NewTieBreaker(cfg)
	assert.Error(t, err)
}
