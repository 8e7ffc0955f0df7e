package usecase

import (
	"context"

	"smartdine/internal/domain/entity"
)

// FavoriteUsecase defines the interface for saved restaurants.
type FavoriteUsecase interface {
	ListFavorites(ctx context.Context, userID int64) ([]*entity.Restaurant, error)
	AddFavorite(ctx context.Context, userID, restaurantID int64) error
	RemoveFavorite(ctx context.Context, userID, restaurantID int64) error
}
