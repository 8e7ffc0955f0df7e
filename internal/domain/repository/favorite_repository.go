package repository

import (
	"context"

	"smartdine/internal/domain/entity"
	"smartdine/internal/errors"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrDuplicateFavorite is returned when the restaurant is already a favorite of the user.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for saved restaurant operations.
type FavoriteRepository interface {
	// AddFavorite persists a favorite. Returns ErrDuplicateFavorite for an existing pair
	// and ErrRestaurantNotFound when the restaurant does not exist.
	AddFavorite(ctx context.Context, favorite *entity.Favorite) error

	// RemoveFavorite deletes a favorite. Removing a missing favorite is not an error.
	RemoveFavorite(ctx context.Context, userID, restaurantID int64) error

	// FindFavoriteRestaurants lists the user's favorite restaurants, most recently added first.
	FindFavoriteRestaurants(ctx context.Context, userID int64) ([]*entity.Restaurant, error)

	// FindFavoriteRestaurantIDs lists the IDs of the user's favorite restaurants.
	FindFavoriteRestaurantIDs(ctx context.Context, userID int64) ([]int64, error)

	// CountFavorites returns the number of favorites across all users.
	CountFavorites(ctx context.Context) (int64, error)
}
