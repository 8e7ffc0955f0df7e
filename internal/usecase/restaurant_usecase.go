// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"smartdine/internal/domain/entity"
)

// SearchRestaurantsInput narrows a catalog search. Empty fields do not filter.
type SearchRestaurantsInput struct {
	City    string
	Cuisine string
	Price   string
	OpenNow bool // Keep only restaurants open at the current instant.
}

// RestaurantView is a catalog entry annotated with its current opening state.
type RestaurantView struct {
	Restaurant *entity.Restaurant
	OpenNow    bool
}

// RestaurantUsecase defines the interface for catalog browsing.
type RestaurantUsecase interface {
	Search(ctx context.Context, input SearchRestaurantsInput) ([]*RestaurantView, error)
	Get(ctx context.Context, restaurantID int64) (*RestaurantView, error)
}
