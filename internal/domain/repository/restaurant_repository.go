// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"smartdine/internal/domain/entity"
	"smartdine/internal/errors"
)

// Domain-specific errors for restaurant persistence.
var (
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// RestaurantFilter narrows a catalog listing. Empty fields do not filter.
type RestaurantFilter struct {
	City    string // Case-insensitive substring.
	Cuisine string // Case-insensitive substring.
	Price   string // Exact match.
}

// RestaurantRepository defines the interface for restaurant catalog operations.
type RestaurantRepository interface {
	// FindRestaurants lists restaurants matching the filter ordered by id.
	FindRestaurants(ctx context.Context, filter RestaurantFilter) ([]*entity.Restaurant, error)

	// FindRestaurantByID retrieves a restaurant by its ID.
	FindRestaurantByID(ctx context.Context, id int64) (*entity.Restaurant, error)

	// LockRestaurantByID retrieves a restaurant and holds a row lock on it until the
	// surrounding transaction ends. It must be called inside TransactionManager.Execute.
	LockRestaurantByID(ctx context.Context, id int64) (*entity.Restaurant, error)

	// CreateRestaurants inserts catalog rows, filling in their IDs.
	CreateRestaurants(ctx context.Context, restaurants []*entity.Restaurant) error

	// ResetCatalog empties the catalog and everything that references it
	// (reservations, favorites, reviews) and restarts ID numbering.
	ResetCatalog(ctx context.Context) error

	// CountRestaurants returns the catalog size.
	CountRestaurants(ctx context.Context) (int64, error)
}
