package repository

import (
	"context"

	"smartdine/internal/domain/entity"
	"smartdine/internal/errors"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found or not owned by the caller.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the user already reviewed the restaurant.
	ErrDuplicateReview = errors.New("review already exists")
)

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// CreateReview persists a review and fills in its ID and timestamps. Returns
	// ErrDuplicateReview for a second review of the same restaurant and
	// ErrRestaurantNotFound when the restaurant does not exist.
	CreateReview(ctx context.Context, review *entity.Review) error

	// UpdateReviewForUser changes the rating and text of a review owned by userID.
	UpdateReviewForUser(ctx context.Context, id, userID int64, rating int, text string) error

	// DeleteReviewForUser deletes a review owned by userID.
	DeleteReviewForUser(ctx context.Context, id, userID int64) error

	// FindReviewsByUser lists a user's reviews with restaurant names, newest first.
	FindReviewsByUser(ctx context.Context, userID int64) ([]*entity.Review, error)

	// AverageRatingsByRestaurant returns the mean rating of every reviewed restaurant.
	AverageRatingsByRestaurant(ctx context.Context) (map[int64]float64, error)

	// CountReviews returns the number of reviews across all users.
	CountReviews(ctx context.Context) (int64, error)
}
