package usecase

import (
	"context"

	"smartdine/internal/domain/entity"
)

// CreateReviewInput defines the data required to review a restaurant.
type CreateReviewInput struct {
	UserID       int64
	RestaurantID int64
	Rating       int
	Text         string
}

// UpdateReviewInput defines the new rating and text of an existing review.
type UpdateReviewInput struct {
	UserID   int64
	ReviewID int64
	Rating   int
	Text     string
}

// ReviewUsecase defines the interface for review-related business operations.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, input CreateReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, input UpdateReviewInput) error
	DeleteReview(ctx context.Context, userID, reviewID int64) error
	ListUserReviews(ctx context.Context, userID int64) ([]*entity.Review, error)
}
