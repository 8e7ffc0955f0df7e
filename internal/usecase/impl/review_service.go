package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "smartdine/internal/delivery/context"
	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/repository"
	"smartdine/internal/errors"
	"smartdine/internal/usecase"

	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo     repository.ReviewRepository
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo     repository.ReviewRepository
	RestaurantRepo repository.RestaurantRepository
	Logger         *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:     params.ReviewRepo,
		restaurantRepo: params.RestaurantRepo,
		logger:         params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview records the user's single review of a restaurant.
func (srv *reviewService) CreateReview(ctx context.Context, input usecase.CreateReviewInput) (*entity.Review, error) {
	if input.RestaurantID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("review requires restaurant_id")
	}
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating.WrapMessage("create review")
	}

	if _, err := srv.restaurantRepo.FindRestaurantByID(ctx, input.RestaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound.WrapMessage("review restaurant")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	review := &entity.Review{
		UserID:       input.UserID,
		RestaurantID: input.RestaurantID,
		Rating:       input.Rating,
		Text:         strings.TrimSpace(input.Text),
	}
	err := srv.reviewRepo.CreateReview(ctx, review)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrDuplicateReview):
		return nil, domainerrors.ErrReviewAlreadyExists.WrapMessage("create review")
	case errors.Is(err, repository.ErrRestaurantNotFound):
		return nil, domainerrors.ErrRestaurantNotFound.WrapMessage("review restaurant")
	default:
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created",
		slog.Int64("review_id", review.ID),
		slog.Int64("restaurant_id", review.RestaurantID),
		slog.Int("rating", review.Rating),
	)

	return review, nil
}

// UpdateReview changes the rating and text of a review owned by the user.
func (srv *reviewService) UpdateReview(ctx context.Context, input usecase.UpdateReviewInput) error {
	if !entity.ValidRating(input.Rating) {
		return domainerrors.ErrInvalidRating.WrapMessage("update review")
	}

	err := srv.reviewRepo.UpdateReviewForUser(ctx, input.ReviewID, input.UserID, input.Rating, strings.TrimSpace(input.Text))
	if err != nil {
		return mapReviewError(err, "failed to update review")
	}

	return nil
}

// DeleteReview removes a review owned by the user.
func (srv *reviewService) DeleteReview(ctx context.Context, userID, reviewID int64) error {
	if err := srv.reviewRepo.DeleteReviewForUser(ctx, reviewID, userID); err != nil {
		return mapReviewError(err, "failed to delete review")
	}

	return nil
}

// ListUserReviews returns the user's reviews, newest first.
func (srv *reviewService) ListUserReviews(ctx context.Context, userID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindReviewsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func mapReviewError(err error, message string) error {
	if errors.Is(err, repository.ErrReviewNotFound) {
		return domainerrors.ErrReviewNotFound.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}
