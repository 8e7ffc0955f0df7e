package postgres

import (
	"context"
	"time"

	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/repository"
	"smartdine/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// reviewRow is the scan target of the review/restaurant join.
type reviewRow struct {
	ID             int64
	UserID         int64
	RestaurantID   int64
	Rating         int
	ReviewText     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	RestaurantName string
}

type averageRatingRow struct {
	RestaurantID  int64
	AverageRating float64
}

// CreateReview persists a review.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		UserID:       review.UserID,
		RestaurantID: review.RestaurantID,
		Rating:       review.Rating,
		ReviewText:   review.Text,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// UpdateReviewForUser changes the rating and text of a review owned by userID.
func (repo *reviewRepository) UpdateReviewForUser(ctx context.Context, id, userID int64, rating int, text string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"rating":      rating,
			"review_text": text,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRating
		}

		return errors.Wrap(result.Error, "failed to update review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// DeleteReviewForUser deletes a review owned by userID.
func (repo *reviewRepository) DeleteReviewForUser(ctx context.Context, id, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// FindReviewsByUser lists a user's reviews with restaurant names, newest first.
func (repo *reviewRepository) FindReviewsByUser(ctx context.Context, userID int64) ([]*entity.Review, error) {
	var rows []reviewRow

	if err := repo.db.WithContext(ctx).
		Table("reviews AS rv").
		Select("rv.id, rv.user_id, rv.restaurant_id, rv.rating, rv.review_text, rv.created_at, rv.updated_at, r.name AS restaurant_name").
		Joins("JOIN restaurants AS r ON r.id = rv.restaurant_id").
		Where("rv.user_id = ?", userID).
		Order("rv.created_at DESC, rv.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by user")
	}

	reviews := make([]*entity.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, &entity.Review{
			ID:             row.ID,
			UserID:         row.UserID,
			RestaurantID:   row.RestaurantID,
			Rating:         row.Rating,
			Text:           row.ReviewText,
			RestaurantName: row.RestaurantName,
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      row.UpdatedAt,
		})
	}

	return reviews, nil
}

// AverageRatingsByRestaurant returns the mean rating of every reviewed restaurant.
func (repo *reviewRepository) AverageRatingsByRestaurant(ctx context.Context) (map[int64]float64, error) {
	var rows []averageRatingRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("restaurant_id, CAST(AVG(rating) AS DOUBLE PRECISION) AS average_rating").
		Group("restaurant_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to average review ratings")
	}

	ratings := make(map[int64]float64, len(rows))
	for _, row := range rows {
		ratings[row.RestaurantID] = row.AverageRating
	}

	return ratings, nil
}

// CountReviews returns the number of reviews across all users.
func (repo *reviewRepository) CountReviews(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reviews")
	}

	return count, nil
}
