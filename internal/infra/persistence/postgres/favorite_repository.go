package postgres

import (
	"context"

	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/repository"
	"smartdine/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// AddFavorite persists a favorite.
func (repo *favoriteRepository) AddFavorite(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := &model.FavoriteModel{
		UserID:       favorite.UserID,
		RestaurantID: favorite.RestaurantID,
		CreatedAt:    favorite.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// RemoveFavorite deletes a favorite if it exists.
func (repo *favoriteRepository) RemoveFavorite(ctx context.Context, userID, restaurantID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// FindFavoriteRestaurants lists the user's favorite restaurants, most recently added first.
func (repo *favoriteRepository) FindFavoriteRestaurants(ctx context.Context, userID int64) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Table("restaurants AS r").
		Select("r.*").
		Joins("JOIN favorites AS f ON f.restaurant_id = r.id").
		Where("f.user_id = ?", userID).
		Order("f.created_at DESC, r.id ASC").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorite restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// FindFavoriteRestaurantIDs lists the IDs of the user's favorite restaurants.
func (repo *favoriteRepository) FindFavoriteRestaurantIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Pluck("restaurant_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorite restaurant IDs")
	}

	return ids, nil
}

// CountFavorites returns the number of favorites across all users.
func (repo *favoriteRepository) CountFavorites(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.FavoriteModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count favorites")
	}

	return count, nil
}
