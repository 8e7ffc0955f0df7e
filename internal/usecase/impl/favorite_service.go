package impl

import (
	"context"
	"log/slog"

	deliverycontext "smartdine/internal/delivery/context"
	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/repository"
	"smartdine/internal/errors"
	"smartdine/internal/usecase"

	"go.uber.org/fx"
)

type favoriteService struct {
	favoriteRepo   repository.FavoriteRepository
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo   repository.FavoriteRepository
	RestaurantRepo repository.RestaurantRepository
	Logger         *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo:   params.FavoriteRepo,
		restaurantRepo: params.RestaurantRepo,
		logger:         params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFavorites returns the user's saved restaurants, most recently saved first.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID int64) ([]*entity.Restaurant, error) {
	restaurants, err := srv.favoriteRepo.FindFavoriteRestaurants(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return restaurants, nil
}

// AddFavorite saves a restaurant for the user.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID, restaurantID int64) error {
	if restaurantID <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("favorite requires restaurant_id")
	}

	if _, err := srv.restaurantRepo.FindRestaurantByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrRestaurantNotFound.WrapMessage("favorite restaurant")
		}

		return errors.Wrap(err, "failed to find restaurant")
	}

	err := srv.favoriteRepo.AddFavorite(ctx, &entity.Favorite{UserID: userID, RestaurantID: restaurantID})
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrDuplicateFavorite):
		return domainerrors.ErrFavoriteAlreadyExists.WrapMessage("add favorite")
	case errors.Is(err, repository.ErrRestaurantNotFound):
		return domainerrors.ErrRestaurantNotFound.WrapMessage("favorite restaurant")
	default:
		return errors.Wrap(err, "failed to add favorite")
	}

	srv.log(ctx).Info("Favorite added",
		slog.Int64("user_id", userID),
		slog.Int64("restaurant_id", restaurantID),
	)

	return nil
}

// RemoveFavorite unsaves a restaurant. Removing a restaurant that is not saved succeeds.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID, restaurantID int64) error {
	if restaurantID <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("favorite requires restaurant_id")
	}

	if err := srv.favoriteRepo.RemoveFavorite(ctx, userID, restaurantID); err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}
