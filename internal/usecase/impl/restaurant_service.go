// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"smartdine/config"
	deliverycontext "smartdine/internal/delivery/context"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/repository"
	"smartdine/internal/domain/schedule"
	"smartdine/internal/errors"
	"smartdine/internal/usecase"

	"go.uber.org/fx"
)

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	clock          *schedule.Clock
	logger         *slog.Logger
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	Clock          *schedule.Clock
	Logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: params.RestaurantRepo,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

// NewRestaurantClock builds the clock that evaluates opening hours in the configured zone.
func NewRestaurantClock(cfg *config.Config) (*schedule.Clock, error) {
	clock, err := schedule.NewClock(cfg.Restaurants.Timezone, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "load restaurant timezone %q", cfg.Restaurants.Timezone)
	}

	return clock, nil
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search lists catalog entries matching the filter, each annotated with whether it is open now.
func (srv *restaurantService) Search(ctx context.Context, input usecase.SearchRestaurantsInput) ([]*usecase.RestaurantView, error) {
	restaurants, err := srv.restaurantRepo.FindRestaurants(ctx, repository.RestaurantFilter{
		City:    input.City,
		Cuisine: input.Cuisine,
		Price:   input.Price,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants")
	}

	views := make([]*usecase.RestaurantView, 0, len(restaurants))
	for _, restaurant := range restaurants {
		openNow := srv.clock.IsOpenNow(restaurant.Hours)
		if input.OpenNow && !openNow {
			continue
		}
		views = append(views, &usecase.RestaurantView{Restaurant: restaurant, OpenNow: openNow})
	}

	srv.log(ctx).Debug("Restaurant search",
		slog.String("city", input.City),
		slog.String("cuisine", input.Cuisine),
		slog.String("price", input.Price),
		slog.Bool("open_now", input.OpenNow),
		slog.Int("results", len(views)),
	)

	return views, nil
}

// Get returns one restaurant with its current opening state.
func (srv *restaurantService) Get(ctx context.Context, restaurantID int64) (*usecase.RestaurantView, error) {
	restaurant, err := srv.restaurantRepo.FindRestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound.WrapMessage("restaurant lookup")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return &usecase.RestaurantView{
		Restaurant: restaurant,
		OpenNow:    srv.clock.IsOpenNow(restaurant.Hours),
	}, nil
}
