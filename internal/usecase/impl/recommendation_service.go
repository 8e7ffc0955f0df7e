package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"smartdine/config"
	deliverycontext "smartdine/internal/delivery/context"
	"smartdine/internal/domain/constants"
	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/recommend"
	"smartdine/internal/domain/repository"
	"smartdine/internal/errors"
	"smartdine/internal/usecase"

	"go.uber.org/fx"
)

type recommendationService struct {
	userRepo       repository.UserRepository
	favoriteRepo   repository.FavoriteRepository
	reviewRepo     repository.ReviewRepository
	restaurantRepo repository.RestaurantRepository
	tieBreaker     recommend.TieBreaker
	logger         *slog.Logger
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	FavoriteRepo   repository.FavoriteRepository
	ReviewRepo     repository.ReviewRepository
	RestaurantRepo repository.RestaurantRepository
	TieBreaker     recommend.TieBreaker
	Logger         *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	tieBreaker := params.TieBreaker
	if tieBreaker == nil {
		tieBreaker = recommend.StableTieBreaker{}
	}

	return &recommendationService{
		userRepo:       params.UserRepo,
		favoriteRepo:   params.FavoriteRepo,
		reviewRepo:     params.ReviewRepo,
		restaurantRepo: params.RestaurantRepo,
		tieBreaker:     tieBreaker,
		logger:         params.Logger,
	}
}

// NewTieBreaker selects the recommendation tie-break policy from configuration.
func NewTieBreaker(cfg *config.Config) (recommend.TieBreaker, error) {
	switch cfg.Recommendation.TieBreak {
	case constants.TieBreakStable, "":
		return recommend.StableTieBreaker{}, nil
	case constants.TieBreakRandom:
		seed := uint64(cfg.Recommendation.Seed)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}

		return recommend.NewRandomTieBreaker(rand.New(rand.NewPCG(seed, seed>>1|1))), nil
	default:
		return nil, errors.Errorf("unknown recommendation tie-break policy %q", cfg.Recommendation.TieBreak)
	}
}

func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Recommend suggests up to three restaurants the user has not favorited or reviewed,
// one per cuisine, ranked by affinity to the cuisines the user likes.
func (srv *recommendationService) Recommend(ctx context.Context, userID int64) ([]recommend.Scored, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("recommendation user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	favoriteIDs, err := srv.favoriteRepo.FindFavoriteRestaurantIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find favorites")
	}

	reviews, err := srv.reviewRepo.FindReviewsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews")
	}

	catalog, err := srv.restaurantRepo.FindRestaurants(ctx, repository.RestaurantFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	ratings, err := srv.reviewRepo.AverageRatingsByRestaurant(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load average ratings")
	}

	input := recommend.Input{
		PreferredCuisine: user.PreferredCuisine,
		FavoriteIDs:      favoriteIDs,
		Reviews:          make([]entity.Review, 0, len(reviews)),
		Catalog:          make([]entity.Restaurant, 0, len(catalog)),
		AverageRatings:   ratings,
	}
	for _, review := range reviews {
		input.Reviews = append(input.Reviews, *review)
	}
	for _, restaurant := range catalog {
		input.Catalog = append(input.Catalog, *restaurant)
	}

	results := recommend.Recommend(input, srv.tieBreaker)

	srv.log(ctx).Debug("Recommendations computed",
		slog.Int64("user_id", userID),
		slog.Int("favorites", len(favoriteIDs)),
		slog.Int("reviews", len(reviews)),
		slog.Int("results", len(results)),
	)

	return results, nil
}
