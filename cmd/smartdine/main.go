package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"smartdine/config"
	"smartdine/internal/delivery"
	"smartdine/internal/delivery/api"
	"smartdine/internal/delivery/api/middleware"
	"smartdine/internal/delivery/api/router/handler"
	"smartdine/internal/domain/repository"
	"smartdine/internal/domain/service"
	"smartdine/internal/infra/auth"
	"smartdine/internal/infra/cache"
	logs "smartdine/internal/infra/log"
	"smartdine/internal/infra/persistence/postgres"
	"smartdine/internal/infra/pubsub"
	"smartdine/internal/infra/qrcode"
	"smartdine/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

const defaultCatalogCacheTTL = 5 * time.Minute

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRestaurantRepository,
			postgres.NewReservationRepository,
			postgres.NewUserRepository,
			postgres.NewFavoriteRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

// newRestaurantRepository serves catalog reads through Redis when a cache is configured.
func newRestaurantRepository(db *gorm.DB, cfg *config.Config, cacheProvider service.CacheProvider, logger *slog.Logger) repository.RestaurantRepository {
	repo := postgres.NewRestaurantRepository(db)
	if cacheProvider == nil {
		return repo
	}

	ttl := defaultCatalogCacheTTL
	if cfg.Redis != nil && cfg.Redis.TTL > 0 {
		ttl = cfg.Redis.TTL
	}

	return postgres.NewCachedRestaurantRepository(repo, cacheProvider, ttl, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.New,
			impl.NewRestaurantClock,
			impl.NewTieBreaker,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRestaurantService,
			impl.NewReservationService,
			impl.NewUserService,
			impl.NewFavoriteService,
			impl.NewReviewService,
			impl.NewRecommendationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRestaurantHandler,
			handler.NewReservationHandler,
			handler.NewUserHandler,
			handler.NewFavoriteHandler,
			handler.NewReviewHandler,
			handler.NewRecommendationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
