// Command seed loads the restaurant catalog into PostgreSQL.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"smartdine/config"
	"smartdine/internal/domain/entity"
	"smartdine/internal/domain/repository"
	"smartdine/internal/errors"
	logs "smartdine/internal/infra/log"
	"smartdine/internal/infra/persistence/postgres"
	"smartdine/internal/util"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type seedOptions struct {
	configDir string
	dataDir   string
	files     string
	migrate   bool
	reset     bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Load restaurant catalog files into the database",
		Long:          `seed rebuilds the restaurant catalog from city JSON files in a single transaction, optionally creating the schema first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configDir, "config-dir", "config", "Directory containing config.yaml")
	cmd.Flags().StringVar(&opts.dataDir, "data", "data", "Directory containing the catalog JSON files")
	cmd.Flags().StringVar(&opts.files, "files", "", "Comma separated catalog files (default Baltimore, Annapolis, Frederick, OC)")
	cmd.Flags().BoolVar(&opts.migrate, "migrate", false, "Create or update the schema before loading")
	cmd.Flags().BoolVar(&opts.reset, "reset", true, "Empty the catalog (and the reservations, favorites and reviews tied to it) before loading; --reset=false appends")

	return cmd
}

func runSeed(ctx context.Context, opts *seedOptions) error {
	started := time.Now()

	cfg, err := config.Load(opts.configDir)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.NewWithWriter(os.Stderr, cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB(logger, db)

	if opts.migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		logger.Info("Schema migrated")
	}

	restaurants, report := loadCatalog(logger, opts.dataDir, splitFiles(opts.files))

	if err := storeCatalog(ctx, postgres.NewTransactionManager(db), restaurants, opts.reset); err != nil {
		return err
	}
	if opts.reset {
		logger.Info("Catalog reset before loading")
	}

	counts, err := countRows(ctx, db)
	if err != nil {
		return err
	}

	fmt.Println("================ DATABASE SEEDED ================")
	fmt.Printf("Files loaded:          %d (missing %d, failed %d)\n", len(report.Loaded), len(report.Missing), len(report.Failed))
	fmt.Printf("Restaurants inserted:  %d\n", len(restaurants))
	fmt.Printf("Restaurants total:     %d\n", counts.restaurants)
	fmt.Printf("Users in database:     %d\n", counts.users)
	fmt.Printf("Favorites count:       %d\n", counts.favorites)
	fmt.Printf("Reviews count:         %d\n", counts.reviews)
	fmt.Printf("Elapsed:               %s\n", util.FormatElapsed(time.Since(started)))
	fmt.Println("=================================================")

	return nil
}

// storeCatalog inserts restaurants, first emptying the catalog when reset is set. Both
// steps share one transaction, so a failed insert leaves the previous catalog in place.
func storeCatalog(ctx context.Context, txManager repository.TransactionManager, restaurants []*entity.Restaurant, reset bool) error {
	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalog := repoFactory.NewRestaurantRepository()
		if reset {
			if err := catalog.ResetCatalog(ctx); err != nil {
				return err
			}
		}

		return catalog.CreateRestaurants(ctx, restaurants)
	})
	if err != nil {
		return errors.Wrap(err, "failed to store restaurants")
	}

	return nil
}

type rowCounts struct {
	restaurants int64
	users       int64
	favorites   int64
	reviews     int64
}

func countRows(ctx context.Context, db *gorm.DB) (rowCounts, error) {
	var counts rowCounts
	var err error

	if counts.restaurants, err = postgres.NewRestaurantRepository(db).CountRestaurants(ctx); err != nil {
		return counts, err
	}
	if counts.users, err = postgres.NewUserRepository(db).CountUsers(ctx); err != nil {
		return counts, err
	}
	if counts.favorites, err = postgres.NewFavoriteRepository(db).CountFavorites(ctx); err != nil {
		return counts, err
	}
	if counts.reviews, err = postgres.NewReviewRepository(db).CountReviews(ctx); err != nil {
		return counts, err
	}

	return counts, nil
}

func closeDB(logger *slog.Logger, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("Failed to close database", slog.Any("error", err))
	}
}
