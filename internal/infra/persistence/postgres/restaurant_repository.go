package postgres

import (
	"context"
	"encoding/json"
	"strings"

	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/repository"
	"smartdine/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const restaurantInsertBatchSize = 100

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// FindRestaurants lists restaurants matching the filter ordered by id.
func (repo *restaurantRepository) FindRestaurants(ctx context.Context, filter repository.RestaurantFilter) ([]*entity.Restaurant, error) {
	query := repo.db.WithContext(ctx).Model(&model.RestaurantModel{})

	if city := strings.TrimSpace(filter.City); city != "" {
		query = query.Where("city ILIKE ?", containsPattern(city))
	}
	if cuisine := strings.TrimSpace(filter.Cuisine); cuisine != "" {
		query = query.Where("cuisine ILIKE ?", containsPattern(cuisine))
	}
	if price := strings.TrimSpace(filter.Price); price != "" {
		query = query.Where("price = ?", price)
	}

	var restaurantModels []*model.RestaurantModel
	if err := query.Order("id ASC").Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// FindRestaurantByID retrieves a restaurant by its ID.
func (repo *restaurantRepository) FindRestaurantByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// LockRestaurantByID selects the restaurant row FOR UPDATE. Concurrent bookings for the
// same restaurant queue on this lock until the holding transaction ends.
func (repo *restaurantRepository) LockRestaurantByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to lock restaurant")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// CreateRestaurants inserts catalog rows in batches and copies the generated IDs back.
func (repo *restaurantRepository) CreateRestaurants(ctx context.Context, restaurants []*entity.Restaurant) error {
	if len(restaurants) == 0 {
		return nil
	}

	restaurantModels := make([]*model.RestaurantModel, 0, len(restaurants))
	for _, restaurant := range restaurants {
		restaurantM, err := fromRestaurantDomain(restaurant)
		if err != nil {
			return err
		}
		restaurantModels = append(restaurantModels, restaurantM)
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(restaurantModels, restaurantInsertBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurants")
	}

	for i, restaurantM := range restaurantModels {
		restaurants[i].ID = restaurantM.ID
	}

	return nil
}

// ResetCatalog truncates the restaurants table. CASCADE also clears the reservations,
// favorites and reviews that reference it.
func (repo *restaurantRepository) ResetCatalog(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Exec("TRUNCATE TABLE " + model.RestaurantModel{}.TableName() + " RESTART IDENTITY CASCADE").Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reset restaurant catalog")
	}

	return nil
}

// CountRestaurants returns the catalog size.
func (repo *restaurantRepository) CountRestaurants(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RestaurantModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count restaurants")
	}

	return count, nil
}

// containsPattern builds a LIKE pattern matching s anywhere, with wildcards in s escaped.
func containsPattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)

	return "%" + escaped + "%"
}

// toRestaurantDomain converts a GORM model to a domain entity.
// Unparsable hours degrade to nil so one bad row never fails a listing.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	return &entity.Restaurant{
		ID:      data.ID,
		Name:    data.Name,
		City:    data.City,
		Cuisine: data.Cuisine,
		Price:   data.Price,
		Address: data.Address,
		Tables:  data.Tables,
		Hours:   decodeHours(data.Hours),
	}
}

// fromRestaurantDomain converts a domain entity to a GORM model.
func fromRestaurantDomain(data *entity.Restaurant) (*model.RestaurantModel, error) {
	hours, err := encodeHours(data.Hours)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode hours of %q", data.Name)
	}

	return &model.RestaurantModel{
		ID:      data.ID,
		Name:    data.Name,
		City:    data.City,
		Cuisine: data.Cuisine,
		Price:   data.Price,
		Address: data.Address,
		Tables:  data.Tables,
		Hours:   hours,
	}, nil
}

func decodeHours(raw string) entity.WeeklyHours {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var hours entity.WeeklyHours
	if err := json.Unmarshal([]byte(raw), &hours); err != nil {
		return nil
	}

	return hours
}

func encodeHours(hours entity.WeeklyHours) (string, error) {
	if hours == nil {
		return "", nil
	}

	raw, err := json.Marshal(hours)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}
