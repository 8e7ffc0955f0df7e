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

// reservationRepository implements the repository.ReservationRepository interface.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{
		db: db,
	}
}

// reservationDetailRow is the scan target of the reservation/restaurant join.
type reservationDetailRow struct {
	ID                int64
	RestaurantID      int64
	UserID            *int64
	Name              string
	PartySize         int
	Date              string
	Time              string
	CreatedAt         time.Time
	RestaurantName    string
	RestaurantCity    string
	RestaurantCuisine string
	RestaurantAddress string
}

// CountReservationsBySlot counts reservations for one restaurant, date and slot.
func (repo *reservationRepository) CountReservationsBySlot(ctx context.Context, restaurantID int64, date, slot string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("restaurant_id = ? AND date = ? AND time = ?", restaurantID, date, slot).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reservations for slot")
	}

	return count, nil
}

// CreateReservation persists a new reservation.
func (repo *reservationRepository) CreateReservation(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).Create(reservationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reservation")
	}

	// Update the entity with generated values
	reservation.ID = reservationM.ID
	reservation.CreatedAt = reservationM.CreatedAt

	return nil
}

// FindReservationByIDForUser retrieves a reservation owned by userID.
func (repo *reservationRepository) FindReservationByIDForUser(ctx context.Context, id, userID int64) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by ID")
	}

	return toReservationDomain(&reservationM), nil
}

// FindReservationsByUser lists a user's reservations joined with their restaurants.
func (repo *reservationRepository) FindReservationsByUser(ctx context.Context, userID int64) ([]*entity.ReservationDetail, error) {
	var rows []reservationDetailRow

	if err := repo.db.WithContext(ctx).
		Table("reservations AS r").
		Select("r.id, r.restaurant_id, r.user_id, r.name, r.party_size, r.date, r.time, r.created_at, " +
			"s.name AS restaurant_name, s.city AS restaurant_city, s.cuisine AS restaurant_cuisine, s.address AS restaurant_address").
		Joins("JOIN restaurants AS s ON s.id = r.restaurant_id").
		Where("r.user_id = ?", userID).
		Order("r.date ASC, r.time ASC, r.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reservations by user")
	}

	details := make([]*entity.ReservationDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, &entity.ReservationDetail{
			Reservation: entity.Reservation{
				ID:           row.ID,
				RestaurantID: row.RestaurantID,
				UserID:       row.UserID,
				Name:         row.Name,
				PartySize:    row.PartySize,
				Date:         row.Date,
				Time:         row.Time,
				CreatedAt:    row.CreatedAt,
			},
			RestaurantName:    row.RestaurantName,
			RestaurantCity:    row.RestaurantCity,
			RestaurantCuisine: row.RestaurantCuisine,
			RestaurantAddress: row.RestaurantAddress,
		})
	}

	return details, nil
}

// DeleteReservationForUser deletes a reservation owned by userID.
func (repo *reservationRepository) DeleteReservationForUser(ctx context.Context, id, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ReservationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete reservation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

// toReservationDomain converts a GORM model to a domain entity.
func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	return &entity.Reservation{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		UserID:       data.UserID,
		Name:         data.Name,
		PartySize:    data.PartySize,
		Date:         data.Date,
		Time:         data.Time,
		CreatedAt:    data.CreatedAt,
	}
}

// fromReservationDomain converts a domain entity to a GORM model.
func fromReservationDomain(data *entity.Reservation) *model.ReservationModel {
	return &model.ReservationModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		UserID:       data.UserID,
		Name:         data.Name,
		PartySize:    data.PartySize,
		Date:         data.Date,
		Time:         data.Time,
		CreatedAt:    data.CreatedAt,
	}
}
