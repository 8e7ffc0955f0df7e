package repository

import (
	"context"

	"smartdine/internal/domain/entity"
	"smartdine/internal/errors"
)

// Domain-specific errors for reservation persistence.
var (
	// ErrReservationNotFound is returned when a reservation is not found or not owned by the caller.
	ErrReservationNotFound = errors.New("reservation not found")
)

// ReservationRepository defines the interface for reservation-related database operations.
type ReservationRepository interface {
	// CountReservationsBySlot counts reservations for one restaurant, date and slot.
	CountReservationsBySlot(ctx context.Context, restaurantID int64, date, slot string) (int64, error)

	// CreateReservation persists a new reservation and fills in its ID and CreatedAt.
	CreateReservation(ctx context.Context, reservation *entity.Reservation) error

	// FindReservationByIDForUser retrieves a reservation owned by userID.
	FindReservationByIDForUser(ctx context.Context, id, userID int64) (*entity.Reservation, error)

	// FindReservationsByUser lists a user's reservations with restaurant details,
	// ordered by date then time.
	FindReservationsByUser(ctx context.Context, userID int64) ([]*entity.ReservationDetail, error)

	// DeleteReservationForUser deletes a reservation owned by userID.
	DeleteReservationForUser(ctx context.Context, id, userID int64) error
}
