package usecase

import (
	"context"

	"smartdine/internal/domain/entity"
)

// ReserveInput defines the data required to book a table.
type ReserveInput struct {
	RestaurantID int64
	Name         string
	PartySize    int
	Date         string // YYYY-MM-DD
	Time         string // H:MM, HH:MM or HH:MM:SS; floored to the half hour.
	UserID       *int64 // Nil for guest bookings.
}

// ReservationResult is a stored reservation and the slot occupancy after it was made.
type ReservationResult struct {
	Reservation     *entity.Reservation
	Capacity        int
	TablesRemaining int
}

// ReservationUsecase defines the interface for booking and managing reservations.
type ReservationUsecase interface {
	// Reserve books one table for a (restaurant, date, slot) if the slot has capacity left.
	Reserve(ctx context.Context, input ReserveInput) (*ReservationResult, error)

	// Cancel deletes a reservation owned by userID.
	Cancel(ctx context.Context, userID, reservationID int64) error

	// ListForUser lists the user's reservations ordered by date and time.
	ListForUser(ctx context.Context, userID int64) ([]*entity.ReservationDetail, error)

	// ConfirmationQR renders a PNG confirmation code for a reservation owned by userID.
	ConfirmationQR(ctx context.Context, userID, reservationID int64) ([]byte, error)
}
