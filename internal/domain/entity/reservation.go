package entity

import "time"

// Reservation is one booked table for a (restaurant, date, slot).
// Reservations are never updated; cancelling deletes the row.
type Reservation struct {
	ID           int64
	RestaurantID int64
	UserID       *int64 // Nil for guest bookings, which cannot be cancelled through the API.
	Name         string // Name the table is booked under.
	PartySize    int
	Date         string // YYYY-MM-DD
	Time         string // Slot-aligned HH:MM
	CreatedAt    time.Time
}

// OwnedBy reports whether the reservation belongs to userID.
func (r *Reservation) OwnedBy(userID int64) bool {
	return r.UserID != nil && *r.UserID == userID
}

// ReservationDetail is a reservation joined with the restaurant it was made at.
type ReservationDetail struct {
	Reservation
	RestaurantName    string
	RestaurantCity    string
	RestaurantCuisine string
	RestaurantAddress string
}
