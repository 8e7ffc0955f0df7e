package service

import (
	"context"
	"time"
)

// Reservation event types
const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
)

// ReservationEvent describes a booking change for downstream consumers
type ReservationEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	EventType     string    `json:"event_type"`
	ReservationID int64     `json:"reservation_id"`
	RestaurantID  int64     `json:"restaurant_id"`
	UserID        *int64    `json:"user_id,omitempty"` // Nil for guest bookings
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	PartySize     int       `json:"party_size"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReservationEvent publishes a reservation event
	PublishReservationEvent(ctx context.Context, event *ReservationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
