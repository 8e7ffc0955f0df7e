package entity

import "time"

// Favorite marks a restaurant as saved by a user. Unique per (user, restaurant).
type Favorite struct {
	UserID       int64
	RestaurantID int64
	CreatedAt    time.Time
}
