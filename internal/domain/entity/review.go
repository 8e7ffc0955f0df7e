package entity

import "time"

// Review ratings are inclusive bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating of a restaurant. Unique per (user, restaurant).
type Review struct {
	ID             int64
	UserID         int64
	RestaurantID   int64
	Rating         int
	Text           string
	RestaurantName string // Populated by listing queries only.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidRating reports whether rating is within MinRating..MaxRating.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
