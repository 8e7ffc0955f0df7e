package entity

import "time"

// User is a diner profile. Identity is carried per request in an access token.
type User struct {
	ID               int64
	Name             string
	Email            string // Optional.
	PreferredCuisine string // Optional; drives the strongest recommendation signal.
	CreatedAt        time.Time
}
