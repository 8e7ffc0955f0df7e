// Package entity contains the core business objects of the project.
package entity

// Day keys used in WeeklyHours, indexed by time.Weekday (Sunday = 0).
var DayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// WeeklyHours maps a day key ("sun".."sat") to that day's opening ranges.
// Each range is a ["HH:MM","HH:MM"] pair; an end before its start wraps past midnight.
// Ranges are kept as loose slices so malformed stored data can still be decoded.
type WeeklyHours map[string][][]string

// Restaurant is a listing in the catalog. Restaurants are created by the seed tool
// and are read-only while the service is running.
type Restaurant struct {
	ID      int64       // Unique, immutable identifier.
	Name    string      // Display name.
	City    string      // City the restaurant is located in.
	Cuisine string      // Cuisine label, e.g. "Italian".
	Price   string      // Price tier, e.g. "$$".
	Address string      // Street address.
	Tables  int         // Number of tables; non-positive means "not set".
	Hours   WeeklyHours // Weekly opening hours; nil when missing or unparsable.
}

// Capacity returns the number of reservations a single slot can hold.
func (r *Restaurant) Capacity(defaultCapacity int) int {
	if r.Tables > 0 {
		return r.Tables
	}

	return defaultCapacity
}
