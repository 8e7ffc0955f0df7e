package schedule

import (
	"fmt"

	"smartdine/internal/errors"
)

// SlotMinutes is the width of a reservation slot.
const SlotMinutes = 30

// ErrInvalidClock is returned for time-of-day strings that are not H:MM, HH:MM or HH:MM:SS.
var ErrInvalidClock = errors.New("invalid time of day")

// NormalizeSlot floors a time of day to its half-hour slot and returns it as "HH:MM".
// Minutes below 30 become :00, the rest become :30; the hour never changes, so a slot
// never crosses into the next day. Normalizing a slot returns it unchanged.
func NormalizeSlot(s string) (string, error) {
	hour, minute, err := splitClock(s)
	if err != nil {
		return "", errors.Wrapf(err, "normalize slot %q", s)
	}

	return fmt.Sprintf("%02d:%02d", hour, minute-minute%SlotMinutes), nil
}
