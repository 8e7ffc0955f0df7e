// Package schedule evaluates restaurant opening hours and reservation slots.
package schedule

import (
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // Restaurant zones must resolve in minimal containers.

	"smartdine/internal/domain/entity"
)

const minutesPerHour = 60

// IsOpenAt reports whether t falls inside any of the ranges listed for t's weekday.
//
// A range whose end is before its start wraps past midnight and is evaluated against
// the same day's list only, so "sat": [["22:00","02:00"]] is open at 01:30 on Saturday.
// A range whose end equals its start is never open. Missing days, malformed pairs and
// unparsable boundaries never match.
func IsOpenAt(hours entity.WeeklyHours, t time.Time) bool {
	if len(hours) == 0 {
		return false
	}

	ranges, ok := hours[entity.DayKeys[t.Weekday()]]
	if !ok {
		return false
	}

	now := t.Hour()*minutesPerHour + t.Minute()

	for _, r := range ranges {
		if len(r) != 2 {
			continue
		}

		start, err := parseMinutes(r[0])
		if err != nil {
			continue
		}

		end, err := parseMinutes(r[1])
		if err != nil {
			continue
		}

		switch {
		case end == start:
			continue
		case end > start:
			if now >= start && now < end {
				return true
			}
		default:
			if now >= start || now < end {
				return true
			}
		}
	}

	return false
}

// parseMinutes converts "HH:MM" (or "HH:MM:SS") to minutes since midnight.
func parseMinutes(s string) (int, error) {
	hour, minute, err := splitClock(s)
	if err != nil {
		return 0, err
	}

	return hour*minutesPerHour + minute, nil
}

// splitClock parses "H:MM", "HH:MM" or "HH:MM:SS" into hour and minute.
func splitClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, ErrInvalidClock
	}

	if len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, 0, ErrInvalidClock
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, ErrInvalidClock
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidClock
	}

	if len(parts) == 3 {
		second, err := strconv.Atoi(parts[2])
		if err != nil || len(parts[2]) != 2 || second < 0 || second > 59 {
			return 0, 0, ErrInvalidClock
		}
	}

	return hour, minute, nil
}

// Clock tells the current time in the restaurants' time zone.
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock creates a clock for the IANA zone name. An empty name means UTC.
func NewClock(timezone string, now func() time.Time) (*Clock, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}

	if now == nil {
		now = time.Now
	}

	return &Clock{location: location, now: now}, nil
}

// Now returns the current instant in the clock's zone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.location)
}

// IsOpenNow evaluates hours at the clock's current instant.
func (c *Clock) IsOpenNow(hours entity.WeeklyHours) bool {
	return IsOpenAt(hours, c.Now())
}
