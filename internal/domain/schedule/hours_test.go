package schedule

import (
	"testing"
	"time"

	"smartdine/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-06-01 is a Saturday.
func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.June, day, hour, minute, 0, 0, time.UTC)
}

func TestIsOpenAt(t *testing.T) {
	t.Parallel()

	overnight := entity.WeeklyHours{"sat": {{"22:00", "02:00"}}}
	split := entity.WeeklyHours{"sat": {{"11:00", "14:00"}, {"17:00", "22:00"}}}

	tests := []struct {
		name     string
		hours    entity.WeeklyHours
		at       time.Time
		expected bool
	}{
		{name: "overnight before midnight", hours: overnight, at: at(1, 23, 30), expected: true},
		{name: "overnight after midnight", hours: overnight, at: at(1, 1, 30), expected: true},
		{name: "overnight at noon", hours: overnight, at: at(1, 12, 0), expected: false},
		{name: "overnight at closing minute", hours: overnight, at: at(1, 2, 0), expected: false},
		{name: "overnight at opening minute", hours: overnight, at: at(1, 22, 0), expected: true},
		{name: "same day inside first range", hours: split, at: at(1, 11, 0), expected: true},
		{name: "same day between ranges", hours: split, at: at(1, 15, 0), expected: false},
		{name: "same day inside second range", hours: split, at: at(1, 21, 59), expected: true},
		{name: "same day at closing minute", hours: split, at: at(1, 22, 0), expected: false},
		{name: "other weekday missing", hours: split, at: at(2, 12, 0), expected: false},
		{name: "degenerate range", hours: entity.WeeklyHours{"sat": {{"09:00", "09:00"}}}, at: at(1, 9, 0), expected: false},
		{name: "nil hours", hours: nil, at: at(1, 12, 0), expected: false},
		{name: "empty day", hours: entity.WeeklyHours{"sat": {}}, at: at(1, 12, 0), expected: false},
		{name: "pair with one boundary", hours: entity.WeeklyHours{"sat": {{"09:00"}}}, at: at(1, 12, 0), expected: false},
		{name: "unparsable boundary", hours: entity.WeeklyHours{"sat": {{"nine", "17:00"}}}, at: at(1, 12, 0), expected: false},
		{name: "out of range boundary", hours: entity.WeeklyHours{"sat": {{"09:00", "25:00"}}}, at: at(1, 12, 0), expected: false},
		{name: "malformed range skipped", hours: entity.WeeklyHours{"sat": {{"bad"}, {"09:00", "17:00"}}}, at: at(1, 12, 0), expected: true},
		{name: "sunday key", hours: entity.WeeklyHours{"sun": {{"10:00", "16:00"}}}, at: at(2, 12, 0), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsOpenAt(tt.hours, tt.at))
		})
	}
}

func TestIsOpenAt_Deterministic(t *testing.T) {
	t.Parallel()

	hours := entity.WeeklyHours{"sat": {{"22:00", "02:00"}}}
	instant := at(1, 23, 30)

	for range 10 {
		assert.True(t, IsOpenAt(hours, instant))
	}
}

func TestClock_IsOpenNow(t *testing.T) {
	t.Parallel()

	// 03:30 UTC on Sunday is 23:30 Saturday in New York (EDT).
	fixed := time.Date(2024, time.June, 2, 3, 30, 0, 0, time.UTC)

	clock, err := NewClock("America/New_York", func() time.Time { return fixed })
	require.NoError(t, err)

	assert.Equal(t, time.Saturday, clock.Now().Weekday())
	assert.True(t, clock.IsOpenNow(entity.WeeklyHours{"sat": {{"22:00", "02:00"}}}))
	assert.False(t, clock.IsOpenNow(entity.WeeklyHours{"sun": {{"10:00", "16:00"}}}))
}

func TestNewClock_UnknownZone(t *testing.T) {
	t.Parallel()

	_, err := NewClock("Mars/Olympus_Mons", nil)
	assert.Error(t, err)
}
