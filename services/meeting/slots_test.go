// File: pulsecrm/services/meeting/slots_test.go
package meeting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaySlots(t *testing.T) {
	slots := DaySlots()
	require.Len(t, slots, 96)
	assert.Equal(t, "00:00", slots[0])
	assert.Equal(t, "23:45", slots[len(slots)-1])

	// Strictly increasing, 15 minutes apart.
	for i := 1; i < len(slots); i++ {
		assert.Greater(t, slots[i], slots[i-1])
		prev, err := time.Parse("15:04", slots[i-1])
		require.NoError(t, err)
		cur, err := time.Parse("15:04", slots[i])
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, cur.Sub(prev))
	}
}

func TestStartSlotsFutureDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 14, 7, 0, 0, time.UTC)
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	slots := StartSlots(date, now)
	assert.Len(t, slots, 96)
}

func TestStartSlotsToday(t *testing.T) {
	now := time.Date(2025, 6, 1, 14, 7, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := StartSlots(date, now)
	require.NotEmpty(t, slots)
	assert.Equal(t, "14:15", slots[0])
	assert.NotContains(t, slots, "14:00")
	assert.NotContains(t, slots, "13:45")
	assert.Contains(t, slots, "23:45")
}

func TestStartSlotsTodayExhausted(t *testing.T) {
	now := time.Date(2025, 6, 1, 23, 50, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := StartSlots(date, now)
	assert.Empty(t, slots)
}

func TestEndSlotsSameDayAsStart(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	slots := EndSlots(day, now, day, "10:00")
	require.NotEmpty(t, slots)
	assert.Equal(t, "10:15", slots[0])
	for _, slot := range slots {
		assert.Greater(t, slot, "10:00")
	}
}

func TestEndSlotsDifferentDay(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	startDay := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	endDay := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	// No start-slot constraint once the end date moves past the start date.
	slots := EndSlots(endDay, now, startDay, "23:45")
	assert.Len(t, slots, 96)
}

func TestEndSlotsTodayAfterLastSlot(t *testing.T) {
	now := time.Date(2025, 6, 1, 23, 46, 0, 0, time.UTC)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := EndSlots(day, now, day, "09:00")
	assert.Empty(t, slots)
}
