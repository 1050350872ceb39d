package meeting

import (
	"fmt"
	"time"
)

// SlotInterval is the granularity of the meeting time picker.
const SlotInterval = 15 * time.Minute

// slotsPerDay is 24h at 15-minute steps.
const slotsPerDay = 96

// DaySlots returns the ordered sequence of selectable times of day,
// "00:00" through "23:45", as zero-padded "HH:MM" strings.
func DaySlots() []string {
	slots := make([]string, 0, slotsPerDay)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 15 {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}

// sameDay reports whether two instants fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// afterTimeOfDay reports whether the "HH:MM" slot is strictly later than
// the time of day of the given instant.
func afterTimeOfDay(slot string, t time.Time) bool {
	var h, m int
	if _, err := fmt.Sscanf(slot, "%d:%d", &h, &m); err != nil {
		return false
	}
	if h != t.Hour() {
		return h > t.Hour()
	}
	return m > t.Minute()
}

// StartSlots returns the start-time choices for a candidate date. For a date
// other than today the full sequence is returned; for today only slots
// strictly later than now remain. The current instant is an explicit
// parameter so the filter stays pure. An empty result means no valid time is
// available and the caller must say so rather than defaulting.
func StartSlots(date, now time.Time) []string {
	all := DaySlots()
	if !sameDay(date, now) {
		return all
	}
	filtered := make([]string, 0, len(all))
	for _, slot := range all {
		if afterTimeOfDay(slot, now) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}

// EndSlots returns the end-time choices for a candidate end date. On top of
// the StartSlots filtering, when the end date falls on the same calendar day
// as the start date only slots strictly later than the chosen start slot
// remain. Both slots are zero-padded fixed-width "HH:MM" strings, so plain
// string comparison orders them correctly.
func EndSlots(endDate, now, startDate time.Time, startSlot string) []string {
	slots := StartSlots(endDate, now)
	if startSlot == "" || !sameDay(endDate, startDate) {
		return slots
	}
	filtered := make([]string, 0, len(slots))
	for _, slot := range slots {
		if slot > startSlot {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}
