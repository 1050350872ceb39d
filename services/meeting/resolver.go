package meeting

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date wire format used by the scheduling form.
const DateLayout = "2006-01-02"

// ResolveSlot combines a calendar date ("2006-01-02") with an "HH:MM" slot
// into an absolute instant with zeroed seconds, normalized to UTC.
func ResolveSlot(date, slot string, loc *time.Location) (time.Time, error) {
	if date == "" {
		return time.Time{}, &ValidationError{Field: "date", Reason: "date is required"}
	}
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("invalid date %q", date)}
	}
	var h, m int
	if _, err := fmt.Sscanf(slot, "%d:%d", &h, &m); err != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return time.Time{}, &ValidationError{Field: "time", Reason: fmt.Sprintf("invalid time slot %q", slot)}
	}
	resolved := time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc)
	return resolved.UTC(), nil
}

// AdvanceEnd keeps the end instant valid after a start-side change: when the
// current end would be at or before the new start, the end moves to exactly
// one hour after it. A direct end-time edit never goes through here; submit
// validation still rejects an inverted range.
func AdvanceEnd(newStart, end time.Time) time.Time {
	if !end.After(newStart) {
		return newStart.Add(time.Hour)
	}
	return end
}
