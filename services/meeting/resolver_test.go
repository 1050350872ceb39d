// File: pulsecrm/services/meeting/resolver_test.go
package meeting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSlot(t *testing.T) {
	got, err := ResolveSlot("2025-06-01", "09:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), got)
}

func TestResolveSlotNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	got, err := ResolveSlot("2025-06-01", "09:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestResolveSlotRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		date  string
		slot  string
		field string
	}{
		{"missing date", "", "09:00", "date"},
		{"garbage date", "June 1st", "09:00", "date"},
		{"missing slot", "2025-06-01", "", "time"},
		{"hour out of range", "2025-06-01", "24:00", "time"},
		{"minute out of range", "2025-06-01", "09:75", "time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveSlot(tc.date, tc.slot, time.UTC)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestAdvanceEndMovesStaleEnd(t *testing.T) {
	// Start pushed to 15:00 while the end still reads 10:00 the same day.
	newStart := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	got := AdvanceEnd(newStart, end)
	assert.Equal(t, time.Date(2025, 6, 1, 16, 0, 0, 0, time.UTC), got)
}

func TestAdvanceEndKeepsValidEnd(t *testing.T) {
	newStart := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, end, AdvanceEnd(newStart, end))
}

func TestAdvanceEndEqualInstants(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, at.Add(time.Hour), AdvanceEnd(at, at))
}

func TestValidationErrorUnwraps(t *testing.T) {
	err := error(&ValidationError{Field: "time", Reason: "invalid time slot"})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}
