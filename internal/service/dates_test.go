package service_test

import (
	"testing"
	"time"

	errorvalues "github.com/limbo/timelog/internal/error_values"
	"github.com/limbo/timelog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	testCases := []struct {
		Name     string
		Input    string
		Expected time.Time
		Err      error
	}{
		{
			Name:     "plain day",
			Input:    "2024-03-10",
			Expected: time.Date(2024, 3, 10, 0, 0, 0, 0, loc),
		},
		{
			Name:     "timestamp in zone",
			Input:    "2024-03-10T22:00:00+09:00",
			Expected: time.Date(2024, 3, 10, 0, 0, 0, 0, loc),
		},
		{
			Name:     "utc timestamp crosses into next local day",
			Input:    "2024-03-10T20:00:00Z",
			Expected: time.Date(2024, 3, 11, 0, 0, 0, 0, loc),
		},
		{
			Name:  "garbage",
			Input: "10.03.2024",
			Err:   errorvalues.ErrInvalidDate,
		},
		{
			Name:  "empty",
			Input: "",
			Err:   errorvalues.ErrInvalidDate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := service.ParseDay(tc.Input, loc)
			if tc.Err != nil {
				assert.ErrorIs(t, err, tc.Err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.Expected.Equal(got), got.String())
		})
	}
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	at := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)
	assert.True(t, time.Date(2024, 3, 11, 0, 0, 0, 0, loc).Equal(service.StartOfDay(at, loc)))
	assert.True(t, time.Date(2024, 3, 11, 23, 59, 59, 999999999, loc).Equal(service.EndOfDay(at, loc)))
	assert.Equal(t, "2024-03-11", service.DayKey(at, loc))

	period := service.LastDays(at, 7, loc)
	assert.True(t, time.Date(2024, 3, 5, 0, 0, 0, 0, loc).Equal(period.From))
	assert.True(t, service.EndOfDay(at, loc).Equal(period.To))
}
