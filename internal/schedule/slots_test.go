package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	"github.com/m04kA/SMC-ReservationCore/pkg/types"
)

func TestGenerateLabels(t *testing.T) {
	tests := []struct {
		name string
		min  string
		max  string
		step int
		want []string
	}{
		{name: "inclusive boundary", min: "09:00", max: "10:00", step: 30, want: []string{"09:00", "09:30", "10:00"}},
		{name: "single point window", min: "09:15", max: "09:15", step: 15, want: []string{"09:15"}},
		{name: "min after max", min: "10:00", max: "09:00", step: 30, want: []string{}},
		{name: "unaligned max is excluded", min: "09:00", max: "09:50", step: 20, want: []string{"09:00", "09:20", "09:40"}},
		{name: "minute overflow carries into hour", min: "09:45", max: "11:00", step: 25, want: []string{"09:45", "10:10", "10:35", "11:00"}},
		{name: "compare by hour then minute", min: "09:50", max: "10:05", step: 5, want: []string{"09:50", "09:55", "10:00", "10:05"}},
		{name: "stops before midnight", min: "23:00", max: "23:59", step: 30, want: []string{"23:00", "23:30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateLabels(tt.min, tt.max, tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSlots_NonPositiveStep(t *testing.T) {
	min := types.MustTimeString("09:00")
	max := types.MustTimeString("10:00")

	assert.Empty(t, GenerateSlots(min, max, 0))
	assert.Empty(t, GenerateSlots(min, max, -15))
}

func TestGenerateLabels_Malformed(t *testing.T) {
	_, err := GenerateLabels("nine", "10:00", 15)
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}

func TestGenerateLabels_Idempotent(t *testing.T) {
	first, err := GenerateLabels("08:00", "12:00", 15)
	require.NoError(t, err)
	second, err := GenerateLabels("08:00", "12:00", 15)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 17)
}

func TestSlotsForWindow(t *testing.T) {
	window := ResolveWindow(domain.WeeklyHours{domain.Monday: {Open: "09:00", Close: "10:00"}}, nil)

	got, err := SlotsForWindow(window, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, got)
}
