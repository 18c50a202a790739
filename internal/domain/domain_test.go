package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayNameOf(t *testing.T) {
	assert.Equal(t, Sunday, DayNameOf(time.Sunday))
	assert.Equal(t, Saturday, DayNameOf(time.Saturday))
	assert.True(t, Wednesday.IsValid())
	assert.False(t, DayName("funday").IsValid())
}

func TestDayHours_Validate(t *testing.T) {
	assert.NoError(t, DayHours{Open: "09:00", Close: "17:00:00"}.Validate())
	assert.NoError(t, DayHours{Open: "09:00", Close: "09:00"}.Validate())
	assert.Error(t, DayHours{Open: "18:00", Close: "09:00"}.Validate())
	assert.Error(t, DayHours{Open: "9am", Close: "17:00"}.Validate())
}

func TestWeeklyHours_For(t *testing.T) {
	var nilHours WeeklyHours
	assert.Nil(t, nilHours.For(Monday))

	hours := WeeklyHours{Monday: {Open: "08:00", Close: "16:00"}, Sunday: nil}
	assert.True(t, hours.IsOpen(Monday))
	assert.False(t, hours.IsOpen(Sunday))
	assert.False(t, hours.IsOpen(Tuesday))
}

func TestSortChangeRecords(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	records := []ChangeRecord{
		{ID: "3", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "1", CreatedAt: base},
		{ID: "2", CreatedAt: base},
	}

	sorted := SortChangeRecords(records)

	ids := make([]string, 0, sorted.Len())
	for _, r := range sorted.Records() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
	assert.Equal(t, "3", records[0].ID, "input must not be reordered")
}
