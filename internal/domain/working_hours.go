package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationCore/pkg/types"
)

// DayName lower-case English weekday name used as a WeeklyHours key
type DayName string

const (
	Sunday    DayName = "sunday"
	Monday    DayName = "monday"
	Tuesday   DayName = "tuesday"
	Wednesday DayName = "wednesday"
	Thursday  DayName = "thursday"
	Friday    DayName = "friday"
	Saturday  DayName = "saturday"
)

// DayNames indexed by time.Weekday (0 = Sunday)
var DayNames = [7]DayName{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DayNameOf maps a weekday to its WeeklyHours key
func DayNameOf(w time.Weekday) DayName {
	return DayNames[w]
}

// IsValid reports whether d is one of the seven known day names
func (d DayName) IsValid() bool {
	for _, name := range DayNames {
		if name == d {
			return true
		}
	}
	return false
}

// DayHours opening and closing time of a single day, "HH:MM" or "HH:MM:SS"
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Validate checks both bounds parse and open <= close
func (h DayHours) Validate() error {
	open, err := types.NewTimeStringFromString(h.Open)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	closeAt, err := types.NewTimeStringFromString(h.Close)
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if open.IsAfter(closeAt) {
		return fmt.Errorf("open %s is after close %s", h.Open, h.Close)
	}
	return nil
}

// WeeklyHours working hours per day. A missing key or nil value means the day is closed.
type WeeklyHours map[DayName]*DayHours

// For returns the hours of a given day, nil when closed
func (w WeeklyHours) For(day DayName) *DayHours {
	if w == nil {
		return nil
	}
	return w[day]
}

// IsOpen reports whether the day has hours set
func (w WeeklyHours) IsOpen(day DayName) bool {
	return w.For(day) != nil
}

// TimeWindow earliest and latest selectable time for a date
type TimeWindow struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// FallbackWindow default window used when hours are unknown or the day is closed
func FallbackWindow() TimeWindow {
	return TimeWindow{Min: FallbackWindowMin, Max: FallbackWindowMax}
}
