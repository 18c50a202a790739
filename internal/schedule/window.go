package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	"github.com/m04kA/SMC-ReservationCore/pkg/types"
)

// FallbackReason why the default window was returned
type FallbackReason string

const (
	FallbackNone      FallbackReason = ""
	FallbackNoHours   FallbackReason = "no_hours"
	FallbackClosedDay FallbackReason = "closed_day"
	FallbackMalformed FallbackReason = "malformed_hours"
)

// Resolution resolved window together with the day it was computed for
type Resolution struct {
	Day      domain.DayName
	Window   domain.TimeWindow
	Fallback FallbackReason
}

// IsFallback reports whether the default window was used
func (r Resolution) IsFallback() bool {
	return r.Fallback != FallbackNone
}

// ResolveWindow returns the bookable window for date.
// nil date means monday. Missing hours and closed days yield the fallback window.
func ResolveWindow(hours domain.WeeklyHours, date *time.Time) domain.TimeWindow {
	return Resolve(hours, date).Window
}

// Resolve is ResolveWindow that also reports the day and whether the fallback was used
func Resolve(hours domain.WeeklyHours, date *time.Time) Resolution {
	day := domain.DefaultDayName
	if date != nil {
		day = domain.DayNameOf(date.Weekday())
	}

	if hours == nil {
		return Resolution{Day: day, Window: domain.FallbackWindow(), Fallback: FallbackNoHours}
	}

	dayHours := hours.For(day)
	if dayHours == nil {
		return Resolution{Day: day, Window: domain.FallbackWindow(), Fallback: FallbackClosedDay}
	}

	open, err := types.NewTimeStringFromString(dayHours.Open)
	if err != nil {
		return Resolution{Day: day, Window: domain.FallbackWindow(), Fallback: FallbackMalformed}
	}
	closeAt, err := types.NewTimeStringFromString(dayHours.Close)
	if err != nil {
		return Resolution{Day: day, Window: domain.FallbackWindow(), Fallback: FallbackMalformed}
	}

	return Resolution{
		Day: day,
		Window: domain.TimeWindow{
			Min: open.String(),
			Max: windowEnd(closeAt),
		},
	}
}

// windowEnd closing time plus one hour, minute unchanged, capped at 23:59
func windowEnd(closeAt types.TimeString) string {
	hour := closeAt.Hour() + 1
	if hour >= 24 {
		return domain.MaxWindowEnd
	}
	return fmt.Sprintf("%02d:%02d", hour, closeAt.Minute())
}
