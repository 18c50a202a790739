package domain

// Fallback working window for a missing table or a closed day.
// A closed day still yields a usable window so operators can place manual bookings.
const (
	FallbackWindowMin = "06:00"
	FallbackWindowMax = "22:00"

	// MaxWindowEnd cap for the computed closing bound
	MaxWindowEnd = "23:59"

	// DefaultDayName is used when no date is given
	DefaultDayName = Monday
)

// Slot step constraints
const (
	DefaultSlotStepMinutes = 15
	MinSlotStepMinutes     = 5
	MaxSlotStepMinutes     = 240
)

// DateFormat YYYY-MM-DD
const DateFormat = "2006-01-02"
