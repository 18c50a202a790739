package schedule

import (
	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	"github.com/m04kA/SMC-ReservationCore/pkg/types"
)

// GenerateSlots enumerates labels from min to max inclusive, stepMinutes apart.
// Returns an empty slice when min is after max.
// stepMinutes must be positive; a non-positive step yields an empty slice.
func GenerateSlots(min, max types.TimeString, stepMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if stepMinutes <= 0 {
		return slots
	}

	for current := min; !current.IsAfter(max); {
		slots = append(slots, current)

		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			// следующий слот ушел бы за полночь
			break
		}
		current = next
	}

	return slots
}

// GenerateLabels is GenerateSlots over HH:MM strings
func GenerateLabels(min, max string, stepMinutes int) ([]string, error) {
	from, err := types.NewTimeStringFromString(min)
	if err != nil {
		return nil, err
	}
	to, err := types.NewTimeStringFromString(max)
	if err != nil {
		return nil, err
	}

	slots := GenerateSlots(from, to, stepMinutes)
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.String()
	}
	return labels, nil
}

// SlotsForWindow generates the labels for a resolved window
func SlotsForWindow(window domain.TimeWindow, stepMinutes int) ([]string, error) {
	return GenerateLabels(window.Min, window.Max, stepMinutes)
}
