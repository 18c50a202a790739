package get_time_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	"github.com/m04kA/SMC-ReservationCore/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.InstanceID) == "" {
		return fmt.Errorf("%w: instanceID is required", ErrInvalidInput)
	}

	if req.StepMinutes != 0 {
		if err := validateStep(req.StepMinutes); err != nil {
			return err
		}
	}

	if req.Override != nil {
		if _, err := parseWindow(*req.Override); err != nil {
			return err
		}
	}

	return nil
}

// validateStep проверяет шаг сетки
func validateStep(step int) error {
	if step < domain.MinSlotStepMinutes || step > domain.MaxSlotStepMinutes {
		return fmt.Errorf("%w: step must be within [%d, %d], got %d",
			ErrInvalidStep, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes, step)
	}
	return nil
}

// parseWindow проверяет формат ручного окна и приводит границы к HH:MM
// min > max не ошибка: сетка просто будет пустой
func parseWindow(window domain.TimeWindow) (domain.TimeWindow, error) {
	min, err := types.NewTimeStringFromString(window.Min)
	if err != nil {
		return domain.TimeWindow{}, fmt.Errorf("%w: min: %v", ErrInvalidWindow, err)
	}
	max, err := types.NewTimeStringFromString(window.Max)
	if err != nil {
		return domain.TimeWindow{}, fmt.Errorf("%w: max: %v", ErrInvalidWindow, err)
	}
	return domain.TimeWindow{Min: min.String(), Max: max.String()}, nil
}
