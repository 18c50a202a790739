package get_time_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	workingHoursRepo "github.com/m04kA/SMC-ReservationCore/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-ReservationCore/internal/integrations/supabase"
	"github.com/m04kA/SMC-ReservationCore/internal/schedule"
)

// UseCase use case для построения сетки временных слотов на день
type UseCase struct {
	hoursRepo   WorkingHoursRepository
	defaultStep int
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hoursRepo WorkingHoursRepository,
	defaultStep int,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if defaultStep <= 0 {
		defaultStep = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		hoursRepo:   hoursRepo,
		defaultStep: defaultStep,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeSlots: instance=%s, date=%s, step=%d", req.InstanceID, formatDate(req), req.StepMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTimeSlots: validation failed: %v", err)
		return nil, err
	}

	step := req.StepMinutes
	if step == 0 {
		step = uc.defaultStep
	}

	// 2. Получаем расписание инстанса
	hours, err := uc.hoursRepo.GetByInstance(ctx, req.InstanceID)
	if err != nil {
		if isInstanceNotFound(err) {
			uc.logger.Warn("GetTimeSlots: instance=%s not found", req.InstanceID)
			return nil, ErrInstanceNotFound
		}
		uc.logger.Error("GetTimeSlots: failed to get working hours for instance=%s: %v", req.InstanceID, err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 3. Рассчитываем окно дня
	resolution := schedule.Resolve(hours, req.Date)
	if resolution.IsFallback() {
		uc.metrics.IncWindowFallback(string(resolution.Fallback))
		uc.logger.Info("GetTimeSlots: instance=%s day=%s uses default window (%s)",
			req.InstanceID, resolution.Day, resolution.Fallback)
	}

	window := resolution.Window
	if req.Override != nil {
		// формат проверен в validateRequest
		window, _ = parseWindow(*req.Override)
		uc.logger.Info("GetTimeSlots: instance=%s uses override window %s-%s", req.InstanceID, window.Min, window.Max)
	}

	// 4. Генерируем сетку
	slots, err := schedule.SlotsForWindow(window, step)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to generate slots for window %s-%s: %v", window.Min, window.Max, err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}
	uc.metrics.AddSlotsGenerated(len(slots))

	uc.logger.Info("GetTimeSlots: generated %d slots for instance=%s day=%s window=%s-%s",
		len(slots), req.InstanceID, resolution.Day, window.Min, window.Max)

	return &Response{
		Date:     req.Date,
		Day:      resolution.Day,
		Window:   window,
		Closed:   resolution.Fallback == schedule.FallbackClosedDay,
		Fallback: string(resolution.Fallback),
		Step:     step,
		Slots:    slots,
	}, nil
}

func isInstanceNotFound(err error) bool {
	return errors.Is(err, workingHoursRepo.ErrInstanceNotFound) || errors.Is(err, supabase.ErrInstanceNotFound)
}

func formatDate(req *Request) string {
	if req.Date == nil {
		return "-"
	}
	return req.Date.Format(domain.DateFormat)
}
