package workinghours

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	workingHoursRepo "github.com/m04kA/SMC-ReservationCore/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-ReservationCore/internal/integrations/supabase"
	"github.com/m04kA/SMC-ReservationCore/internal/schedule"
	"github.com/m04kA/SMC-ReservationCore/internal/service/workinghours/models"
	"github.com/m04kA/SMC-ReservationCore/pkg/ptr"
)

// Service сервис для работы с рабочими часами инстанса
type Service struct {
	hoursRepo WorkingHoursRepository
	metrics   Metrics
	logger    Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(
	hoursRepo WorkingHoursRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetWindow рассчитывает окно бронирования на дату
// date == nil - расчет для понедельника
func (s *Service) GetWindow(ctx context.Context, instanceID string, date *time.Time) (*models.WindowResponse, error) {
	s.logger.Info("GetWindow: instance=%s", instanceID)

	hours, err := s.load(ctx, "GetWindow", instanceID)
	if err != nil {
		return nil, err
	}

	resolution := schedule.Resolve(hours, date)
	if resolution.IsFallback() {
		s.metrics.IncWindowFallback(string(resolution.Fallback))
	}

	resp := &models.WindowResponse{
		InstanceID: instanceID,
		Day:        resolution.Day,
		Min:        resolution.Window.Min,
		Max:        resolution.Window.Max,
		Fallback:   resolution.IsFallback(),
		Reason:     string(resolution.Fallback),
	}
	if date != nil {
		resp.Date = ptr.Ptr(date.Format(domain.DateFormat))
	}

	s.logger.Info("GetWindow: instance=%s day=%s window=%s-%s", instanceID, resp.Day, resp.Min, resp.Max)
	return resp, nil
}

// Get возвращает недельное расписание инстанса
func (s *Service) Get(ctx context.Context, instanceID string) (*models.WorkingHoursResponse, error) {
	s.logger.Info("Get: fetching working hours for instance=%s", instanceID)

	hours, err := s.load(ctx, "Get", instanceID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainHours(instanceID, hours), nil
}

// Update заменяет недельное расписание инстанса
// Проверяет имена дней, формат времени и open <= close
func (s *Service) Update(ctx context.Context, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("Update: updating working hours for instance=%s", req.InstanceID)

	// 1. Валидируем входные данные
	if strings.TrimSpace(req.InstanceID) == "" {
		return nil, fmt.Errorf("%w: instanceID is required", ErrInvalidInput)
	}

	hours, err := validateHours(req.Hours)
	if err != nil {
		s.logger.Warn("Update: validation failed for instance=%s: %v", req.InstanceID, err)
		return nil, err
	}

	// 2. Сохраняем (кеш сбрасывается декоратором хранилища)
	if err := s.hoursRepo.Update(ctx, req.InstanceID, hours); err != nil {
		if isInstanceNotFound(err) {
			s.logger.Warn("Update: instance=%s not found", req.InstanceID)
			return nil, ErrInstanceNotFound
		}
		s.logger.Error("Update: repository error for instance=%s: %v", req.InstanceID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated working hours for instance=%s", req.InstanceID)
	return models.FromDomainHours(req.InstanceID, hours), nil
}

func (s *Service) load(ctx context.Context, op, instanceID string) (domain.WeeklyHours, error) {
	if strings.TrimSpace(instanceID) == "" {
		return nil, fmt.Errorf("%w: instanceID is required", ErrInvalidInput)
	}

	hours, err := s.hoursRepo.GetByInstance(ctx, instanceID)
	if err != nil {
		if isInstanceNotFound(err) {
			s.logger.Warn("%s: instance=%s not found", op, instanceID)
			return nil, ErrInstanceNotFound
		}
		s.logger.Error("%s: repository error for instance=%s: %v", op, instanceID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return hours, nil
}

// validateHours проверяет расписание и отбрасывает выходные дни
func validateHours(in map[domain.DayName]*domain.DayHours) (domain.WeeklyHours, error) {
	hours := make(domain.WeeklyHours, len(in))
	for day, dayHours := range in {
		if !day.IsValid() {
			return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidInput, day)
		}
		if dayHours == nil {
			continue
		}
		if err := dayHours.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, day, err)
		}
		hours[day] = &domain.DayHours{Open: dayHours.Open, Close: dayHours.Close}
	}
	return hours, nil
}

func isInstanceNotFound(err error) bool {
	return errors.Is(err, workingHoursRepo.ErrInstanceNotFound) || errors.Is(err, supabase.ErrInstanceNotFound)
}
