package get_time_slots

import (
	"context"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
)

// WorkingHoursRepository источник недельного расписания инстанса
type WorkingHoursRepository interface {
	// GetByInstance возвращает nil, если расписание не задано
	GetByInstance(ctx context.Context, instanceID string) (domain.WeeklyHours, error)
}

// Metrics доменные метрики генерации слотов
type Metrics interface {
	AddSlotsGenerated(n int)
	IncWindowFallback(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
