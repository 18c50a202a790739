package workinghours

import (
	"context"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
)

// WorkingHoursRepository интерфейс хранилища расписания (репозиторий или кеш поверх него)
type WorkingHoursRepository interface {
	GetByInstance(ctx context.Context, instanceID string) (domain.WeeklyHours, error)
	Update(ctx context.Context, instanceID string, hours domain.WeeklyHours) error
}

// Metrics доменные метрики окна
type Metrics interface {
	IncWindowFallback(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
