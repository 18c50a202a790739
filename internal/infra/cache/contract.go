package cache

import (
	"context"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
)

// WorkingHoursSource источник рабочих часов (postgres или supabase)
type WorkingHoursSource interface {
	GetByInstance(ctx context.Context, instanceID string) (domain.WeeklyHours, error)
	Update(ctx context.Context, instanceID string, hours domain.WeeklyHours) error
}

// ServiceLabelsSource источник справочника услуг
type ServiceLabelsSource interface {
	GetLabels(ctx context.Context, instanceID string) (map[string]string, error)
}

// Metrics метрики кеша
type Metrics interface {
	IncCacheResult(cache, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
