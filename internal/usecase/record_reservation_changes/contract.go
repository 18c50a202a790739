package record_reservation_changes

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
)

// ChangeRepository интерфейс репозитория истории изменений
type ChangeRepository interface {
	CreateBatch(ctx context.Context, records []domain.ChangeRecord) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные метрики истории
type Metrics interface {
	AddChangesRecorded(changeType string, n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
